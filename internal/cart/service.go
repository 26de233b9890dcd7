package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	product "github.com/KSunShin4/EcoMart/internal/products"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
)

// CartDTO is the API shape of a cart with derived totals.
type CartDTO struct {
	Items     []Item  `json:"items"`
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
}

// Service exposes cart mutations backed by the key-value store.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartStore interface {
	Load(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, userID string, cart *Cart) error
	Drop(ctx context.Context, userID string) error
}

type productLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*product.ProductDTO, error)
}

type service struct {
	store    cartStore
	products productLoader
}

// NewService constructs a cart service instance.
func NewService(store cartStore, products productLoader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{store: store, products: products}, nil
}

func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	cart, err := s.store.Load(ctx, userID.String())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
	return toDTO(cart), nil
}

// AddItem puts a product in the cart, merging quantities when the line
// already exists. Stock is checked against the catalog snapshot.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, userID.String())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	idx := findLine(cart.Items, productID.String())
	newQuantity := quantity
	if idx >= 0 {
		newQuantity += cart.Items[idx].Quantity
	}
	if newQuantity > p.Stock {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "not enough stock").
			WithDetails(map[string]any{"stock": p.Stock, "requested": newQuantity})
	}

	if idx >= 0 {
		cart.Items[idx].Quantity = newQuantity
		cart.Items[idx].Price = p.Price
	} else {
		cart.Items = append(cart.Items, Item{
			ProductID: p.ID,
			Name:      p.Name,
			Thumbnail: p.Thumbnail,
			Price:     p.Price,
			Quantity:  quantity,
		})
	}

	if err := s.store.Save(ctx, userID.String(), cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return toDTO(cart), nil
}

// UpdateQuantity sets a line's quantity. Zero removes the line.
func (s *service) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartDTO, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}
	if quantity == 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	cart, err := s.store.Load(ctx, userID.String())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	idx := findLine(cart.Items, productID.String())
	if idx < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}

	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > p.Stock {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "not enough stock").
			WithDetails(map[string]any{"stock": p.Stock, "requested": quantity})
	}

	cart.Items[idx].Quantity = quantity
	cart.Items[idx].Price = p.Price

	if err := s.store.Save(ctx, userID.String(), cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return toDTO(cart), nil
}

func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartDTO, error) {
	cart, err := s.store.Load(ctx, userID.String())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	idx := findLine(cart.Items, productID.String())
	if idx < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	if err := s.store.Save(ctx, userID.String(), cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return toDTO(cart), nil
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.Drop(ctx, userID.String()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return nil
}

func findLine(items []Item, productID string) int {
	for i, item := range items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func toDTO(cart *Cart) *CartDTO {
	dto := &CartDTO{Items: cart.Items}
	for _, item := range cart.Items {
		dto.ItemCount += item.Quantity
		dto.Subtotal += item.Price * float64(item.Quantity)
	}
	if dto.Items == nil {
		dto.Items = []Item{}
	}
	return dto
}
