package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/KSunShin4/EcoMart/internal/cart"
	"github.com/KSunShin4/EcoMart/pkg/db/models"
	"github.com/KSunShin4/EcoMart/pkg/enums"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
)

// OrderItemDTO is one purchased product line.
type OrderItemDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

// OrderDTO is the API shape of a placed order.
type OrderDTO struct {
	ID              string         `json:"id"`
	Status          string         `json:"status"`
	TotalAmount     string         `json:"totalAmount"`
	ShippingAddress string         `json:"shippingAddress,omitempty"`
	Items           []OrderItemDTO `json:"items"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// CheckoutInput creates an order from the caller's cart contents.
type CheckoutInput struct {
	Items           []cart.Item
	ShippingAddress string
}

// Service exposes checkout and order history operations.
type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*OrderDTO, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) error
}

type orderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, status string) error
}

type cartClearer interface {
	Clear(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo  orderStore
	carts cartClearer
}

// NewService constructs an order service instance.
func NewService(repo orderStore, carts cartClearer) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart clearer required")
	}
	return &service{repo: repo, carts: carts}, nil
}

// Checkout turns the supplied cart lines into a pending order and empties the
// cart. Totals use fixed-point arithmetic.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*OrderDTO, error) {
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	order := &models.Order{
		UserID:          userID,
		Status:          enums.OrderStatusPending,
		ShippingAddress: input.ShippingAddress,
	}

	total := decimal.Zero
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be positive")
		}
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id in cart")
		}

		price := decimal.NewFromFloat(line.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		order.Items = append(order.Items, models.OrderItem{
			ProductID: productID,
			Name:      line.Name,
			Thumbnail: line.Thumbnail,
			Price:     price,
			Quantity:  line.Quantity,
		})
	}
	order.TotalAmount = total

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating order")
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart after checkout")
	}

	dto := toOrderDTO(order)
	return &dto, nil
}

func (s *service) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading order")
	}

	dto := toOrderDTO(order)
	return &dto, nil
}

func (s *service) ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}

	out := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderDTO(&orders[i]))
	}
	return out, nil
}

// CancelOrder moves a pending order to cancelled. Completed orders cannot be
// cancelled.
func (s *service) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	order, err := s.repo.FindByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading order")
	}

	if order.Status != enums.OrderStatusPending {
		return pkgerrors.New(pkgerrors.CodeConflict, "only pending orders can be cancelled")
	}

	if err := s.repo.UpdateStatus(ctx, userID, orderID, enums.OrderStatusCancelled.String()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cancelling order")
	}
	return nil
}

func toOrderDTO(order *models.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Thumbnail: item.Thumbnail,
			Price:     item.Price.StringFixed(2),
			Quantity:  item.Quantity,
		})
	}
	return OrderDTO{
		ID:              order.ID.String(),
		Status:          order.Status.String(),
		TotalAmount:     order.TotalAmount.StringFixed(2),
		ShippingAddress: order.ShippingAddress,
		Items:           items,
		CreatedAt:       order.CreatedAt,
	}
}
