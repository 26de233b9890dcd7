package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KSunShin4/EcoMart/internal/cart"
	"github.com/KSunShin4/EcoMart/pkg/db/models"
	"github.com/KSunShin4/EcoMart/pkg/enums"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
)

type fakeOrderStore struct {
	orders []*models.Order
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders = append([]*models.Order{order}, f.orders...)
	return nil
}

func (f *fakeOrderStore) FindByID(_ context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	for _, order := range f.orders {
		if order.ID == orderID && order.UserID == userID {
			return order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Order, error) {
	var out []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, userID, orderID uuid.UUID, status string) error {
	for _, order := range f.orders {
		if order.ID == orderID && order.UserID == userID {
			order.Status = enums.OrderStatus(status)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeCartClearer struct {
	cleared []uuid.UUID
}

func (f *fakeCartClearer) Clear(_ context.Context, userID uuid.UUID) error {
	f.cleared = append(f.cleared, userID)
	return nil
}

func checkoutFixture() CheckoutInput {
	return CheckoutInput{
		ShippingAddress: "12 Nguyễn Huệ, Quận 1",
		Items: []cart.Item{
			{ProductID: uuid.NewString(), Name: "Chuối già", Price: 17000, Quantity: 2},
			{ProductID: uuid.NewString(), Name: "Táo Envy", Price: 39000, Quantity: 1},
		},
	}
}

func TestCheckoutCreatesPendingOrder(t *testing.T) {
	store := &fakeOrderStore{}
	carts := &fakeCartClearer{}
	svc, err := NewService(store, carts)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	userID := uuid.New()
	dto, err := svc.Checkout(context.Background(), userID, checkoutFixture())
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if dto.Status != enums.OrderStatusPending.String() {
		t.Fatalf("expected pending order, got %s", dto.Status)
	}
	if dto.TotalAmount != "73000.00" {
		t.Fatalf("expected total 73000.00, got %s", dto.TotalAmount)
	}
	if len(dto.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(dto.Items))
	}
	if len(carts.cleared) != 1 || carts.cleared[0] != userID {
		t.Fatalf("expected cart cleared for %s, got %v", userID, carts.cleared)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, _ := NewService(&fakeOrderStore{}, &fakeCartClearer{})

	_, err := svc.Checkout(context.Background(), uuid.New(), CheckoutInput{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCheckoutRejectsBadLines(t *testing.T) {
	svc, _ := NewService(&fakeOrderStore{}, &fakeCartClearer{})
	ctx := context.Background()

	_, err := svc.Checkout(ctx, uuid.New(), CheckoutInput{
		Items: []cart.Item{{ProductID: uuid.NewString(), Quantity: 0}},
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}

	_, err = svc.Checkout(ctx, uuid.New(), CheckoutInput{
		Items: []cart.Item{{ProductID: "not-a-uuid", Quantity: 1}},
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for bad product id, got %v", err)
	}
}

func TestGetAndListOrders(t *testing.T) {
	store := &fakeOrderStore{}
	svc, _ := NewService(store, &fakeCartClearer{})

	userID := uuid.New()
	ctx := context.Background()
	created, err := svc.Checkout(ctx, userID, checkoutFixture())
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	fetched, err := svc.GetOrder(ctx, userID, uuid.MustParse(created.ID))
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if fetched.TotalAmount != created.TotalAmount {
		t.Fatalf("expected same total, got %s vs %s", fetched.TotalAmount, created.TotalAmount)
	}

	// Orders are scoped per user.
	if _, err := svc.GetOrder(ctx, uuid.New(), uuid.MustParse(created.ID)); err == nil {
		t.Fatal("expected not found for other user")
	}

	orders, err := svc.ListOrders(ctx, userID)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}

func TestCancelOrder(t *testing.T) {
	store := &fakeOrderStore{}
	svc, _ := NewService(store, &fakeCartClearer{})

	userID := uuid.New()
	ctx := context.Background()
	created, _ := svc.Checkout(ctx, userID, checkoutFixture())
	orderID := uuid.MustParse(created.ID)

	if err := svc.CancelOrder(ctx, userID, orderID); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}

	fetched, _ := svc.GetOrder(ctx, userID, orderID)
	if fetched.Status != enums.OrderStatusCancelled.String() {
		t.Fatalf("expected cancelled, got %s", fetched.Status)
	}

	// A cancelled order cannot be cancelled again.
	err := svc.CancelOrder(ctx, userID, orderID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}
