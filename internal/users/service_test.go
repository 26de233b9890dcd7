package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KSunShin4/EcoMart/pkg/db/models"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
)

type fakeUserStore struct {
	users     map[uuid.UUID]*models.User
	addresses map[uuid.UUID]*models.Address
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:     map[uuid.UUID]*models.User{},
		addresses: map[uuid.UUID]*models.Address{},
	}
}

func (f *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) ListAddresses(_ context.Context, userID uuid.UUID) ([]models.Address, error) {
	var out []models.Address
	for _, addr := range f.addresses {
		if addr.UserID == userID {
			out = append(out, *addr)
		}
	}
	return out, nil
}

func (f *fakeUserStore) CreateAddress(_ context.Context, address *models.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	copied := *address
	f.addresses[address.ID] = &copied
	return nil
}

func (f *fakeUserStore) UpdateAddress(_ context.Context, address *models.Address) error {
	existing, ok := f.addresses[address.ID]
	if !ok || existing.UserID != address.UserID {
		return gorm.ErrRecordNotFound
	}
	copied := *address
	f.addresses[address.ID] = &copied
	return nil
}

func (f *fakeUserStore) DeleteAddress(_ context.Context, userID, addressID uuid.UUID) error {
	existing, ok := f.addresses[addressID]
	if !ok || existing.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(f.addresses, addressID)
	return nil
}

func (f *fakeUserStore) ClearDefaultAddress(_ context.Context, userID uuid.UUID) error {
	for _, addr := range f.addresses {
		if addr.UserID == userID {
			addr.IsDefault = false
		}
	}
	return nil
}

func seedUser(store *fakeUserStore) *models.User {
	u := &models.User{ID: uuid.New(), Phone: "+84901234567"}
	store.users[u.ID] = u
	return u
}

func validAddress() AddressInput {
	return AddressInput{
		Recipient: "Ngọc Anh",
		Phone:     "+84901234567",
		Line1:     "12 Nguyễn Huệ",
		District:  "Quận 1",
		City:      "TP. Hồ Chí Minh",
	}
}

func TestUpdateProfileAppliesOptionalFields(t *testing.T) {
	store := newFakeUserStore()
	u := seedUser(store)
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	name := "  Ngọc Anh  "
	dto, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if dto.Name != "Ngọc Anh" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if dto.Phone != u.Phone {
		t.Fatalf("phone must be immutable, got %q", dto.Phone)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := NewService(newFakeUserStore())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddressValidation(t *testing.T) {
	store := newFakeUserStore()
	u := seedUser(store)
	svc, _ := NewService(store)

	input := validAddress()
	input.City = "  "
	_, err := svc.CreateAddress(context.Background(), u.ID, input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDefaultAddressIsExclusive(t *testing.T) {
	store := newFakeUserStore()
	u := seedUser(store)
	svc, _ := NewService(store)
	ctx := context.Background()

	first := validAddress()
	first.IsDefault = true
	if _, err := svc.CreateAddress(ctx, u.ID, first); err != nil {
		t.Fatalf("CreateAddress: %v", err)
	}

	second := validAddress()
	second.Line1 = "34 Lê Lợi"
	second.IsDefault = true
	if _, err := svc.CreateAddress(ctx, u.ID, second); err != nil {
		t.Fatalf("CreateAddress second: %v", err)
	}

	addresses, err := svc.ListAddresses(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListAddresses: %v", err)
	}

	defaults := 0
	for _, addr := range addresses {
		if addr.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default address, got %d", defaults)
	}
}

func TestAddressUpdateAndDeleteScopedToOwner(t *testing.T) {
	store := newFakeUserStore()
	u := seedUser(store)
	svc, _ := NewService(store)
	ctx := context.Background()

	created, err := svc.CreateAddress(ctx, u.ID, validAddress())
	if err != nil {
		t.Fatalf("CreateAddress: %v", err)
	}
	addressID := uuid.MustParse(created.ID)

	stranger := uuid.New()
	if _, err := svc.UpdateAddress(ctx, stranger, addressID, validAddress()); err == nil {
		t.Fatal("expected not found for foreign update")
	}
	if err := svc.DeleteAddress(ctx, stranger, addressID); err == nil {
		t.Fatal("expected not found for foreign delete")
	}

	if err := svc.DeleteAddress(ctx, u.ID, addressID); err != nil {
		t.Fatalf("DeleteAddress: %v", err)
	}
}
