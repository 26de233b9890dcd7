package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KSunShin4/EcoMart/pkg/db/models"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
)

// UserDTO is the API shape of a profile.
type UserDTO struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddressDTO is the API shape of a delivery address.
type AddressDTO struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Line1     string `json:"line1"`
	Ward      string `json:"ward,omitempty"`
	District  string `json:"district,omitempty"`
	City      string `json:"city"`
	IsDefault bool   `json:"isDefault"`
}

// UpdateProfileInput holds optional profile mutations.
type UpdateProfileInput struct {
	Name      *string
	Email     *string
	AvatarURL *string
}

// AddressInput holds the payload for creating or updating an address.
type AddressInput struct {
	Recipient string
	Phone     string
	Line1     string
	Ward      string
	District  string
	City      string
	IsDefault bool
}

// Service exposes profile and address management.
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*UserDTO, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]AddressDTO, error)
	CreateAddress(ctx context.Context, userID uuid.UUID, input AddressInput) (*AddressDTO, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input AddressInput) (*AddressDTO, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}

type userStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	CreateAddress(ctx context.Context, address *models.Address) error
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
	ClearDefaultAddress(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo userStore
}

// NewService constructs a user service instance.
func NewService(repo userStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = strings.TrimSpace(*input.Email)
	}
	if input.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating user")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

func (s *service) ListAddresses(ctx context.Context, userID uuid.UUID) ([]AddressDTO, error) {
	addresses, err := s.repo.ListAddresses(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing addresses")
	}

	out := make([]AddressDTO, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, toAddressDTO(address))
	}
	return out, nil
}

func (s *service) CreateAddress(ctx context.Context, userID uuid.UUID, input AddressInput) (*AddressDTO, error) {
	if err := validateAddress(input); err != nil {
		return nil, err
	}

	if input.IsDefault {
		if err := s.repo.ClearDefaultAddress(ctx, userID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resetting default address")
		}
	}

	address := &models.Address{
		UserID:    userID,
		Recipient: strings.TrimSpace(input.Recipient),
		Phone:     strings.TrimSpace(input.Phone),
		Line1:     strings.TrimSpace(input.Line1),
		Ward:      strings.TrimSpace(input.Ward),
		District:  strings.TrimSpace(input.District),
		City:      strings.TrimSpace(input.City),
		IsDefault: input.IsDefault,
	}
	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating address")
	}

	dto := toAddressDTO(*address)
	return &dto, nil
}

func (s *service) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input AddressInput) (*AddressDTO, error) {
	if err := validateAddress(input); err != nil {
		return nil, err
	}

	if input.IsDefault {
		if err := s.repo.ClearDefaultAddress(ctx, userID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resetting default address")
		}
	}

	address := &models.Address{
		ID:        addressID,
		UserID:    userID,
		Recipient: strings.TrimSpace(input.Recipient),
		Phone:     strings.TrimSpace(input.Phone),
		Line1:     strings.TrimSpace(input.Line1),
		Ward:      strings.TrimSpace(input.Ward),
		District:  strings.TrimSpace(input.District),
		City:      strings.TrimSpace(input.City),
		IsDefault: input.IsDefault,
	}
	if err := s.repo.UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating address")
	}

	dto := toAddressDTO(*address)
	return &dto, nil
}

func (s *service) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if err := s.repo.DeleteAddress(ctx, userID, addressID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting address")
	}
	return nil
}

func validateAddress(input AddressInput) error {
	if strings.TrimSpace(input.Recipient) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "recipient is required")
	}
	if strings.TrimSpace(input.Phone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}
	if strings.TrimSpace(input.Line1) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "address line is required")
	}
	if strings.TrimSpace(input.City) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "city is required")
	}
	return nil
}

func toUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID.String(),
		Phone:     user.Phone,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

func toAddressDTO(address models.Address) AddressDTO {
	return AddressDTO{
		ID:        address.ID.String(),
		Recipient: address.Recipient,
		Phone:     address.Phone,
		Line1:     address.Line1,
		Ward:      address.Ward,
		District:  address.District,
		City:      address.City,
		IsDefault: address.IsDefault,
	}
}
