package repository

import (
	"context"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"gorm.io/gorm"
)

type AddressRepository interface {
	Repository[domain.UserAddress]
	ClearDefault(ctx context.Context, userID string) error
	SetDefault(ctx context.Context, userID, addressID string) error
	// LatestByUser returns the most recently created address of the user,
	// or nil when the user has none.
	LatestByUser(ctx context.Context, userID string) (*domain.UserAddress, error)
}

type addressRepository struct {
	baseRepository[domain.UserAddress]
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{baseRepository: newBaseRepository[domain.UserAddress](db)}
}

func (r *addressRepository) ClearDefault(ctx context.Context, userID string) error {
	_, err := r.UpdateBy(ctx, Filter{"user_id": userID, "is_default": true}, map[string]any{"is_default": false})
	return err
}

func (r *addressRepository) SetDefault(ctx context.Context, userID, addressID string) error {
	n, err := r.UpdateBy(ctx, Filter{"id": addressID, "user_id": userID}, map[string]any{"is_default": true})
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *addressRepository) LatestByUser(ctx context.Context, userID string) (*domain.UserAddress, error) {
	items, _, err := r.FindAndCount(ctx, Filter{"user_id": userID}, Page{Limit: 1, Order: "created_at DESC"})
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}
