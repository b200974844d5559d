package repository

import (
	"context"
	"errors"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStaleVersion reports a version-checked write that lost to a
// concurrent update.
var ErrStaleVersion = errors.New("stale entity version")

type UserRepository interface {
	Repository[domain.User]
	// CountIncludingDeleted sees soft-deleted rows too; contact fields stay
	// reserved after a user is deleted.
	CountIncludingDeleted(ctx context.Context, filter Filter) (int64, error)
	FindWithProfile(ctx context.Context, id string) (*domain.User, error)
	UpdateVersioned(ctx context.Context, id string, version int, updates map[string]any) error
	// LockByID takes a row lock on the user until the surrounding
	// transaction ends. Outside a transaction it only checks existence.
	LockByID(ctx context.Context, id string) error
}

type userRepository struct {
	baseRepository[domain.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{baseRepository: newBaseRepository[domain.User](db)}
}

func (r *userRepository) CountIncludingDeleted(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Unscoped().Model(&domain.User{}).Where(map[string]any(filter)).Count(&total).Error
	return total, err
}

func (r *userRepository) FindWithProfile(ctx context.Context, id string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.WithContext(ctx).Preload("Profile").Where("id = ?", id).Take(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) UpdateVersioned(ctx context.Context, id string, version int, updates map[string]any) error {
	n, err := r.UpdateBy(ctx, Filter{"id": id, "version": version}, updates)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	exists, err := r.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return gorm.ErrRecordNotFound
	}
	return ErrStaleVersion
}

func (r *userRepository) LockByID(ctx context.Context, id string) error {
	q := r.db.WithContext(ctx).Model(&domain.User{}).Select("id").Where("id = ?", id)
	// sqlite in tests has no row locks and serializes writers anyway.
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q.Take(&domain.User{}).Error
}
