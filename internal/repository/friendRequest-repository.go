package repository

import (
	"context"
	"time"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"gorm.io/gorm"
)

type FriendRequestRepository interface {
	Repository[domain.FriendRequest]
	// FindPair returns a live edge between a and b in either direction.
	FindPair(ctx context.Context, a, b string) (*domain.FriendRequest, error)
	// FindVisible returns the request only when userID is one of its ends.
	FindVisible(ctx context.Context, id, userID string) (*domain.FriendRequest, error)
	ListDirected(ctx context.Context, filter Filter, page Page) ([]domain.FriendRequest, int64, error)
	// Tombstone marks the matching live edges DELETED and soft-deletes them.
	Tombstone(ctx context.Context, filter Filter) (int64, error)
}

type friendRequestRepository struct {
	baseRepository[domain.FriendRequest]
}

func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{baseRepository: newBaseRepository[domain.FriendRequest](db)}
}

func (r *friendRequestRepository) FindPair(ctx context.Context, a, b string) (*domain.FriendRequest, error) {
	var items []domain.FriendRequest
	err := r.db.WithContext(ctx).
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?))", a, b, b, a).
		Order("created_at ASC").
		Limit(1).
		Find(&items).Error
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

func (r *friendRequestRepository) FindVisible(ctx context.Context, id, userID string) (*domain.FriendRequest, error) {
	fr := &domain.FriendRequest{}
	err := r.db.WithContext(ctx).
		Where("id = ? AND (sender_id = ? OR receiver_id = ?)", id, userID, userID).
		Take(fr).Error
	if err != nil {
		return nil, err
	}
	return fr, nil
}

func (r *friendRequestRepository) ListDirected(ctx context.Context, filter Filter, page Page) ([]domain.FriendRequest, int64, error) {
	var total int64
	if err := r.query(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.query(ctx, filter).Preload("Sender").Preload("Receiver")
	if page.Order != "" {
		q = q.Order(page.Order)
	}
	if page.Limit > 0 {
		q = q.Limit(page.Limit).Offset(page.Offset)
	}

	var items []domain.FriendRequest
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *friendRequestRepository) Tombstone(ctx context.Context, filter Filter) (int64, error) {
	return r.UpdateBy(ctx, filter, map[string]any{
		"status":     domain.FriendRequestDeleted,
		"deleted_at": time.Now(),
	})
}
