package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/helper"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	"github.com/SundayYogurt/social_user_service/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FriendRequestService interface {
	SendFriendRequest(ctx context.Context, userID, friendID string) (string, error)
	// UpdateFriendRequest applies a status change requested by userID and
	// returns the id of the affected row, or of the reciprocal row created
	// on accept. Only the sender may be turned back to PENDING, by sending
	// again after a rejection, so a PENDING update is USER_HAVE_NO_RIGHT.
	UpdateFriendRequest(ctx context.Context, userID, requestID string, status domain.FriendRequestStatus) (string, error)
	IsOnFriendList(ctx context.Context, userID, friendID string) (bool, error)
	GetFriendList(ctx context.Context, userID string, page, limit int) ([]domain.FriendRequest, int64, error)
	GetFriendRequestList(ctx context.Context, userID string, page, limit int, direction domain.FriendDirection, status domain.FriendRequestStatus) ([]domain.FriendRequest, int64, error)
	// MockFriends creates n users that are already friends with userID.
	MockFriends(ctx context.Context, userID string, n int) ([]string, error)
}

type friendRequestService struct {
	store repository.Store
	log   *zap.Logger
}

func NewFriendRequestService(store repository.Store, log *zap.Logger) FriendRequestService {
	return &friendRequestService{store: store, log: log.Named("friend_request")}
}

func (f *friendRequestService) SendFriendRequest(ctx context.Context, userID, friendID string) (string, error) {
	if userID == friendID {
		return "", domain.ErrSelfFriendRequest
	}
	if err := f.ensureUsers(ctx, userID, friendID); err != nil {
		return "", err
	}

	pair, err := f.store.FriendRequests().FindPair(ctx, userID, friendID)
	if err != nil {
		return "", err
	}

	if pair == nil {
		fr := &domain.FriendRequest{SenderID: userID, ReceiverID: friendID, Status: domain.FriendRequestPending}
		if err := f.store.FriendRequests().Create(ctx, fr); err != nil {
			if helper.IsDuplicateKey(err, "") {
				return "", domain.ErrFriendRequestPending
			}
			return "", err
		}
		f.log.Info("friend request sent", zap.String("sender_id", userID), zap.String("receiver_id", friendID))
		return fr.ID, nil
	}

	switch pair.Status {
	case domain.FriendRequestAccepted:
		return "", domain.ErrFriendRequestAccepted
	case domain.FriendRequestPending:
		return "", domain.ErrFriendRequestPending
	}

	// a rejected edge is reopened in the direction of the new request
	err = f.store.FriendRequests().UpdateByID(ctx, pair.ID, map[string]any{
		"status":      domain.FriendRequestPending,
		"sender_id":   userID,
		"receiver_id": friendID,
	})
	if err != nil {
		return "", orNotFound(err, domain.ErrFriendRequestNotFound)
	}
	return pair.ID, nil
}

func (f *friendRequestService) UpdateFriendRequest(ctx context.Context, userID, requestID string, status domain.FriendRequestStatus) (string, error) {
	if !status.Valid() {
		return "", domain.Invalid(fmt.Errorf("unknown friend request status %q", status))
	}
	if err := f.ensureUsers(ctx, userID); err != nil {
		return "", err
	}

	fr, err := f.store.FriendRequests().FindVisible(ctx, requestID, userID)
	if err != nil {
		return "", orNotFound(err, domain.ErrFriendRequestNotFound)
	}

	if fr.Status == domain.FriendRequestAccepted {
		return f.updateFriendship(ctx, fr, status)
	}
	if fr.SenderID == userID {
		if status != domain.FriendRequestDeleted {
			return "", domain.ErrUserHaveNoRight
		}
		return f.tombstone(ctx, f.store, fr.ID)
	}

	switch status {
	case domain.FriendRequestAccepted:
		return repository.InTransaction(ctx, f.store, func(tx repository.Store) (string, error) {
			if err := tx.FriendRequests().UpdateByID(ctx, fr.ID, map[string]any{"status": domain.FriendRequestAccepted}); err != nil {
				return "", orNotFound(err, domain.ErrFriendRequestNotFound)
			}
			reciprocal := &domain.FriendRequest{
				SenderID:   fr.ReceiverID,
				ReceiverID: fr.SenderID,
				Status:     domain.FriendRequestAccepted,
			}
			if err := tx.FriendRequests().Create(ctx, reciprocal); err != nil {
				if helper.IsDuplicateKey(err, "") {
					return "", domain.ErrFriendRequestAccepted
				}
				return "", err
			}
			f.log.Info("friend request accepted", zap.String("request_id", fr.ID), zap.String("reciprocal_id", reciprocal.ID))
			return reciprocal.ID, nil
		})
	case domain.FriendRequestRejected:
		if err := f.store.FriendRequests().UpdateByID(ctx, fr.ID, map[string]any{"status": domain.FriendRequestRejected}); err != nil {
			return "", orNotFound(err, domain.ErrFriendRequestNotFound)
		}
		return fr.ID, nil
	case domain.FriendRequestDeleted:
		return f.tombstone(ctx, f.store, fr.ID)
	}
	return "", domain.ErrUserHaveNoRight
}

// updateFriendship handles a request on one edge of an accepted pair.
// Removing the friendship tombstones both directions together.
func (f *friendRequestService) updateFriendship(ctx context.Context, fr *domain.FriendRequest, status domain.FriendRequestStatus) (string, error) {
	if status != domain.FriendRequestDeleted {
		return "", domain.ErrUserHaveNoRight
	}

	err := f.store.WithTransaction(ctx, func(tx repository.Store) error {
		for _, edge := range []repository.Filter{
			{"sender_id": fr.SenderID, "receiver_id": fr.ReceiverID},
			{"sender_id": fr.ReceiverID, "receiver_id": fr.SenderID},
		} {
			if _, err := tx.FriendRequests().Tombstone(ctx, edge); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	f.log.Info("friendship removed", zap.String("user_id", fr.SenderID), zap.String("friend_id", fr.ReceiverID))
	return fr.ID, nil
}

func (f *friendRequestService) tombstone(ctx context.Context, s repository.Store, id string) (string, error) {
	n, err := s.FriendRequests().Tombstone(ctx, repository.Filter{"id": id})
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", domain.ErrFriendRequestNotFound
	}
	return id, nil
}

func (f *friendRequestService) IsOnFriendList(ctx context.Context, userID, friendID string) (bool, error) {
	if err := f.ensureUsers(ctx, userID, friendID); err != nil {
		return false, err
	}
	return f.store.FriendRequests().ExistsBy(ctx, repository.Filter{
		"sender_id":   userID,
		"receiver_id": friendID,
		"status":      domain.FriendRequestAccepted,
	})
}

func (f *friendRequestService) GetFriendList(ctx context.Context, userID string, page, limit int) ([]domain.FriendRequest, int64, error) {
	if err := f.ensureUsers(ctx, userID); err != nil {
		return nil, 0, err
	}
	offset, size := utils.Paginate(page, limit)
	return f.store.FriendRequests().ListDirected(ctx,
		repository.Filter{"sender_id": userID, "status": domain.FriendRequestAccepted},
		repository.Page{Offset: offset, Limit: size, Order: "created_at DESC"},
	)
}

func (f *friendRequestService) GetFriendRequestList(ctx context.Context, userID string, page, limit int, direction domain.FriendDirection, status domain.FriendRequestStatus) ([]domain.FriendRequest, int64, error) {
	if err := f.ensureUsers(ctx, userID); err != nil {
		return nil, 0, err
	}
	if status == "" {
		status = domain.FriendRequestPending
	}
	if status == domain.FriendRequestAccepted {
		// accepted edges are friends, listed by GetFriendList
		return nil, 0, domain.ErrFriendRequestAccepted
	}
	if !status.Valid() {
		return nil, 0, domain.Invalid(fmt.Errorf("unknown friend request status %q", status))
	}

	filter := repository.Filter{"status": status}
	switch direction {
	case domain.FriendDirectionReceived:
		filter["receiver_id"] = userID
	case domain.FriendDirectionSent:
		filter["sender_id"] = userID
	default:
		return nil, 0, domain.Invalid(fmt.Errorf("unknown direction %q", direction))
	}

	offset, size := utils.Paginate(page, limit)
	return f.store.FriendRequests().ListDirected(ctx, filter, repository.Page{Offset: offset, Limit: size, Order: "created_at DESC"})
}

func (f *friendRequestService) MockFriends(ctx context.Context, userID string, n int) ([]string, error) {
	if n <= 0 {
		return nil, domain.Invalid(errors.New("count must be positive"))
	}
	if err := f.ensureUsers(ctx, userID); err != nil {
		return nil, err
	}

	return repository.InTransaction(ctx, f.store, func(tx repository.Store) ([]string, error) {
		ids := make([]string, 0, n)
		for i := 0; i < n; i++ {
			seed := strings.ReplaceAll(uuid.NewString(), "-", "")
			friend := &domain.User{
				DisplayName: fmt.Sprintf("Friend %d", i+1),
				Email:       "friend-" + seed + "@seed.local",
				PhoneNumber: "seed-" + seed[:20],
				// not a bcrypt hash, so seeded users cannot sign in
				PasswordHash: "!",
				Gender:       domain.GenderUnknown,
				Role:         domain.UserRoleClient,
				Status:       domain.UserStatusActive,
			}
			if err := tx.Users().Create(ctx, friend); err != nil {
				return nil, err
			}
			for _, edge := range []*domain.FriendRequest{
				{SenderID: userID, ReceiverID: friend.ID, Status: domain.FriendRequestAccepted},
				{SenderID: friend.ID, ReceiverID: userID, Status: domain.FriendRequestAccepted},
			} {
				if err := tx.FriendRequests().Create(ctx, edge); err != nil {
					return nil, err
				}
			}
			ids = append(ids, friend.ID)
		}
		return ids, nil
	})
}

func (f *friendRequestService) ensureUsers(ctx context.Context, ids ...string) error {
	for _, id := range ids {
		ok, err := f.store.Users().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUserNotFound
		}
	}
	return nil
}
