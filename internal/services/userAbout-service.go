package services

import (
	"context"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/helper"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	"go.uber.org/zap"
)

type UserAboutService interface {
	// CreateUserAbout creates the empty profile block of a user. Calling it
	// again for the same user is a no-op.
	CreateUserAbout(ctx context.Context, userID string) (string, error)
}

type userAboutService struct {
	store repository.Store
	log   *zap.Logger
}

func NewUserAboutService(store repository.Store, log *zap.Logger) UserAboutService {
	return &userAboutService{store: store, log: log.Named("user_about")}
}

func (s *userAboutService) CreateUserAbout(ctx context.Context, userID string) (string, error) {
	ok, err := s.store.Users().ExistsByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrUserNotFound
	}

	existing, err := s.store.UserAbouts().FindOne(ctx, repository.Filter{"user_id": userID})
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}

	about := &domain.UserAbout{UserID: userID}
	if err := s.store.UserAbouts().Create(ctx, about); err != nil {
		if helper.IsDuplicateKey(err, "") {
			// lost the race against a redelivered event
			existing, err := s.store.UserAbouts().FindOneOrFail(ctx, repository.Filter{"user_id": userID})
			if err != nil {
				return "", err
			}
			return existing.ID, nil
		}
		return "", err
	}
	s.log.Info("user about created", zap.String("user_id", userID))
	return about.ID, nil
}
