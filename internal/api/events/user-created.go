package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/dto"
	"github.com/SundayYogurt/social_user_service/internal/services"
	"go.uber.org/zap"
)

// UserCreatedHandler builds the profile block of every newly created user.
type UserCreatedHandler struct {
	abouts services.UserAboutService
	log    *zap.Logger
}

func NewUserCreatedHandler(abouts services.UserAboutService, log *zap.Logger) *UserCreatedHandler {
	return &UserCreatedHandler{abouts: abouts, log: log.Named("events.user_created")}
}

func (h *UserCreatedHandler) HandleMessage(ctx context.Context, key, value []byte) error {
	var event dto.UserCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("decode user.created: %w", err)
	}
	if event.UserID == "" {
		event.UserID = string(key)
	}
	if event.UserID == "" {
		return errors.New("user.created without user id")
	}

	id, err := h.abouts.CreateUserAbout(ctx, event.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		// nothing to attach the profile to, redelivery will not help
		h.log.Warn("user.created for unknown user", zap.String("user_id", event.UserID))
		return nil
	}
	if err != nil {
		return err
	}
	h.log.Debug("profile ready", zap.String("user_id", event.UserID), zap.String("about_id", id))
	return nil
}
