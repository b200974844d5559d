package services

import (
	"errors"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"gorm.io/gorm"
)

// orNotFound swaps a missing-row error for the coded not-found error of
// the caller's entity and passes every other error through.
func orNotFound(err error, notFound *domain.Error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
