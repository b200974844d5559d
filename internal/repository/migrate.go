package repository

import (
	"github.com/SundayYogurt/social_user_service/internal/domain"
	"gorm.io/gorm"
)

// same constant across replicas so only one runs AutoMigrate at a time
const migrateLockID int64 = 20240917

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return autoMigrate(db)
	}

	// advisory locks are per session, so lock and unlock on one connection
	return db.Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
			return err
		}
		defer func() {
			_ = conn.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
		}()
		return autoMigrate(conn)
	})
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserAbout{},
		&domain.UserAddress{},
		&domain.FriendRequest{},
	)
}
