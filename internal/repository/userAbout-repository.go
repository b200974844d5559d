package repository

import (
	"github.com/SundayYogurt/social_user_service/internal/domain"
	"gorm.io/gorm"
)

type UserAboutRepository interface {
	Repository[domain.UserAbout]
}

func NewUserAboutRepository(db *gorm.DB) UserAboutRepository {
	return newBaseRepository[domain.UserAbout](db)
}
