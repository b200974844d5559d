// Package testutil provides throwaway databases and caches for tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/SundayYogurt/social_user_service/infra/cache"
	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the full schema.
// A single connection serializes writers the way the per-user row lock
// does on PostgreSQL.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

func NewStore(t testing.TB) repository.Store {
	t.Helper()
	return repository.NewStore(NewDB(t))
}

// NewCache starts a miniredis server and returns a set cache on it.
func NewCache(t testing.TB, prefix string) (*miniredis.Miniredis, *cache.RedisSetCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, cache.NewRedisSetCache(client, prefix)
}

// CreateUser inserts a user with unique contact fields derived from name.
func CreateUser(t testing.TB, s repository.Store, name string) *domain.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	u := &domain.User{
		DisplayName:  name,
		Email:        fmt.Sprintf("%s-%s@example.com", name, suffix),
		PhoneNumber:  "+1555" + suffix,
		PasswordHash: "!",
		Gender:       domain.GenderUnknown,
		Role:         domain.UserRoleClient,
		Status:       domain.UserStatusActive,
	}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}
