package repository_test

import (
	"context"
	"testing"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	"github.com/SundayYogurt/social_user_service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBaseRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStore(t)
	u := testutil.CreateUser(t, s, "grace")
	assert.Equal(t, 1, u.Version)

	got, err := s.Users().FindOne(ctx, repository.Filter{"email": "nobody@example.com"})
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = s.Users().FindOneOrFail(ctx, repository.Filter{"email": "nobody@example.com"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, s.Users().UpdateByID(ctx, u.ID, map[string]any{"city": "Oslo"}))
	got, err = s.Users().FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oslo", got.City)
	assert.Equal(t, 2, got.Version)

	err = s.Users().UpdateByID(ctx, "00000000-0000-0000-0000-000000000000", map[string]any{"city": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, s.Users().SoftDeleteByID(ctx, u.ID))
	ok, err := s.Users().ExistsByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := s.Users().CountIncludingDeleted(ctx, repository.Filter{"email": u.Email})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFindAndCountPaginates(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStore(t)
	u := testutil.CreateUser(t, s, "ada")
	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, s.Addresses().Create(ctx, &domain.UserAddress{UserID: u.ID, Title: title, Address: title}))
	}

	items, total, err := s.Addresses().FindAndCount(ctx, repository.Filter{"user_id": u.ID}, repository.Page{Offset: 1, Limit: 1, Order: "title ASC"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Title)
}

func TestUpdateVersioned(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStore(t)
	u := testutil.CreateUser(t, s, "ada")

	require.NoError(t, s.Users().UpdateVersioned(ctx, u.ID, 1, map[string]any{"city": "Lima"}))

	err := s.Users().UpdateVersioned(ctx, u.ID, 1, map[string]any{"city": "Quito"})
	assert.ErrorIs(t, err, repository.ErrStaleVersion)

	err = s.Users().UpdateVersioned(ctx, "00000000-0000-0000-0000-000000000000", 1, map[string]any{"city": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFriendRequestTombstone(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	s := repository.NewStore(db)
	a := testutil.CreateUser(t, s, "a")
	b := testutil.CreateUser(t, s, "b")

	fr := &domain.FriendRequest{SenderID: a.ID, ReceiverID: b.ID, Status: domain.FriendRequestPending}
	require.NoError(t, s.FriendRequests().Create(ctx, fr))

	pair, err := s.FriendRequests().FindPair(ctx, b.ID, a.ID)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, fr.ID, pair.ID)

	n, err := s.FriendRequests().Tombstone(ctx, repository.Filter{"id": fr.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	pair, err = s.FriendRequests().FindPair(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Nil(t, pair)

	// the tombstone does not block a new live edge
	require.NoError(t, s.FriendRequests().Create(ctx, &domain.FriendRequest{SenderID: a.ID, ReceiverID: b.ID, Status: domain.FriendRequestPending}))

	var dead domain.FriendRequest
	require.NoError(t, db.Unscoped().Where("id = ?", fr.ID).Take(&dead).Error)
	assert.Equal(t, domain.FriendRequestDeleted, dead.Status)
	assert.True(t, dead.DeletedAt.Valid)
}
