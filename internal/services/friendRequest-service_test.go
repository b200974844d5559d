package services_test

import (
	"context"
	"testing"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	"github.com/SundayYogurt/social_user_service/internal/services"
	"github.com/SundayYogurt/social_user_service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newFriendService(t *testing.T) (services.FriendRequestService, repository.Store) {
	s := testutil.NewStore(t)
	return services.NewFriendRequestService(s, zaptest.NewLogger(t)), s
}

func friendIDs(t *testing.T, svc services.FriendRequestService, userID string) []string {
	t.Helper()
	items, _, err := svc.GetFriendList(context.Background(), userID, 1, 50)
	require.NoError(t, err)
	ids := make([]string, 0, len(items))
	for _, fr := range items {
		require.NotNil(t, fr.Receiver)
		ids = append(ids, fr.Receiver.ID)
	}
	return ids
}

func TestAcceptRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, s := newFriendService(t)
	a := testutil.CreateUser(t, s, "a")
	b := testutil.CreateUser(t, s, "b")

	reqID, err := svc.SendFriendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)

	received, total, err := svc.GetFriendRequestList(ctx, b.ID, 1, 10, domain.FriendDirectionReceived, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, received, 1)
	assert.Equal(t, a.ID, received[0].Sender.ID)

	reciprocalID, err := svc.UpdateFriendRequest(ctx, b.ID, reqID, domain.FriendRequestAccepted)
	require.NoError(t, err)
	assert.NotEqual(t, reqID, reciprocalID)

	for _, edge := range [][2]string{{a.ID, b.ID}, {b.ID, a.ID}} {
		fr, err := s.FriendRequests().FindOneOrFail(ctx, repository.Filter{"sender_id": edge[0], "receiver_id": edge[1]})
		require.NoError(t, err)
		assert.Equal(t, domain.FriendRequestAccepted, fr.Status)
	}

	assert.Equal(t, []string{b.ID}, friendIDs(t, svc, a.ID))
	assert.Equal(t, []string{a.ID}, friendIDs(t, svc, b.ID))

	ok, err := svc.IsOnFriendList(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.SendFriendRequest(ctx, b.ID, a.ID)
	assert.ErrorIs(t, err, domain.ErrFriendRequestAccepted)

	_, _, err = svc.GetFriendRequestList(ctx, a.ID, 1, 10, domain.FriendDirectionSent, domain.FriendRequestAccepted)
	assert.ErrorIs(t, err, domain.ErrFriendRequestAccepted)
}

func TestPendingConflictsBothDirections(t *testing.T) {
	ctx := context.Background()
	svc, s := newFriendService(t)
	a := testutil.CreateUser(t, s, "a")
	b := testutil.CreateUser(t, s, "b")

	_, err := svc.SendFriendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)

	_, err = svc.SendFriendRequest(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, domain.ErrFriendRequestPending)
	assert.Equal(t, domain.CodeFriendRequestPending, domain.CodeOf(err))

	_, err = svc.SendFriendRequest(ctx, b.ID, a.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRejectedRequestReopens(t *testing.T) {
	ctx := context.Background()
	svc, s := newFriendService(t)
	a := testutil.CreateUser(t, s, "a")
	b := testutil.CreateUser(t, s, "b")

	reqID, err := svc.SendFriendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)
	_, err = svc.UpdateFriendRequest(ctx, b.ID, reqID, domain.FriendRequestRejected)
	require.NoError(t, err)

	ok, err := svc.IsOnFriendList(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	reopened, err := svc.SendFriendRequest(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, reqID, reopened)

	fr, err := s.FriendRequests().FindByID(ctx, reqID)
	require.NoError(t, err)
	assert.Equal(t, domain.FriendRequestPending, fr.Status)
	assert.Equal(t, b.ID, fr.SenderID)
	assert.Equal(t, a.ID, fr.ReceiverID)
}

func TestSenderRights(t *testing.T) {
	ctx := context.Background()
	svc, s := newFriendService(t)
	a := testutil.CreateUser(t, s, "a")
	b := testutil.CreateUser(t, s, "b")

	reqID, err := svc.SendFriendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)

	for _, status := range []domain.FriendRequestStatus{domain.FriendRequestAccepted, domain.FriendRequestRejected, domain.FriendRequestPending} {
		_, err := svc.UpdateFriendRequest(ctx, a.ID, reqID, status)
		assert.ErrorIs(t, err, domain.ErrUserHaveNoRight, status)
	}

	_, err = svc.UpdateFriendRequest(ctx, b.ID, reqID, domain.FriendRequestPending)
	assert.ErrorIs(t, err, domain.ErrUserHaveNoRight)

	id, err := svc.UpdateFriendRequest(ctx, a.ID, reqID, domain.FriendRequestDeleted)
	require.NoError(t, err)
	assert.Equal(t, reqID, id)

	_, err = svc.UpdateFriendRequest(ctx, b.ID, reqID, domain.FriendRequestAccepted)
	assert.ErrorIs(t, err, domain.ErrFriendRequestNotFound)

	// a cancelled request does not block a new one
	_, err = svc.SendFriendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)
}

func TestUnfriendTombstonesBothEdges(t *testing.T) {
	ctx := context.Background()
	svc, s := newFriendService(t)
	a := testutil.CreateUser(t, s, "a")
	b := testutil.CreateUser(t, s, "b")

	reqID, err := svc.SendFriendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)
	reciprocal, err := svc.UpdateFriendRequest(ctx, b.ID, reqID, domain.FriendRequestAccepted)
	require.NoError(t, err)

	_, err = svc.UpdateFriendRequest(ctx, a.ID, reciprocal, domain.FriendRequestRejected)
	assert.ErrorIs(t, err, domain.ErrUserHaveNoRight)

	_, err = svc.UpdateFriendRequest(ctx, a.ID, reciprocal, domain.FriendRequestDeleted)
	require.NoError(t, err)

	assert.Empty(t, friendIDs(t, svc, a.ID))
	assert.Empty(t, friendIDs(t, svc, b.ID))
}

func TestFriendRequestValidation(t *testing.T) {
	ctx := context.Background()
	svc, s := newFriendService(t)
	a := testutil.CreateUser(t, s, "a")
	ghost := "00000000-0000-0000-0000-000000000000"

	_, err := svc.SendFriendRequest(ctx, a.ID, a.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.SendFriendRequest(ctx, a.ID, ghost)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.IsOnFriendList(ctx, ghost, a.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.UpdateFriendRequest(ctx, a.ID, ghost, domain.FriendRequestDeleted)
	assert.ErrorIs(t, err, domain.ErrFriendRequestNotFound)

	_, err = svc.UpdateFriendRequest(ctx, a.ID, ghost, "MAYBE")
	assert.ErrorIs(t, err, domain.ErrValidation)

	items, total, err := svc.GetFriendList(ctx, ghost, 1, 10)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, items)
	assert.Zero(t, total)

	_, _, err = svc.GetFriendRequestList(ctx, ghost, 1, 10, domain.FriendDirectionReceived, "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReceiverDeletesRequest(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	s := repository.NewStore(db)
	svc := services.NewFriendRequestService(s, zaptest.NewLogger(t))
	a := testutil.CreateUser(t, s, "a")
	b := testutil.CreateUser(t, s, "b")

	reqID, err := svc.SendFriendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)

	id, err := svc.UpdateFriendRequest(ctx, b.ID, reqID, domain.FriendRequestDeleted)
	require.NoError(t, err)
	assert.Equal(t, reqID, id)

	_, err = s.FriendRequests().FindByID(ctx, reqID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var row domain.FriendRequest
	require.NoError(t, db.Unscoped().First(&row, "id = ?", reqID).Error)
	assert.Equal(t, domain.FriendRequestDeleted, row.Status)
	assert.True(t, row.DeletedAt.Valid)

	received, _, err := svc.GetFriendRequestList(ctx, b.ID, 1, 10, domain.FriendDirectionReceived, "")
	require.NoError(t, err)
	assert.Empty(t, received)

	_, err = svc.UpdateFriendRequest(ctx, b.ID, reqID, domain.FriendRequestAccepted)
	assert.ErrorIs(t, err, domain.ErrFriendRequestNotFound)

	again, err := svc.SendFriendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.NotEqual(t, reqID, again)
}

func TestMockFriends(t *testing.T) {
	ctx := context.Background()
	svc, s := newFriendService(t)
	a := testutil.CreateUser(t, s, "a")

	ids, err := svc.MockFriends(ctx, a.ID, 3)
	require.NoError(t, err)
	assert.Len(t, ids, 3)
	assert.ElementsMatch(t, ids, friendIDs(t, svc, a.ID))

	for _, id := range ids {
		ok, err := svc.IsOnFriendList(ctx, id, a.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}
