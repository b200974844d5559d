package rpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/SundayYogurt/social_user_service/internal/api/rpc"
	"github.com/SundayYogurt/social_user_service/internal/dto"
	"github.com/SundayYogurt/social_user_service/internal/helper"
	"github.com/SundayYogurt/social_user_service/internal/services"
	"github.com/SundayYogurt/social_user_service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// startTestServer serves the full service graph on a loopback port and
// returns a connected client.
func startTestServer(t *testing.T) (*rpc.Client, healthpb.HealthClient) {
	t.Helper()
	log := zaptest.NewLogger(t)
	store := testutil.NewStore(t)
	_, cache := testutil.NewCache(t, "rpc:")

	h := rpc.NewHandler(
		services.NewUserService(store, cache, helper.NewBcryptHasher(bcrypt.MinCost), nil, "", log),
		services.NewAddressService(store, log),
		services.NewFriendRequestService(store, log),
		log,
	)
	srv := rpc.NewServer(h, health.NewServer(), log)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := rpc.Dial(lis.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return rpc.NewClient(conn), healthpb.NewHealthClient(conn)
}

func TestUserServiceOverGRPC(t *testing.T) {
	client, hc := startTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hresp, err := hc.Check(ctx, &healthpb.HealthCheckRequest{Service: rpc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hresp.Status)

	taken, err := client.IsTakenEmail(ctx, &dto.IsTakenEmailRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "200", taken.Metadata.Code)
	assert.False(t, taken.IsTaken)

	created, err := client.CreateUser(ctx, &dto.CreateUserRequest{
		DisplayName: "Ada", Email: "ada@example.com", PhoneNumber: "+15550100", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "200", created.Code, created.ErrMessage)
	ada := created.ID

	dup, err := client.CreateUser(ctx, &dto.CreateUserRequest{
		DisplayName: "Ada", Email: "ada@example.com", PhoneNumber: "+15550101", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "409", dup.Code)
	assert.Equal(t, "EMAIL_TAKEN", dup.ErrMessage)

	bad, err := client.CreateUser(ctx, &dto.CreateUserRequest{Email: "not-an-email"})
	require.NoError(t, err)
	assert.Equal(t, "400", bad.Code)

	got, err := client.GetUser(ctx, &dto.GetUserRequest{ID: ada})
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "ada@example.com", got.User.Email)

	missing, err := client.GetUser(ctx, &dto.GetUserRequest{ID: "00000000-0000-0000-0000-000000000000"})
	require.NoError(t, err)
	assert.Equal(t, "404", missing.Metadata.Code)
	assert.Equal(t, "USER_NOTFOUND", missing.Metadata.ErrMessage)
	assert.Nil(t, missing.User)

	login, err := client.VerifyCredentials(ctx, &dto.VerifyCredentialsRequest{Username: "+1 555 0100", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "200", login.Metadata.Code)

	wrong, err := client.VerifyCredentials(ctx, &dto.VerifyCredentialsRequest{Username: "ada@example.com", Password: "nope"})
	require.NoError(t, err)
	assert.Equal(t, "400", wrong.Metadata.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", wrong.Metadata.ErrMessage)
}

func TestAddressAndFriendsOverGRPC(t *testing.T) {
	client, _ := startTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	newUser := func(email, phone string) string {
		resp, err := client.CreateUser(ctx, &dto.CreateUserRequest{DisplayName: email, Email: email, PhoneNumber: phone, Password: "secret1"})
		require.NoError(t, err)
		require.Equal(t, "200", resp.Code, resp.ErrMessage)
		return resp.ID
	}
	a := newUser("a@example.com", "+15550200")
	b := newUser("b@example.com", "+15550201")

	first, err := client.CreateAddress(ctx, &dto.CreateAddressRequest{UserID: a, Address: "1 Main St"})
	require.NoError(t, err)
	require.Equal(t, "200", first.Code, first.ErrMessage)

	def, err := client.GetDefaultAddress(ctx, &dto.UserKeyRequest{UserID: a})
	require.NoError(t, err)
	require.NotNil(t, def.Address)
	assert.Equal(t, first.ID, def.Address.ID)

	list, err := client.GetAddresses(ctx, &dto.GetAddressesRequest{UserID: a})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	assert.Len(t, list.Items, 1)

	foreign, err := client.DeleteAddress(ctx, &dto.AddressKeyRequest{ID: first.ID, UserID: b})
	require.NoError(t, err)
	assert.Equal(t, "404", foreign.Code)
	assert.Equal(t, "ADDRESS_NOTFOUND", foreign.ErrMessage)

	sent, err := client.SendFriendRequest(ctx, &dto.SendFriendRequestRequest{UserID: a, FriendID: b})
	require.NoError(t, err)
	require.Equal(t, "200", sent.Code, sent.ErrMessage)

	again, err := client.SendFriendRequest(ctx, &dto.SendFriendRequestRequest{UserID: b, FriendID: a})
	require.NoError(t, err)
	assert.Equal(t, "409", again.Code)
	assert.Equal(t, "FRIEND_REQUEST_PENDING", again.ErrMessage)

	pending, err := client.GetListFriendRequest(ctx, &dto.GetListFriendRequestRequest{UserID: b, Type: "RECEIVED"})
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, a, pending.Items[0].Sender.ID)

	accepted, err := client.UpdateStatusFriendRequest(ctx, &dto.UpdateStatusFriendRequestRequest{
		UserID: b, FriendRequestID: sent.ID, Status: "ACCEPTED",
	})
	require.NoError(t, err)
	require.Equal(t, "200", accepted.Code, accepted.ErrMessage)

	friends, err := client.GetAllRelatedFriend(ctx, &dto.GetAllRelatedFriendRequest{UserID: b})
	require.NoError(t, err)
	require.Len(t, friends.Items, 1)
	assert.Equal(t, a, friends.Items[0].Receiver.ID)

	ghost, err := client.GetAllRelatedFriend(ctx, &dto.GetAllRelatedFriendRequest{UserID: "00000000-0000-0000-0000-000000000000"})
	require.NoError(t, err)
	assert.Equal(t, "404", ghost.Metadata.Code)
	assert.Equal(t, "USER_NOTFOUND", ghost.Metadata.ErrMessage)
	assert.Empty(t, ghost.Items)

	on, err := client.IsOnFriendList(ctx, &dto.IsOnFriendListRequest{UserID: a, FriendID: b})
	require.NoError(t, err)
	assert.True(t, on.IsFriend)

	badStatus, err := client.UpdateStatusFriendRequest(ctx, &dto.UpdateStatusFriendRequestRequest{
		UserID: b, FriendRequestID: sent.ID, Status: "MAYBE",
	})
	require.NoError(t, err)
	assert.Equal(t, "400", badStatus.Code)
}
