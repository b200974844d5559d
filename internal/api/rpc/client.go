package rpc

import (
	"context"

	"github.com/SundayYogurt/social_user_service/internal/dto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is a typed client for user.UserService.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Dial opens a plaintext connection. Client calls select the JSON codec
// themselves, so the same connection also serves protobuf services such as
// health checks.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	return grpc.NewClient(addr, opts...)
}

func invoke[Resp any](ctx context.Context, c *Client, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, in *dto.GetUserRequest, opts ...grpc.CallOption) (*dto.GetUserResponse, error) {
	return invoke[dto.GetUserResponse](ctx, c, "GetUser", in, opts)
}

func (c *Client) CreateUser(ctx context.Context, in *dto.CreateUserRequest, opts ...grpc.CallOption) (*dto.ManageResponse, error) {
	return invoke[dto.ManageResponse](ctx, c, "CreateUser", in, opts)
}

func (c *Client) UpdateUser(ctx context.Context, in *dto.UpdateUserRequest, opts ...grpc.CallOption) (*dto.ManageResponse, error) {
	return invoke[dto.ManageResponse](ctx, c, "UpdateUser", in, opts)
}

func (c *Client) IsTakenEmail(ctx context.Context, in *dto.IsTakenEmailRequest, opts ...grpc.CallOption) (*dto.IsTakenResponse, error) {
	return invoke[dto.IsTakenResponse](ctx, c, "IsTakenEmail", in, opts)
}

func (c *Client) IsTakenPhoneNumber(ctx context.Context, in *dto.IsTakenPhoneNumberRequest, opts ...grpc.CallOption) (*dto.IsTakenResponse, error) {
	return invoke[dto.IsTakenResponse](ctx, c, "IsTakenPhoneNumber", in, opts)
}

func (c *Client) GetUserByUsername(ctx context.Context, in *dto.GetUserByUsernameRequest, opts ...grpc.CallOption) (*dto.GetUserResponse, error) {
	return invoke[dto.GetUserResponse](ctx, c, "GetUserByUsername", in, opts)
}

func (c *Client) VerifyCredentials(ctx context.Context, in *dto.VerifyCredentialsRequest, opts ...grpc.CallOption) (*dto.GetUserResponse, error) {
	return invoke[dto.GetUserResponse](ctx, c, "VerifyCredentials", in, opts)
}

func (c *Client) GetAddress(ctx context.Context, in *dto.AddressKeyRequest, opts ...grpc.CallOption) (*dto.GetAddressResponse, error) {
	return invoke[dto.GetAddressResponse](ctx, c, "GetAddress", in, opts)
}

func (c *Client) GetAddresses(ctx context.Context, in *dto.GetAddressesRequest, opts ...grpc.CallOption) (*dto.ListResponse[dto.AddressResponse], error) {
	return invoke[dto.ListResponse[dto.AddressResponse]](ctx, c, "GetAddresses", in, opts)
}

func (c *Client) CreateAddress(ctx context.Context, in *dto.CreateAddressRequest, opts ...grpc.CallOption) (*dto.ManageResponse, error) {
	return invoke[dto.ManageResponse](ctx, c, "CreateAddress", in, opts)
}

func (c *Client) UpdateAddress(ctx context.Context, in *dto.UpdateAddressRequest, opts ...grpc.CallOption) (*dto.ManageResponse, error) {
	return invoke[dto.ManageResponse](ctx, c, "UpdateAddress", in, opts)
}

func (c *Client) DeleteAddress(ctx context.Context, in *dto.AddressKeyRequest, opts ...grpc.CallOption) (*dto.ManageResponse, error) {
	return invoke[dto.ManageResponse](ctx, c, "DeleteAddress", in, opts)
}

func (c *Client) GetDefaultAddress(ctx context.Context, in *dto.UserKeyRequest, opts ...grpc.CallOption) (*dto.GetAddressResponse, error) {
	return invoke[dto.GetAddressResponse](ctx, c, "GetDefaultAddress", in, opts)
}

func (c *Client) SendFriendRequest(ctx context.Context, in *dto.SendFriendRequestRequest, opts ...grpc.CallOption) (*dto.ManageResponse, error) {
	return invoke[dto.ManageResponse](ctx, c, "SendFriendRequest", in, opts)
}

func (c *Client) UpdateStatusFriendRequest(ctx context.Context, in *dto.UpdateStatusFriendRequestRequest, opts ...grpc.CallOption) (*dto.ManageResponse, error) {
	return invoke[dto.ManageResponse](ctx, c, "UpdateStatusFriendRequest", in, opts)
}

func (c *Client) IsOnFriendList(ctx context.Context, in *dto.IsOnFriendListRequest, opts ...grpc.CallOption) (*dto.IsOnFriendListResponse, error) {
	return invoke[dto.IsOnFriendListResponse](ctx, c, "IsOnFriendList", in, opts)
}

func (c *Client) GetListFriendRequest(ctx context.Context, in *dto.GetListFriendRequestRequest, opts ...grpc.CallOption) (*dto.ListResponse[dto.FriendRequestResponse], error) {
	return invoke[dto.ListResponse[dto.FriendRequestResponse]](ctx, c, "GetListFriendRequest", in, opts)
}

func (c *Client) GetAllRelatedFriend(ctx context.Context, in *dto.GetAllRelatedFriendRequest, opts ...grpc.CallOption) (*dto.ListResponse[dto.FriendRequestResponse], error) {
	return invoke[dto.ListResponse[dto.FriendRequestResponse]](ctx, c, "GetAllRelatedFriend", in, opts)
}
