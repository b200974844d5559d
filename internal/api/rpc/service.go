package rpc

import (
	"context"

	"github.com/SundayYogurt/social_user_service/internal/dto"
	"google.golang.org/grpc"
)

const ServiceName = "user.UserService"

type UserServiceServer interface {
	GetUser(context.Context, *dto.GetUserRequest) (*dto.GetUserResponse, error)
	CreateUser(context.Context, *dto.CreateUserRequest) (*dto.ManageResponse, error)
	UpdateUser(context.Context, *dto.UpdateUserRequest) (*dto.ManageResponse, error)
	IsTakenEmail(context.Context, *dto.IsTakenEmailRequest) (*dto.IsTakenResponse, error)
	IsTakenPhoneNumber(context.Context, *dto.IsTakenPhoneNumberRequest) (*dto.IsTakenResponse, error)
	GetUserByUsername(context.Context, *dto.GetUserByUsernameRequest) (*dto.GetUserResponse, error)
	VerifyCredentials(context.Context, *dto.VerifyCredentialsRequest) (*dto.GetUserResponse, error)

	GetAddress(context.Context, *dto.AddressKeyRequest) (*dto.GetAddressResponse, error)
	GetAddresses(context.Context, *dto.GetAddressesRequest) (*dto.ListResponse[dto.AddressResponse], error)
	CreateAddress(context.Context, *dto.CreateAddressRequest) (*dto.ManageResponse, error)
	UpdateAddress(context.Context, *dto.UpdateAddressRequest) (*dto.ManageResponse, error)
	DeleteAddress(context.Context, *dto.AddressKeyRequest) (*dto.ManageResponse, error)
	GetDefaultAddress(context.Context, *dto.UserKeyRequest) (*dto.GetAddressResponse, error)

	SendFriendRequest(context.Context, *dto.SendFriendRequestRequest) (*dto.ManageResponse, error)
	UpdateStatusFriendRequest(context.Context, *dto.UpdateStatusFriendRequestRequest) (*dto.ManageResponse, error)
	IsOnFriendList(context.Context, *dto.IsOnFriendListRequest) (*dto.IsOnFriendListResponse, error)
	GetListFriendRequest(context.Context, *dto.GetListFriendRequestRequest) (*dto.ListResponse[dto.FriendRequestResponse], error)
	GetAllRelatedFriend(context.Context, *dto.GetAllRelatedFriendRequest) (*dto.ListResponse[dto.FriendRequestResponse], error)
}

// unary adapts a typed server method to the untyped grpc.MethodDesc handler.
func unary[Req, Resp any](name string, call func(UserServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(UserServiceServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			})
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetUser", UserServiceServer.GetUser),
		unary("CreateUser", UserServiceServer.CreateUser),
		unary("UpdateUser", UserServiceServer.UpdateUser),
		unary("IsTakenEmail", UserServiceServer.IsTakenEmail),
		unary("IsTakenPhoneNumber", UserServiceServer.IsTakenPhoneNumber),
		unary("GetUserByUsername", UserServiceServer.GetUserByUsername),
		unary("VerifyCredentials", UserServiceServer.VerifyCredentials),
		unary("GetAddress", UserServiceServer.GetAddress),
		unary("GetAddresses", UserServiceServer.GetAddresses),
		unary("CreateAddress", UserServiceServer.CreateAddress),
		unary("UpdateAddress", UserServiceServer.UpdateAddress),
		unary("DeleteAddress", UserServiceServer.DeleteAddress),
		unary("GetDefaultAddress", UserServiceServer.GetDefaultAddress),
		unary("SendFriendRequest", UserServiceServer.SendFriendRequest),
		unary("UpdateStatusFriendRequest", UserServiceServer.UpdateStatusFriendRequest),
		unary("IsOnFriendList", UserServiceServer.IsOnFriendList),
		unary("GetListFriendRequest", UserServiceServer.GetListFriendRequest),
		unary("GetAllRelatedFriend", UserServiceServer.GetAllRelatedFriend),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "user.proto",
}

func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
