package rpc

import (
	"context"
	"errors"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/dto"
	"github.com/SundayYogurt/social_user_service/internal/helper/utils"
	"github.com/SundayYogurt/social_user_service/internal/services"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler is the gRPC face of the services. Business-rule failures travel
// inside the response envelope; anything else is a transport error.
type Handler struct {
	users     services.UserService
	addresses services.AddressService
	friends   services.FriendRequestService
	validate  *validator.Validate
	log       *zap.Logger
}

var _ UserServiceServer = (*Handler)(nil)

func NewHandler(users services.UserService, addresses services.AddressService, friends services.FriendRequestService, log *zap.Logger) *Handler {
	return &Handler{
		users:     users,
		addresses: addresses,
		friends:   friends,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       log.Named("rpc"),
	}
}

func (h *Handler) check(req any) error {
	if err := h.validate.Struct(req); err != nil {
		return domain.Invalid(err)
	}
	return nil
}

// fail converts err into the envelope metadata, or into a gRPC status when
// it is not a business-rule failure.
func (h *Handler) fail(err error) (dto.Metadata, error) {
	if _, ok := utils.StatusOf(err); ok {
		return utils.MetaFailed(err), nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return dto.Metadata{}, status.FromContextError(err).Err()
	}
	h.log.Error("request failed", zap.Error(err))
	return dto.Metadata{}, status.Error(codes.Internal, "internal error")
}

func (h *Handler) manage(req any, message string, run func() (string, error)) (*dto.ManageResponse, error) {
	id, err := func() (string, error) {
		if err := h.check(req); err != nil {
			return "", err
		}
		return run()
	}()
	if err != nil {
		if _, ferr := h.fail(err); ferr != nil {
			return nil, ferr
		}
		resp := utils.ManageFailed(err)
		return &resp, nil
	}
	resp := utils.ManageOK(id, message)
	return &resp, nil
}

func list[D, T any](h *Handler, req any, run func() ([]D, int64, error), convert func([]D) []T) (*dto.ListResponse[T], error) {
	if err := h.check(req); err != nil {
		return &dto.ListResponse[T]{Items: []T{}, Metadata: utils.MetaFailed(err)}, nil
	}
	items, total, err := run()
	if err != nil {
		meta, ferr := h.fail(err)
		if ferr != nil {
			return nil, ferr
		}
		return &dto.ListResponse[T]{Items: []T{}, Metadata: meta}, nil
	}
	return &dto.ListResponse[T]{Items: convert(items), Total: total, Metadata: utils.MetaOK("ok")}, nil
}

// user

func (h *Handler) userResponse(req any, run func() (*domain.User, error)) (*dto.GetUserResponse, error) {
	user, err := func() (*domain.User, error) {
		if err := h.check(req); err != nil {
			return nil, err
		}
		return run()
	}()
	if err == nil && user == nil {
		err = domain.ErrUserNotFound
	}
	if err != nil {
		meta, ferr := h.fail(err)
		if ferr != nil {
			return nil, ferr
		}
		return &dto.GetUserResponse{Metadata: meta}, nil
	}
	return &dto.GetUserResponse{User: dto.FromUser(user), Metadata: utils.MetaOK("ok")}, nil
}

func (h *Handler) GetUser(ctx context.Context, req *dto.GetUserRequest) (*dto.GetUserResponse, error) {
	return h.userResponse(req, func() (*domain.User, error) { return h.users.GetUser(ctx, req.ID) })
}

func (h *Handler) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.ManageResponse, error) {
	return h.manage(req, "user created", func() (string, error) { return h.users.CreateUser(ctx, *req) })
}

func (h *Handler) UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) (*dto.ManageResponse, error) {
	return h.manage(req, "user updated", func() (string, error) { return h.users.UpdateUser(ctx, *req) })
}

func (h *Handler) isTaken(req any, run func() (bool, error)) (*dto.IsTakenResponse, error) {
	if err := h.check(req); err != nil {
		return &dto.IsTakenResponse{Metadata: utils.MetaFailed(err)}, nil
	}
	taken, err := run()
	if err != nil {
		meta, ferr := h.fail(err)
		if ferr != nil {
			return nil, ferr
		}
		return &dto.IsTakenResponse{Metadata: meta}, nil
	}
	return &dto.IsTakenResponse{IsTaken: taken, Metadata: utils.MetaOK("ok")}, nil
}

func (h *Handler) IsTakenEmail(ctx context.Context, req *dto.IsTakenEmailRequest) (*dto.IsTakenResponse, error) {
	return h.isTaken(req, func() (bool, error) { return h.users.IsTakenEmail(ctx, req.Email) })
}

func (h *Handler) IsTakenPhoneNumber(ctx context.Context, req *dto.IsTakenPhoneNumberRequest) (*dto.IsTakenResponse, error) {
	return h.isTaken(req, func() (bool, error) { return h.users.IsTakenPhoneNumber(ctx, req.PhoneNumber) })
}

func (h *Handler) GetUserByUsername(ctx context.Context, req *dto.GetUserByUsernameRequest) (*dto.GetUserResponse, error) {
	return h.userResponse(req, func() (*domain.User, error) { return h.users.GetUserByUsername(ctx, req.Username) })
}

func (h *Handler) VerifyCredentials(ctx context.Context, req *dto.VerifyCredentialsRequest) (*dto.GetUserResponse, error) {
	return h.userResponse(req, func() (*domain.User, error) {
		return h.users.VerifyCredentials(ctx, req.Username, req.Password)
	})
}

// address

func (h *Handler) addressResponse(req any, run func() (*domain.UserAddress, error)) (*dto.GetAddressResponse, error) {
	if err := h.check(req); err != nil {
		return &dto.GetAddressResponse{Metadata: utils.MetaFailed(err)}, nil
	}
	addr, err := run()
	if err != nil {
		meta, ferr := h.fail(err)
		if ferr != nil {
			return nil, ferr
		}
		return &dto.GetAddressResponse{Metadata: meta}, nil
	}
	return &dto.GetAddressResponse{Address: dto.FromAddress(addr), Metadata: utils.MetaOK("ok")}, nil
}

func (h *Handler) GetAddress(ctx context.Context, req *dto.AddressKeyRequest) (*dto.GetAddressResponse, error) {
	return h.addressResponse(req, func() (*domain.UserAddress, error) {
		return h.addresses.GetAddress(ctx, req.ID, req.UserID)
	})
}

func (h *Handler) GetDefaultAddress(ctx context.Context, req *dto.UserKeyRequest) (*dto.GetAddressResponse, error) {
	return h.addressResponse(req, func() (*domain.UserAddress, error) {
		return h.addresses.GetDefaultAddress(ctx, req.UserID)
	})
}

func (h *Handler) GetAddresses(ctx context.Context, req *dto.GetAddressesRequest) (*dto.ListResponse[dto.AddressResponse], error) {
	return list(h, req, func() ([]domain.UserAddress, int64, error) {
		return h.addresses.GetAddresses(ctx, req.UserID, req.Page, req.Limit)
	}, dto.FromAddresses)
}

func (h *Handler) CreateAddress(ctx context.Context, req *dto.CreateAddressRequest) (*dto.ManageResponse, error) {
	return h.manage(req, "address created", func() (string, error) { return h.addresses.CreateAddress(ctx, *req) })
}

func (h *Handler) UpdateAddress(ctx context.Context, req *dto.UpdateAddressRequest) (*dto.ManageResponse, error) {
	return h.manage(req, "address updated", func() (string, error) { return h.addresses.UpdateAddress(ctx, *req) })
}

func (h *Handler) DeleteAddress(ctx context.Context, req *dto.AddressKeyRequest) (*dto.ManageResponse, error) {
	return h.manage(req, "address deleted", func() (string, error) {
		return h.addresses.DeleteAddress(ctx, req.ID, req.UserID)
	})
}

// friend requests

func (h *Handler) SendFriendRequest(ctx context.Context, req *dto.SendFriendRequestRequest) (*dto.ManageResponse, error) {
	return h.manage(req, "friend request sent", func() (string, error) {
		return h.friends.SendFriendRequest(ctx, req.UserID, req.FriendID)
	})
}

func (h *Handler) UpdateStatusFriendRequest(ctx context.Context, req *dto.UpdateStatusFriendRequestRequest) (*dto.ManageResponse, error) {
	return h.manage(req, "friend request updated", func() (string, error) {
		return h.friends.UpdateFriendRequest(ctx, req.UserID, req.FriendRequestID, domain.FriendRequestStatus(req.Status))
	})
}

func (h *Handler) IsOnFriendList(ctx context.Context, req *dto.IsOnFriendListRequest) (*dto.IsOnFriendListResponse, error) {
	if err := h.check(req); err != nil {
		return &dto.IsOnFriendListResponse{Metadata: utils.MetaFailed(err)}, nil
	}
	ok, err := h.friends.IsOnFriendList(ctx, req.UserID, req.FriendID)
	if err != nil {
		meta, ferr := h.fail(err)
		if ferr != nil {
			return nil, ferr
		}
		return &dto.IsOnFriendListResponse{Metadata: meta}, nil
	}
	return &dto.IsOnFriendListResponse{IsFriend: ok, Metadata: utils.MetaOK("ok")}, nil
}

func (h *Handler) GetListFriendRequest(ctx context.Context, req *dto.GetListFriendRequestRequest) (*dto.ListResponse[dto.FriendRequestResponse], error) {
	return list(h, req, func() ([]domain.FriendRequest, int64, error) {
		return h.friends.GetFriendRequestList(ctx, req.UserID, req.Page, req.Limit,
			domain.FriendDirection(req.Type), domain.FriendRequestStatus(req.Status))
	}, dto.FromFriendRequests)
}

func (h *Handler) GetAllRelatedFriend(ctx context.Context, req *dto.GetAllRelatedFriendRequest) (*dto.ListResponse[dto.FriendRequestResponse], error) {
	return list(h, req, func() ([]domain.FriendRequest, int64, error) {
		return h.friends.GetFriendList(ctx, req.UserID, req.Page, req.Limit)
	}, dto.FromFriendRequests)
}
