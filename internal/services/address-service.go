package services

import (
	"context"
	"fmt"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/dto"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	"github.com/SundayYogurt/social_user_service/pkg/utils"
	"go.uber.org/zap"
)

// AddressService keeps exactly one default address per user that has any.
// Every mutation runs in one transaction that first locks the owning user
// row, so default-flag changes for one user never interleave.
type AddressService interface {
	CreateAddress(ctx context.Context, input dto.CreateAddressRequest) (string, error)
	UpdateAddress(ctx context.Context, input dto.UpdateAddressRequest) (string, error)
	GetDefaultAddress(ctx context.Context, userID string) (*domain.UserAddress, error)
	Validate(ctx context.Context, addressID, userID string) (*domain.UserAddress, error)
	GetAddress(ctx context.Context, addressID, userID string) (*domain.UserAddress, error)
	GetAddresses(ctx context.Context, userID string, page, limit int) ([]domain.UserAddress, int64, error)
	DeleteAddress(ctx context.Context, addressID, userID string) (string, error)
}

type addressService struct {
	store repository.Store
	log   *zap.Logger
}

func NewAddressService(store repository.Store, log *zap.Logger) AddressService {
	return &addressService{store: store, log: log.Named("address")}
}

func (a *addressService) CreateAddress(ctx context.Context, input dto.CreateAddressRequest) (string, error) {
	addrType := domain.AddressType(input.Type)
	if addrType == "" {
		addrType = domain.AddressTypeHome
	}
	if !addrType.Valid() {
		return "", domain.Invalid(fmt.Errorf("unknown address type %q", input.Type))
	}

	return repository.InTransaction(ctx, a.store, func(tx repository.Store) (string, error) {
		if err := tx.Users().LockByID(ctx, input.UserID); err != nil {
			return "", orNotFound(err, domain.ErrUserNotFound)
		}

		count, err := tx.Addresses().Count(ctx, repository.Filter{"user_id": input.UserID})
		if err != nil {
			return "", err
		}

		isDefault := input.IsDefault || count == 0
		if input.IsDefault && count > 0 {
			if err := tx.Addresses().ClearDefault(ctx, input.UserID); err != nil {
				return "", err
			}
		}

		addr := &domain.UserAddress{
			UserID:    input.UserID,
			Title:     input.Title,
			Address:   input.Address,
			Type:      addrType,
			IsDefault: isDefault,
		}
		if err := tx.Addresses().Create(ctx, addr); err != nil {
			return "", err
		}
		return addr.ID, nil
	})
}

func (a *addressService) UpdateAddress(ctx context.Context, input dto.UpdateAddressRequest) (string, error) {
	if _, err := a.Validate(ctx, input.ID, input.UserID); err != nil {
		return "", err
	}

	return repository.InTransaction(ctx, a.store, func(tx repository.Store) (string, error) {
		if err := tx.Users().LockByID(ctx, input.UserID); err != nil {
			return "", orNotFound(err, domain.ErrAddressNotFound)
		}
		addr, err := tx.Addresses().FindOneOrFail(ctx, repository.Filter{"id": input.ID, "user_id": input.UserID})
		if err != nil {
			return "", orNotFound(err, domain.ErrAddressNotFound)
		}

		updates := utils.Compact(map[string]any{
			"title":   input.Title,
			"address": input.Address,
			"type":    input.Type,
		})

		if input.IsDefault {
			if err := tx.Addresses().ClearDefault(ctx, input.UserID); err != nil {
				return "", err
			}
			updates["is_default"] = true
		} else {
			count, err := tx.Addresses().Count(ctx, repository.Filter{"user_id": input.UserID})
			if err != nil {
				return "", err
			}
			// a sole address is always the default; otherwise the flag only
			// moves when another address is made default
			if count == 1 {
				updates["is_default"] = true
			}
		}

		if len(updates) == 0 {
			return addr.ID, nil
		}
		if err := tx.Addresses().UpdateByID(ctx, addr.ID, updates); err != nil {
			return "", orNotFound(err, domain.ErrAddressNotFound)
		}
		return addr.ID, nil
	})
}

func (a *addressService) GetDefaultAddress(ctx context.Context, userID string) (*domain.UserAddress, error) {
	addr, err := a.store.Addresses().FindOneOrFail(ctx, repository.Filter{"user_id": userID, "is_default": true})
	if err != nil {
		return nil, orNotFound(err, domain.ErrAddressNotFound)
	}
	return addr, nil
}

func (a *addressService) Validate(ctx context.Context, addressID, userID string) (*domain.UserAddress, error) {
	addr, err := a.store.Addresses().FindOneOrFail(ctx, repository.Filter{"id": addressID, "user_id": userID})
	if err != nil {
		return nil, orNotFound(err, domain.ErrAddressNotFound)
	}
	return addr, nil
}

func (a *addressService) GetAddress(ctx context.Context, addressID, userID string) (*domain.UserAddress, error) {
	return a.Validate(ctx, addressID, userID)
}

func (a *addressService) GetAddresses(ctx context.Context, userID string, page, limit int) ([]domain.UserAddress, int64, error) {
	offset, size := utils.Paginate(page, limit)
	return a.store.Addresses().FindAndCount(ctx, repository.Filter{"user_id": userID}, repository.Page{
		Offset: offset,
		Limit:  size,
		Order:  "is_default DESC, created_at ASC",
	})
}

// DeleteAddress soft-deletes the address. When it was the default, the
// most recently created remaining address takes over.
func (a *addressService) DeleteAddress(ctx context.Context, addressID, userID string) (string, error) {
	if _, err := a.Validate(ctx, addressID, userID); err != nil {
		return "", err
	}

	return repository.InTransaction(ctx, a.store, func(tx repository.Store) (string, error) {
		if err := tx.Users().LockByID(ctx, userID); err != nil {
			return "", orNotFound(err, domain.ErrAddressNotFound)
		}
		addr, err := tx.Addresses().FindOneOrFail(ctx, repository.Filter{"id": addressID, "user_id": userID})
		if err != nil {
			return "", orNotFound(err, domain.ErrAddressNotFound)
		}
		if err := tx.Addresses().SoftDeleteByID(ctx, addr.ID); err != nil {
			return "", orNotFound(err, domain.ErrAddressNotFound)
		}

		if !addr.IsDefault {
			return addr.ID, nil
		}
		next, err := tx.Addresses().LatestByUser(ctx, userID)
		if err != nil {
			return "", err
		}
		if next != nil {
			if err := tx.Addresses().SetDefault(ctx, userID, next.ID); err != nil {
				return "", err
			}
			a.log.Debug("default address promoted", zap.String("user_id", userID), zap.String("address_id", next.ID))
		}
		return addr.ID, nil
	})
}
