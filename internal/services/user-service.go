package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/SundayYogurt/social_user_service/internal/domain"
	"github.com/SundayYogurt/social_user_service/internal/dto"
	"github.com/SundayYogurt/social_user_service/internal/helper"
	"github.com/SundayYogurt/social_user_service/internal/helper/utils"
	"github.com/SundayYogurt/social_user_service/internal/interfaces"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	pkgutils "github.com/SundayYogurt/social_user_service/pkg/utils"
	"go.uber.org/zap"
)

// Cache set names, relative to the cache prefix.
const (
	SetEmails          = "emails"
	SetAvailableEmails = "available_emails"
	SetPhones          = "phones"
	SetAvailablePhones = "available_phones"
)

type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, input dto.CreateUserRequest) (string, error)
	UpdateUser(ctx context.Context, input dto.UpdateUserRequest) (string, error)
	IsTakenEmail(ctx context.Context, email string) (bool, error)
	IsTakenPhoneNumber(ctx context.Context, phone string) (bool, error)
	// GetUserByUsername resolves an email or a phone number. It returns nil
	// when neither is registered.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

type userService struct {
	store    repository.Store
	cache    interfaces.SetCache
	hasher   interfaces.PasswordHasher
	producer interfaces.ProducerHandler
	topic    string
	log      *zap.Logger
}

// contact describes one uniquely-held user column and its cache sets.
type contact struct {
	column    string
	taken     string
	available string
	errTaken  *domain.Error
}

var (
	emailContact = contact{column: "email", taken: SetEmails, available: SetAvailableEmails, errTaken: domain.ErrEmailTaken}
	phoneContact = contact{column: "phone_number", taken: SetPhones, available: SetAvailablePhones, errTaken: domain.ErrPhoneTaken}
)

func NewUserService(
	store repository.Store,
	cache interfaces.SetCache,
	hasher interfaces.PasswordHasher,
	producer interfaces.ProducerHandler,
	topic string,
	log *zap.Logger,
) UserService {
	if topic == "" {
		topic = dto.TopicUserCreated
	}
	return &userService{
		store:    store,
		cache:    cache,
		hasher:   hasher,
		producer: producer,
		topic:    topic,
		log:      log.Named("user"),
	}
}

func (u *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.store.Users().FindWithProfile(ctx, id)
	if err != nil {
		return nil, orNotFound(err, domain.ErrUserNotFound)
	}
	return user, nil
}

func (u *userService) ExistsByID(ctx context.Context, id string) (bool, error) {
	return u.store.Users().ExistsByID(ctx, id)
}

func (u *userService) CreateUser(ctx context.Context, input dto.CreateUserRequest) (string, error) {
	email := utils.NormalizeEmail(input.Email)
	phone := utils.NormalizePhone(input.PhoneNumber)
	if email == "" || phone == "" || input.Password == "" {
		return "", domain.Invalid(errors.New("email, phone number and password are required"))
	}

	if err := u.ensureFree(ctx, emailContact, email); err != nil {
		return "", err
	}
	if err := u.ensureFree(ctx, phoneContact, phone); err != nil {
		return "", err
	}

	hashed, err := u.hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		DisplayName:  input.DisplayName,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hashed,
		Gender:       domain.GenderUnknown,
		Role:         domain.UserRoleClient,
		Status:       domain.UserStatusActive,
	}
	if input.Gender != "" {
		user.Gender = domain.Gender(input.Gender)
	}
	if input.Role != "" {
		user.Role = domain.UserRole(input.Role)
	}

	if err := u.store.Users().Create(ctx, user); err != nil {
		return "", u.duplicateContact(ctx, err, email, phone)
	}

	u.remember(ctx, emailContact, email, true)
	u.remember(ctx, phoneContact, phone, true)
	u.publishCreated(ctx, user)

	u.log.Info("user created", zap.String("user_id", user.ID))
	return user.ID, nil
}

func (u *userService) UpdateUser(ctx context.Context, input dto.UpdateUserRequest) (string, error) {
	user, err := u.store.Users().FindByID(ctx, input.ID)
	if err != nil {
		return "", orNotFound(err, domain.ErrUserNotFound)
	}
	if input.Version != nil && *input.Version != user.Version {
		return "", domain.ErrVersionConflict
	}

	updates := pkgutils.Compact(map[string]any{
		"display_name": input.DisplayName,
		"photo_url":    input.PhotoURL,
		"country":      input.Country,
		"address":      input.Address,
		"state":        input.State,
		"city":         input.City,
		"zip_code":     input.ZipCode,
		"about":        input.About,
		"role":         input.Role,
		"status":       input.Status,
		"is_public":    input.IsPublic,
		"gender":       input.Gender,
	})

	var newEmail, newPhone string
	if input.Email != nil {
		if email := utils.NormalizeEmail(*input.Email); email != "" && email != user.Email {
			if err := u.ensureFree(ctx, emailContact, email); err != nil {
				return "", err
			}
			newEmail = email
			updates["email"] = email
		}
	}
	if input.PhoneNumber != nil {
		if phone := utils.NormalizePhone(*input.PhoneNumber); phone != "" && phone != user.PhoneNumber {
			if err := u.ensureFree(ctx, phoneContact, phone); err != nil {
				return "", err
			}
			newPhone = phone
			updates["phone_number"] = phone
		}
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := u.hasher.Hash(*input.Password)
		if err != nil {
			return "", err
		}
		updates["password_hash"] = hashed
	}

	if len(updates) == 0 {
		return user.ID, nil
	}

	err = u.store.Users().UpdateVersioned(ctx, user.ID, user.Version, updates)
	switch {
	case errors.Is(err, repository.ErrStaleVersion):
		return "", domain.ErrVersionConflict
	case err != nil:
		return "", u.duplicateContact(ctx, orNotFound(err, domain.ErrUserNotFound), newEmail, newPhone)
	}

	if newEmail != "" {
		u.forget(ctx, emailContact, user.Email)
		u.remember(ctx, emailContact, newEmail, true)
	}
	if newPhone != "" {
		u.forget(ctx, phoneContact, user.PhoneNumber)
		u.remember(ctx, phoneContact, newPhone, true)
	}
	return user.ID, nil
}

func (u *userService) IsTakenEmail(ctx context.Context, email string) (bool, error) {
	return u.isTaken(ctx, emailContact, utils.NormalizeEmail(email))
}

func (u *userService) IsTakenPhoneNumber(ctx context.Context, phone string) (bool, error) {
	return u.isTaken(ctx, phoneContact, utils.NormalizePhone(phone))
}

func (u *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, c := range []contact{emailContact, phoneContact} {
		value := normalizeFor(c, username)
		if value == "" {
			continue
		}
		taken, err := u.isTaken(ctx, c, value)
		if err != nil {
			return nil, err
		}
		if taken {
			return u.store.Users().FindOne(ctx, repository.Filter{c.column: value})
		}
	}
	return nil, nil
}

func (u *userService) VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := u.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !u.hasher.Compare(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// isTaken answers from the cache when either set knows the value and
// falls back to the store otherwise. Soft-deleted users keep their
// contact fields reserved.
func (u *userService) isTaken(ctx context.Context, c contact, value string) (bool, error) {
	if value == "" {
		return false, nil
	}

	if u.cache != nil {
		if ok, err := u.cache.SIsMember(ctx, c.available, value); err != nil {
			u.log.Warn("cache lookup failed", zap.String("set", c.available), zap.Error(err))
		} else if ok {
			return false, nil
		}
		if ok, err := u.cache.SIsMember(ctx, c.taken, value); err != nil {
			u.log.Warn("cache lookup failed", zap.String("set", c.taken), zap.Error(err))
		} else if ok {
			return true, nil
		}
	}

	n, err := u.store.Users().CountIncludingDeleted(ctx, repository.Filter{c.column: value})
	if err != nil {
		return false, err
	}
	taken := n > 0
	u.remember(ctx, c, value, taken)
	return taken, nil
}

func (u *userService) ensureFree(ctx context.Context, c contact, value string) error {
	taken, err := u.isTaken(ctx, c, value)
	if err != nil {
		return err
	}
	if taken {
		return c.errTaken
	}
	return nil
}

// remember moves value into the set matching taken and out of the other.
func (u *userService) remember(ctx context.Context, c contact, value string, taken bool) {
	if u.cache == nil || value == "" {
		return
	}
	add, remove := c.available, c.taken
	if taken {
		add, remove = c.taken, c.available
	}
	if err := u.cache.SRem(ctx, remove, value); err != nil {
		u.log.Warn("cache write failed", zap.String("set", remove), zap.Error(err))
	}
	if err := u.cache.SAdd(ctx, add, value); err != nil {
		u.log.Warn("cache write failed", zap.String("set", add), zap.Error(err))
	}
}

// forget drops value from both sets so the next lookup asks the store.
func (u *userService) forget(ctx context.Context, c contact, value string) {
	if u.cache == nil || value == "" {
		return
	}
	for _, set := range []string{c.taken, c.available} {
		if err := u.cache.SRem(ctx, set, value); err != nil {
			u.log.Warn("cache write failed", zap.String("set", set), zap.Error(err))
		}
	}
}

func (u *userService) publishCreated(ctx context.Context, user *domain.User) {
	if u.producer == nil {
		u.log.Debug("no producer configured, skip publish")
		return
	}

	payload, err := json.Marshal(dto.UserCreatedEvent{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	})
	if err != nil {
		u.log.Error("encode user.created", zap.Error(err))
		return
	}

	// the user row is already committed, a cancelled caller must not drop the event
	if err := u.producer.Produce(context.WithoutCancel(ctx), u.topic, []byte(user.ID), payload); err != nil {
		u.log.Warn("publish user.created failed", zap.String("user_id", user.ID), zap.Error(err))
	}
}

func normalizeFor(c contact, value string) string {
	isEmail := utils.LooksLikeEmail(value)
	switch {
	case c.column == emailContact.column && isEmail:
		return utils.NormalizeEmail(value)
	case c.column == phoneContact.column && !isEmail:
		return utils.NormalizePhone(value)
	}
	return ""
}

// duplicateContact reports a unique violation that slipped past the
// cache check under concurrent registration. The losing writer may have
// marked the value available after the winner marked it taken, so the
// cache entry is corrected here.
func (u *userService) duplicateContact(ctx context.Context, err error, email, phone string) error {
	switch {
	case helper.IsDuplicateKey(err, "idx_users_email"):
		u.remember(ctx, emailContact, email, true)
		return domain.ErrEmailTaken
	case helper.IsDuplicateKey(err, "idx_users_phone_number"):
		u.remember(ctx, phoneContact, phone, true)
		return domain.ErrPhoneTaken
	case helper.IsDuplicateKey(err, ""):
		// constraint unknown, the next lookup asks the store
		u.forget(ctx, emailContact, email)
		u.forget(ctx, phoneContact, phone)
		if email == "" && phone != "" {
			return domain.ErrPhoneTaken
		}
		return domain.ErrEmailTaken
	}
	return err
}
