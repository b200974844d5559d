package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories bound to one database handle. The handle
// passed to a unit of work is a Store bound to that unit's transaction.
type Store interface {
	Users() UserRepository
	Addresses() AddressRepository
	FriendRequests() FriendRequestRepository
	UserAbouts() UserAboutRepository

	// WithTransaction runs fn inside one database transaction. It commits
	// when fn returns nil, rolls back and returns the error otherwise, and
	// rolls back and re-panics if fn panics. The connection is released in
	// every case.
	WithTransaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository                   { return NewUserRepository(s.db) }
func (s *gormStore) Addresses() AddressRepository            { return NewAddressRepository(s.db) }
func (s *gormStore) FriendRequests() FriendRequestRepository { return NewFriendRequestRepository(s.db) }
func (s *gormStore) UserAbouts() UserAboutRepository         { return NewUserAboutRepository(s.db) }

func (s *gormStore) WithTransaction(ctx context.Context, fn func(tx Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// InTransaction is WithTransaction for units of work that produce a value.
// The value is only returned when the transaction commits.
func InTransaction[T any](ctx context.Context, s Store, fn func(tx Store) (T, error)) (T, error) {
	var out T
	err := s.WithTransaction(ctx, func(tx Store) error {
		v, err := fn(tx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
