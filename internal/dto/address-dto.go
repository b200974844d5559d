package dto

import "time"

type CreateAddressRequest struct {
	UserID    string `json:"userId" validate:"required,uuid"`
	Title     string `json:"title"`
	Address   string `json:"address" validate:"required"`
	Type      string `json:"type,omitempty" validate:"omitempty,oneof=HOME WORK OTHER"`
	IsDefault bool   `json:"isDefault"`
}

// UpdateAddressRequest patches title, address and type with the same rule
// as UpdateUserRequest. IsDefault is always applied.
type UpdateAddressRequest struct {
	ID        string  `json:"id" validate:"required,uuid"`
	UserID    string  `json:"userId" validate:"required,uuid"`
	Title     *string `json:"title,omitempty"`
	Address   *string `json:"address,omitempty"`
	Type      *string `json:"type,omitempty" validate:"omitempty,oneof=HOME WORK OTHER"`
	IsDefault bool    `json:"isDefault"`
}

type AddressKeyRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	UserID string `json:"userId" validate:"required,uuid"`
}

type UserKeyRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

type GetAddressesRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	PageRequest
}

type AddressResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Address   string    `json:"address"`
	Type      string    `json:"type"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

type GetAddressResponse struct {
	Address  *AddressResponse `json:"address,omitempty"`
	Metadata Metadata         `json:"metadata"`
}
