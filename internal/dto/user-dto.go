package dto

import "time"

type GetUserRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

type CreateUserRequest struct {
	DisplayName string `json:"displayName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=32"`
	Email       string `json:"email" validate:"required,email"`
	Gender      string `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE UNKNOWN"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=client admin"`
}

// UpdateUserRequest is a patch: nil leaves the column unchanged and so does
// an empty string. false and 0 are applied.
type UpdateUserRequest struct {
	ID          string  `json:"id" validate:"required,uuid"`
	Version     *int    `json:"version,omitempty" validate:"omitempty,min=1"`
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=32"`
	Country     *string `json:"country,omitempty"`
	Address     *string `json:"address,omitempty"`
	State       *string `json:"state,omitempty"`
	City        *string `json:"city,omitempty"`
	ZipCode     *string `json:"zipCode,omitempty"`
	About       *string `json:"about,omitempty"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=client admin"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive banned"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE UNKNOWN"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type IsTakenEmailRequest struct {
	Email string `json:"email" validate:"required"`
}

type IsTakenPhoneNumberRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type IsTakenResponse struct {
	IsTaken  bool     `json:"isTaken"`
	Metadata Metadata `json:"metadata"`
}

type GetUserByUsernameRequest struct {
	Username string `json:"username" validate:"required"`
}

type VerifyCredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserAboutResponse struct {
	WorkRole       string `json:"workRole"`
	Company        string `json:"company"`
	School         string `json:"school"`
	Country        string `json:"country"`
	Quote          string `json:"quote"`
	Facebook       string `json:"facebook"`
	Twitter        string `json:"twitter"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
	TotalFollowers int    `json:"totalFollowers"`
	TotalFollowing int    `json:"totalFollowing"`
}

type UserResponse struct {
	ID          string             `json:"id"`
	DisplayName string             `json:"displayName"`
	PhotoURL    string             `json:"photoUrl"`
	PhoneNumber string             `json:"phoneNumber"`
	Country     string             `json:"country"`
	Address     string             `json:"address"`
	State       string             `json:"state"`
	City        string             `json:"city"`
	ZipCode     string             `json:"zipCode"`
	About       string             `json:"about"`
	Role        string             `json:"role"`
	Status      string             `json:"status"`
	IsPublic    bool               `json:"isPublic"`
	Email       string             `json:"email"`
	Gender      string             `json:"gender"`
	Version     int                `json:"version"`
	CreatedAt   time.Time          `json:"createdAt"`
	Profile     *UserAboutResponse `json:"profile,omitempty"`
}

type GetUserResponse struct {
	User     *UserResponse `json:"user,omitempty"`
	Metadata Metadata      `json:"metadata"`
}
