package dto

import "time"

type SendFriendRequestRequest struct {
	UserID   string `json:"userId" validate:"required,uuid"`
	FriendID string `json:"friendId" validate:"required,uuid"`
}

type UpdateStatusFriendRequestRequest struct {
	UserID          string `json:"userId" validate:"required,uuid"`
	FriendRequestID string `json:"friendRequestId" validate:"required,uuid"`
	Status          string `json:"status" validate:"required,oneof=PENDING ACCEPTED REJECTED DELETED"`
}

type IsOnFriendListRequest struct {
	UserID   string `json:"userId" validate:"required,uuid"`
	FriendID string `json:"friendId" validate:"required,uuid"`
}

type IsOnFriendListResponse struct {
	IsFriend bool     `json:"isFriend"`
	Metadata Metadata `json:"metadata"`
}

type GetListFriendRequestRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Type   string `json:"type" validate:"required,oneof=RECEIVED SENT"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=PENDING ACCEPTED REJECTED DELETED"`
	PageRequest
}

type GetAllRelatedFriendRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	PageRequest
}

type FriendSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	Email       string `json:"email"`
}

type FriendRequestResponse struct {
	ID        string         `json:"id"`
	Status    string         `json:"status"`
	Sender    *FriendSummary `json:"sender,omitempty"`
	Receiver  *FriendSummary `json:"receiver,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
