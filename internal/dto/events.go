package dto

import "time"

const TopicUserCreated = "user.created"

type UserCreatedEvent struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
