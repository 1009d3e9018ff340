package models

import (
	"time"
)

// DefaultMessageColor is the chat bubble color assigned at registration.
const DefaultMessageColor = "#6b7280"

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `json:"display_name"`
	Avatar       string `json:"avatar"` // catalog key, not an uploaded object
	Age          int    `json:"age"`
	Gender       string `gorm:"size:20" json:"gender"`
	Points       int    `gorm:"not null;default:0" json:"points"`
	MessageColor string `gorm:"size:7;not null;default:'#6b7280'" json:"message_color"`
}

type UserResponse struct {
	ID           uint           `json:"id"`
	Username     string         `json:"username"`
	DisplayName  string         `json:"display_name"`
	Avatar       string         `json:"avatar"`
	Age          int            `json:"age"`
	Gender       string         `json:"gender"`
	HushPoints   int            `json:"hush_points"`
	MessageColor string         `json:"message_color"`
	Gifts        map[string]int `json:"gifts,omitempty"`
}

func (u *User) ToResponse() UserResponse {
	display := u.DisplayName
	if display == "" {
		display = u.Username
	}
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		DisplayName:  display,
		Avatar:       u.Avatar,
		Age:          u.Age,
		Gender:       u.Gender,
		HushPoints:   u.Points,
		MessageColor: u.MessageColor,
	}
}

// SearchResult is a user row annotated for the search endpoint.
type SearchResult struct {
	UserID          uint   `json:"user_id"`
	Username        string `json:"username"`
	DisplayName     string `json:"display_name"`
	Avatar          string `json:"avatar"`
	Points          int    `json:"points"`
	HasConversation bool   `json:"has_conversation"`
}
