package models

import "time"

// DeletedFriend is a one-directional suppression mark: UserID no longer wants
// FriendID in their derived friend list. The underlying conversation and its
// messages are untouched, and FriendID's own view of UserID is unaffected.
type DeletedFriend struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	DeletedAt time.Time `gorm:"autoCreateTime" json:"deleted_at"`

	UserID   uint `gorm:"not null;uniqueIndex:idx_deleted_friend_pair" json:"user_id"`
	FriendID uint `gorm:"not null;uniqueIndex:idx_deleted_friend_pair" json:"friend_id"`
}

// LikedGroup is a favorite flag, independent of membership.
type LikedGroup struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID  uint `gorm:"not null;uniqueIndex:idx_liked_group_pair" json:"user_id"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_liked_group_pair" json:"group_id"`
}

// UserGift is a received-gift counter. This service only reads the table;
// gift bookkeeping happens elsewhere.
type UserGift struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   uint   `gorm:"not null;uniqueIndex:idx_user_gift_type" json:"user_id"`
	GiftType string `gorm:"size:50;not null;uniqueIndex:idx_user_gift_type" json:"gift_type"`
	Count    int    `gorm:"not null;default:0" json:"count"`
}

// FriendSummary is one row of the derived friend list.
type FriendSummary struct {
	FriendID       uint   `json:"friend_id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Avatar         string `json:"avatar"`
	Points         int    `json:"points"`
	ConversationID uint   `json:"conversation_id"`
}
