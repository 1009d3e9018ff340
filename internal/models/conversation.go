package models

import "time"

// Conversation is the canonical 1:1 channel between two users. The pair is
// stored normalized (UserA < UserB) and guarded by a unique index so the same
// two users can never own more than one conversation, regardless of who
// started it.
type Conversation struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserA uint `gorm:"column:user_a;not null;uniqueIndex:idx_conversation_pair" json:"user_a"`
	UserB uint `gorm:"column:user_b;not null;uniqueIndex:idx_conversation_pair" json:"user_b"`

	Messages []Message `gorm:"foreignKey:ConversationID" json:"-"`
}

// NormalizePair orders two user ids into the canonical (low, high) form used
// by the conversations table.
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// HasParticipant reports whether id is one of the conversation's two users.
func (c *Conversation) HasParticipant(id uint) bool {
	return c.UserA == id || c.UserB == id
}

// OtherParticipant returns the peer of id, or 0 if id is not a participant.
func (c *Conversation) OtherParticipant(id uint) uint {
	switch id {
	case c.UserA:
		return c.UserB
	case c.UserB:
		return c.UserA
	}
	return 0
}

// ConversationSummary is one row of the conversation list: the peer's profile
// plus a preview of the most recent message.
type ConversationSummary struct {
	ConversationID   uint       `json:"conversation_id"`
	OtherUserID      uint       `json:"other_user_id"`
	OtherUsername    string     `json:"other_username"`
	OtherDisplayName string     `json:"other_display_name"`
	OtherAvatar      string     `json:"other_avatar"`
	LastMessageTime  *time.Time `json:"last_message_time"`
	LastMessageBody  *string    `json:"last_message_content"`
}
