package models

import "time"

// Message is a direct message inside a conversation. Rows are append-only;
// there is no edit or delete path. CreatedAt doubles as the wire timestamp.
//
// Display order is (created_at ASC, id ASC). The id tie-break matters:
// messages written within the same clock tick would otherwise flip order
// between reads.
type Message struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_messages_conv_order,priority:2" json:"timestamp"`

	ConversationID uint   `gorm:"not null;index:idx_messages_conv_order,priority:1" json:"conversation_id"`
	SenderID       uint   `gorm:"not null;index" json:"sender_id"`
	Content        string `gorm:"type:text;not null" json:"content"`

	Sender User `gorm:"foreignKey:SenderID" json:"-"`
}

type MessageResponse struct {
	ID           uint      `json:"id"`
	SenderID     uint      `json:"sender_id"`
	Content      string    `json:"content"`
	Timestamp    time.Time `json:"timestamp"`
	SenderAvatar string    `json:"sender_avatar,omitempty"`
}

func (m *Message) ToResponse() MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		SenderID:     m.SenderID,
		Content:      m.Content,
		Timestamp:    m.CreatedAt,
		SenderAvatar: m.Sender.Avatar,
	}
}
