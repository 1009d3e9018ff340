package models

import "time"

// Group is a public chat room. Anyone can read it; only members can post.
type Group struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name      string `gorm:"size:100;not null" json:"name"`
	CreatedBy uint   `gorm:"not null" json:"created_by"`

	Creator User          `gorm:"foreignKey:CreatedBy" json:"-"`
	Members []GroupMember `gorm:"foreignKey:GroupID" json:"-"`
}

type GroupMember struct {
	GroupID  uint      `gorm:"primaryKey" json:"group_id"`
	UserID   uint      `gorm:"primaryKey" json:"user_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Group Group `gorm:"foreignKey:GroupID" json:"-"`
}

// GroupMessage is a message in a group ledger. MessageColor is a snapshot of
// the sender's bubble color at send time, not a live reference to their
// profile.
type GroupMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_group_messages_order,priority:2" json:"timestamp"`

	GroupID      uint   `gorm:"not null;index:idx_group_messages_order,priority:1" json:"group_id"`
	SenderID     uint   `gorm:"not null;index" json:"sender_id"`
	Content      string `gorm:"type:text;not null" json:"content"`
	MessageColor string `gorm:"size:7;not null" json:"message_color"`

	Sender User `gorm:"foreignKey:SenderID" json:"-"`
}

type GroupMessageResponse struct {
	ID                uint      `json:"id"`
	GroupID           uint      `json:"group_id"`
	SenderID          uint      `json:"sender_id"`
	Content           string    `json:"content"`
	Timestamp         time.Time `json:"timestamp"`
	MessageColor      string    `json:"message_color"`
	SenderUsername    string    `json:"sender_username,omitempty"`
	SenderDisplayName string    `json:"sender_display_name,omitempty"`
	SenderAvatar      string    `json:"sender_avatar,omitempty"`
}

func (m *GroupMessage) ToResponse() GroupMessageResponse {
	display := m.Sender.DisplayName
	if display == "" {
		display = m.Sender.Username
	}
	return GroupMessageResponse{
		ID:                m.ID,
		GroupID:           m.GroupID,
		SenderID:          m.SenderID,
		Content:           m.Content,
		Timestamp:         m.CreatedAt,
		MessageColor:      m.MessageColor,
		SenderUsername:    m.Sender.Username,
		SenderDisplayName: display,
		SenderAvatar:      m.Sender.Avatar,
	}
}

// GroupSummary is one row of the group directory, annotated for the
// requesting user.
type GroupSummary struct {
	GroupID         uint       `json:"group_id"`
	Name            string     `json:"name"`
	CreatedBy       uint       `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	LastMessageBody *string    `json:"last_message_content"`
	LastMessageTime *time.Time `json:"last_message_time"`
	IsMember        bool       `json:"is_member"`
	IsLiked         bool       `json:"is_liked"`
}

// GroupMemberInfo is one member row in the group roster.
type GroupMemberInfo struct {
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar"`
	JoinedAt    time.Time `json:"joined_at"`
}

// GroupInfo is the full group view returned to members.
type GroupInfo struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	CreatedBy uint              `json:"created_by"`
	CreatedAt time.Time         `json:"created_at"`
	Members   []GroupMemberInfo `json:"members"`
}
