package repository

import (
	"github.com/angelina-2003/HushHours/internal/models"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindOldest() (*models.User, error)
	Update(user *models.User) error
	UpdateAvatar(userID uint, avatar string) error
	UpdateMessageColor(userID uint, color string) error
	SearchExactUsername(term string, requesterID uint, limit int) ([]models.SearchResult, error)
}

// ConversationRepositoryInterface defines the contract for conversation repository operations
type ConversationRepositoryInterface interface {
	GetOrCreate(userA, userB uint) (*models.Conversation, error)
	FindByID(id uint) (*models.Conversation, error)
	ListSummaries(userID uint) ([]models.ConversationSummary, error)
}

// MessageRepositoryInterface defines the contract for direct-message repository operations
type MessageRepositoryInterface interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	ListByConversation(conversationID uint) ([]models.Message, error)
}

// GroupRepositoryInterface defines the contract for group repository operations
type GroupRepositoryInterface interface {
	CreateWithCreator(group *models.Group) error
	FindByID(id uint) (*models.Group, error)
	FindByName(name string) (*models.Group, error)
	AddMember(groupID, userID uint) error
	IsMember(groupID, userID uint) (bool, error)
	GetMembers(groupID uint) ([]models.GroupMemberInfo, error)
	ListSummaries(userID uint) ([]models.GroupSummary, error)
	ListJoined(userID uint) ([]models.GroupSummary, error)
	CreateMessage(message *models.GroupMessage) error
	FindMessageByID(id uint) (*models.GroupMessage, error)
	ListMessages(groupID uint) ([]models.GroupMessage, error)
}

// SocialRepositoryInterface defines the contract for the friend/liked-group overlay
type SocialRepositoryInterface interface {
	ListFriends(userID uint) ([]models.FriendSummary, error)
	MarkFriendDeleted(userID, friendID uint) error
	LikeGroup(userID, groupID uint) (bool, error)
	UnlikeGroup(userID, groupID uint) (bool, error)
}

// GiftRepositoryInterface defines the read-only contract for gift counters
type GiftRepositoryInterface interface {
	CountsForUser(userID uint) (map[string]int, error)
}
