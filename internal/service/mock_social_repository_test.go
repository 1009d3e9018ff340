package service

import (
	"sort"

	"github.com/angelina-2003/HushHours/internal/models"
)

// MockSocialRepository is an in-memory implementation of
// repository.SocialRepositoryInterface for testing. ListFriends derives its
// rows from seeded users and conversations, the same way the SQL query does.
type MockSocialRepository struct {
	users         map[uint]*models.User
	conversations []*models.Conversation
	deleted       map[[2]uint]bool
	liked         map[[2]uint]bool
}

func NewMockSocialRepository() *MockSocialRepository {
	return &MockSocialRepository{
		users:   make(map[uint]*models.User),
		deleted: make(map[[2]uint]bool),
		liked:   make(map[[2]uint]bool),
	}
}

func (m *MockSocialRepository) AddUser(user *models.User) {
	m.users[user.ID] = user
}

func (m *MockSocialRepository) AddConversation(conv *models.Conversation) {
	m.conversations = append(m.conversations, conv)
}

// IsLiked reports whether userID currently likes groupID.
func (m *MockSocialRepository) IsLiked(userID, groupID uint) bool {
	return m.liked[[2]uint{userID, groupID}]
}

func (m *MockSocialRepository) ListFriends(userID uint) ([]models.FriendSummary, error) {
	var out []models.FriendSummary
	for _, conv := range m.conversations {
		if !conv.HasParticipant(userID) {
			continue
		}
		otherID := conv.OtherParticipant(userID)
		if m.deleted[[2]uint{userID, otherID}] {
			continue
		}
		other, ok := m.users[otherID]
		if !ok {
			continue
		}
		out = append(out, models.FriendSummary{
			FriendID:       other.ID,
			Username:       other.Username,
			DisplayName:    other.DisplayName,
			Avatar:         other.Avatar,
			Points:         other.Points,
			ConversationID: conv.ID,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		ni := out[i].DisplayName
		if ni == "" {
			ni = out[i].Username
		}
		nj := out[j].DisplayName
		if nj == "" {
			nj = out[j].Username
		}
		return ni < nj
	})
	return out, nil
}

func (m *MockSocialRepository) MarkFriendDeleted(userID, friendID uint) error {
	m.deleted[[2]uint{userID, friendID}] = true
	return nil
}

func (m *MockSocialRepository) LikeGroup(userID, groupID uint) (bool, error) {
	key := [2]uint{userID, groupID}
	if m.liked[key] {
		return false, nil
	}
	m.liked[key] = true
	return true, nil
}

func (m *MockSocialRepository) UnlikeGroup(userID, groupID uint) (bool, error) {
	key := [2]uint{userID, groupID}
	if !m.liked[key] {
		return false, nil
	}
	delete(m.liked, key)
	return true, nil
}
