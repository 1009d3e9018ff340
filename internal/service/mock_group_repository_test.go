package service

import (
	"sort"
	"time"

	"github.com/angelina-2003/HushHours/internal/models"
	"gorm.io/gorm"
)

// MockGroupRepository is an in-memory implementation of
// repository.GroupRepositoryInterface for testing.
type MockGroupRepository struct {
	groups        map[uint]*models.Group
	members       map[uint]map[uint]time.Time
	messages      map[uint]*models.GroupMessage
	messageOrder  []uint
	nextGroupID   uint
	nextMessageID uint
}

func NewMockGroupRepository() *MockGroupRepository {
	return &MockGroupRepository{
		groups:        make(map[uint]*models.Group),
		members:       make(map[uint]map[uint]time.Time),
		messages:      make(map[uint]*models.GroupMessage),
		nextGroupID:   1,
		nextMessageID: 1,
	}
}

// AddGroup seeds a group without any members.
func (m *MockGroupRepository) AddGroup(group *models.Group) {
	if group.ID == 0 {
		group.ID = m.nextGroupID
	}
	if group.ID >= m.nextGroupID {
		m.nextGroupID = group.ID + 1
	}
	m.groups[group.ID] = group
	if m.members[group.ID] == nil {
		m.members[group.ID] = make(map[uint]time.Time)
	}
}

// AddGroupMessage seeds a pre-built message, keeping its id and timestamp.
func (m *MockGroupRepository) AddGroupMessage(message *models.GroupMessage) {
	if message.ID == 0 {
		message.ID = m.nextMessageID
	}
	if message.ID >= m.nextMessageID {
		m.nextMessageID = message.ID + 1
	}
	m.messages[message.ID] = message
	m.messageOrder = append(m.messageOrder, message.ID)
}

// MemberCount reports how many membership rows a group has.
func (m *MockGroupRepository) MemberCount(groupID uint) int {
	return len(m.members[groupID])
}

// MessageCount reports how many messages a group holds.
func (m *MockGroupRepository) MessageCount(groupID uint) int {
	count := 0
	for _, message := range m.messages {
		if message.GroupID == groupID {
			count++
		}
	}
	return count
}

func (m *MockGroupRepository) CreateWithCreator(group *models.Group) error {
	group.ID = m.nextGroupID
	m.nextGroupID++
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now()
	}
	m.groups[group.ID] = group
	m.members[group.ID] = map[uint]time.Time{group.CreatedBy: time.Now()}
	return nil
}

func (m *MockGroupRepository) FindByID(id uint) (*models.Group, error) {
	group, ok := m.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return group, nil
}

func (m *MockGroupRepository) FindByName(name string) (*models.Group, error) {
	for _, group := range m.groups {
		if group.Name == name {
			return group, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockGroupRepository) AddMember(groupID, userID uint) error {
	if _, ok := m.groups[groupID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if _, ok := m.members[groupID][userID]; ok {
		return nil
	}
	m.members[groupID][userID] = time.Now()
	return nil
}

func (m *MockGroupRepository) IsMember(groupID, userID uint) (bool, error) {
	_, ok := m.members[groupID][userID]
	return ok, nil
}

func (m *MockGroupRepository) GetMembers(groupID uint) ([]models.GroupMemberInfo, error) {
	var out []models.GroupMemberInfo
	for userID, joinedAt := range m.members[groupID] {
		out = append(out, models.GroupMemberInfo{UserID: userID, JoinedAt: joinedAt})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].JoinedAt.Before(out[j].JoinedAt)
	})
	return out, nil
}

func (m *MockGroupRepository) ListSummaries(userID uint) ([]models.GroupSummary, error) {
	var out []models.GroupSummary
	for _, group := range m.groups {
		_, isMember := m.members[group.ID][userID]
		out = append(out, models.GroupSummary{
			GroupID:   group.ID,
			Name:      group.Name,
			CreatedBy: group.CreatedBy,
			CreatedAt: group.CreatedAt,
			IsMember:  isMember,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsMember != out[j].IsMember {
			return out[i].IsMember
		}
		return out[i].GroupID < out[j].GroupID
	})
	return out, nil
}

func (m *MockGroupRepository) ListJoined(userID uint) ([]models.GroupSummary, error) {
	all, _ := m.ListSummaries(userID)
	var out []models.GroupSummary
	for _, summary := range all {
		if summary.IsMember {
			out = append(out, summary)
		}
	}
	return out, nil
}

func (m *MockGroupRepository) CreateMessage(message *models.GroupMessage) error {
	message.ID = m.nextMessageID
	m.nextMessageID++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	m.messages[message.ID] = message
	m.messageOrder = append(m.messageOrder, message.ID)
	return nil
}

func (m *MockGroupRepository) FindMessageByID(id uint) (*models.GroupMessage, error) {
	message, ok := m.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return message, nil
}

func (m *MockGroupRepository) ListMessages(groupID uint) ([]models.GroupMessage, error) {
	var out []models.GroupMessage
	for _, id := range m.messageOrder {
		if m.messages[id].GroupID == groupID {
			out = append(out, *m.messages[id])
		}
	}
	return out, nil
}
