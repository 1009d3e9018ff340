package service

import (
	"sort"
	"strings"

	"github.com/angelina-2003/HushHours/internal/models"
	"gorm.io/gorm"
)

// MockUserRepository is an in-memory implementation of
// repository.UserRepositoryInterface for testing.
type MockUserRepository struct {
	users     map[uint]*models.User
	convPairs map[[2]uint]bool
	nextID    uint
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:     make(map[uint]*models.User),
		convPairs: make(map[[2]uint]bool),
		nextID:    1,
	}
}

// AddUser seeds a user, assigning an id when none is set.
func (m *MockUserRepository) AddUser(user *models.User) {
	if user.ID == 0 {
		user.ID = m.nextID
	}
	if user.ID >= m.nextID {
		m.nextID = user.ID + 1
	}
	m.users[user.ID] = user
}

// AddConversation records that a conversation exists between two users, so
// SearchExactUsername can annotate results the way the SQL probe does.
func (m *MockUserRepository) AddConversation(a, b uint) {
	lo, hi := models.NormalizePair(a, b)
	m.convPairs[[2]uint{lo, hi}] = true
}

func (m *MockUserRepository) Create(user *models.User) error {
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindOldest() (*models.User, error) {
	var oldest *models.User
	for _, user := range m.users {
		if oldest == nil || user.ID < oldest.ID {
			oldest = user
		}
	}
	if oldest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return oldest, nil
}

func (m *MockUserRepository) Update(user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) UpdateAvatar(userID uint, avatar string) error {
	user, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Avatar = avatar
	return nil
}

func (m *MockUserRepository) UpdateMessageColor(userID uint, color string) error {
	user, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.MessageColor = color
	return nil
}

func (m *MockUserRepository) SearchExactUsername(term string, requesterID uint, limit int) ([]models.SearchResult, error) {
	var results []models.SearchResult
	for _, user := range m.users {
		if user.ID == requesterID {
			continue
		}
		if !strings.EqualFold(user.Username, term) {
			continue
		}
		lo, hi := models.NormalizePair(requesterID, user.ID)
		results = append(results, models.SearchResult{
			UserID:          user.ID,
			Username:        user.Username,
			DisplayName:     user.DisplayName,
			Avatar:          user.Avatar,
			Points:          user.Points,
			HasConversation: m.convPairs[[2]uint{lo, hi}],
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Username < results[j].Username
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// MockGiftRepository is an in-memory implementation of
// repository.GiftRepositoryInterface for testing.
type MockGiftRepository struct {
	counts map[uint]map[string]int
}

func NewMockGiftRepository() *MockGiftRepository {
	return &MockGiftRepository{counts: make(map[uint]map[string]int)}
}

func (m *MockGiftRepository) SetCount(userID uint, giftType string, count int) {
	if m.counts[userID] == nil {
		m.counts[userID] = make(map[string]int)
	}
	m.counts[userID][giftType] = count
}

func (m *MockGiftRepository) CountsForUser(userID uint) (map[string]int, error) {
	out := make(map[string]int)
	for giftType, count := range m.counts[userID] {
		out[giftType] = count
	}
	return out, nil
}
