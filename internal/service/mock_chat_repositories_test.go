package service

import (
	"time"

	"github.com/angelina-2003/HushHours/internal/models"
	"gorm.io/gorm"
)

// MockConversationRepository is an in-memory implementation of
// repository.ConversationRepositoryInterface for testing.
type MockConversationRepository struct {
	conversations map[uint]*models.Conversation
	summaries     map[uint][]models.ConversationSummary
	nextID        uint
}

func NewMockConversationRepository() *MockConversationRepository {
	return &MockConversationRepository{
		conversations: make(map[uint]*models.Conversation),
		summaries:     make(map[uint][]models.ConversationSummary),
		nextID:        1,
	}
}

func (m *MockConversationRepository) SetSummaries(userID uint, summaries []models.ConversationSummary) {
	m.summaries[userID] = summaries
}

// Count reports how many conversation rows exist.
func (m *MockConversationRepository) Count() int {
	return len(m.conversations)
}

func (m *MockConversationRepository) GetOrCreate(userA, userB uint) (*models.Conversation, error) {
	lo, hi := models.NormalizePair(userA, userB)
	for _, conv := range m.conversations {
		if conv.UserA == lo && conv.UserB == hi {
			return conv, nil
		}
	}
	conv := &models.Conversation{
		ID:        m.nextID,
		UserA:     lo,
		UserB:     hi,
		CreatedAt: time.Now(),
	}
	m.nextID++
	m.conversations[conv.ID] = conv
	return conv, nil
}

func (m *MockConversationRepository) FindByID(id uint) (*models.Conversation, error) {
	conv, ok := m.conversations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return conv, nil
}

func (m *MockConversationRepository) ListSummaries(userID uint) ([]models.ConversationSummary, error) {
	return m.summaries[userID], nil
}

// MockMessageRepository is an in-memory implementation of
// repository.MessageRepositoryInterface for testing. ListByConversation
// returns rows in insertion order, so tests can seed out-of-order rows to
// exercise the service-side sort.
type MockMessageRepository struct {
	messages map[uint]*models.Message
	order    []uint
	nextID   uint
}

func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{
		messages: make(map[uint]*models.Message),
		nextID:   1,
	}
}

// AddMessage seeds a pre-built message, keeping whatever id and timestamp it
// carries.
func (m *MockMessageRepository) AddMessage(message *models.Message) {
	if message.ID == 0 {
		message.ID = m.nextID
	}
	if message.ID >= m.nextID {
		m.nextID = message.ID + 1
	}
	m.messages[message.ID] = message
	m.order = append(m.order, message.ID)
}

func (m *MockMessageRepository) Create(message *models.Message) error {
	message.ID = m.nextID
	m.nextID++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	m.messages[message.ID] = message
	m.order = append(m.order, message.ID)
	return nil
}

func (m *MockMessageRepository) FindByID(id uint) (*models.Message, error) {
	message, ok := m.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return message, nil
}

func (m *MockMessageRepository) ListByConversation(conversationID uint) ([]models.Message, error) {
	var out []models.Message
	for _, id := range m.order {
		if m.messages[id].ConversationID == conversationID {
			out = append(out, *m.messages[id])
		}
	}
	return out, nil
}
