package repository

import (
	"errors"

	"github.com/angelina-2003/HushHours/internal/models"
	"gorm.io/gorm"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// GetOrCreate resolves the canonical conversation for an unordered pair of
// users, creating it on first contact. Two concurrent calls for the same pair
// cannot both insert: the (user_a, user_b) unique index rejects the loser,
// which then re-selects the winner's row.
func (r *ConversationRepository) GetOrCreate(userA, userB uint) (*models.Conversation, error) {
	lo, hi := models.NormalizePair(userA, userB)

	var conv models.Conversation
	err := r.db.Where("user_a = ? AND user_b = ?", lo, hi).First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conv = models.Conversation{UserA: lo, UserB: hi}
	if err := r.db.Create(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the insert race; the row exists now.
			var existing models.Conversation
			if err2 := r.db.Where("user_a = ? AND user_b = ?", lo, hi).First(&existing).Error; err2 == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &conv, nil
}

func (r *ConversationRepository) FindByID(id uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.First(&conv, id).Error
	return &conv, err
}

// ListSummaries returns one row per conversation the user participates in,
// joined with the peer's profile and the latest message preview. Conversations
// with no messages sort last; ties break on conversation id descending.
func (r *ConversationRepository) ListSummaries(userID uint) ([]models.ConversationSummary, error) {
	query := `
SELECT
	c.id AS conversation_id,
	u.id AS other_user_id,
	u.username AS other_username,
	COALESCE(NULLIF(u.display_name, ''), u.username) AS other_display_name,
	u.avatar AS other_avatar,
	(SELECT MAX(m.created_at) FROM messages m WHERE m.conversation_id = c.id) AS last_message_time,
	(SELECT m.content FROM messages m
	 WHERE m.conversation_id = c.id
	 ORDER BY m.created_at DESC, m.id DESC LIMIT 1) AS last_message_body
FROM conversations c
JOIN users u
  ON u.id = CASE WHEN c.user_a = ? THEN c.user_b ELSE c.user_a END
WHERE c.user_a = ? OR c.user_b = ?
ORDER BY last_message_time DESC NULLS LAST, c.id DESC
`

	var rows []models.ConversationSummary
	err := r.db.Raw(query, userID, userID, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
