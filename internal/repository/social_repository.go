package repository

import (
	"github.com/angelina-2003/HushHours/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialRepository struct {
	db *gorm.DB
}

func NewSocialRepository(db *gorm.DB) *SocialRepository {
	return &SocialRepository{db: db}
}

// ListFriends derives the friend list: every user sharing a conversation with
// userID, minus the ones this user has marked deleted. The mark is
// one-directional, so the same query run for the other user is unaffected.
func (r *SocialRepository) ListFriends(userID uint) ([]models.FriendSummary, error) {
	query := `
SELECT
	u.id AS friend_id,
	u.username,
	COALESCE(NULLIF(u.display_name, ''), u.username) AS display_name,
	u.avatar,
	u.points,
	MAX(c.id) AS conversation_id
FROM conversations c
JOIN users u ON (
	(c.user_a = ? AND u.id = c.user_b) OR
	(c.user_b = ? AND u.id = c.user_a)
)
LEFT JOIN deleted_friends df ON df.user_id = ? AND df.friend_id = u.id
WHERE df.id IS NULL
GROUP BY u.id, u.username, u.display_name, u.avatar, u.points
ORDER BY COALESCE(NULLIF(u.display_name, ''), u.username) ASC
`
	var rows []models.FriendSummary
	err := r.db.Raw(query, userID, userID, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkFriendDeleted is an idempotent insert; re-deleting the same friend is a
// no-op. Conversation and message rows are never touched.
func (r *SocialRepository) MarkFriendDeleted(userID, friendID uint) error {
	mark := &models.DeletedFriend{UserID: userID, FriendID: friendID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(mark).Error
}

// LikeGroup sets the favorite flag. The bool reports whether this call
// changed state (false when the group was already liked).
func (r *SocialRepository) LikeGroup(userID, groupID uint) (bool, error) {
	mark := &models.LikedGroup{UserID: userID, GroupID: groupID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(mark)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UnlikeGroup clears the favorite flag. The bool reports whether a mark was
// actually removed.
func (r *SocialRepository) UnlikeGroup(userID, groupID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&models.LikedGroup{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
