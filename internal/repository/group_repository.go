package repository

import (
	"github.com/angelina-2003/HushHours/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithCreator inserts the group and its creator's membership in one
// transaction. A group without its first member is a bug state, so both rows
// land or neither does.
func (r *GroupRepository) CreateWithCreator(group *models.Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := &models.GroupMember{GroupID: group.ID, UserID: group.CreatedBy}
		return tx.Create(member).Error
	})
}

func (r *GroupRepository) FindByID(id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, id).Error
	return &group, err
}

func (r *GroupRepository) FindByName(name string) (*models.Group, error) {
	var group models.Group
	err := r.db.Where("name = ?", name).First(&group).Error
	return &group, err
}

// AddMember is idempotent: joining a group twice leaves exactly one
// membership row behind.
func (r *GroupRepository) AddMember(groupID, userID uint) error {
	member := &models.GroupMember{GroupID: groupID, UserID: userID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error
}

func (r *GroupRepository) IsMember(groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *GroupRepository) GetMembers(groupID uint) ([]models.GroupMemberInfo, error) {
	query := `
SELECT
	u.id AS user_id,
	u.username,
	COALESCE(NULLIF(u.display_name, ''), u.username) AS display_name,
	u.avatar,
	m.joined_at
FROM group_members m
JOIN users u ON u.id = m.user_id
WHERE m.group_id = ?
ORDER BY m.joined_at ASC
`
	var rows []models.GroupMemberInfo
	err := r.db.Raw(query, groupID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListSummaries returns every public group annotated for the requesting user.
// Member groups sort first, then by most recent activity (last message, or
// creation time for quiet groups).
func (r *GroupRepository) ListSummaries(userID uint) ([]models.GroupSummary, error) {
	query := `
SELECT
	g.id AS group_id,
	g.name,
	g.created_by,
	g.created_at,
	lm.content AS last_message_body,
	lm.created_at AS last_message_time,
	EXISTS (SELECT 1 FROM group_members m WHERE m.group_id = g.id AND m.user_id = ?) AS is_member,
	EXISTS (SELECT 1 FROM liked_groups l WHERE l.group_id = g.id AND l.user_id = ?) AS is_liked
FROM groups g
LEFT JOIN LATERAL (
	SELECT gm.content, gm.created_at
	FROM group_messages gm
	WHERE gm.group_id = g.id
	ORDER BY gm.created_at DESC, gm.id DESC
	LIMIT 1
) lm ON TRUE
ORDER BY is_member DESC, COALESCE(lm.created_at, g.created_at) DESC
`
	var rows []models.GroupSummary
	err := r.db.Raw(query, userID, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListJoined returns only the groups the user belongs to, ordered by recent
// activity.
func (r *GroupRepository) ListJoined(userID uint) ([]models.GroupSummary, error) {
	query := `
SELECT
	g.id AS group_id,
	g.name,
	g.created_by,
	g.created_at,
	lm.content AS last_message_body,
	lm.created_at AS last_message_time,
	TRUE AS is_member,
	EXISTS (SELECT 1 FROM liked_groups l WHERE l.group_id = g.id AND l.user_id = ?) AS is_liked
FROM groups g
JOIN group_members m ON m.group_id = g.id AND m.user_id = ?
LEFT JOIN LATERAL (
	SELECT gm.content, gm.created_at
	FROM group_messages gm
	WHERE gm.group_id = g.id
	ORDER BY gm.created_at DESC, gm.id DESC
	LIMIT 1
) lm ON TRUE
ORDER BY COALESCE(lm.created_at, g.created_at) DESC
`
	var rows []models.GroupSummary
	err := r.db.Raw(query, userID, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GroupRepository) CreateMessage(message *models.GroupMessage) error {
	return r.db.Create(message).Error
}

func (r *GroupRepository) FindMessageByID(id uint) (*models.GroupMessage, error) {
	var message models.GroupMessage
	err := r.db.Preload("Sender").First(&message, id).Error
	return &message, err
}

func (r *GroupRepository) ListMessages(groupID uint) ([]models.GroupMessage, error) {
	var messages []models.GroupMessage
	err := r.db.Preload("Sender").
		Where("group_id = ?", groupID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}
