package repository

import (
	"github.com/angelina-2003/HushHours/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

// FindByUsername is an exact, case-sensitive lookup. Registration and login
// both use it; the case-insensitive path is SearchExactUsername.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

// FindOldest returns the earliest-registered user. The group seeder assigns
// catalog groups to this account.
func (r *UserRepository) FindOldest() (*models.User, error) {
	var user models.User
	err := r.db.Order("id ASC").First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) UpdateAvatar(userID uint, avatar string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("avatar", avatar).Error
}

func (r *UserRepository) UpdateMessageColor(userID uint, color string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("message_color", color).Error
}

// SearchExactUsername matches the term against usernames case-insensitively
// but exactly (no substring matching), excludes the requester, and annotates
// each hit with whether a conversation with the requester already exists.
// Pairs are stored normalized, so the existence probe uses LEAST/GREATEST.
func (r *UserRepository) SearchExactUsername(term string, requesterID uint, limit int) ([]models.SearchResult, error) {
	if limit <= 0 || limit > 20 {
		limit = 20
	}

	query := `
SELECT
	u.id AS user_id,
	u.username,
	COALESCE(NULLIF(u.display_name, ''), u.username) AS display_name,
	u.avatar,
	u.points,
	EXISTS (
		SELECT 1 FROM conversations c
		WHERE c.user_a = LEAST(?::bigint, u.id) AND c.user_b = GREATEST(?::bigint, u.id)
	) AS has_conversation
FROM users u
WHERE LOWER(u.username) = LOWER(?) AND u.id <> ?
ORDER BY u.username ASC
LIMIT ?
`

	var rows []models.SearchResult
	err := r.db.Raw(query, requesterID, requesterID, term, requesterID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
