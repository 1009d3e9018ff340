package repository

import (
	"github.com/angelina-2003/HushHours/internal/models"
	"gorm.io/gorm"
)

// GiftRepository only reads gift counters; awarding gifts belongs to another
// service.
type GiftRepository struct {
	db *gorm.DB
}

func NewGiftRepository(db *gorm.DB) *GiftRepository {
	return &GiftRepository{db: db}
}

func (r *GiftRepository) CountsForUser(userID uint) (map[string]int, error) {
	var gifts []models.UserGift
	err := r.db.Where("user_id = ?", userID).
		Order("gift_type ASC").
		Find(&gifts).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(gifts))
	for _, g := range gifts {
		counts[g.GiftType] = g.Count
	}
	return counts, nil
}
