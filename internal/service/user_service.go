package service

import (
	"errors"
	"strings"

	"github.com/angelina-2003/HushHours/internal/apperr"
	"github.com/angelina-2003/HushHours/internal/models"
	"github.com/angelina-2003/HushHours/internal/repository"
	"github.com/angelina-2003/HushHours/internal/validation"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepositoryInterface
	giftRepo repository.GiftRepositoryInterface
}

func NewUserService(userRepo repository.UserRepositoryInterface, giftRepo repository.GiftRepositoryInterface) *UserService {
	return &UserService{userRepo: userRepo, giftRepo: giftRepo}
}

func (s *UserService) GetUserByID(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Storage("user lookup failed", err)
	}
	return user, nil
}

// GetProfile returns the full profile including received-gift counts. Gift
// reads are best-effort: a failure there should not break the profile.
func (s *UserService) GetProfile(userID uint) (*models.UserResponse, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	if s.giftRepo != nil {
		if gifts, err := s.giftRepo.CountsForUser(userID); err == nil {
			resp.Gifts = gifts
		}
	}
	return &resp, nil
}

// SearchUsers performs an exact, case-insensitive username match. The
// requester never appears in their own results.
func (s *UserService) SearchUsers(term string, requesterID uint) ([]models.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.SearchResult{}, nil
	}

	results, err := s.userRepo.SearchExactUsername(term, requesterID, 20)
	if err != nil {
		return nil, apperr.Storage("user search failed", err)
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return results, nil
}

func (s *UserService) UpdateAvatar(userID uint, avatar string) error {
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		return apperr.InvalidInput("avatar is required")
	}

	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}
	if err := s.userRepo.UpdateAvatar(userID, avatar); err != nil {
		return apperr.Storage("avatar update failed", err)
	}
	return nil
}

func (s *UserService) GetMessageColor(userID uint) (string, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	if user.MessageColor == "" {
		return models.DefaultMessageColor, nil
	}
	return user.MessageColor, nil
}

func (s *UserService) SetMessageColor(userID uint, color string) error {
	color = validation.NormalizeMessageColor(color)
	if !validation.ValidateMessageColor(color) {
		return apperr.InvalidInput("color must be a #RRGGBB hex value")
	}

	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}
	if err := s.userRepo.UpdateMessageColor(userID, color); err != nil {
		return apperr.Storage("message color update failed", err)
	}
	return nil
}
