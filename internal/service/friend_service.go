package service

import (
	"errors"

	"github.com/angelina-2003/HushHours/internal/apperr"
	"github.com/angelina-2003/HushHours/internal/models"
	"github.com/angelina-2003/HushHours/internal/repository"
	"gorm.io/gorm"
)

// FriendService derives the friend list from shared conversations. There is
// no request/accept flow: anyone you have messaged is a friend until you mark
// them deleted.
type FriendService struct {
	socialRepo repository.SocialRepositoryInterface
	groupRepo  repository.GroupRepositoryInterface
}

func NewFriendService(socialRepo repository.SocialRepositoryInterface, groupRepo repository.GroupRepositoryInterface) *FriendService {
	return &FriendService{socialRepo: socialRepo, groupRepo: groupRepo}
}

func (s *FriendService) ListFriends(userID uint) ([]models.FriendSummary, error) {
	friends, err := s.socialRepo.ListFriends(userID)
	if err != nil {
		return nil, apperr.Storage("friend list failed", err)
	}
	if friends == nil {
		friends = []models.FriendSummary{}
	}
	return friends, nil
}

// DeleteFriend hides friendID from userID's friend list. The mark is
// one-directional and idempotent; the conversation and its messages stay
// intact, and friendID still sees userID as a friend.
func (s *FriendService) DeleteFriend(userID, friendID uint) error {
	if userID == friendID {
		return apperr.InvalidInput("cannot delete yourself")
	}
	if err := s.socialRepo.MarkFriendDeleted(userID, friendID); err != nil {
		return apperr.Storage("friend delete failed", err)
	}
	return nil
}

// LikeGroup sets the favorite flag on a group. Liking twice is a no-op; the
// returned flag always reflects the resulting state (liked).
func (s *FriendService) LikeGroup(userID, groupID uint) (bool, error) {
	if err := s.requireGroup(groupID); err != nil {
		return false, err
	}
	toggled, err := s.socialRepo.LikeGroup(userID, groupID)
	if err != nil {
		return false, apperr.Storage("group like failed", err)
	}
	return toggled, nil
}

// UnlikeGroup clears the favorite flag. Unliking a group that was never liked
// is a no-op.
func (s *FriendService) UnlikeGroup(userID, groupID uint) (bool, error) {
	if err := s.requireGroup(groupID); err != nil {
		return false, err
	}
	toggled, err := s.socialRepo.UnlikeGroup(userID, groupID)
	if err != nil {
		return false, apperr.Storage("group unlike failed", err)
	}
	return toggled, nil
}

func (s *FriendService) requireGroup(groupID uint) error {
	if _, err := s.groupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("group not found")
		}
		return apperr.Storage("group lookup failed", err)
	}
	return nil
}
