package service

import (
	"errors"
	"sort"

	"github.com/angelina-2003/HushHours/internal/apperr"
	"github.com/angelina-2003/HushHours/internal/models"
	"github.com/angelina-2003/HushHours/internal/repository"
	"github.com/angelina-2003/HushHours/internal/validation"
	"gorm.io/gorm"
)

type GroupService struct {
	groupRepo repository.GroupRepositoryInterface
	userRepo  repository.UserRepositoryInterface
}

func NewGroupService(groupRepo repository.GroupRepositoryInterface, userRepo repository.UserRepositoryInterface) *GroupService {
	return &GroupService{groupRepo: groupRepo, userRepo: userRepo}
}

// CreateGroup creates a public group with the creator as its first member.
// Both writes happen in one transaction inside the repository.
func (s *GroupService) CreateGroup(name string, creatorID uint) (*models.Group, error) {
	name = validation.TrimAndLimit(name, 100)
	if name == "" {
		return nil, apperr.InvalidInput("group name is required")
	}

	group := &models.Group{Name: name, CreatedBy: creatorID}
	if err := s.groupRepo.CreateWithCreator(group); err != nil {
		return nil, apperr.Storage("group create failed", err)
	}
	return group, nil
}

// JoinGroup is idempotent: joining a group you already belong to succeeds
// without side effects.
func (s *GroupService) JoinGroup(groupID, userID uint) error {
	if _, err := s.groupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("group not found")
		}
		return apperr.Storage("group lookup failed", err)
	}

	if err := s.groupRepo.AddMember(groupID, userID); err != nil {
		return apperr.Storage("group join failed", err)
	}
	return nil
}

// ListGroups returns the public group directory annotated for the requesting
// user: member groups first, then by most recent activity.
func (s *GroupService) ListGroups(userID uint) ([]models.GroupSummary, error) {
	groups, err := s.groupRepo.ListSummaries(userID)
	if err != nil {
		return nil, apperr.Storage("group list failed", err)
	}
	if groups == nil {
		groups = []models.GroupSummary{}
	}
	return groups, nil
}

// ListJoinedGroups returns only the groups the user is a member of.
func (s *GroupService) ListJoinedGroups(userID uint) ([]models.GroupSummary, error) {
	groups, err := s.groupRepo.ListJoined(userID)
	if err != nil {
		return nil, apperr.Storage("joined group list failed", err)
	}
	if groups == nil {
		groups = []models.GroupSummary{}
	}
	return groups, nil
}

// GetGroupInfo returns the group plus its member roster. Unlike message
// reads, the detail view is membership-gated.
func (s *GroupService) GetGroupInfo(groupID, userID uint) (*models.GroupInfo, error) {
	group, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("group not found")
		}
		return nil, apperr.Storage("group lookup failed", err)
	}

	isMember, err := s.groupRepo.IsMember(groupID, userID)
	if err != nil {
		return nil, apperr.Storage("membership check failed", err)
	}
	if !isMember {
		return nil, apperr.AccessDenied("not a member of this group")
	}

	members, err := s.groupRepo.GetMembers(groupID)
	if err != nil {
		return nil, apperr.Storage("member list failed", err)
	}

	return &models.GroupInfo{
		ID:        group.ID,
		Name:      group.Name,
		CreatedBy: group.CreatedBy,
		CreatedAt: group.CreatedAt,
		Members:   members,
	}, nil
}

// ListMessages is public-read: any caller may read any existing group's
// ledger. Only a missing group is an error.
func (s *GroupService) ListMessages(groupID uint) ([]models.GroupMessageResponse, error) {
	if _, err := s.groupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("group not found")
		}
		return nil, apperr.Storage("group lookup failed", err)
	}

	messages, err := s.groupRepo.ListMessages(groupID)
	if err != nil {
		return nil, apperr.Storage("group message list failed", err)
	}

	sortGroupMessages(messages)

	out := make([]models.GroupMessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, messages[i].ToResponse())
	}
	return out, nil
}

// SendMessage is membership-gated. The stored color is a snapshot of the
// sender's bubble color at send time; later color changes leave old messages
// as they were.
func (s *GroupService) SendMessage(groupID, senderID uint, content string) (*models.GroupMessage, error) {
	content = validation.TrimAndLimit(content, validation.MaxMessageLength())
	if content == "" {
		return nil, apperr.InvalidInput("message content is required")
	}

	if _, err := s.groupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("group not found")
		}
		return nil, apperr.Storage("group lookup failed", err)
	}

	isMember, err := s.groupRepo.IsMember(groupID, senderID)
	if err != nil {
		return nil, apperr.Storage("membership check failed", err)
	}
	if !isMember {
		return nil, apperr.AccessDenied("not a member of this group")
	}

	color := models.DefaultMessageColor
	if sender, err := s.userRepo.FindByID(senderID); err == nil && sender.MessageColor != "" {
		color = sender.MessageColor
	}

	message := &models.GroupMessage{
		GroupID:      groupID,
		SenderID:     senderID,
		Content:      content,
		MessageColor: color,
	}
	if err := s.groupRepo.CreateMessage(message); err != nil {
		return nil, apperr.Storage("group message insert failed", err)
	}

	created, err := s.groupRepo.FindMessageByID(message.ID)
	if err != nil {
		return message, nil
	}
	return created, nil
}

func sortGroupMessages(messages []models.GroupMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}
