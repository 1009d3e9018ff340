package service

import (
	"testing"
	"time"

	"github.com/angelina-2003/HushHours/internal/apperr"
	"github.com/angelina-2003/HushHours/internal/models"
	"github.com/angelina-2003/HushHours/internal/testutil"
)

func newGroupFixture() (*GroupService, *MockGroupRepository, *MockUserRepository) {
	groupRepo := NewMockGroupRepository()
	userRepo := NewMockUserRepository()
	userRepo.AddUser(&models.User{ID: 1, Username: "alice", MessageColor: "#112233"})
	userRepo.AddUser(&models.User{ID: 2, Username: "bob"})
	return NewGroupService(groupRepo, userRepo), groupRepo, userRepo
}

func TestGroupService_CreateGroup(t *testing.T) {
	helper := testutil.NewTestHelper(t)

	t.Run("creator becomes the first member", func(t *testing.T) {
		groupService, groupRepo, _ := newGroupFixture()

		group, err := groupService.CreateGroup("  Night Owls  ", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		helper.AssertEqual(group.Name, "Night Owls", "name trimmed")
		helper.AssertEqual(group.CreatedBy, uint(1), "creator")

		isMember, _ := groupRepo.IsMember(group.ID, 1)
		helper.AssertEqual(isMember, true, "creator membership")
		helper.AssertEqual(groupRepo.MemberCount(group.ID), 1, "member count")
	})

	t.Run("blank name rejected", func(t *testing.T) {
		groupService, _, _ := newGroupFixture()
		_, err := groupService.CreateGroup("   ", 1)
		if !apperr.Is(err, apperr.CodeInvalidInput) {
			t.Errorf("expected invalid input error, got %v", err)
		}
	})
}

func TestGroupService_JoinGroup(t *testing.T) {
	helper := testutil.NewTestHelper(t)

	t.Run("join then rejoin stays at one row", func(t *testing.T) {
		groupService, groupRepo, _ := newGroupFixture()
		group, _ := groupService.CreateGroup("Night Owls", 1)

		for i := 0; i < 3; i++ {
			if err := groupService.JoinGroup(group.ID, 2); err != nil {
				t.Fatalf("join %d failed: %v", i, err)
			}
		}
		helper.AssertEqual(groupRepo.MemberCount(group.ID), 2, "creator plus one joiner")
	})

	t.Run("missing group", func(t *testing.T) {
		groupService, _, _ := newGroupFixture()
		err := groupService.JoinGroup(99, 2)
		if !apperr.Is(err, apperr.CodeNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestGroupService_SendMessage(t *testing.T) {
	helper := testutil.NewTestHelper(t)

	t.Run("member posts with color snapshot", func(t *testing.T) {
		groupService, _, userRepo := newGroupFixture()
		group, _ := groupService.CreateGroup("Night Owls", 1)

		message, err := groupService.SendMessage(group.ID, 1, "evening all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		helper.AssertEqual(message.MessageColor, "#112233", "snapshot of sender color")

		// A later color change leaves the stored message untouched.
		if err := userRepo.UpdateMessageColor(1, "#abcdef"); err != nil {
			t.Fatalf("color update failed: %v", err)
		}
		out, err := groupService.ListMessages(group.ID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		helper.AssertEqual(out[0].MessageColor, "#112233", "old message keeps its snapshot")

		second, err := groupService.SendMessage(group.ID, 1, "still here")
		if err != nil {
			t.Fatalf("second send failed: %v", err)
		}
		helper.AssertEqual(second.MessageColor, "#abcdef", "new message takes new color")
	})

	t.Run("sender without a color falls back to the default", func(t *testing.T) {
		groupService, _, _ := newGroupFixture()
		group, _ := groupService.CreateGroup("Night Owls", 2)

		message, err := groupService.SendMessage(group.ID, 2, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		helper.AssertEqual(message.MessageColor, models.DefaultMessageColor, "default color")
	})

	t.Run("non-member denied with no row written", func(t *testing.T) {
		groupService, groupRepo, _ := newGroupFixture()
		group, _ := groupService.CreateGroup("Night Owls", 1)

		_, err := groupService.SendMessage(group.ID, 2, "let me in")
		if !apperr.Is(err, apperr.CodeAccessDenied) {
			t.Errorf("expected access denied error, got %v", err)
		}
		helper.AssertEqual(groupRepo.MessageCount(group.ID), 0, "no row written")

		// After joining the same send succeeds.
		if err := groupService.JoinGroup(group.ID, 2); err != nil {
			t.Fatalf("join failed: %v", err)
		}
		if _, err := groupService.SendMessage(group.ID, 2, "let me in"); err != nil {
			t.Errorf("member send failed: %v", err)
		}
	})

	t.Run("missing group and blank content", func(t *testing.T) {
		groupService, _, _ := newGroupFixture()
		group, _ := groupService.CreateGroup("Night Owls", 1)

		if _, err := groupService.SendMessage(99, 1, "hello"); !apperr.Is(err, apperr.CodeNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
		if _, err := groupService.SendMessage(group.ID, 1, "   "); !apperr.Is(err, apperr.CodeInvalidInput) {
			t.Errorf("expected invalid input error, got %v", err)
		}
	})
}

func TestGroupService_ListMessages(t *testing.T) {
	helper := testutil.NewTestHelper(t)

	t.Run("reads are public", func(t *testing.T) {
		groupService, _, _ := newGroupFixture()
		group, _ := groupService.CreateGroup("Night Owls", 1)
		if _, err := groupService.SendMessage(group.ID, 1, "hello"); err != nil {
			t.Fatalf("send failed: %v", err)
		}

		// User 2 never joined but can still read.
		out, err := groupService.ListMessages(group.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		helper.AssertEqual(len(out), 1, "message count")
	})

	t.Run("ordered by timestamp then id", func(t *testing.T) {
		groupService, groupRepo, _ := newGroupFixture()
		group, _ := groupService.CreateGroup("Night Owls", 1)

		base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
		groupRepo.AddGroupMessage(&models.GroupMessage{ID: 2, GroupID: group.ID, SenderID: 1, Content: "second", MessageColor: "#112233", CreatedAt: base})
		groupRepo.AddGroupMessage(&models.GroupMessage{ID: 1, GroupID: group.ID, SenderID: 1, Content: "first", MessageColor: "#112233", CreatedAt: base})

		out, err := groupService.ListMessages(group.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		helper.AssertEqual(out[0].Content, "first", "id tie-break")
		helper.AssertEqual(out[1].Content, "second", "id tie-break")
	})

	t.Run("missing group", func(t *testing.T) {
		groupService, _, _ := newGroupFixture()
		_, err := groupService.ListMessages(99)
		if !apperr.Is(err, apperr.CodeNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestGroupService_GetGroupInfo(t *testing.T) {
	helper := testutil.NewTestHelper(t)

	groupService, _, _ := newGroupFixture()
	group, _ := groupService.CreateGroup("Night Owls", 1)
	if err := groupService.JoinGroup(group.ID, 2); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	t.Run("member sees the roster", func(t *testing.T) {
		info, err := groupService.GetGroupInfo(group.ID, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		helper.AssertEqual(info.Name, "Night Owls", "name")
		helper.AssertEqual(len(info.Members), 2, "roster size")
		helper.AssertEqual(info.Members[0].UserID, uint(1), "creator joined first")
	})

	t.Run("non-member denied", func(t *testing.T) {
		_, err := groupService.GetGroupInfo(group.ID, 3)
		if !apperr.Is(err, apperr.CodeAccessDenied) {
			t.Errorf("expected access denied error, got %v", err)
		}
	})

	t.Run("missing group", func(t *testing.T) {
		_, err := groupService.GetGroupInfo(99, 1)
		if !apperr.Is(err, apperr.CodeNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestGroupService_Listings(t *testing.T) {
	helper := testutil.NewTestHelper(t)

	groupService, _, _ := newGroupFixture()
	mine, _ := groupService.CreateGroup("Mine", 1)
	if _, err := groupService.CreateGroup("Theirs", 2); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := groupService.ListGroups(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d groups, want 2", len(all))
	}
	helper.AssertEqual(all[0].GroupID, mine.ID, "member groups listed first")
	helper.AssertEqual(all[0].IsMember, true, "membership annotation")
	helper.AssertEqual(all[1].IsMember, false, "membership annotation")

	joined, err := groupService.ListJoinedGroups(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(joined) != 1 {
		t.Fatalf("got %d joined groups, want 1", len(joined))
	}
	helper.AssertEqual(joined[0].GroupID, mine.ID, "joined group")
}
