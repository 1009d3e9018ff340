package cache

import (
	"fmt"
	"time"

	"github.com/angelina-2003/HushHours/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	ConversationListTTL = 30 * time.Second
	GroupListTTL        = 30 * time.Second
)

// summaryStore is the slice of RedisCache the summary cache uses.
type summaryStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	DeletePattern(pattern string) error
}

// SummaryCache holds the per-user conversation and group directory listings.
// These are the hottest polled endpoints; a short TTL keeps previews fresh
// while absorbing the poll loop. All methods are nil-safe so the server runs
// without Redis.
type SummaryCache struct {
	store summaryStore
}

func NewSummaryCache(redis *RedisCache) *SummaryCache {
	sc := &SummaryCache{}
	if redis != nil {
		sc.store = redis
	}
	return sc
}

func conversationListKey(userID uint) string {
	return fmt.Sprintf("convlist:%d", userID)
}

func groupListKey(userID uint) string {
	return fmt.Sprintf("grouplist:%d", userID)
}

// GetConversations retrieves a cached conversation list
func (sc *SummaryCache) GetConversations(userID uint) ([]models.ConversationSummary, bool) {
	if sc == nil || sc.store == nil {
		return nil, false
	}
	data, err := sc.store.Get(conversationListKey(userID))
	if err != nil || data == nil {
		return nil, false
	}

	var summaries []models.ConversationSummary
	if err := msgpack.Unmarshal(data, &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

// SetConversations caches a conversation list
func (sc *SummaryCache) SetConversations(userID uint, summaries []models.ConversationSummary) error {
	if sc == nil || sc.store == nil {
		return nil
	}
	data, err := msgpack.Marshal(summaries)
	if err != nil {
		return err
	}
	return sc.store.Set(conversationListKey(userID), data, ConversationListTTL)
}

// InvalidateConversations drops both participants' cached lists after a send.
func (sc *SummaryCache) InvalidateConversations(userIDs ...uint) {
	if sc == nil || sc.store == nil {
		return
	}
	for _, id := range userIDs {
		_ = sc.store.Delete(conversationListKey(id))
	}
}

// GetGroups retrieves a cached group directory listing
func (sc *SummaryCache) GetGroups(userID uint) ([]models.GroupSummary, bool) {
	if sc == nil || sc.store == nil {
		return nil, false
	}
	data, err := sc.store.Get(groupListKey(userID))
	if err != nil || data == nil {
		return nil, false
	}

	var summaries []models.GroupSummary
	if err := msgpack.Unmarshal(data, &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

// SetGroups caches a group directory listing
func (sc *SummaryCache) SetGroups(userID uint, summaries []models.GroupSummary) error {
	if sc == nil || sc.store == nil {
		return nil
	}
	data, err := msgpack.Marshal(summaries)
	if err != nil {
		return err
	}
	return sc.store.Set(groupListKey(userID), data, GroupListTTL)
}

// InvalidateGroups drops every cached group listing. Group activity is
// visible to all users, so a broad invalidation is the correct one.
func (sc *SummaryCache) InvalidateGroups() {
	if sc == nil || sc.store == nil {
		return
	}
	_ = sc.store.DeletePattern("grouplist:*")
}

// InvalidateGroupsFor drops one user's cached group listing. Like marks are a
// per-user annotation, so only the caller's entry goes stale.
func (sc *SummaryCache) InvalidateGroupsFor(userID uint) {
	if sc == nil || sc.store == nil {
		return
	}
	_ = sc.store.Delete(groupListKey(userID))
}
