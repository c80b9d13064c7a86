package feedclient

import (
	"context"
	"sync"

	"github.com/avoronin/pikcha/backend/internal/models"
)

// FollowingSource supplies the remote following list for a viewer.
type FollowingSource interface {
	FetchFollowing(ctx context.Context, userID string) ([]models.Follow, error)
}

// FollowCache holds a local ordered set of followee IDs reconciled against
// the remote source of truth. Add and Remove are optimistic local
// projections: the authoritative follow/unfollow calls happen elsewhere and
// the caller uses these to keep rendered state in sync. The cache starts
// stale; Refresh replaces the set wholesale and marks it fresh.
type FollowCache struct {
	src      FollowingSource
	viewerID string

	mu         sync.RWMutex
	ids        []string
	fresh      bool
	refreshing bool
}

// NewFollowCache creates a stale cache for the given viewer.
func NewFollowCache(src FollowingSource, viewerID string) *FollowCache {
	return &FollowCache{src: src, viewerID: viewerID}
}

// Refresh reloads the following list from the remote source and replaces
// the local set. Concurrent calls collapse into the in-flight fetch: the
// late caller returns immediately without issuing a second request.
func (fc *FollowCache) Refresh(ctx context.Context) error {
	fc.mu.Lock()
	if fc.refreshing {
		fc.mu.Unlock()
		return nil
	}
	fc.refreshing = true
	fc.mu.Unlock()

	follows, err := fc.src.FetchFollowing(ctx, fc.viewerID)

	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.refreshing = false
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.UserID)
	}
	fc.ids = ids
	fc.fresh = true
	return nil
}

// Fresh reports whether the cache has been hydrated since creation or the
// last Invalidate.
func (fc *FollowCache) Fresh() bool {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return fc.fresh
}

// Invalidate marks the cache stale so the next render path triggers a
// Refresh.
func (fc *FollowCache) Invalidate() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.fresh = false
}

// Contains reports whether the viewer follows the given user according to
// the local set.
func (fc *FollowCache) Contains(userID string) bool {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	for _, id := range fc.ids {
		if id == userID {
			return true
		}
	}
	return false
}

// Add records a follow locally. Adding an already-present identity is a
// no-op, the set never holds duplicates.
func (fc *FollowCache) Add(userID string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	for _, id := range fc.ids {
		if id == userID {
			return
		}
	}
	fc.ids = append(fc.ids, userID)
}

// Remove drops a followee from the local set.
func (fc *FollowCache) Remove(userID string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	filtered := fc.ids[:0]
	for _, id := range fc.ids {
		if id != userID {
			filtered = append(filtered, id)
		}
	}
	fc.ids = filtered
}

// Following returns a copy of the local followee set in insertion order.
func (fc *FollowCache) Following() []string {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	out := make([]string, len(fc.ids))
	copy(out, fc.ids)
	return out
}
