package group

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/murmur-im/groupuser/internal/db/models"
)

const (
	rosterCacheSize = 8192

	// rosterTTL bounds staleness if an invalidation is ever lost.
	// Mutations invalidate synchronously, so converged reads are the
	// norm and the TTL is a safety net.
	rosterTTL = 30 * time.Second
)

// rosterCache holds immutable per-group member snapshots. Snapshots
// are never mutated after insertion; every group mutation drops the
// entry so the next read rebuilds it from the repository.
type rosterCache struct {
	lru *expirable.LRU[int64, []models.GroupMember]
}

func newRosterCache() *rosterCache {
	return &rosterCache{
		lru: expirable.NewLRU[int64, []models.GroupMember](rosterCacheSize, nil, rosterTTL),
	}
}

func (c *rosterCache) Get(groupID int64) ([]models.GroupMember, bool) {
	return c.lru.Get(groupID)
}

func (c *rosterCache) Put(groupID int64, members []models.GroupMember) {
	c.lru.Add(groupID, members)
}

func (c *rosterCache) Invalidate(groupID int64) {
	c.lru.Remove(groupID)
}
