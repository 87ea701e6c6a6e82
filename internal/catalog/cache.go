package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cachedRoster struct {
	roster   *Roster
	loadedAt time.Time
}

// rosterCache keeps parsed rosters keyed by URL until they expire or a run
// finds a drop they cannot resolve.
type rosterCache struct {
	lru *expirable.LRU[string, cachedRoster]
	now func() time.Time
}

func newRosterCache(size int, ttl time.Duration) *rosterCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &rosterCache{
		lru: expirable.NewLRU[string, cachedRoster](size, nil, ttl),
		now: time.Now,
	}
}

// Get returns a cached roster and how long ago it was fetched.
func (c *rosterCache) Get(url string) (*Roster, time.Duration, bool) {
	entry, found := c.lru.Get(url)
	if !found {
		return nil, 0, false
	}
	return entry.roster, c.now().Sub(entry.loadedAt), true
}

func (c *rosterCache) Set(url string, roster *Roster) {
	c.lru.Add(url, cachedRoster{roster: roster, loadedAt: c.now()})
}

func (c *rosterCache) Remove(urls ...string) int {
	removed := 0
	for _, url := range urls {
		if c.lru.Remove(url) {
			removed++
		}
	}
	return removed
}
