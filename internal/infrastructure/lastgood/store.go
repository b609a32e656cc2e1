// Package lastgood keeps the most recent successful resolution of the
// process. It is in-memory only and lost on restart.
package lastgood

import (
	"time"

	"github.com/patrickmn/go-cache"

	"numroute/internal/domain/entity"
)

const key = "last-good"

type Entry struct {
	Resolution entity.Resolution
	StoredAt   time.Time
}

// Store is a single slot. Put replaces the entry wholesale; concurrent
// writers race and the last one wins. Entries never expire.
type Store struct {
	items *cache.Cache
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		items: cache.New(cache.NoExpiration, 0),
		now:   time.Now,
	}
}

func (s *Store) Put(resolution entity.Resolution) {
	s.items.Set(key, Entry{
		Resolution: resolution,
		StoredAt:   s.now(),
	}, cache.NoExpiration)
}

func (s *Store) Get() (Entry, bool) {
	v, ok := s.items.Get(key)
	if !ok {
		return Entry{}, false
	}

	entry, ok := v.(Entry)

	return entry, ok
}
