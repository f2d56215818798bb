package cache

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key identifies a logical resource plus its parameters.
type Key string

func CategoriesKey() Key { return "categories" }

func CategoryKey(slug string) Key { return Key("category:" + slug) }

func ProjectsKey(categorySlug string) Key {
	if categorySlug == "" {
		return "projects"
	}
	return Key("projects:" + categorySlug)
}

func ProjectKey(slug string) Key { return Key("project:" + slug) }

func SiteSettingsKey() Key { return "siteSettings" }

func RecentWorkKey(count int) Key { return Key(fmt.Sprintf("recentWork:%d", count)) }

// Store is a session-lifetime keyed cache. Entries have no TTL; they live
// until Invalidate or Reset. Concurrent lookups for the same key share one
// underlying load, and failed loads are never cached, so the next request
// for that key retries.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]any
	group   singleflight.Group
}

func NewStore() *Store {
	return &Store{entries: make(map[Key]any)}
}

func (s *Store) lookup(key Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *Store) get(ctx context.Context, key Key, load func(context.Context) (any, error)) (any, error) {
	if v, ok := s.lookup(key); ok {
		return v, nil
	}
	// The load runs detached from the initiating caller: one consumer
	// leaving must not cancel the shared fetch for the waiters still
	// interested in the result. Cancellation stays per-caller, below.
	ch := s.group.DoChan(string(key), func() (any, error) {
		// A concurrent caller may have populated the entry while this
		// call waited its turn.
		if v, ok := s.lookup(key); ok {
			return v, nil
		}
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.entries[key] = v
		s.mu.Unlock()
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store) Reset() {
	s.mu.Lock()
	s.entries = make(map[Key]any)
	s.mu.Unlock()
}

// Get returns the cached value for key, loading and caching it on a miss.
func Get[T any](ctx context.Context, s *Store, key Key, load func(context.Context) (T, error)) (T, error) {
	v, err := s.get(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
