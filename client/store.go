package client

import (
	"context"
	"sync"
)

// Status describes the lifecycle of a cached resource.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// Resource is the cached state for one key.
type Resource[T any] struct {
	Status Status
	Value  T
	Err    error
}

type entry[T any] struct {
	resource   Resource[T]
	generation uint64
	cancel     context.CancelFunc
}

// Store is a keyed resource cache. Each Fetch bumps the key's
// generation and cancels the previous in-flight request, so a stale
// response can never overwrite a newer one.
type Store[T any] struct {
	mu         sync.RWMutex
	entries    map[string]*entry[T]
	generation uint64
}

// NewStore creates an empty Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		entries: make(map[string]*entry[T]),
	}
}

// FetchFunc loads the value for a key.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Fetch loads the key's value through fetch, marking it loading first.
// A concurrent Fetch for the same key supersedes this one: the older
// request's context is canceled and its result discarded.
func (s *Store[T]) Fetch(ctx context.Context, key string, fetch FetchFunc[T]) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	current := s.entries[key]
	if current != nil && current.cancel != nil {
		current.cancel()
	}

	s.generation++
	next := &entry[T]{
		resource:   Resource[T]{Status: StatusLoading},
		generation: s.generation,
		cancel:     cancel,
	}
	s.entries[key] = next
	generation := next.generation
	s.mu.Unlock()

	value, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	current = s.entries[key]
	if current == nil || current.generation != generation {
		// Superseded by a newer fetch.
		return
	}

	current.cancel = nil
	cancel()

	if err != nil {
		current.resource = Resource[T]{Status: StatusFailed, Err: err}

		return
	}

	current.resource = Resource[T]{Status: StatusReady, Value: value}
}

// Get returns the current resource state for the key. The second
// return is false when the key has never been fetched.
func (s *Store[T]) Get(key string) (Resource[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current, ok := s.entries[key]
	if !ok {
		return Resource[T]{}, false
	}

	return current.resource, true
}

// Invalidate drops the key, canceling any in-flight fetch for it.
func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[key]
	if !ok {
		return
	}

	if current.cancel != nil {
		current.cancel()
	}

	delete(s.entries, key)
}
