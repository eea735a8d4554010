package storage

import (
	"context"
	"sync"

	"github.com/GreatJeff90/bookstore/internal/repository"
)

// MemoryStore はプロセス内のストレージ（開発・テスト用）。
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]map[string]string{}}
}

func (s *MemoryStore) GetItem(ctx context.Context, profileID string, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[profileID][key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) SetItem(ctx context.Context, profileID string, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[profileID]
	if !ok {
		p = map[string]string{}
		s.items[profileID] = p
	}
	p[key] = value
	return nil
}

func (s *MemoryStore) RemoveItem(ctx context.Context, profileID string, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[profileID]
	if !ok {
		return nil
	}
	delete(p, key)
	if len(p) == 0 {
		delete(s.items, profileID)
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

var _ repository.Storage = (*MemoryStore)(nil)
