package objstore

import (
	"context"
	"sync"
	"time"
)

type memObject struct {
	content      []byte
	owner        string
	lastModified time.Time
}

// MemStore is an in-memory ObjectStore used in tests and local development.
// Insertion order is preserved for List.
type MemStore struct {
	mu      sync.RWMutex
	objects map[string]*memObject
	order   []string
	// Now is a clock seam; tests pin it for deterministic timestamps.
	Now func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		objects: make(map[string]*memObject),
		Now:     time.Now,
	}
}

func (s *MemStore) Put(ctx context.Context, key string, content []byte, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[key]; !ok {
		s.order = append(s.order, key)
	}
	s.objects[key] = &memObject{
		content:      append([]byte(nil), content...),
		owner:        owner,
		lastModified: s.Now(),
	}
	return nil
}

func (s *MemStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), obj.content...), nil
}

func (s *MemStore) Head(ctx context.Context, key string) (*ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &ObjectInfo{
		Key:          key,
		Size:         int64(len(obj.content)),
		LastModified: obj.lastModified,
		Owner:        obj.owner,
	}, nil
}

func (s *MemStore) List(ctx context.Context) ([]*ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*ObjectInfo, 0, len(s.order))
	for _, key := range s.order {
		obj := s.objects[key]
		result = append(result, &ObjectInfo{
			Key:          key,
			Size:         int64(len(obj.content)),
			LastModified: obj.lastModified,
			Owner:        obj.owner,
		})
	}
	return result, nil
}
