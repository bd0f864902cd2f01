package kvstore

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Memory — ин-мемори стор для тестов и локальных прогонов.
type Memory struct {
	mu      sync.Mutex
	data    map[string][]byte
	maxSize int
}

func NewMemory(maxSize int) *Memory {
	return &Memory{
		data:    make(map[string][]byte),
		maxSize: maxSize,
	}
}

func (s *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (s *Memory) Set(_ context.Context, key string, value []byte) error {
	if len(value) > s.maxSize {
		return errors.Wrapf(ErrValueTooLarge, "%q: %d bytes", key, len(value))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *Memory) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Memory) MaxValueSize() int { return s.maxSize }

// Len — количество ключей, нужно тестам на уборку старых поколений.
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
