package contact

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store for tests and local runs. It keeps the
// same replace-on-put semantics as the DynamoDB store.
type MemoryStore struct {
	mu   sync.RWMutex
	subs map[string]Submission
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		subs: make(map[string]Submission),
	}
}

// Put stores a submission, replacing any prior record with the same email.
func (s *MemoryStore) Put(ctx context.Context, sub *Submission) error {
	if sub == nil {
		return errors.New("contact: submission cannot be nil")
	}
	if sub.Email == "" {
		return errors.New("contact: submission email cannot be empty")
	}

	s.mu.Lock()
	s.subs[sub.Email] = *sub
	s.mu.Unlock()
	return nil
}

// Get retrieves a submission by email.
func (s *MemoryStore) Get(ctx context.Context, email string) (*Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &sub, nil
}

// List returns all submissions ordered by email.
func (s *MemoryStore) List(ctx context.Context) ([]Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]Submission, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Email < subs[j].Email })
	return subs, nil
}
