package definition

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-intake/pkg/model"
)

// MemoryStore is an in-process Store used by tests and examples. It clones
// on both sides of the boundary so callers cannot mutate stored state.
type MemoryStore struct {
	mu    sync.RWMutex
	forms map[string]model.FormDefinition
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{forms: make(map[string]model.FormDefinition)}
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context, formID string) (model.FormDefinition, error) {
	if err := ctx.Err(); err != nil {
		return model.FormDefinition{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.forms[formID]
	if !ok {
		return model.FormDefinition{}, fmt.Errorf("form %q: %w", formID, ErrNotFound)
	}
	return def.Clone(), nil
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, formID string, def model.FormDefinition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[formID] = def.Clone()
	return nil
}
