package store

import (
	"context"
	"sync"

	"github.com/sajidul-dev/adboard/backend/internal/models"
)

// MemoryStore keeps collections in memory. Data is lost on restart; used for
// tests and ephemeral deployments. Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]models.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]models.Document)}
}

func (m *MemoryStore) ReadAll(ctx context.Context, collection string) ([]models.Document, error) {
	if err := Validate(collection); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.collections[collection]
	docs := make([]models.Document, 0, len(stored))
	for _, d := range stored {
		docs = append(docs, d.Clone())
	}
	return docs, nil
}

func (m *MemoryStore) WriteAll(ctx context.Context, collection string, docs []models.Document) error {
	if err := Validate(collection); err != nil {
		return err
	}
	copied := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		copied = append(copied, d.Clone())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = copied
	return nil
}
