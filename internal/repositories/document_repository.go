package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/store"
)

// DocumentRepository defines generic CRUD over any valid collection.
type DocumentRepository interface {
	List(ctx context.Context, collection string, filters map[string]string) ([]models.Document, error)
	Get(ctx context.Context, collection, id string) (models.Document, error)
	Insert(ctx context.Context, collection string, body models.Document) (models.Document, error)
	Patch(ctx context.Context, collection, id string, changes models.Document) (models.Document, error)
	Delete(ctx context.Context, collection, id string) (models.Document, error)
}

// StoreDocumentRepository implements DocumentRepository on a collection
// store. Every read-modify-write holds the collection lock for its full
// span; plain reads rely on WriteAll being atomic and take no lock.
type StoreDocumentRepository struct {
	store store.Store
	locks *store.Locker
}

// NewStoreDocumentRepository creates a new StoreDocumentRepository.
func NewStoreDocumentRepository(st store.Store, locks *store.Locker) *StoreDocumentRepository {
	return &StoreDocumentRepository{store: st, locks: locks}
}

// List returns documents matching every filter, in insertion order. Filter
// values compare against the coerced string form of the document field; a
// document missing the field does not match.
func (r *StoreDocumentRepository) List(ctx context.Context, collection string, filters map[string]string) ([]models.Document, error) {
	docs, err := r.store.ReadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return docs, nil
	}
	matched := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if matchesFilters(doc, filters) {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

// Get returns the document with the given id.
func (r *StoreDocumentRepository) Get(ctx context.Context, collection, id string) (models.Document, error) {
	docs, err := r.store.ReadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	if i := indexByID(docs, id); i >= 0 {
		return docs[i], nil
	}
	return nil, fmt.Errorf("%w: %s %s", ErrNotFound, collection, id)
}

// Insert merges the body with a generated id and creation timestamp and
// appends the document. Caller-supplied id/createdAt are overwritten; the id
// is high-entropy and not re-checked against existing documents.
func (r *StoreDocumentRepository) Insert(ctx context.Context, collection string, body models.Document) (models.Document, error) {
	if err := store.Validate(collection); err != nil {
		return nil, err
	}
	doc := body.Clone()
	if doc == nil {
		doc = models.Document{}
	}
	doc["id"] = uuid.NewString()
	doc["createdAt"] = Timestamp()

	unlock := r.locks.Lock(collection)
	defer unlock()

	docs, err := r.store.ReadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	docs = append(docs, doc)
	if err := r.store.WriteAll(ctx, collection, docs); err != nil {
		return nil, err
	}
	return doc, nil
}

// Patch shallow-merges changes onto the stored document: same-named fields
// are overwritten, unspecified fields stay untouched, and the immutable
// id/createdAt pair cannot be changed.
func (r *StoreDocumentRepository) Patch(ctx context.Context, collection, id string, changes models.Document) (models.Document, error) {
	if err := store.Validate(collection); err != nil {
		return nil, err
	}
	unlock := r.locks.Lock(collection)
	defer unlock()

	docs, err := r.store.ReadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	i := indexByID(docs, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, collection, id)
	}
	merged := MergeDocument(docs[i], changes)
	docs[i] = merged
	if err := r.store.WriteAll(ctx, collection, docs); err != nil {
		return nil, err
	}
	return merged, nil
}

// Delete removes the document and returns it. Deletion is physical and
// immediate.
func (r *StoreDocumentRepository) Delete(ctx context.Context, collection, id string) (models.Document, error) {
	if err := store.Validate(collection); err != nil {
		return nil, err
	}
	unlock := r.locks.Lock(collection)
	defer unlock()

	docs, err := r.store.ReadAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	i := indexByID(docs, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, collection, id)
	}
	removed := docs[i]
	docs = append(docs[:i], docs[i+1:]...)
	if err := r.store.WriteAll(ctx, collection, docs); err != nil {
		return nil, err
	}
	return removed, nil
}

// Timestamp returns the creation timestamp format used for all documents.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// MergeDocument shallow-merges changes onto base, preserving the immutable
// id and createdAt fields of the base document.
func MergeDocument(base, changes models.Document) models.Document {
	merged := base.Clone()
	for k, v := range changes {
		if k == "id" || k == "createdAt" {
			continue
		}
		merged[k] = v
	}
	return merged
}

func matchesFilters(doc models.Document, filters map[string]string) bool {
	for field, want := range filters {
		got, ok := doc[field]
		if !ok {
			return false
		}
		if models.CoerceString(got) != want {
			return false
		}
	}
	return true
}

func indexByID(docs []models.Document, id string) int {
	for i, doc := range docs {
		if doc.ID() == id {
			return i
		}
	}
	return -1
}
