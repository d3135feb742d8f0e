package repositories

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/store"
)

// LikeRepository applies a likers update to a post or ad and fans out a
// notification.
type LikeRepository interface {
	ApplyLikes(ctx context.Context, collection, id string, changes models.Document) (models.Document, error)
}

// StoreLikeRepository implements LikeRepository on the collection store.
type StoreLikeRepository struct {
	store store.Store
	locks *store.Locker
}

// NewStoreLikeRepository creates a new StoreLikeRepository.
func NewStoreLikeRepository(st store.Store, locks *store.Locker) *StoreLikeRepository {
	return &StoreLikeRepository{store: st, locks: locks}
}

// ApplyLikes patches the target document with the given changes, replacing
// its likers set and recomputing likesCount from it, then appends one "like"
// notification. The target write and the notification write are two separate
// collection writes, not a transaction: if the process dies between them the
// like stands and the notification is missing. The notification is
// best-effort for the same reason — a failed append is logged, not surfaced,
// because the like has already committed.
//
// Both collection locks are taken up front in the locker's canonical order
// to keep the two-collection span deadlock-free.
func (r *StoreLikeRepository) ApplyLikes(ctx context.Context, collection, id string, changes models.Document) (models.Document, error) {
	if err := store.Validate(collection); err != nil {
		return nil, err
	}
	likers := models.StringSlice(changes["likers"])

	unlock := r.locks.LockAll(collection, "notifications")
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
	merged["likers"] = likers
	merged["likesCount"] = len(likers)
	docs[i] = merged
	if err := r.store.WriteAll(ctx, collection, docs); err != nil {
		return nil, err
	}

	if err := r.appendNotification(ctx, collection, id, likers); err != nil {
		log.Printf("like notification for %s %s not recorded: %v", collection, id, err)
	}
	return merged, nil
}

func (r *StoreLikeRepository) appendNotification(ctx context.Context, collection, id string, likers []string) error {
	notif := models.Notification{
		ID:         uuid.NewString(),
		CreatedAt:  Timestamp(),
		Type:       models.NotificationLike,
		Collection: collection,
		TargetID:   id,
		Message:    "Your " + singular(collection) + " has a new like",
	}
	if len(likers) > 0 {
		notif.LikerID = likers[len(likers)-1]
	}

	docs, err := r.store.ReadAll(ctx, "notifications")
	if err != nil {
		return err
	}
	docs = append(docs, notif.Document())
	return r.store.WriteAll(ctx, "notifications", docs)
}

func singular(collection string) string {
	switch collection {
	case "posts":
		return "post"
	case "ads":
		return "ad"
	default:
		return "item"
	}
}
