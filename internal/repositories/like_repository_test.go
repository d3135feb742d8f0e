package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/repositories"
	"github.com/sajidul-dev/adboard/backend/internal/store"
)

func TestApplyLikes(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	locks := store.NewLocker()
	docRepo := repositories.NewStoreDocumentRepository(st, locks)
	likeRepo := repositories.NewStoreLikeRepository(st, locks)

	post, err := docRepo.Insert(ctx, "posts", models.Document{"title": "hello"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := likeRepo.ApplyLikes(ctx, "posts", post.ID(), models.Document{
		"likers": []any{"u1", "u2", "u3"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if models.CoerceString(updated["likesCount"]) != "3" {
		t.Fatalf("expected likesCount=3, got %v", updated["likesCount"])
	}
	likers := models.StringSlice(updated["likers"])
	if len(likers) != 3 || likers[2] != "u3" {
		t.Fatalf("likers not replaced: %v", likers)
	}

	notifs, err := docRepo.List(ctx, "notifications", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(notifs))
	}
	n := notifs[0]
	if n["type"] != models.NotificationLike {
		t.Fatalf("expected type=like, got %v", n["type"])
	}
	if n["collection"] != "posts" || models.CoerceString(n["targetId"]) != post.ID() {
		t.Fatalf("notification does not reference the target: %v", n)
	}
	if models.CoerceString(n["likerId"]) != "u3" {
		t.Fatalf("expected likerId=u3 (most recent liker), got %v", n["likerId"])
	}
}

func TestApplyLikesEmptySet(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	locks := store.NewLocker()
	docRepo := repositories.NewStoreDocumentRepository(st, locks)
	likeRepo := repositories.NewStoreLikeRepository(st, locks)

	ad, _ := docRepo.Insert(ctx, "ads", models.Document{"likers": []any{"u1"}, "likesCount": 1})
	updated, err := likeRepo.ApplyLikes(ctx, "ads", ad.ID(), models.Document{"likers": []any{}})
	if err != nil {
		t.Fatal(err)
	}
	if models.CoerceString(updated["likesCount"]) != "0" {
		t.Fatalf("expected likesCount=0, got %v", updated["likesCount"])
	}

	notifs, _ := docRepo.List(ctx, "notifications", nil)
	if len(notifs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifs))
	}
	// No liker to attribute; likerId is null.
	if notifs[0]["likerId"] != nil {
		t.Fatalf("expected null likerId, got %v", notifs[0]["likerId"])
	}
}

func TestApplyLikesMergesOtherFields(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	locks := store.NewLocker()
	docRepo := repositories.NewStoreDocumentRepository(st, locks)
	likeRepo := repositories.NewStoreLikeRepository(st, locks)

	post, _ := docRepo.Insert(ctx, "posts", models.Document{"title": "old"})
	updated, err := likeRepo.ApplyLikes(ctx, "posts", post.ID(), models.Document{
		"likers": []any{"u1"},
		"title":  "new",
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated["title"] != "new" {
		t.Fatalf("non-likers fields must still merge, got %v", updated["title"])
	}
}

func TestApplyLikesMissingTarget(t *testing.T) {
	st := store.NewMemoryStore()
	likeRepo := repositories.NewStoreLikeRepository(st, store.NewLocker())

	_, err := likeRepo.ApplyLikes(context.Background(), "posts", "missing", models.Document{"likers": []any{"u1"}})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The failed like must not leave a stray notification behind.
	docRepo := repositories.NewStoreDocumentRepository(st, store.NewLocker())
	notifs, _ := docRepo.List(context.Background(), "notifications", nil)
	if len(notifs) != 0 {
		t.Fatalf("expected no notifications, got %d", len(notifs))
	}
}
