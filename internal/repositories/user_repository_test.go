package repositories_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/repositories"
	"github.com/sajidul-dev/adboard/backend/internal/store"
)

func newUserRepo() *repositories.StoreUserRepository {
	return repositories.NewStoreUserRepository(store.NewMemoryStore(), store.NewLocker())
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	user, err := repo.Signup(ctx, "alice", "p", models.Document{"username": "alice", "password": "p", "bio": "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if user["approvalStatus"] != models.ApprovalPending {
		t.Fatalf("expected pending approval, got %v", user["approvalStatus"])
	}
	if user["isBlocked"] != false {
		t.Fatalf("expected isBlocked=false, got %v", user["isBlocked"])
	}
	if user["bio"] != "hi" {
		t.Fatalf("extra field dropped: %v", user)
	}
	followers, following := models.StringSlice(user["followers"]), models.StringSlice(user["following"])
	if len(followers) != 0 || len(following) != 0 {
		t.Fatalf("expected empty follow sets, got %v / %v", followers, following)
	}
	if user.ID() == "" || models.CoerceString(user["createdAt"]) == "" {
		t.Fatalf("expected id and createdAt, got %v", user)
	}
}

func TestSignupValidationAndConflict(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	if _, err := repo.Signup(ctx, "", "p", nil); !errors.Is(err, repositories.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing username, got %v", err)
	}
	if _, err := repo.Signup(ctx, "alice", "", nil); !errors.Is(err, repositories.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing password, got %v", err)
	}

	if _, err := repo.Signup(ctx, "alice", "p", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Signup(ctx, "alice", "q", nil); !errors.Is(err, repositories.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate username, got %v", err)
	}
	// Usernames are case-sensitive; a different casing is a different name.
	if _, err := repo.Signup(ctx, "Alice", "q", nil); err != nil {
		t.Fatalf("expected case-sensitive uniqueness, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()
	created, err := repo.Signup(ctx, "alice", "secret", nil)
	if err != nil {
		t.Fatal(err)
	}

	user, err := repo.Login(ctx, "alice", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID() != created.ID() {
		t.Fatalf("expected user %s, got %s", created.ID(), user.ID())
	}
	// The stored document comes back whole, password included.
	if user["password"] != "secret" {
		t.Fatalf("expected stored password in response, got %v", user["password"])
	}

	if _, err := repo.Login(ctx, "alice", "wrong"); !errors.Is(err, repositories.ErrAuth) {
		t.Fatalf("expected ErrAuth for wrong password, got %v", err)
	}
	if _, err := repo.Login(ctx, "bob", "secret"); !errors.Is(err, repositories.ErrAuth) {
		t.Fatalf("expected ErrAuth for unknown user, got %v", err)
	}
}

func TestToggleFollow(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()
	a, _ := repo.Signup(ctx, "alice", "p", nil)
	b, _ := repo.Signup(ctx, "bob", "p", nil)

	assertSymmetric := func(t *testing.T, follower, following models.Document, linked bool) {
		t.Helper()
		f := models.UserFromDocument(follower)
		g := models.UserFromDocument(following)
		if f.IsFollowing(g.ID) != linked {
			t.Fatalf("follower side linked=%v, want %v", f.IsFollowing(g.ID), linked)
		}
		inFollowers := false
		for _, id := range g.Followers {
			if id == f.ID {
				inFollowers = true
			}
		}
		if inFollowers != linked {
			t.Fatalf("following side linked=%v, want %v", inFollowers, linked)
		}
	}

	follower, following, err := repo.ToggleFollow(ctx, a.ID(), b.ID())
	if err != nil {
		t.Fatal(err)
	}
	assertSymmetric(t, follower, following, true)

	follower, following, err = repo.ToggleFollow(ctx, a.ID(), b.ID())
	if err != nil {
		t.Fatal(err)
	}
	assertSymmetric(t, follower, following, false)

	// Follow then unfollow returns both users to their original sets.
	origFollower := models.UserFromDocument(follower)
	origFollowing := models.UserFromDocument(following)
	if !reflect.DeepEqual(origFollower.Following, []string{}) || !reflect.DeepEqual(origFollowing.Followers, []string{}) {
		t.Fatalf("toggle pair not restored: %v / %v", origFollower.Following, origFollowing.Followers)
	}
}

func TestToggleFollowErrors(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()
	a, _ := repo.Signup(ctx, "alice", "p", nil)

	if _, _, err := repo.ToggleFollow(ctx, a.ID(), "ghost"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing target, got %v", err)
	}
	if _, _, err := repo.ToggleFollow(ctx, "ghost", a.ID()); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing follower, got %v", err)
	}
	if _, _, err := repo.ToggleFollow(ctx, a.ID(), a.ID()); !errors.Is(err, repositories.ErrValidation) {
		t.Fatalf("expected ErrValidation for self follow, got %v", err)
	}
}
