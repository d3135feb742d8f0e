package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/store"
)

// UserRepository defines the account and follow-graph operations on the
// "users" collection.
type UserRepository interface {
	Signup(ctx context.Context, username, password string, extra models.Document) (models.Document, error)
	Login(ctx context.Context, username, password string) (models.Document, error)
	ToggleFollow(ctx context.Context, followerID, followingID string) (follower, following models.Document, err error)
}

// StoreUserRepository implements UserRepository on the collection store.
type StoreUserRepository struct {
	store store.Store
	locks *store.Locker
}

// NewStoreUserRepository creates a new StoreUserRepository.
func NewStoreUserRepository(st store.Store, locks *store.Locker) *StoreUserRepository {
	return &StoreUserRepository{store: st, locks: locks}
}

// Signup creates a user with approvalStatus "pending", no followers and no
// following, merging any extra submitted fields. The username must not
// already exist; the uniqueness check and the insert run under the same
// users lock so two concurrent signups cannot both claim a name.
func (r *StoreUserRepository) Signup(ctx context.Context, username, password string, extra models.Document) (models.Document, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	unlock := r.locks.Lock("users")
	defer unlock()

	docs, err := r.store.ReadAll(ctx, "users")
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if models.CoerceString(doc["username"]) == username {
			return nil, fmt.Errorf("%w: username %q already taken", ErrConflict, username)
		}
	}

	user := models.User{
		ID:             uuid.NewString(),
		CreatedAt:      Timestamp(),
		Username:       username,
		Password:       password,
		ApprovalStatus: models.ApprovalPending,
		IsBlocked:      false,
		Followers:      []string{},
		Following:      []string{},
		Extra:          map[string]any{},
	}
	for k, v := range extra {
		switch k {
		case "username", "password", "id", "createdAt":
		default:
			user.Extra[k] = v
		}
	}

	doc := user.Document()
	docs = append(docs, doc)
	if err := r.store.WriteAll(ctx, "users", docs); err != nil {
		return nil, err
	}
	return doc, nil
}

// Login returns the stored user document on an exact username and password
// match. The password field is returned verbatim with the rest of the
// document; credentials are a placeholder, not a hardened mechanism.
func (r *StoreUserRepository) Login(ctx context.Context, username, password string) (models.Document, error) {
	docs, err := r.store.ReadAll(ctx, "users")
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if models.CoerceString(doc["username"]) == username &&
			models.CoerceString(doc["password"]) == password {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("%w: wrong username or password", ErrAuth)
}

// ToggleFollow adds the symmetric follower/following pair when absent and
// removes it when present. Both user documents are written back in a single
// WriteAll on users, so the symmetric link is never observable half-applied.
func (r *StoreUserRepository) ToggleFollow(ctx context.Context, followerID, followingID string) (models.Document, models.Document, error) {
	if followerID == followingID {
		return nil, nil, fmt.Errorf("%w: cannot follow yourself", ErrValidation)
	}

	unlock := r.locks.Lock("users")
	defer unlock()

	docs, err := r.store.ReadAll(ctx, "users")
	if err != nil {
		return nil, nil, err
	}
	fi := indexByID(docs, followerID)
	if fi < 0 {
		return nil, nil, fmt.Errorf("%w: user %s", ErrNotFound, followerID)
	}
	gi := indexByID(docs, followingID)
	if gi < 0 {
		return nil, nil, fmt.Errorf("%w: user %s", ErrNotFound, followingID)
	}

	follower := models.UserFromDocument(docs[fi])
	following := models.UserFromDocument(docs[gi])

	if follower.IsFollowing(followingID) {
		follower.Following = remove(follower.Following, followingID)
		following.Followers = remove(following.Followers, followerID)
	} else {
		follower.Following = append(follower.Following, followingID)
		following.Followers = append(following.Followers, followerID)
	}

	docs[fi] = follower.Document()
	docs[gi] = following.Document()
	if err := r.store.WriteAll(ctx, "users", docs); err != nil {
		return nil, nil, err
	}
	return docs[fi], docs[gi], nil
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
