package models

// Approval states for a user account.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// User is the typed view of a document in the "users" collection. Extra
// holds caller-supplied fields that are not part of the required shape; they
// are folded back into the document on serialization.
type User struct {
	ID             string
	CreatedAt      string
	Username       string
	Password       string
	ApprovalStatus string
	IsBlocked      bool
	Followers      []string
	Following      []string
	Extra          map[string]any
}

// UserFromDocument extracts the typed user shape from a stored document.
func UserFromDocument(d Document) *User {
	u := &User{
		ID:             CoerceString(d["id"]),
		CreatedAt:      CoerceString(d["createdAt"]),
		Username:       CoerceString(d["username"]),
		Password:       CoerceString(d["password"]),
		ApprovalStatus: CoerceString(d["approvalStatus"]),
		Followers:      StringSlice(d["followers"]),
		Following:      StringSlice(d["following"]),
		Extra:          map[string]any{},
	}
	if blocked, ok := d["isBlocked"].(bool); ok {
		u.IsBlocked = blocked
	}
	for k, v := range d {
		switch k {
		case "id", "createdAt", "username", "password", "approvalStatus", "isBlocked", "followers", "following":
		default:
			u.Extra[k] = v
		}
	}
	return u
}

// Document folds the typed shape and the extension map back into a storable
// document. Required fields win over same-named extras.
func (u *User) Document() Document {
	d := Document{}
	for k, v := range u.Extra {
		d[k] = v
	}
	d["id"] = u.ID
	d["createdAt"] = u.CreatedAt
	d["username"] = u.Username
	d["password"] = u.Password
	d["approvalStatus"] = u.ApprovalStatus
	d["isBlocked"] = u.IsBlocked
	d["followers"] = u.Followers
	d["following"] = u.Following
	return d
}

// IsFollowing reports whether id is present in the user's following set.
func (u *User) IsFollowing(id string) bool {
	for _, f := range u.Following {
		if f == id {
			return true
		}
	}
	return false
}

// SignupRequest carries the required signup fields; the raw body may hold
// arbitrary extra fields that are merged into the created user.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ToggleFollowRequest defines the request body for toggling a follow link.
type ToggleFollowRequest struct {
	FollowerID  string `json:"followerId" validate:"required"`
	FollowingID string `json:"followingId" validate:"required"`
}
