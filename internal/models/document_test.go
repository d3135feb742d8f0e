package models

import (
	"reflect"
	"testing"
)

func TestCoerceString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{float64(3), "3"},
		{float64(3.5), "3.5"},
		{true, "true"},
	}
	for _, c := range cases {
		if got := CoerceString(c.in); got != c.want {
			t.Errorf("CoerceString(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDocumentClone(t *testing.T) {
	d := Document{"id": "a", "nested": map[string]any{"k": "v"}}
	clone := d.Clone()
	clone["id"] = "b"
	clone["nested"].(map[string]any)["k"] = "changed"
	if d.ID() != "a" || d["nested"].(map[string]any)["k"] != "v" {
		t.Fatalf("clone aliases the original: %v", d)
	}
}

func TestUserDocumentRoundTrip(t *testing.T) {
	u := &User{
		ID:             "u1",
		CreatedAt:      "2026-01-02T03:04:05Z",
		Username:       "alice",
		Password:       "p",
		ApprovalStatus: ApprovalPending,
		Followers:      []string{"u2"},
		Following:      []string{},
		Extra:          map[string]any{"bio": "hi"},
	}
	got := UserFromDocument(u.Document())
	if !reflect.DeepEqual(got, u) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, u)
	}
}

func TestUserFromDocumentAfterJSON(t *testing.T) {
	doc := Document{
		"id":        "u1",
		"username":  "alice",
		"isBlocked": true,
		"followers": []any{"u2", "u3"},
	}
	u := UserFromDocument(doc)
	if !u.IsBlocked {
		t.Fatal("expected blocked user")
	}
	if !reflect.DeepEqual(u.Followers, []string{"u2", "u3"}) {
		t.Fatalf("followers wrong: %v", u.Followers)
	}
	if len(u.Following) != 0 {
		t.Fatalf("expected empty following, got %v", u.Following)
	}
}
