package models

// Notification types.
const (
	NotificationLike = "like"
)

// Notification is the typed view of a document in the "notifications"
// collection. Notifications are appended as side effects of like updates;
// the generic insert path also permits creating them directly.
type Notification struct {
	ID         string
	CreatedAt  string
	Type       string
	Collection string
	TargetID   string
	LikerID    string // empty when the liker is unknown
	Message    string
}

// Document converts the notification into a storable document. LikerID is
// persisted as null when empty, matching the nullable wire shape.
func (n *Notification) Document() Document {
	d := Document{
		"id":         n.ID,
		"createdAt":  n.CreatedAt,
		"type":       n.Type,
		"collection": n.Collection,
		"targetId":   n.TargetID,
		"message":    n.Message,
	}
	if n.LikerID == "" {
		d["likerId"] = nil
	} else {
		d["likerId"] = n.LikerID
	}
	return d
}
