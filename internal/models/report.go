package models

// Report statuses. Submission forces "new"; resolution forces "resolved".
const (
	ReportStatusNew      = "new"
	ReportStatusResolved = "resolved"
)

// ApprovalRequest defines the body for ad and user approval transitions.
type ApprovalRequest struct {
	Status         string `json:"status"`
	ApprovalStatus string `json:"approvalStatus"`
}

// BlockRequest defines the body for blocking or unblocking a user.
type BlockRequest struct {
	IsBlocked *bool `json:"isBlocked" validate:"required"`
}
