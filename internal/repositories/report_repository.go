package repositories

import (
	"context"

	"github.com/sajidul-dev/adboard/backend/internal/models"
)

// ReportRepository defines the report lifecycle: submitted as "new",
// moderated to "resolved".
type ReportRepository interface {
	Submit(ctx context.Context, body models.Document) (models.Document, error)
	Resolve(ctx context.Context, id string) (models.Document, error)
}

// StoreReportRepository implements ReportRepository on top of the generic
// document repository.
type StoreReportRepository struct {
	docs DocumentRepository
}

// NewStoreReportRepository creates a new StoreReportRepository.
func NewStoreReportRepository(docs DocumentRepository) *StoreReportRepository {
	return &StoreReportRepository{docs: docs}
}

// Submit inserts a report with status forced to "new"; any caller-supplied
// status is overwritten.
func (r *StoreReportRepository) Submit(ctx context.Context, body models.Document) (models.Document, error) {
	report := body.Clone()
	if report == nil {
		report = models.Document{}
	}
	report["status"] = models.ReportStatusNew
	return r.docs.Insert(ctx, "reports", report)
}

// Resolve forces the report's status to "resolved", ignoring any request
// body.
func (r *StoreReportRepository) Resolve(ctx context.Context, id string) (models.Document, error) {
	return r.docs.Patch(ctx, "reports", id, models.Document{"status": models.ReportStatusResolved})
}
