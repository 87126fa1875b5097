package services

import (
	"context"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// ReportingSvcFacade exposes the read-only audit trail and receipt views.
// Nothing here mutates state; repeated calls with unchanged state yield
// identical output.
type ReportingSvcFacade interface {
	// GetHistory returns the ordered transition sequence for a document,
	// oldest first, including informational routing notes. Fails with
	// ErrNotFound when the document itself does not exist.
	GetHistory(ctx context.Context, documentID string) ([]domain.DocumentStatusHistory, error)

	// GenerateReceipt renders the fixed-layout textual receipt for a document.
	GenerateReceipt(ctx context.Context, documentID string) (string, error)
}
