package repositories

import (
	"context"
	"time"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// SearchCriteria is the repository-level form of a composable document query.
// Nil fields impose no constraint; all present predicates are ANDed, so the
// same set in any order yields the same result set.
type SearchCriteria struct {
	Status         *domain.DocumentStatus
	Type           *domain.DocumentType
	CaseID         *string
	TitleKeyword   *string // case-insensitive substring match
	UploadedAfter  *time.Time
	UploadedBefore *time.Time
	Limit          int
	Offset         int
}

// DocumentReader defines read operations for document data.
type DocumentReader interface {
	// FindDocumentByID retrieves a document by its unique identifier.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// FindDocumentByReceiptNumber retrieves a document by its receipt number.
	FindDocumentByReceiptNumber(ctx context.Context, receiptNumber string) (*domain.Document, error)

	// SearchDocuments applies the criteria conjunction, sorted by upload time
	// descending. It returns the page and the total match count.
	SearchDocuments(ctx context.Context, criteria SearchCriteria) ([]domain.Document, int64, error)

	// ListDocumentsByCase retrieves all documents filed against a case,
	// newest first.
	ListDocumentsByCase(ctx context.Context, caseID string) ([]domain.Document, error)
}

// DocumentWriter defines write operations for document data. Every write that
// changes status persists the document and its history records in one
// database transaction, so no transition is observable without its audit
// record.
type DocumentWriter interface {
	// SaveDocument persists a new document together with its initial history
	// record atomically.
	SaveDocument(ctx context.Context, doc domain.Document, history domain.DocumentStatusHistory) error

	// TransitionDocument updates the document row guarded by expectedStatus
	// and appends the given history records, all in one transaction. When the
	// row's status no longer equals expectedStatus the update matches zero
	// rows and ErrConflict is returned; the caller re-reads and retries or
	// surfaces an invalid-transition failure.
	TransitionDocument(ctx context.Context, doc domain.Document, expectedStatus domain.DocumentStatus, history []domain.DocumentStatusHistory) error

	// DeleteDocument removes a document and cascades its history records.
	DeleteDocument(ctx context.Context, documentID string) error
}

// HistoryReader defines read operations for the audit trail.
type HistoryReader interface {
	// FindHistoryByDocumentID retrieves every history record for a document,
	// oldest first.
	FindHistoryByDocumentID(ctx context.Context, documentID string) ([]domain.DocumentStatusHistory, error)
}

// DocumentRepositoryFacade combines all document-related repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
	HistoryReader
}
