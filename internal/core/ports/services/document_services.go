package services

import (
	"context"
	"io"

	"github.com/efileconnect/efc_backend/internal/core/domain"
	"github.com/efileconnect/efc_backend/internal/dto"
)

// DocumentReaderSvc defines read operations over the document registry.
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves a single document.
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// GetDocumentByReceiptNumber retrieves a document by its external
	// reference key.
	GetDocumentByReceiptNumber(ctx context.Context, receiptNumber string) (*domain.Document, error)

	// SearchDocuments applies a composable criteria conjunction, paginated
	// and sorted by upload time descending.
	SearchDocuments(ctx context.Context, criteria dto.DocumentSearchCriteria) (*dto.ListDocumentsResponse, error)

	// ListDocumentsByCase retrieves the documents filed against a case.
	ListDocumentsByCase(ctx context.Context, caseID string) ([]domain.Document, error)

	// DownloadDocument streams a document's stored content. The caller closes
	// the reader.
	DownloadDocument(ctx context.Context, documentID string) (io.ReadCloser, *domain.Document, error)
}

// DocumentLifecycleSvc defines the state-machine transition operations. Each
// call validates the transition against the lifecycle table, applies the
// capability policy for the acting user, and persists the new state together
// with its audit record atomically.
type DocumentLifecycleSvc interface {
	// UploadDocument validates and stores content, then creates the document
	// in DRAFT with its first history record.
	UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, content io.Reader, size int64, filename string, actorID string) (*domain.Document, error)

	// SubmitDocument moves DRAFT to SUBMITTED and routes the document to its
	// target department.
	SubmitDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error)

	// StartReview moves SUBMITTED to UNDER_REVIEW.
	StartReview(ctx context.Context, documentID, actorID string) (*domain.Document, error)

	// ApproveDocument moves UNDER_REVIEW to APPROVED. A document already
	// APPROVED is returned unchanged.
	ApproveDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error)

	// RejectDocument moves UNDER_REVIEW to REJECTED with a mandatory reason.
	RejectDocument(ctx context.Context, documentID, actorID, reason string) (*domain.Document, error)

	// WithdrawDocument moves DRAFT, SUBMITTED or REJECTED to WITHDRAWN.
	WithdrawDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error)

	// ReopenDocument moves REJECTED back to DRAFT for rework.
	ReopenDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error)

	// DeleteDocument removes a document, its history and its blob. Permitted
	// from any state, administrators only.
	DeleteDocument(ctx context.Context, documentID, actorID string) error
}

// DocumentSvcFacade combines all document service interfaces.
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentLifecycleSvc
}
