package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/efileconnect/efc_backend/internal/apperrors"
	"github.com/efileconnect/efc_backend/internal/core/domain"
	portsrepo "github.com/efileconnect/efc_backend/internal/core/ports/repositories"
	portssvc "github.com/efileconnect/efc_backend/internal/core/ports/services"
	"github.com/efileconnect/efc_backend/internal/dto"
	"github.com/efileconnect/efc_backend/internal/storage"
)

// maxReceiptAttempts bounds the retry loop on receipt number collisions.
const maxReceiptAttempts = 5

// minRejectionReasonLen is the minimum length of a rejection reason, in runes.
const minRejectionReasonLen = 10

type documentService struct {
	BaseService
	docRepo  portsrepo.DocumentRepositoryFacade
	userRepo portsrepo.UserRepositoryFacade
	deptSvc  portssvc.DepartmentSvcFacade
	caseSvc  portssvc.CaseSvcFacade
	blobs    storage.BlobStore
}

// NewDocumentService creates the document lifecycle service.
func NewDocumentService(
	docRepo portsrepo.DocumentRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	deptSvc portssvc.DepartmentSvcFacade,
	caseSvc portssvc.CaseSvcFacade,
	blobs storage.BlobStore,
) portssvc.DocumentSvcFacade {
	return &documentService{
		docRepo:  docRepo,
		userRepo: userRepo,
		deptSvc:  deptSvc,
		caseSvc:  caseSvc,
		blobs:    blobs,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// --- Reads ---

func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find document", slog.String("document_id", documentID))
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) GetDocumentByReceiptNumber(ctx context.Context, receiptNumber string) (*domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find document by receipt number", slog.String("receipt_number", receiptNumber))
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) SearchDocuments(ctx context.Context, criteria dto.DocumentSearchCriteria) (*dto.ListDocumentsResponse, error) {
	limit := criteria.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := criteria.Offset
	if offset < 0 {
		offset = 0
	}

	repoCriteria := portsrepo.SearchCriteria{
		Status:         criteria.Status,
		Type:           criteria.Type,
		CaseID:         criteria.CaseID,
		TitleKeyword:   criteria.TitleKeyword,
		UploadedAfter:  criteria.UploadedAfter,
		UploadedBefore: criteria.UploadedBefore,
		Limit:          limit,
		Offset:         offset,
	}
	if criteria.Status != nil && !criteria.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *criteria.Status)
	}
	if criteria.Type != nil && !criteria.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, *criteria.Type)
	}

	docs, total, err := s.docRepo.SearchDocuments(ctx, repoCriteria)
	if err != nil {
		s.LogError(ctx, err, "Failed to search documents")
		return nil, err
	}
	resp := dto.ToListDocumentsResponse(docs, total, limit, offset)
	return &resp, nil
}

func (s *documentService) ListDocumentsByCase(ctx context.Context, caseID string) ([]domain.Document, error) {
	exists, err := s.caseSvc.CaseExists(ctx, caseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check case existence", slog.String("case_id", caseID))
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: case %s", apperrors.ErrNotFound, caseID)
	}
	return s.docRepo.ListDocumentsByCase(ctx, caseID)
}

func (s *documentService) DownloadDocument(ctx context.Context, documentID string) (io.ReadCloser, *domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	content, err := s.blobs.Load(ctx, doc.FilePath)
	if err != nil {
		s.LogError(ctx, err, "Failed to load document content",
			slog.String("document_id", documentID),
			slog.String("locator", doc.FilePath))
		return nil, nil, err
	}
	return content, doc, nil
}

// --- Lifecycle ---

func (s *documentService) UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, content io.Reader, size int64, filename string, actorID string) (*domain.Document, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	docType := domain.DocumentType(req.Type)
	if !docType.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, req.Type)
	}
	if _, err := storage.ValidateUpload(size, filename); err != nil {
		return nil, err
	}

	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}

	exists, err := s.caseSvc.CaseExists(ctx, req.CaseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check case existence", slog.String("case_id", req.CaseID))
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: case %s", apperrors.ErrNotFound, req.CaseID)
	}

	// Content goes to the blob store before the registry row exists. A
	// failure past this point leaves an orphan blob at worst, never a
	// document without content.
	locator, err := s.blobs.Store(ctx, content, size, filename, req.CaseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to store document content", slog.String("case_id", req.CaseID))
		return nil, err
	}

	now := time.Now()
	doc := domain.Document{
		DocumentID:   uuid.NewString(),
		Title:        title,
		Type:         docType,
		Status:       domain.StatusDraft,
		FilePath:     locator,
		FileSize:     size,
		CaseID:       req.CaseID,
		UploadedByID: actor.UserID,
		UploadedAt:   now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	base := generateReceiptNumber(now)
	for attempt := 0; attempt < maxReceiptAttempts; attempt++ {
		doc.ReceiptNumber = base
		if attempt > 0 {
			doc.ReceiptNumber = fmt.Sprintf("%s-%d", base, attempt)
		}
		history := domain.DocumentStatusHistory{
			HistoryID:  uuid.NewString(),
			DocumentID: doc.DocumentID,
			Status:     domain.StatusDraft,
			Comment:    "Document uploaded as draft",
			ChangedAt:  now,
		}
		err = s.docRepo.SaveDocument(ctx, doc, history)
		if err == nil {
			s.LogInfo(ctx, "Document uploaded",
				slog.String("document_id", doc.DocumentID),
				slog.String("receipt_number", doc.ReceiptNumber),
				slog.String("case_id", doc.CaseID))
			return &doc, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			break
		}
		s.LogDebug(ctx, "Receipt number collision, retrying",
			slog.String("receipt_number", doc.ReceiptNumber))
	}

	s.LogError(ctx, err, "Failed to save document", slog.String("document_id", doc.DocumentID))
	// Best effort: the registry row never existed, drop the stored content.
	if delErr := s.blobs.Delete(ctx, locator); delErr != nil {
		s.LogError(ctx, delErr, "Failed to clean up stored content after save failure",
			slog.String("locator", locator))
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		return nil, fmt.Errorf("%w: receipt number generation exhausted retries", apperrors.ErrInternal)
	}
	return nil, err
}

func (s *documentService) SubmitDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	doc, actor, err := s.loadForTransition(ctx, documentID, actorID)
	if err != nil {
		return nil, err
	}
	if !doc.Status.CanTransitionTo(domain.StatusSubmitted) {
		return nil, apperrors.NewInvalidTransitionError(string(doc.Status), string(domain.StatusSubmitted))
	}
	if !domain.CanPerform(*actor, domain.OpSubmit, doc.UploadedByID) {
		return nil, fmt.Errorf("%w: user %s cannot submit document %s", apperrors.ErrForbidden, actor.UserID, documentID)
	}

	dept, err := s.resolveRoutingTarget(ctx, doc)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	history := []domain.DocumentStatusHistory{{
		HistoryID:  uuid.NewString(),
		DocumentID: doc.DocumentID,
		Status:     domain.StatusSubmitted,
		Comment:    fmt.Sprintf("Document submitted for review and routed to %s", dept.Name),
		ChangedAt:  now,
	}}
	if dept.HeadID != nil {
		// Informational note; carries the same status as the transition.
		history = append(history, domain.DocumentStatusHistory{
			HistoryID:  uuid.NewString(),
			DocumentID: doc.DocumentID,
			Status:     domain.StatusSubmitted,
			Comment:    fmt.Sprintf("Document routed to %s department", dept.Name),
			ChangedAt:  now,
		})
	}

	updated := *doc
	updated.Status = domain.StatusSubmitted
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.UserID

	if err := s.applyTransition(ctx, updated, doc.Status, history); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Document submitted",
		slog.String("document_id", doc.DocumentID),
		slog.String("department", dept.Name))
	return &updated, nil
}

func (s *documentService) StartReview(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	doc, actor, err := s.loadForTransition(ctx, documentID, actorID)
	if err != nil {
		return nil, err
	}
	if !doc.Status.CanTransitionTo(domain.StatusUnderReview) {
		return nil, apperrors.NewInvalidTransitionError(string(doc.Status), string(domain.StatusUnderReview))
	}
	if !domain.CanPerform(*actor, domain.OpStartReview, doc.UploadedByID) {
		return nil, fmt.Errorf("%w: user %s cannot review documents", apperrors.ErrForbidden, actor.UserID)
	}

	now := time.Now()
	updated := *doc
	updated.Status = domain.StatusUnderReview
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.UserID

	history := []domain.DocumentStatusHistory{{
		HistoryID:  uuid.NewString(),
		DocumentID: doc.DocumentID,
		Status:     domain.StatusUnderReview,
		Comment:    fmt.Sprintf("Review started by %s", actor.Name),
		ChangedAt:  now,
	}}
	if err := s.applyTransition(ctx, updated, doc.Status, history); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Document review started", slog.String("document_id", doc.DocumentID))
	return &updated, nil
}

func (s *documentService) ApproveDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	doc, actor, err := s.loadForTransition(ctx, documentID, actorID)
	if err != nil {
		return nil, err
	}
	if doc.Status == domain.StatusApproved {
		// Approving an approved document is a no-op, not an error.
		return doc, nil
	}
	if !doc.Status.CanTransitionTo(domain.StatusApproved) {
		return nil, apperrors.NewInvalidTransitionError(string(doc.Status), string(domain.StatusApproved))
	}
	if !domain.CanPerform(*actor, domain.OpApprove, doc.UploadedByID) {
		return nil, fmt.Errorf("%w: user %s cannot approve documents", apperrors.ErrForbidden, actor.UserID)
	}

	now := time.Now()
	updated := *doc
	updated.Status = domain.StatusApproved
	updated.ApprovedByID = &actor.UserID
	updated.RejectionReason = nil
	updated.ProcessedAt = &now
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.UserID

	history := []domain.DocumentStatusHistory{{
		HistoryID:  uuid.NewString(),
		DocumentID: doc.DocumentID,
		Status:     domain.StatusApproved,
		Comment:    fmt.Sprintf("Approved by %s", actor.Name),
		ChangedAt:  now,
	}}
	if err := s.applyTransition(ctx, updated, doc.Status, history); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Document approved", slog.String("document_id", doc.DocumentID))
	return &updated, nil
}

func (s *documentService) RejectDocument(ctx context.Context, documentID, actorID, reason string) (*domain.Document, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) < minRejectionReasonLen {
		return nil, fmt.Errorf("%w: rejection reason must be at least %d characters", apperrors.ErrValidation, minRejectionReasonLen)
	}

	doc, actor, err := s.loadForTransition(ctx, documentID, actorID)
	if err != nil {
		return nil, err
	}
	if !doc.Status.CanTransitionTo(domain.StatusRejected) {
		return nil, apperrors.NewInvalidTransitionError(string(doc.Status), string(domain.StatusRejected))
	}
	if !domain.CanPerform(*actor, domain.OpReject, doc.UploadedByID) {
		return nil, fmt.Errorf("%w: user %s cannot reject documents", apperrors.ErrForbidden, actor.UserID)
	}

	now := time.Now()
	updated := *doc
	updated.Status = domain.StatusRejected
	updated.ApprovedByID = &actor.UserID
	updated.RejectionReason = &reason
	updated.ProcessedAt = &now
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.UserID

	history := []domain.DocumentStatusHistory{{
		HistoryID:  uuid.NewString(),
		DocumentID: doc.DocumentID,
		Status:     domain.StatusRejected,
		Comment:    reason,
		ChangedAt:  now,
	}}
	if err := s.applyTransition(ctx, updated, doc.Status, history); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Document rejected", slog.String("document_id", doc.DocumentID))
	return &updated, nil
}

func (s *documentService) WithdrawDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	doc, actor, err := s.loadForTransition(ctx, documentID, actorID)
	if err != nil {
		return nil, err
	}
	if !doc.Status.CanTransitionTo(domain.StatusWithdrawn) {
		return nil, apperrors.NewInvalidTransitionError(string(doc.Status), string(domain.StatusWithdrawn))
	}
	if !domain.CanPerform(*actor, domain.OpWithdraw, doc.UploadedByID) {
		return nil, fmt.Errorf("%w: user %s cannot withdraw document %s", apperrors.ErrForbidden, actor.UserID, documentID)
	}

	now := time.Now()
	updated := *doc
	updated.Status = domain.StatusWithdrawn
	updated.ProcessedAt = &now
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.UserID

	history := []domain.DocumentStatusHistory{{
		HistoryID:  uuid.NewString(),
		DocumentID: doc.DocumentID,
		Status:     domain.StatusWithdrawn,
		Comment:    fmt.Sprintf("Document withdrawn by %s", actor.Name),
		ChangedAt:  now,
	}}
	if err := s.applyTransition(ctx, updated, doc.Status, history); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Document withdrawn", slog.String("document_id", doc.DocumentID))
	return &updated, nil
}

func (s *documentService) ReopenDocument(ctx context.Context, documentID, actorID string) (*domain.Document, error) {
	doc, actor, err := s.loadForTransition(ctx, documentID, actorID)
	if err != nil {
		return nil, err
	}
	if !doc.Status.CanTransitionTo(domain.StatusDraft) {
		return nil, apperrors.NewInvalidTransitionError(string(doc.Status), string(domain.StatusDraft))
	}
	if !domain.CanPerform(*actor, domain.OpReopen, doc.UploadedByID) {
		return nil, fmt.Errorf("%w: user %s cannot reopen document %s", apperrors.ErrForbidden, actor.UserID, documentID)
	}

	// The rejection reason stays on the document until a later approval
	// clears it; the rework draft keeps the reviewer's feedback visible.
	now := time.Now()
	updated := *doc
	updated.Status = domain.StatusDraft
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.UserID

	history := []domain.DocumentStatusHistory{{
		HistoryID:  uuid.NewString(),
		DocumentID: doc.DocumentID,
		Status:     domain.StatusDraft,
		Comment:    fmt.Sprintf("Document returned to draft by %s", actor.Name),
		ChangedAt:  now,
	}}
	if err := s.applyTransition(ctx, updated, doc.Status, history); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Document reopened", slog.String("document_id", doc.DocumentID))
	return &updated, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, documentID, actorID string) error {
	doc, actor, err := s.loadForTransition(ctx, documentID, actorID)
	if err != nil {
		return err
	}
	if !domain.CanPerform(*actor, domain.OpDelete, doc.UploadedByID) {
		return fmt.Errorf("%w: user %s cannot delete documents", apperrors.ErrForbidden, actor.UserID)
	}
	if err := s.docRepo.DeleteDocument(ctx, documentID); err != nil {
		s.LogError(ctx, err, "Failed to delete document", slog.String("document_id", documentID))
		return err
	}
	// The registry row is gone; a failure here leaves an orphan blob only.
	if err := s.blobs.Delete(ctx, doc.FilePath); err != nil {
		s.LogError(ctx, err, "Failed to delete stored content",
			slog.String("document_id", documentID),
			slog.String("locator", doc.FilePath))
	}
	s.LogInfo(ctx, "Document deleted", slog.String("document_id", documentID))
	return nil
}

// --- Helpers ---

// loadForTransition hydrates the document and the acting user for a guarded
// operation.
func (s *documentService) loadForTransition(ctx context.Context, documentID, actorID string) (*domain.Document, *domain.User, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}
	return doc, actor, nil
}

// resolveRoutingTarget maps the document type to its review department. An
// empty route name means the uploader's own department.
func (s *documentService) resolveRoutingTarget(ctx context.Context, doc *domain.Document) (*domain.Department, error) {
	name := domain.RouteTargetName(doc.Type)
	if name != "" {
		return s.deptSvc.GetDepartmentByName(ctx, name)
	}
	uploader, err := s.userRepo.FindUserByID(ctx, doc.UploadedByID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve uploader: %w", err)
	}
	if uploader.DepartmentID == nil {
		return nil, fmt.Errorf("%w: uploader %s has no department to route to", apperrors.ErrNotFound, uploader.UserID)
	}
	return s.deptSvc.GetDepartmentByID(ctx, *uploader.DepartmentID)
}

// applyTransition persists a guarded status change together with its history
// records. ErrConflict means the expected status no longer held when the
// write ran; the caller's caller re-reads and retries.
func (s *documentService) applyTransition(ctx context.Context, updated domain.Document, expected domain.DocumentStatus, history []domain.DocumentStatusHistory) error {
	err := s.docRepo.TransitionDocument(ctx, updated, expected, history)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogInfo(ctx, "Concurrent transition detected",
				slog.String("document_id", updated.DocumentID),
				slog.String("expected_status", string(expected)))
			return err
		}
		s.LogError(ctx, err, "Failed to transition document",
			slog.String("document_id", updated.DocumentID),
			slog.String("target_status", string(updated.Status)))
		return err
	}
	return nil
}

// generateReceiptNumber builds the external reference key handed back to the
// uploader: EF + epoch millis + a short random suffix.
func generateReceiptNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("EF%d-%s", now.UnixMilli(), suffix)
}
