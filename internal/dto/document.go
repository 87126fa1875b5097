package dto

import (
	"time"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// UploadDocumentRequest carries the metadata of a document upload. The file
// content arrives as a multipart part alongside it.
type UploadDocumentRequest struct {
	Title  string `form:"title" binding:"required"`
	Type   string `form:"type" binding:"required,documenttype"`
	CaseID string `form:"caseID" binding:"required"`
}

// RejectDocumentRequest carries the mandatory rejection reason.
type RejectDocumentRequest struct {
	Reason string `json:"reason" binding:"required,min=10"`
}

// DocumentSearchCriteria is an ordered conjunction of optional predicates.
// A nil field imposes no constraint; the predicate set is order-independent.
type DocumentSearchCriteria struct {
	Status         *domain.DocumentStatus `form:"status" binding:"omitempty,documentstatus"`
	Type           *domain.DocumentType   `form:"type" binding:"omitempty,documenttype"`
	CaseID         *string                `form:"caseID"`
	TitleKeyword   *string                `form:"q"`
	UploadedAfter  *time.Time             `form:"uploadedAfter" time_format:"2006-01-02T15:04:05Z07:00"`
	UploadedBefore *time.Time             `form:"uploadedBefore" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit          int                    `form:"limit,default=20"`
	Offset         int                    `form:"offset,default=0"`
}

// DocumentResponse is the outward representation of a document.
type DocumentResponse struct {
	DocumentID      string     `json:"documentID"`
	Title           string     `json:"title"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	CaseID          string     `json:"caseID"`
	UploadedByID    string     `json:"uploadedByID"`
	ApprovedByID    *string    `json:"approvedByID,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	FileSize        int64      `json:"fileSize"`
	ReceiptNumber   string     `json:"receiptNumber"`
	UploadedAt      time.Time  `json:"uploadedAt"`
	ProcessedAt     *time.Time `json:"processedAt,omitempty"`
}

// ToDocumentResponse converts a domain.Document to its response DTO.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:      d.DocumentID,
		Title:           d.Title,
		Type:            string(d.Type),
		Status:          string(d.Status),
		CaseID:          d.CaseID,
		UploadedByID:    d.UploadedByID,
		ApprovedByID:    d.ApprovedByID,
		RejectionReason: d.RejectionReason,
		FileSize:        d.FileSize,
		ReceiptNumber:   d.ReceiptNumber,
		UploadedAt:      d.UploadedAt,
		ProcessedAt:     d.ProcessedAt,
	}
}

// ListDocumentsResponse wraps a page of search results.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// ToListDocumentsResponse converts a page of domain documents.
func ToListDocumentsResponse(docs []domain.Document, total int64, limit, offset int) ListDocumentsResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentResponse(&docs[i])
	}
	return ListDocumentsResponse{Documents: responses, Total: total, Limit: limit, Offset: offset}
}

// DocumentHistoryResponse is one audit trail entry.
type DocumentHistoryResponse struct {
	Status    string    `json:"status"`
	Comment   string    `json:"comment"`
	ChangedAt time.Time `json:"changedAt"`
}

// ToDocumentHistoryResponses converts history records oldest-first.
func ToDocumentHistoryResponses(records []domain.DocumentStatusHistory) []DocumentHistoryResponse {
	responses := make([]DocumentHistoryResponse, len(records))
	for i, rec := range records {
		responses[i] = DocumentHistoryResponse{
			Status:    string(rec.Status),
			Comment:   rec.Comment,
			ChangedAt: rec.ChangedAt,
		}
	}
	return responses
}
