package domain

import "time"

// DocumentStatus is a lifecycle state of a filed document.
type DocumentStatus string

const (
	StatusDraft       DocumentStatus = "DRAFT"
	StatusSubmitted   DocumentStatus = "SUBMITTED"
	StatusUnderReview DocumentStatus = "UNDER_REVIEW"
	StatusApproved    DocumentStatus = "APPROVED"
	StatusRejected    DocumentStatus = "REJECTED"
	StatusWithdrawn   DocumentStatus = "WITHDRAWN"
)

// allowedTransitions is the full lifecycle table. APPROVED and WITHDRAWN are
// terminal; a status missing from a row's set is an illegal target.
var allowedTransitions = map[DocumentStatus]map[DocumentStatus]struct{}{
	StatusDraft:       {StatusSubmitted: {}, StatusWithdrawn: {}},
	StatusSubmitted:   {StatusUnderReview: {}, StatusWithdrawn: {}},
	StatusUnderReview: {StatusApproved: {}, StatusRejected: {}},
	StatusApproved:    {},
	StatusRejected:    {StatusDraft: {}, StatusWithdrawn: {}},
	StatusWithdrawn:   {},
}

// CanTransitionTo reports whether the lifecycle table permits moving from s to next.
func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	targets, ok := allowedTransitions[s]
	if !ok {
		return false
	}
	_, ok = targets[next]
	return ok
}

// IsTerminal reports whether no further transition is permitted from s.
func (s DocumentStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// IsValid reports whether s is one of the known lifecycle states.
func (s DocumentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// DocumentType categorizes a document and drives department routing at submission.
type DocumentType string

const (
	TypeFinancialReport  DocumentType = "FINANCIAL_REPORT"
	TypeProcurementBid   DocumentType = "PROCUREMENT_BID"
	TypeLegalDocument    DocumentType = "LEGAL_DOCUMENT"
	TypeAuditReport      DocumentType = "AUDIT_REPORT"
	TypeInvestmentReport DocumentType = "INVESTMENT_REPORT"
	TypeGeneral          DocumentType = "GENERAL"
)

// IsValid reports whether t is one of the known document types.
func (t DocumentType) IsValid() bool {
	switch t {
	case TypeFinancialReport, TypeProcurementBid, TypeLegalDocument,
		TypeAuditReport, TypeInvestmentReport, TypeGeneral:
		return true
	}
	return false
}

// Document is the central entity tracked by the lifecycle engine. Status is
// mutated only through the engine's transition operations; every mutation is
// paired atomically with a DocumentStatusHistory append.
type Document struct {
	DocumentID      string         `json:"documentID"` // Primary Key (UUID)
	Title           string         `json:"title"`
	Type            DocumentType   `json:"type"`
	Status          DocumentStatus `json:"status"`
	FilePath        string         `json:"filePath"` // Blob store locator, immutable after upload
	FileSize        int64          `json:"fileSize"` // Bytes
	CaseID          string         `json:"caseID"`   // FK -> cases.case_id, immutable
	UploadedByID    string         `json:"uploadedByID"`
	ApprovedByID    *string        `json:"approvedByID,omitempty"` // Last review decision maker
	RejectionReason *string        `json:"rejectionReason,omitempty"`
	ReceiptNumber   string         `json:"receiptNumber"` // Globally unique external key
	UploadedAt      time.Time      `json:"uploadedAt"`
	ProcessedAt     *time.Time     `json:"processedAt,omitempty"` // Last terminal review decision
	AuditFields
}

// DocumentStatusHistory is one immutable record per status transition.
// History is the source of truth for the audit trail; the document's Status
// field is the fast-path copy of the latest record.
type DocumentStatusHistory struct {
	HistoryID  string         `json:"historyID"` // Primary Key (UUID)
	DocumentID string         `json:"documentID"`
	Status     DocumentStatus `json:"status"`
	Comment    string         `json:"comment"`
	ChangedAt  time.Time      `json:"changedAt"`
}
