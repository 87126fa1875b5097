package domain

// Case is the externally-owned grouping entity documents are filed against.
// Case management is a collaborator of this core; only lookup is needed here.
type Case struct {
	CaseID string `json:"caseID"` // Primary Key (UUID)
	Title  string `json:"title"`
	AuditFields
}
