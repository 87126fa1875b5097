package domain

// Department is a directory entry used as a routing target at submission.
// HeadID, when set, names the designated reviewer; routing stays valid
// without one.
type Department struct {
	DepartmentID string  `json:"departmentID"` // Primary Key (UUID)
	Name         string  `json:"name"`         // Unique, matched case-insensitively
	HeadID       *string `json:"headID,omitempty"`
	AuditFields
}
