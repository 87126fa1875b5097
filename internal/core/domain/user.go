package domain

import "time"

// UserRole is the organization-wide role of a user.
type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleCEO         UserRole = "CEO"
	RoleCFO         UserRole = "CFO"
	RoleProcurement UserRole = "PROCUREMENT"
	RoleAccountant  UserRole = "ACCOUNTANT"
	RoleAuditor     UserRole = "AUDITOR"
	RoleIT          UserRole = "IT"
	RoleInvestor    UserRole = "INVESTOR"
)

// User represents an actor in the domain. Actor identity is resolved by the
// caller's authentication layer; services only consume the id and role.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	DepartmentID *string  `json:"departmentID,omitempty"`
	IsActive     bool     `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
