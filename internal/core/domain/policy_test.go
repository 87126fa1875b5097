package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

func userWithRole(role domain.UserRole, userID string) domain.User {
	return domain.User{UserID: userID, Name: "Test User", Role: role}
}

func TestCanPerform_OwnershipScoped(t *testing.T) {
	uploader := "user-1"
	other := "user-2"

	accountant := userWithRole(domain.RoleAccountant, uploader)
	assert.True(t, domain.CanPerform(accountant, domain.OpSubmit, uploader))
	assert.True(t, domain.CanPerform(accountant, domain.OpWithdraw, uploader))
	assert.True(t, domain.CanPerform(accountant, domain.OpReopen, uploader))

	// Same role, not the uploader.
	stranger := userWithRole(domain.RoleAccountant, other)
	assert.False(t, domain.CanPerform(stranger, domain.OpSubmit, uploader))
	assert.False(t, domain.CanPerform(stranger, domain.OpWithdraw, uploader))

	// Administrators supersede ownership.
	admin := userWithRole(domain.RoleAdmin, other)
	assert.True(t, domain.CanPerform(admin, domain.OpSubmit, uploader))
	assert.True(t, domain.CanPerform(admin, domain.OpWithdraw, uploader))
}

func TestCanPerform_Review(t *testing.T) {
	uploader := "user-1"
	for _, role := range []domain.UserRole{domain.RoleCEO, domain.RoleCFO, domain.RoleAdmin, domain.RoleAuditor} {
		actor := userWithRole(role, "reviewer")
		assert.True(t, domain.CanPerform(actor, domain.OpStartReview, uploader), "role %s", role)
	}
	for _, role := range []domain.UserRole{domain.RoleProcurement, domain.RoleAccountant, domain.RoleIT, domain.RoleInvestor} {
		actor := userWithRole(role, "reviewer")
		assert.False(t, domain.CanPerform(actor, domain.OpStartReview, uploader), "role %s", role)
	}
}

func TestCanPerform_Approve(t *testing.T) {
	uploader := "user-1"
	for _, role := range []domain.UserRole{domain.RoleCEO, domain.RoleCFO, domain.RoleAdmin} {
		actor := userWithRole(role, "approver")
		assert.True(t, domain.CanPerform(actor, domain.OpApprove, uploader), "role %s", role)
		assert.True(t, domain.CanPerform(actor, domain.OpReject, uploader), "role %s", role)
	}
	// Auditors review but never decide.
	auditor := userWithRole(domain.RoleAuditor, "approver")
	assert.False(t, domain.CanPerform(auditor, domain.OpApprove, uploader))
	assert.False(t, domain.CanPerform(auditor, domain.OpReject, uploader))
}

func TestCanPerform_Delete(t *testing.T) {
	uploader := "user-1"
	admin := userWithRole(domain.RoleAdmin, "someone")
	assert.True(t, domain.CanPerform(admin, domain.OpDelete, uploader))

	// Even the uploader cannot delete without administration rights.
	ceo := userWithRole(domain.RoleCEO, uploader)
	assert.False(t, domain.CanPerform(ceo, domain.OpDelete, uploader))
}

func TestCanPerform_UnknownRoleOrOperation(t *testing.T) {
	ghost := userWithRole(domain.UserRole("CONTRACTOR"), "user-1")
	assert.False(t, domain.CanPerform(ghost, domain.OpSubmit, "user-1"))

	admin := userWithRole(domain.RoleAdmin, "user-1")
	assert.False(t, domain.CanPerform(admin, domain.Operation("PURGE"), "user-1"))
}
