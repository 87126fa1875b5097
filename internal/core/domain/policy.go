package domain

// Capability is a permission required by a lifecycle operation. Roles map to
// capability sets; operations map to one required capability. Keeping both
// tables here decouples the state machine from the role taxonomy.
type Capability string

const (
	// CapSubmitOwn allows submitting or withdrawing a document the actor uploaded.
	CapSubmitOwn Capability = "SUBMIT_OWN"
	// CapReview allows moving a submitted document into review.
	CapReview Capability = "REVIEW"
	// CapApprove allows approving or rejecting a document under review.
	CapApprove Capability = "APPROVE"
	// CapAdminister supersedes ownership checks and gates deletion.
	CapAdminister Capability = "ADMINISTER"
)

// Operation names a lifecycle operation for the policy table.
type Operation string

const (
	OpSubmit      Operation = "SUBMIT"
	OpStartReview Operation = "START_REVIEW"
	OpApprove     Operation = "APPROVE"
	OpReject      Operation = "REJECT"
	OpWithdraw    Operation = "WITHDRAW"
	OpReopen      Operation = "REOPEN"
	OpDelete      Operation = "DELETE"
)

// operationPolicy maps each guarded operation to the capability it requires.
var operationPolicy = map[Operation]Capability{
	OpSubmit:      CapSubmitOwn,
	OpStartReview: CapReview,
	OpApprove:     CapApprove,
	OpReject:      CapApprove,
	OpWithdraw:    CapSubmitOwn,
	OpReopen:      CapSubmitOwn,
	OpDelete:      CapAdminister,
}

// roleCapabilities maps each role to the capabilities it holds. Every role
// can submit and withdraw its own uploads; review and approval are restricted.
var roleCapabilities = map[UserRole]map[Capability]struct{}{
	RoleAdmin: {
		CapSubmitOwn: {}, CapReview: {}, CapApprove: {}, CapAdminister: {},
	},
	RoleCEO: {
		CapSubmitOwn: {}, CapReview: {}, CapApprove: {},
	},
	RoleCFO: {
		CapSubmitOwn: {}, CapReview: {}, CapApprove: {},
	},
	RoleAuditor: {
		CapSubmitOwn: {}, CapReview: {},
	},
	RoleProcurement: {CapSubmitOwn: {}},
	RoleAccountant:  {CapSubmitOwn: {}},
	RoleIT:          {CapSubmitOwn: {}},
	RoleInvestor:    {CapSubmitOwn: {}},
}

// RequiredCapability returns the capability gating op. Unknown operations
// return false and must be treated as denied.
func RequiredCapability(op Operation) (Capability, bool) {
	cap, ok := operationPolicy[op]
	return cap, ok
}

// HasCapability reports whether role holds cap.
func (r UserRole) HasCapability(cap Capability) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	_, ok = caps[cap]
	return ok
}

// CanPerform evaluates the policy table once per call: the actor may perform
// op when their role holds the required capability, and, for ownership-scoped
// operations (CapSubmitOwn), when they are the uploader or hold CapAdminister.
func CanPerform(actor User, op Operation, uploaderID string) bool {
	required, ok := RequiredCapability(op)
	if !ok {
		return false
	}
	if !actor.Role.HasCapability(required) {
		return false
	}
	if required == CapSubmitOwn && actor.UserID != uploaderID {
		return actor.Role.HasCapability(CapAdminister)
	}
	return true
}
