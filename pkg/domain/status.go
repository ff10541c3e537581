package domain

// ApplicationStatus is the lifecycle phase of an application.
type ApplicationStatus string

const (
	// ApplicationStatusKYC is the initial phase of every application.
	ApplicationStatusKYC ApplicationStatus = "KYC_PHASE"
	// ApplicationStatusGovernanceReview means governance is reviewing the application.
	ApplicationStatusGovernanceReview ApplicationStatus = "GOVERNANCE_REVIEW_PHASE"
	// ApplicationStatusRKHApproval means the root key holders are signing off.
	ApplicationStatusRKHApproval ApplicationStatus = "RKH_APPROVAL_PHASE"
	// ApplicationStatusMetaAllocatorApproval means a meta allocator is signing off.
	ApplicationStatusMetaAllocatorApproval ApplicationStatus = "META_APPROVAL_PHASE"
	// ApplicationStatusApproved is terminal.
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	// ApplicationStatusRejected is terminal.
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// statusRank orders non-terminal phases. A transition must move to a strictly
// higher rank or into a terminal state.
var statusRank = map[ApplicationStatus]int{ //nolint: gochecknoglobals
	ApplicationStatusKYC:                   1,
	ApplicationStatusGovernanceReview:      2,
	ApplicationStatusRKHApproval:           3,
	ApplicationStatusMetaAllocatorApproval: 3,
	ApplicationStatusApproved:              4,
	ApplicationStatusRejected:              4,
}

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	_, ok := statusRank[s]

	return ok
}

// Terminal reports whether no transition may leave s.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// CanTransition reports whether an application in status s may move to next.
// Transitions only move forward; terminal states are final. RKH and meta
// allocator approval are alternative paths of the same rank.
func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	if !s.Valid() || !next.Valid() || s.Terminal() {
		return false
	}
	if next == ApplicationStatusRejected {
		return true
	}

	return statusRank[next] > statusRank[s]
}
