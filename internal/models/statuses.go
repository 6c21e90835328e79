package models

// Canonical lookup names. Rows with these names are ensured at startup; the
// dimension tables may hold more rows but these are the ones code refers to.

type UserTypeName string
type RequestStatusName string
type ApprovalStatus string

const (
	UserTypeVolunteer UserTypeName = "VOLUNTEER"
	UserTypeFamily    UserTypeName = "FAMILY"
	UserTypeAdmin     UserTypeName = "ADMIN"

	RequestStatusPending    RequestStatusName = "Pending"
	RequestStatusInProgress RequestStatusName = "InProgress"
	RequestStatusCompleted  RequestStatusName = "Completed"
	RequestStatusRejected   RequestStatusName = "Rejected"

	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// requestTransitions lists the allowed moves between request statuses.
// InProgress -> Pending is the "release" toggle used when a volunteer drops out.
var requestTransitions = map[RequestStatusName][]RequestStatusName{
	RequestStatusPending:    {RequestStatusInProgress, RequestStatusRejected},
	RequestStatusInProgress: {RequestStatusPending, RequestStatusCompleted, RequestStatusRejected},
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to RequestStatusName) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s RequestStatusName) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusRejected
}
