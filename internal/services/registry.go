package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	UserService      UserService
	ApprovalService  ApprovalService
	RequestService   RequestService
	MatchingService  MatchingService
	DashboardService DashboardService
	LookupService    LookupService
}
