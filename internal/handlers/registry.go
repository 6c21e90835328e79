package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	UserHandler      *UserHandler
	ApprovalHandler  *ApprovalHandler
	RequestHandler   *RequestHandler
	MatchingHandler  *MatchingHandler
	DashboardHandler *DashboardHandler
	LookupHandler    *LookupHandler
	HealthHandler    *HealthHandler
}
