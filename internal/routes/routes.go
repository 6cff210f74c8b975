package routes

const (
	Health = "/health"

	Session    = "/api/session"
	Dashboard  = "/api/dashboard"
	Investor   = "/api/investor"
	Units      = "/api/units"
	Milestones = "/api/milestones"
	Properties = "/api/properties"
	Property   = "/api/properties/{id}"
	Chat       = "/api/chat"

	AdminInvestors               = "/api/admin/investors"
	AdminInvestor                = "/api/admin/investors/{id}"
	AdminInvestorStatus          = "/api/admin/investors/{id}/status"
	AdminInvestorMilestonesInit  = "/api/admin/investors/{id}/milestones/init"
	AdminUnitAssign              = "/api/admin/units/{id}/assign"
	AdminMilestoneStatus         = "/api/admin/milestones/{id}/status"
	AdminPropertyAnalyze         = "/api/admin/properties/{id}/analyze"
	AdminPropertyAnalysisLatest  = "/api/admin/properties/{id}/analysis"
	AdminPropertyAnalysisHistory = "/api/admin/properties/{id}/analysis/history"
)
