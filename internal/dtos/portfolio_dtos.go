package dtos

// PortfolioSummary is always derived from current rows, never stored.
type PortfolioSummary struct {
	InvestorID           string  `json:"investorId"`
	FullName             string  `json:"fullName"`
	InvestmentAmount     float64 `json:"investmentAmount"`
	RealEstateAllocation float64 `json:"realEstateAllocation"`
	RDAllocation         float64 `json:"rdAllocation"`
	KYCStatus            string  `json:"kycStatus"`
	VisaStatus           string  `json:"visaStatus"`

	MonthlyRent       float64 `json:"monthlyRent"`
	AnnualYield       float64 `json:"annualYield"`
	YieldComputable   bool    `json:"yieldComputable"`
	MonthsSinceStart  int     `json:"monthsSinceStart"`
	CumulativeReturns float64 `json:"cumulativeReturns"`

	TotalUnits          int    `json:"totalUnits"`
	RentedUnits         int    `json:"rentedUnits"`
	TotalMilestones     int    `json:"totalMilestones"`
	CompletedMilestones int    `json:"completedMilestones"`
	CurrentMilestone    string `json:"currentMilestone,omitempty"`
}

type DashboardResponse struct {
	Status  string            `json:"status"`
	Summary *PortfolioSummary `json:"summary"`
}
