package models

type KYCStatusType string

const (
	KYCStatusPending  KYCStatusType = "pending"
	KYCStatusInReview KYCStatusType = "in_review"
	KYCStatusApproved KYCStatusType = "approved"
	KYCStatusRejected KYCStatusType = "rejected"
)

func (s KYCStatusType) Valid() bool {
	switch s {
	case KYCStatusPending, KYCStatusInReview, KYCStatusApproved, KYCStatusRejected:
		return true
	}
	return false
}

type VisaStatusType string

const (
	VisaStatusNotStarted VisaStatusType = "not_started"
	VisaStatusInProgress VisaStatusType = "in_progress"
	VisaStatusApproved   VisaStatusType = "approved"
	VisaStatusRejected   VisaStatusType = "rejected"
)

func (s VisaStatusType) Valid() bool {
	switch s {
	case VisaStatusNotStarted, VisaStatusInProgress, VisaStatusApproved, VisaStatusRejected:
		return true
	}
	return false
}

type RentalStatusType string

const (
	RentalStatusAvailable   RentalStatusType = "available"
	RentalStatusRented      RentalStatusType = "rented"
	RentalStatusMaintenance RentalStatusType = "maintenance"
)

func (s RentalStatusType) Valid() bool {
	switch s {
	case RentalStatusAvailable, RentalStatusRented, RentalStatusMaintenance:
		return true
	}
	return false
}

type MilestoneStatusType string

const (
	MilestoneStatusPending   MilestoneStatusType = "pending"
	MilestoneStatusCurrent   MilestoneStatusType = "current"
	MilestoneStatusCompleted MilestoneStatusType = "completed"
)

func (s MilestoneStatusType) Valid() bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusCurrent, MilestoneStatusCompleted:
		return true
	}
	return false
}

type RecommendationType string

const (
	RecommendationBuy    RecommendationType = "BUY"
	RecommendationReview RecommendationType = "REVIEW"
	RecommendationReject RecommendationType = "REJECT"
)

func (r RecommendationType) Valid() bool {
	switch r {
	case RecommendationBuy, RecommendationReview, RecommendationReject:
		return true
	}
	return false
}
