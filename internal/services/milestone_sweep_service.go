package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/repositories"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

// MilestoneSweepService reports open milestones past their due date. It never writes.
type MilestoneSweepService struct {
	milestoneRepo repositories.MilestoneRepository
	now           func() time.Time
}

func NewMilestoneSweepService(milestoneRepo repositories.MilestoneRepository, now func() time.Time) *MilestoneSweepService {
	if now == nil {
		now = time.Now
	}
	return &MilestoneSweepService{milestoneRepo: milestoneRepo, now: now}
}

// SweepOverdue logs one warning per overdue milestone and returns the count.
func (s *MilestoneSweepService) SweepOverdue(ctx context.Context) (int, error) {
	now := s.now().UTC()
	list, err := s.milestoneRepo.ListOverdue(ctx, now)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range list {
		if !m.IsOverdue(now) {
			continue
		}
		n++
		utils.Logger.WithFields(logrus.Fields{
			"investor_id":  m.InvestorID,
			"milestone_id": m.ID,
			"title":        m.Title,
			"due_date":     m.DueDate.Format(time.RFC3339),
		}).Warn("milestone overdue")
	}
	utils.Logger.Infof("milestone sweep finished, %d overdue", n)
	return n, nil
}
