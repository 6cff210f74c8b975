package services

import (
	"context"
	"strings"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/repositories"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type IdentityService struct {
	investorRepo repositories.InvestorRepository
	adminDomains []string
}

func NewIdentityService(investorRepo repositories.InvestorRepository, adminDomains []string) *IdentityService {
	return &IdentityService{investorRepo: investorRepo, adminDomains: adminDomains}
}

// ResolveInvestor maps an authenticated identity to its investor record.
func (s *IdentityService) ResolveInvestor(ctx context.Context, id models.Identity) Lookup[*models.Investor] {
	if id.IsZero() {
		return NotFound[*models.Investor]()
	}
	inv, err := s.investorRepo.GetByUserID(ctx, id.UserID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("investor lookup failed for user %s", id.UserID)
		return Failed[*models.Investor](err)
	}
	if inv == nil {
		utils.Logger.WithError(utils.ErrNotAnInvestor).Debugf("no investor record for user %s", id.UserID)
		return NotFound[*models.Investor]()
	}
	return Found(inv)
}

func (s *IdentityService) IsAdmin(id models.Identity) bool {
	return !id.IsZero() && IsAdminEmail(id.Email, s.adminDomains)
}

// IsAdminEmail reports whether email belongs to one of the allow-listed
// domains. Entries are matched as "@domain" suffixes, case-insensitively.
func IsAdminEmail(email string, allowList []string) bool {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return false
	}
	for _, d := range allowList {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if !strings.HasPrefix(d, "@") {
			d = "@" + d
		}
		if strings.HasSuffix(e, d) && len(e) > len(d) {
			return true
		}
	}
	return false
}
