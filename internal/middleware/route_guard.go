package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

const (
	LoginPath      = "/login"
	AdminLoginPath = "/admin/login"
)

type AccessKind int

const (
	AccessGranted AccessKind = iota
	AccessRedirect
)

type AccessDecision struct {
	Kind     AccessKind
	Location string
}

// RouteRules is the page access policy.
type RouteRules struct {
	ProtectedPrefixes []string
	AdminPrefixes     []string
	AdminDomains      []string
}

// Decide applies the page access policy for one path. Login pages are
// always granted.
func Decide(path string, id models.Identity, rules RouteRules) AccessDecision {
	if path == LoginPath || path == AdminLoginPath {
		return AccessDecision{Kind: AccessGranted}
	}
	if !matchesAny(path, rules.ProtectedPrefixes) && !matchesAny(path, rules.AdminPrefixes) {
		return AccessDecision{Kind: AccessGranted}
	}
	if id.IsZero() {
		return AccessDecision{Kind: AccessRedirect, Location: LoginPath + "?redirect=" + url.QueryEscape(path)}
	}
	if matchesAny(path, rules.AdminPrefixes) && !services.IsAdminEmail(id.Email, rules.AdminDomains) {
		return AccessDecision{Kind: AccessRedirect, Location: AdminLoginPath}
	}
	return AccessDecision{Kind: AccessGranted}
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		p = strings.TrimSuffix(p, "/")
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// PageGuard redirects page requests per Decide. An unreadable session counts
// as no session.
func PageGuard(secret []byte, issuer string, rules RouteRules) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := resolveIdentity(r, secret, issuer)
			if err != nil && err != errMissingToken {
				utils.Logger.WithError(err).Debug("page guard ignoring invalid session")
			}

			d := Decide(r.URL.Path, id, rules)
			if d.Kind == AccessRedirect {
				http.Redirect(w, r, d.Location, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}
