package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/constants"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

var testSecret = []byte("super-secret-jwt-token-with-at-least-32-characters")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return s
}

func validClaims(email string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-123",
		"email": email,
		"iss":   "https://project.supabase.co/auth/v1",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestValidateToken(t *testing.T) {
	id, err := ValidateToken(signToken(t, validClaims("ana@example.com")), testSecret, "")
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: "user-123", Email: "ana@example.com"}, id)

	_, err = ValidateToken(signToken(t, validClaims("ana@example.com")), testSecret, "https://project.supabase.co/auth/v1")
	require.NoError(t, err)

	_, err = ValidateToken(signToken(t, validClaims("ana@example.com")), testSecret, "https://other.example")
	assert.Error(t, err)

	_, err = ValidateToken(signToken(t, validClaims("ana@example.com")), []byte("wrong-secret"), "")
	assert.Error(t, err)

	expired := validClaims("ana@example.com")
	expired["exp"] = time.Now().Add(-time.Minute).Unix()
	_, err = ValidateToken(signToken(t, expired), testSecret, "")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noExp := validClaims("ana@example.com")
	delete(noExp, "exp")
	_, err = ValidateToken(signToken(t, noExp), testSecret, "")
	assert.Error(t, err)

	noSub := validClaims("ana@example.com")
	delete(noSub, "sub")
	_, err = ValidateToken(signToken(t, noSub), testSecret, "")
	assert.Error(t, err)
}

func TestValidateTokenRejectsOtherAlgorithms(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, validClaims("ana@example.com"))
	s, err := tok.SignedString(testSecret)
	require.NoError(t, err)
	_, err = ValidateToken(s, testSecret, "")
	assert.Error(t, err)
}

var testRules = RouteRules{
	ProtectedPrefixes: constants.DefaultProtectedPrefixes,
	AdminPrefixes:     constants.DefaultAdminPrefixes,
	AdminDomains:      constants.DefaultAdminDomains,
}

func TestDecide(t *testing.T) {
	anon := models.Identity{}
	investor := models.Identity{UserID: "u1", Email: "a@random.com"}
	admin := models.Identity{UserID: "u2", Email: "ops@goldenvisa.pt"}

	cases := []struct {
		name string
		path string
		id   models.Identity
		want AccessDecision
	}{
		{"public home", "/", anon, AccessDecision{Kind: AccessGranted}},
		{"login page", "/login", anon, AccessDecision{Kind: AccessGranted}},
		{"admin login page", "/admin/login", investor, AccessDecision{Kind: AccessGranted}},
		{"anon dashboard", "/dashboard", anon, AccessDecision{Kind: AccessRedirect, Location: "/login?redirect=%2Fdashboard"}},
		{"anon nested", "/properties/42", anon, AccessDecision{Kind: AccessRedirect, Location: "/login?redirect=%2Fproperties%2F42"}},
		{"anon admin", "/admin", anon, AccessDecision{Kind: AccessRedirect, Location: "/login?redirect=%2Fadmin"}},
		{"investor dashboard", "/dashboard", investor, AccessDecision{Kind: AccessGranted}},
		{"investor admin", "/admin/investors", investor, AccessDecision{Kind: AccessRedirect, Location: AdminLoginPath}},
		{"admin admin", "/admin/investors", admin, AccessDecision{Kind: AccessGranted}},
		{"prefix lookalike", "/dashboards-info", anon, AccessDecision{Kind: AccessGranted}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Decide(c.path, c.id, testRules))
		})
	}
}

func okHandler(t *testing.T, seen *models.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = IdentityFromContext(r.Context())
		}
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
	})
}

func TestPageGuardRedirects(t *testing.T) {
	h := PageGuard(testSecret, "", testRules)(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/admin/investors", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: signToken(t, validClaims("a@random.com"))})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, AdminLoginPath, rr.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/chat", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login?redirect=%2Fchat", rr.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/chat", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "garbage"})
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusFound, rr.Code)
}

func TestAuthMiddleware(t *testing.T) {
	var seen models.Identity
	h := AuthMiddleware(testSecret, "")(okHandler(t, &seen))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims("ana@example.com")))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-123", seen.UserID)

	expired := validClaims("ana@example.com")
	expired["exp"] = time.Now().Add(-time.Minute).Unix()
	req = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: signToken(t, expired)})
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, utils.ErrCodeTokenExpired, body.Code)
}

func TestAdminMiddleware(t *testing.T) {
	h := AuthMiddleware(testSecret, "")(AdminMiddleware(constants.DefaultAdminDomains)(okHandler(t, nil)))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/investors", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims("a@random.com")))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/investors", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims("ops@goldenvisa.pt")))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
