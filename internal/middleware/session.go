package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/constants"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
)

var (
	errMissingToken   = errors.New("missing session token")
	errMissingSubject = errors.New("missing subject claim")
)

// ValidateToken checks an HS256 session token issued by the hosted auth
// provider. When issuer is non-empty the iss claim must match it.
func ValidateToken(tokenString string, secret []byte, issuer string) (models.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return models.Identity{}, err
	}
	if !tok.Valid {
		return models.Identity{}, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return models.Identity{}, errMissingSubject
	}
	email, _ := claims["email"].(string)
	return models.Identity{UserID: sub, Email: email}, nil
}

// extractSessionToken reads the session cookie first, then a Bearer header.
func extractSessionToken(r *http.Request) (string, error) {
	if c, err := r.Cookie(constants.SessionCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		if tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")); tok != "" {
			return tok, nil
		}
	}
	return "", errMissingToken
}

// resolveIdentity returns the zero Identity when the request carries no
// valid session.
func resolveIdentity(r *http.Request, secret []byte, issuer string) (models.Identity, error) {
	tokenStr, err := extractSessionToken(r)
	if err != nil {
		return models.Identity{}, err
	}
	return ValidateToken(tokenStr, secret, issuer)
}
