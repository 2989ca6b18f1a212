// internal/app/system/auth/auth.go

// Package auth verifies bearer tokens and exposes the authenticated subject
// to handlers. The API is stateless: every request carries a signed JWT
// with the subject and a single role claim; there are no sessions to load
// or invalidate. Token issuance is not an API surface — cmd/tokengen mints
// tokens for development and operations.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/secassess/assesshub/internal/app/features/apierr"
	"go.uber.org/zap"
)

// TokenUser is the authenticated subject injected into r.Context().
type TokenUser struct {
	Subject string // login id (email) from the token subject
	Name    string
	Role    string // single role claim, lowercased
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// tokenClaims is the JWT claim set this service signs and verifies.
type tokenClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
}

// TokenManager signs and verifies HS256 bearer tokens.
type TokenManager struct {
	key    []byte
	issuer string
	ttl    time.Duration
	log    *zap.Logger
}

// NewTokenManager builds a TokenManager from the configured signing key.
func NewTokenManager(signingKey, issuer string, ttl time.Duration, logger *zap.Logger) (*TokenManager, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("token signing key is empty; provide ≥32 random chars")
	}
	if len(signingKey) < 32 {
		logger.Warn("token signing key is short; 32+ chars recommended",
			zap.Int("length", len(signingKey)))
	}
	return &TokenManager{
		key:    []byte(signingKey),
		issuer: issuer,
		ttl:    ttl,
		log:    logger,
	}, nil
}

// Issue mints a token for the given subject and role.
func (tm *TokenManager) Issue(subject, name, role string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tm.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
		Name: name,
		Role: strings.ToLower(role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.key)
}

// Parse verifies a token string and returns the subject it carries.
func (tm *TokenManager) Parse(token string) (*TokenUser, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return tm.key, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tm.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return &TokenUser{
		Subject: claims.Subject,
		Name:    claims.Name,
		Role:    strings.ToLower(claims.Role),
	}, nil
}

// CurrentUser returns the token user and a "found?" flag.
func CurrentUser(r *http.Request) (*TokenUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*TokenUser)
	return u, ok
}

// LoadTokenUser injects the verified token user into context when the
// request carries a valid bearer token. Requests without a token pass
// through untouched; RequireSignedIn decides whether that matters.
func (tm *TokenManager) LoadTokenUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}
		user, err := tm.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			// Expired or malformed token: the context stays empty and
			// protected routes answer 401.
			tm.log.Debug("bearer token rejected", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, withUser(r, user))
	})
}

// RequireSignedIn ensures there is a token user in context (set by
// LoadTokenUser) and answers 401 otherwise.
func (tm *TokenManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			apierr.Unauthorized(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures the token user holds one of the allowed roles.
// No user → 401; wrong role → 403. Routes declare their role table with
// this middleware; role checks never live inside core logic.
func (tm *TokenManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				apierr.Unauthorized(w, r)
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				apierr.Forbidden(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithTestUser injects a user directly; handler tests use it to bypass the
// token middleware.
func WithTestUser(r *http.Request, u *TokenUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *TokenUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}
