// internal/app/system/auth/auth.go

// Package auth is the token service and middleware chain.
//
// Identity travels as a signed HS256 JWT in one HTTP-only cookie.
// VerifyToken authenticates a request and injects the identity into
// its context; RequireAdmin elevates an already-verified identity with
// a role lookup. Admin-gated routes must compose VerifyToken before
// RequireAdmin.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/normalize"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const issuer = "pawhub"

// Claims is the token payload: a registered-claims envelope plus the
// email identity.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Identity is what VerifyToken injects into the request context.
type Identity struct {
	Email string
}

type ctxKey string

const identityKey ctxKey = "identity"

// CurrentIdentity returns the verified identity, if any.
func CurrentIdentity(r *http.Request) (*Identity, bool) {
	id, ok := r.Context().Value(identityKey).(*Identity)
	return id, ok
}

// RoleFetcher resolves an email to a role. A missing account returns
// ("", nil): not-admin, not an error.
type RoleFetcher interface {
	FetchRole(ctx context.Context, email string) (string, error)
}

// Manager signs, verifies, and transports tokens.
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	log        *zap.Logger
	roles      RoleFetcher
}

// NewManager builds a token manager. The secret must be non-empty; the
// secure flag controls the cookie's Secure/SameSite attributes
// (None+Secure in production, Lax over plain http in dev).
func NewManager(secret, cookieName string, ttl time.Duration, secure bool, logger *zap.Logger) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is empty; provide ≥32 random chars")
	}
	if len(secret) < 32 {
		logger.Warn("token secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	if cookieName == "" {
		cookieName = "pawhub-token"
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
		log:        logger,
	}, nil
}

// SetRoleFetcher wires the user lookup RequireAdmin uses. Fetching per
// request means a role change takes effect immediately, without waiting
// for the token to expire.
func (m *Manager) SetRoleFetcher(f RoleFetcher) { m.roles = f }

// CookieName returns the credential cookie's name.
func (m *Manager) CookieName() string { return m.cookieName }

// IssueToken signs a token carrying the email with the configured
// expiry.
func (m *Manager) IssueToken(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: normalize.Email(email),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a signed token and returns its claims. Any
// failure (expiry, bad signature, wrong algorithm) is an error.
func (m *Manager) ParseToken(signed string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(signed, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// SetTokenCookie writes the credential cookie. HttpOnly always; in
// production Secure with SameSite=None so the SPA's cross-site requests
// carry it, Lax otherwise.
func (m *Manager) SetTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, m.cookie(token, int(m.ttl.Seconds())))
}

// ClearTokenCookie expires the credential cookie with matching
// attributes, which is how logout works.
func (m *Manager) ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", -1))
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if m.secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: sameSite,
	}
}

// VerifyToken short-circuits with 401 unless the request carries a
// valid token, then injects the identity and continues.
func (m *Manager) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(m.cookieName)
		if err != nil || c.Value == "" {
			httpjson.Unauthorized(w, "missing credential")
			return
		}
		claims, err := m.ParseToken(c.Value)
		if err != nil {
			httpjson.Unauthorized(w, "invalid or expired credential")
			return
		}
		next.ServeHTTP(w, withIdentity(r, &Identity{Email: claims.Email}))
	})
}

// RequireAdmin checks the verified identity's stored role. It depends
// on VerifyToken having run; without an identity in context it answers
// 401, and a non-admin (including an email with no account) gets 403.
func (m *Manager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := CurrentIdentity(r)
		if !ok {
			httpjson.Unauthorized(w, "missing credential")
			return
		}
		if m.roles == nil {
			httpjson.Forbidden(w, "admin access required")
			return
		}
		role, err := m.roles.FetchRole(r.Context(), id.Email)
		if err != nil {
			httpjson.Internal(w, m.log, "fetch role", err)
			return
		}
		if role != "admin" {
			httpjson.Forbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withIdentity(r *http.Request, id *Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, id))
}

// WithTestIdentity injects an identity directly, bypassing the token
// check. For handler tests only.
func WithTestIdentity(r *http.Request, id *Identity) *http.Request {
	return withIdentity(r, id)
}
