// internal/app/system/auth/auth_test.go

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(testSecret, "pawhub-token", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

type fakeRoles struct {
	role string
	err  error
}

func (f fakeRoles) FetchRole(_ context.Context, _ string) (string, error) {
	return f.role, f.err
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("", "c", time.Hour, false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestIssueAndParseToken(t *testing.T) {
	m := newTestManager(t)

	signed, err := m.IssueToken("Alice@Example.COM")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := m.ParseToken(signed)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email = %q, want normalized alice@example.com", claims.Email)
	}
	if claims.Issuer != "pawhub" {
		t.Errorf("issuer = %q, want pawhub", claims.Issuer)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := NewManager("ffffffffffffffffffffffffffffffff", "pawhub-token", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	signed, err := other.IssueToken("alice@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := m.ParseToken(signed); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	m, err := NewManager(testSecret, "pawhub-token", time.Nanosecond, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	// ttl <= 0 falls back to an hour, so use the smallest positive ttl
	// and let it lapse.
	signed, err := m.IssueToken("alice@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := m.ParseToken(signed); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerifyToken(t *testing.T) {
	m := newTestManager(t)

	var seen *Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = CurrentIdentity(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := m.VerifyToken(next)

	t.Run("missing cookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: m.CookieName(), Value: "not-a-token"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		signed, err := m.IssueToken("alice@example.com")
		if err != nil {
			t.Fatalf("IssueToken: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: m.CookieName(), Value: signed})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		if seen == nil || seen.Email != "alice@example.com" {
			t.Fatalf("identity = %+v, want alice@example.com", seen)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		roles      RoleFetcher
		identity   *Identity
		wantStatus int
	}{
		{"no identity in context", fakeRoles{role: "admin"}, nil, http.StatusUnauthorized},
		{"admin role", fakeRoles{role: "admin"}, &Identity{Email: "a@x.com"}, http.StatusOK},
		{"plain user", fakeRoles{role: ""}, &Identity{Email: "a@x.com"}, http.StatusForbidden},
		{"role lookup fails", fakeRoles{err: errors.New("down")}, &Identity{Email: "a@x.com"}, http.StatusInternalServerError},
		{"no role fetcher wired", nil, &Identity{Email: "a@x.com"}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			if tt.roles != nil {
				m.SetRoleFetcher(tt.roles)
			}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.identity != nil {
				req = WithTestIdentity(req, tt.identity)
			}
			rr := httptest.NewRecorder()
			m.RequireAdmin(next).ServeHTTP(rr, req)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

func TestCookieAttributes(t *testing.T) {
	t.Run("dev", func(t *testing.T) {
		m := newTestManager(t)
		rr := httptest.NewRecorder()
		m.SetTokenCookie(rr, "tok")
		cookies := rr.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("got %d cookies, want 1", len(cookies))
		}
		c := cookies[0]
		if !c.HttpOnly {
			t.Error("cookie must be HttpOnly")
		}
		if c.Secure {
			t.Error("dev cookie must not be Secure")
		}
		if c.SameSite != http.SameSiteLaxMode {
			t.Errorf("SameSite = %v, want Lax", c.SameSite)
		}
		if c.Path != "/" {
			t.Errorf("Path = %q, want /", c.Path)
		}
	})

	t.Run("prod", func(t *testing.T) {
		m, err := NewManager(testSecret, "pawhub-token", time.Hour, true, zap.NewNop())
		if err != nil {
			t.Fatalf("NewManager: %v", err)
		}
		rr := httptest.NewRecorder()
		m.SetTokenCookie(rr, "tok")
		c := rr.Result().Cookies()[0]
		if !c.Secure {
			t.Error("prod cookie must be Secure")
		}
		if c.SameSite != http.SameSiteNoneMode {
			t.Errorf("SameSite = %v, want None", c.SameSite)
		}
	})

	t.Run("clear", func(t *testing.T) {
		m := newTestManager(t)
		rr := httptest.NewRecorder()
		m.ClearTokenCookie(rr)
		c := rr.Result().Cookies()[0]
		if c.Value != "" || c.MaxAge != -1 {
			t.Errorf("clear cookie = (%q, MaxAge %d), want empty value and MaxAge -1", c.Value, c.MaxAge)
		}
	})
}
