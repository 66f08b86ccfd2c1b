// internal/app/features/campaigns/handler_test.go
package campaigns_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/pawhub/internal/app/features/campaigns"
	campaignstore "github.com/dalemusser/pawhub/internal/app/store/campaigns"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"github.com/dalemusser/pawhub/internal/testutil"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (http.Handler, *auth.Manager, *campaignstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	mgr, err := auth.NewManager("0123456789abcdef0123456789abcdef", "pawhub-token", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	store := campaignstore.New(db)
	h := campaigns.NewHandler(store, zap.NewNop())
	return campaigns.Routes(h, mgr), mgr, store
}

func TestCreate_RequiresToken(t *testing.T) {
	router, _, _ := newRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/createcampain",
		strings.NewReader(`{"petName":"Biscuit","maxDonation":1000}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreate_Validation(t *testing.T) {
	router, mgr, _ := newRouter(t)
	token, err := mgr.IssueToken("creator@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	tests := []struct {
		name string
		body string
	}{
		{"missing petName", `{"maxDonation":1000}`},
		{"zero maxDonation", `{"petName":"Biscuit"}`},
		{"negative maxDonation", `{"petName":"Biscuit","maxDonation":-5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/createcampain", strings.NewReader(tt.body))
			req.AddCookie(&http.Cookie{Name: mgr.CookieName(), Value: token})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGet_SoftNotFound(t *testing.T) {
	router, _, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/campaigns/64f000000000000000000009", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Fatalf("body = %q, want null for a missing campaign", body)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/campaigns/nope", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: status = %d, want 400", rec.Code)
	}
}

func TestListMine_FiltersByCreator(t *testing.T) {
	router, mgr, store := newRouter(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	for i, email := range []string{"a@example.com", "a@example.com", "b@example.com"} {
		if _, err := store.Create(ctx, models.Campaign{
			Email:       email,
			PetName:     fmt.Sprintf("pet-%d", i),
			MaxDonation: 1000,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	token, err := mgr.IssueToken("a@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	req := httptest.NewRequest("GET", "/mycampaigns", nil)
	req.AddCookie(&http.Cookie{Name: mgr.CookieName(), Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var mine []models.Campaign
	if err := json.Unmarshal(rec.Body.Bytes(), &mine); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d campaigns, want 2", len(mine))
	}
	for _, c := range mine {
		if c.Email != "a@example.com" {
			t.Fatalf("found %q in caller's campaigns", c.Email)
		}
	}
}

func TestListPaged(t *testing.T) {
	router, _, store := newRouter(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	for i := 0; i < 5; i++ {
		if _, err := store.Create(ctx, models.Campaign{
			Email:       "c@example.com",
			PetName:     fmt.Sprintf("pet-%d", i),
			MaxDonation: 1000,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/allcampaigns?page=2&limit=2", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res campaignstore.PagedResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.TotalCount != 5 || res.TotalPages != 3 || res.CurrentPage != 2 {
		t.Fatalf("paging = (%d, %d, %d), want (5, 3, 2)", res.TotalCount, res.TotalPages, res.CurrentPage)
	}
	if len(res.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(res.Items))
	}
}
