// internal/app/features/donations/handler_test.go
package donations_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/pawhub/internal/app/features/donations"
	donationstore "github.com/dalemusser/pawhub/internal/app/store/donations"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/payments"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"github.com/dalemusser/pawhub/internal/testutil"
	"go.uber.org/zap"
)

type fakeGateway struct {
	calls      int
	lastAmount int64
	err        error
}

func (f *fakeGateway) CreateIntent(_ context.Context, amountCents int64, _ string) (payments.Intent, error) {
	f.calls++
	f.lastAmount = amountCents
	if f.err != nil {
		return payments.Intent{}, f.err
	}
	return payments.Intent{ID: "pi_test", ClientSecret: "cs_test"}, nil
}

func newManager(t *testing.T) *auth.Manager {
	t.Helper()
	mgr, err := auth.NewManager("0123456789abcdef0123456789abcdef", "pawhub-token", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func TestCreateIntent(t *testing.T) {
	gw := &fakeGateway{}
	h := donations.NewHandler(nil, gw, 100, zap.NewNop())

	req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"amount":2500}`))
	rec := httptest.NewRecorder()
	h.CreateIntent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ClientSecret string `json:"clientSecret"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if resp.ClientSecret != "cs_test" {
		t.Errorf("clientSecret = %q, want cs_test", resp.ClientSecret)
	}
	if gw.lastAmount != 2500 {
		t.Errorf("gateway amount = %d, want 2500", gw.lastAmount)
	}
}

func TestCreateIntent_BelowMinimumSkipsGateway(t *testing.T) {
	gw := &fakeGateway{}
	h := donations.NewHandler(nil, gw, 100, zap.NewNop())

	req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"amount":50}`))
	rec := httptest.NewRecorder()
	h.CreateIntent(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway called %d times, want 0", gw.calls)
	}
}

func TestCreateIntent_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("stripe down")}
	h := donations.NewHandler(nil, gw, 100, zap.NewNop())

	req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"amount":2500}`))
	rec := httptest.NewRecorder()
	h.CreateIntent(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestRecord_AppendsAndQueries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := donationstore.New(db)
	h := donations.NewHandler(store, &fakeGateway{}, 100, zap.NewNop())
	mgr := newManager(t)
	router := donations.Routes(h, mgr)

	post := func(email, body string) *httptest.ResponseRecorder {
		t.Helper()
		token, err := mgr.IssueToken(email)
		if err != nil {
			t.Fatalf("IssueToken: %v", err)
		}
		req := httptest.NewRequest("POST", "/paymentsucess", strings.NewReader(body))
		req.AddCookie(&http.Cookie{Name: mgr.CookieName(), Value: token})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	campaign := `"campaignId":"64f000000000000000000003","email":"creator@example.com","petName":"Mochi","maxDonation":100000`
	rec := post("alice@example.com", `{`+campaign+`,"amount":1000,"transactionId":"txn-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("first payment: status = %d: %s", rec.Code, rec.Body.String())
	}
	rec = post("bob@example.com", `{`+campaign+`,"amount":2000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second payment: status = %d: %s", rec.Code, rec.Body.String())
	}

	var donation models.Donation
	if err := json.Unmarshal(rec.Body.Bytes(), &donation); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(donation.Donators) != 2 {
		t.Fatalf("got %d donators, want 2", len(donation.Donators))
	}
	if donation.Donators[0].DisplayName != "alice@example.com" || donation.Donators[1].DisplayName != "bob@example.com" {
		t.Fatalf("donators out of arrival order: %+v", donation.Donators)
	}

	get := func(email, target string) []models.Donation {
		t.Helper()
		token, err := mgr.IssueToken(email)
		if err != nil {
			t.Fatalf("IssueToken: %v", err)
		}
		req := httptest.NewRequest("GET", target, nil)
		req.AddCookie(&http.Cookie{Name: mgr.CookieName(), Value: token})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", target, rec.Code)
		}
		var list []models.Donation
		if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
			t.Fatalf("%s: parse: %v", target, err)
		}
		return list
	}

	if mine := get("bob@example.com", "/myDonations"); len(mine) != 1 {
		t.Fatalf("myDonations: got %d records, want 1", len(mine))
	}
	if outsiders := get("nobody@example.com", "/myDonations"); len(outsiders) != 0 {
		t.Fatalf("myDonations for a non-donor: got %d records, want 0", len(outsiders))
	}
	if roll := get("creator@example.com", "/mycampaigns-donators"); len(roll) != 1 || len(roll[0].Donators) != 2 {
		t.Fatalf("mycampaigns-donators: unexpected roll-up %+v", roll)
	}
}
