// internal/app/features/pets/handler_test.go
package pets_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/pawhub/internal/app/features/pets"
	petstore "github.com/dalemusser/pawhub/internal/app/store/pets"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"github.com/dalemusser/pawhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newRouter(t *testing.T, db *mongo.Database) (http.Handler, *auth.Manager) {
	t.Helper()
	mgr, err := auth.NewManager("0123456789abcdef0123456789abcdef", "pawhub-token", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	h := pets.NewHandler(petstore.New(db), zap.NewNop())
	return pets.Routes(h, mgr), mgr
}

func seedPets(t *testing.T, store *petstore.Store, dogs, cats int) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	for i := 0; i < dogs; i++ {
		if _, err := store.Create(ctx, models.Pet{
			Name:    fmt.Sprintf("dog-%d", i),
			Species: models.SpeciesDog,
			Author:  models.PetAuthor{Email: "owner@example.com"},
		}); err != nil {
			t.Fatalf("seed dog: %v", err)
		}
	}
	for i := 0; i < cats; i++ {
		if _, err := store.Create(ctx, models.Pet{
			Name:    fmt.Sprintf("cat-%d", i),
			Species: models.SpeciesCat,
			Author:  models.PetAuthor{Email: "owner@example.com"},
		}); err != nil {
			t.Fatalf("seed cat: %v", err)
		}
	}
}

func TestGet_MalformedID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _ := newRouter(t, db)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/doglist/not-an-id", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreate_RequiresToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _ := newRouter(t, db)

	body := `{"name":"Rex","species":"dog"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/addpet", strings.NewReader(body)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreate_AuthorFromToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, mgr := newRouter(t, db)

	token, err := mgr.IssueToken("lister@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	body := `{"name":"Rex","species":"dog","author":{"email":"forged@example.com"}}`
	req := httptest.NewRequest("POST", "/addpet", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: mgr.CookieName(), Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created models.Pet
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if created.Author.Email != "lister@example.com" {
		t.Fatalf("author = %q, want the token's email, not the body's", created.Author.Email)
	}
	if created.Status != "available" {
		t.Fatalf("status = %q, want available default", created.Status)
	}
}

func TestCreate_UnknownSpecies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, mgr := newRouter(t, db)

	token, err := mgr.IssueToken("lister@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	req := httptest.NewRequest("POST", "/addpet", strings.NewReader(`{"name":"Polly","species":"parrot"}`))
	req.AddCookie(&http.Cookie{Name: mgr.CookieName(), Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListPaged_MergesAcrossCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := petstore.New(db)
	router, _ := newRouter(t, db)
	seedPets(t, store, 3, 2)

	page := func(n int) petstore.PagedResult {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", fmt.Sprintf("/allpets?page=%d&limit=2", n), nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("page %d: status = %d", n, rec.Code)
		}
		var res petstore.PagedResult
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("page %d: parse: %v", n, err)
		}
		return res
	}

	p1, p2, p3 := page(1), page(2), page(3)
	if p1.TotalCount != 5 || p1.TotalPages != 3 {
		t.Fatalf("totals = (%d, %d), want (5, 3)", p1.TotalCount, p1.TotalPages)
	}
	if len(p1.Items) != 2 || p1.Items[0].Species != models.SpeciesDog || p1.Items[1].Species != models.SpeciesDog {
		t.Fatalf("page 1 should be two dogs, got %+v", p1.Items)
	}
	if len(p2.Items) != 2 || p2.Items[0].Species != models.SpeciesDog || p2.Items[1].Species != models.SpeciesCat {
		t.Fatalf("page 2 should straddle the dog/cat boundary, got %+v", p2.Items)
	}
	if len(p3.Items) != 1 || p3.Items[0].Species != models.SpeciesCat {
		t.Fatalf("page 3 should be the last cat, got %+v", p3.Items)
	}
}

func TestListMine_OnlyCallersPets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := petstore.New(db)
	router, mgr := newRouter(t, db)
	seedPets(t, store, 2, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := store.Create(ctx, models.Pet{
		Name:    "stray",
		Species: models.SpeciesDog,
		Author:  models.PetAuthor{Email: "other@example.com"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	token, err := mgr.IssueToken("owner@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	req := httptest.NewRequest("POST", "/mypets", nil)
	req.AddCookie(&http.Cookie{Name: mgr.CookieName(), Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res petstore.PagedResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.TotalCount != 3 {
		t.Fatalf("totalCount = %d, want 3 owned pets", res.TotalCount)
	}
	for _, p := range res.Items {
		if p.Author.Email != "owner@example.com" {
			t.Fatalf("found %q in caller's listing", p.Author.Email)
		}
	}
}
