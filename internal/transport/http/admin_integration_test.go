package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/app"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/catalog"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/clock"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/storage/postgres"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/testutil"
)

type apiErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func TestSeedAndList_HTTPIntegration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)
	testutil.InsertEvent(t, ctx, pool, "Leftover", domain.TierGold, time.Now())

	sample, err := catalog.Sample()
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	repo := postgres.NewEventRepository(pool)
	catalogSvc := app.NewCatalogService(repo, clock.NewFixed(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)), sample)
	logger := log.New(&bytes.Buffer{}, "", 0)

	seed := HandleSeed(catalogSvc, "", logger)
	for run := 0; run < 2; run++ {
		rec := httptest.NewRecorder()
		seed.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/seed", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("run %d: expected status 200, got %d", run, rec.Code)
		}
		var resp seedResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Count != 8 || len(resp.Events) != 8 {
			t.Fatalf("run %d: expected 8 events, got %d", run, resp.Count)
		}
	}
	if n, err := repo.CountEvents(ctx); err != nil || n != 8 {
		t.Fatalf("expected 8 rows, got %d (%v)", n, err)
	}

	list := HandleListEvents(app.NewListingService(repo), logger)
	rec := httptest.NewRecorder()
	list.ServeHTTP(rec, viewerRequest(http.MethodGet, "/api/events", domain.Viewer{ID: "u1", Tier: domain.TierSilver}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var listing listingResponse
	if err := json.NewDecoder(rec.Body).Decode(&listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(listing.Available) != 4 || len(listing.All) != 8 {
		t.Fatalf("expected 4 available of 8, got %d of %d", len(listing.Available), len(listing.All))
	}
}

func TestSeed_HTTPIntegration_StoreUnavailable(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)

	repo := postgres.NewEventRepository(pool)
	svc := app.NewCatalogService(repo, clock.NewSystem(), nil)
	handler := HandleSeed(svc, "", log.New(&bytes.Buffer{}, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	var errResp apiErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error != "Failed to clear existing events" {
		t.Fatalf("unexpected error %q", errResp.Error)
	}
}
