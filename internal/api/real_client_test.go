package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateSiteSendsDraftAndDecodesResponse(t *testing.T) {
	var gotAuth string
	var gotBody CreateSiteOpts

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/sites" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Site{ID: 42, Name: gotBody.Name})
	}))
	defer srv.Close()

	client := NewRealClient(srv.URL, "secret-token")
	site, err := client.CreateSite(context.Background(), CreateSiteOpts{Name: "HQ", Country: "DE"})
	if err != nil {
		t.Fatalf("CreateSite failed: %v", err)
	}

	if site.ID != 42 {
		t.Errorf("site.ID = %d, want 42", site.ID)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotBody.Name != "HQ" || gotBody.Country != "DE" {
		t.Errorf("request body = %+v, want name HQ country DE", gotBody)
	}
}

func TestErrorResponseSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "site name already taken"}`))
	}))
	defer srv.Close()

	client := NewRealClient(srv.URL, "token")
	_, err := client.CreateSite(context.Background(), CreateSiteOpts{Name: "HQ"})
	if err == nil {
		t.Fatal("expected error")
	}
	if UserMessage(err) != "site name already taken" {
		t.Errorf("UserMessage = %q, want server message verbatim", UserMessage(err))
	}
}

func TestErrorResponseWithoutBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewRealClient(srv.URL, "token")
	_, err := client.CreateSite(context.Background(), CreateSiteOpts{Name: "HQ"})
	if err == nil {
		t.Fatal("expected error")
	}
	if UserMessage(err) != "request failed with status 500" {
		t.Errorf("UserMessage = %q, want generic fallback", UserMessage(err))
	}
}

func TestListSitesCachesUntilInvalidated(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Site{{ID: 1, Name: "HQ"}})
	}))
	defer srv.Close()

	client := NewRealClient(srv.URL, "token")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		sites, err := client.ListSites(ctx)
		if err != nil {
			t.Fatalf("ListSites failed: %v", err)
		}
		if len(sites) != 1 {
			t.Fatalf("len(sites) = %d, want 1", len(sites))
		}
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1 (cached)", hits)
	}

	client.InvalidateSites()
	if _, err := client.ListSites(ctx); err != nil {
		t.Fatalf("ListSites after invalidation failed: %v", err)
	}
	if hits != 2 {
		t.Errorf("server hits after invalidation = %d, want 2", hits)
	}
}

func TestListAssetsCachePerSite(t *testing.T) {
	hits := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits[r.URL.RawQuery]++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Asset{{ID: 7, Name: "Main Breaker"}})
	}))
	defer srv.Close()

	client := NewRealClient(srv.URL, "token")
	ctx := context.Background()

	if _, err := client.ListAssets(ctx, 1); err != nil {
		t.Fatalf("ListAssets failed: %v", err)
	}
	if _, err := client.ListAssets(ctx, 1); err != nil {
		t.Fatalf("ListAssets failed: %v", err)
	}
	if _, err := client.ListAssets(ctx, 2); err != nil {
		t.Fatalf("ListAssets failed: %v", err)
	}

	if hits["site_id=1"] != 1 {
		t.Errorf("site 1 hits = %d, want 1", hits["site_id=1"])
	}
	if hits["site_id=2"] != 1 {
		t.Errorf("site 2 hits = %d, want 1", hits["site_id=2"])
	}

	client.InvalidateAssets()
	if _, err := client.ListAssets(ctx, 1); err != nil {
		t.Fatalf("ListAssets after invalidation failed: %v", err)
	}
	if hits["site_id=1"] != 2 {
		t.Errorf("site 1 hits after invalidation = %d, want 2", hits["site_id=1"])
	}
}
