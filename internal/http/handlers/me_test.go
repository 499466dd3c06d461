package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"server/internal/domain"
	"server/internal/middleware"
)

func TestMyStatsRequiresUser(t *testing.T) {
	app := newTestApp(&statsStoreStub{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/me/stats", nil)
	rr := httptest.NewRecorder()
	app.MyStats(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestMyStatsAggregatesDonorRecords(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var records []domain.DonationRecord
	for i := 0; i < 7; i++ {
		records = append(records, domain.DonationRecord{
			ID:           string(rune('a' + i)),
			Amount:       "100",
			NGOName:      strptr("Alpha"),
			CategoryName: strptr("Education"),
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		})
	}
	store := &statsStoreStub{donorDonations: map[string][]domain.DonationRecord{"donor-1": records}}
	app := newTestApp(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/me/stats", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "donor-1"))
	rr := httptest.NewRecorder()
	app.MyStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}

	var payload struct {
		TotalDonations     int               `json:"totalDonations"`
		TotalAmount        float64           `json:"totalAmount"`
		TotalAmountDisplay string            `json:"totalAmountDisplay"`
		FavoriteCategory   string            `json:"favCategory"`
		LastDonation       *time.Time        `json:"lastDonation"`
		RecentDonations    []json.RawMessage `json:"recentDonations"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.TotalDonations != 7 {
		t.Fatalf("totalDonations = %d, want 7", payload.TotalDonations)
	}
	if payload.TotalAmount != 700 {
		t.Fatalf("totalAmount = %v, want 700", payload.TotalAmount)
	}
	if payload.TotalAmountDisplay != "₹700" {
		t.Fatalf("totalAmountDisplay = %q, want %q", payload.TotalAmountDisplay, "₹700")
	}
	if payload.FavoriteCategory != "Education" {
		t.Fatalf("favCategory = %q, want Education", payload.FavoriteCategory)
	}
	if len(payload.RecentDonations) != 5 {
		t.Fatalf("recentDonations length = %d, want donor window of 5", len(payload.RecentDonations))
	}
	wantLast := base.Add(6 * time.Hour)
	if payload.LastDonation == nil || !payload.LastDonation.Equal(wantLast) {
		t.Fatalf("lastDonation = %v, want %v", payload.LastDonation, wantLast)
	}
}

func TestMyStatsEmptyHistory(t *testing.T) {
	store := &statsStoreStub{donorDonations: map[string][]domain.DonationRecord{}}
	app := newTestApp(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/me/stats", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "donor-1"))
	rr := httptest.NewRecorder()
	app.MyStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload struct {
		TotalDonations int        `json:"totalDonations"`
		LastDonation   *time.Time `json:"lastDonation"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.TotalDonations != 0 {
		t.Fatalf("totalDonations = %d, want 0", payload.TotalDonations)
	}
	if payload.LastDonation != nil {
		t.Fatalf("lastDonation = %v, want null", payload.LastDonation)
	}
}

func TestMyStatsStoreFailure(t *testing.T) {
	store := &statsStoreStub{err: errors.New("connection refused")}
	app := newTestApp(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/me/stats", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "donor-1"))
	rr := httptest.NewRecorder()
	app.MyStats(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}
