package handlers

import (
	"net/http"
	"time"

	"server/internal/domain"
	"server/internal/middleware"
)

type donorStatsResponse struct {
	TotalDonations     int                     `json:"totalDonations"`
	TotalAmount        float64                 `json:"totalAmount"`
	TotalAmountDisplay string                  `json:"totalAmountDisplay"`
	FavoriteCategory   string                  `json:"favCategory"`
	LastDonation       *time.Time              `json:"lastDonation"`
	RecentDonations    []domain.DonationRecord `json:"recentDonations"`
}

// MyStats serves the donor dashboard view: the caller's own totals through
// the same aggregation primitives as the admin view, with a smaller recent
// window.
func (a *App) MyStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := a.Stats.ListDonationsByDonor(r.Context(), userID)
	if err != nil {
		a.Log.Error().Err(err).Str("user", userID).Msg("donor stats: store read failed")
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	stats := domain.AggregateDonations(records, topNGOLimit, donorRecentLimit)
	resp := donorStatsResponse{
		TotalDonations:     stats.TotalDonations,
		TotalAmount:        stats.TotalAmount,
		TotalAmountDisplay: a.Currency.Display(middleware.LocaleFromContext(r.Context()), stats.TotalAmount),
		FavoriteCategory:   domain.FavoriteCategory(records),
		RecentDonations:    stats.Recent,
	}
	if len(stats.Recent) > 0 {
		resp.LastDonation = &stats.Recent[0].CreatedAt
	}
	a.json(w, http.StatusOK, resp)
}
