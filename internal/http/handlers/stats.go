package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"server/internal/auth"
	"server/internal/domain"
)

// Window sizes for the bounded summary views.
const (
	topNGOLimit      = 5
	recentLimit      = 10
	donorRecentLimit = 5
)

type adminStatsResponse struct {
	TotalNGOs       int                     `json:"totalNGOs"`
	TotalUsers      int                     `json:"totalUsers"`
	TotalDonations  int                     `json:"totalDonations"`
	TotalAmount     float64                 `json:"totalAmount"`
	RecentDonations []domain.DonationRecord `json:"recentDonations"`
	TopNGOs         []domain.NGOSummary     `json:"topNGOs"`
}

// AdminStats serves the platform-wide aggregate view. The access guard runs
// first and a denied caller never triggers a donation read, so unauthorized
// requests cannot learn anything about the dataset beyond the error shape.
func (a *App) AdminStats(w http.ResponseWriter, r *http.Request) {
	decision, err := a.Guard.Authorize(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		a.Log.Error().Err(err).Msg("admin stats: authorization check failed")
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}
	switch decision.Kind {
	case auth.DecisionUnauthenticated:
		a.error(w, http.StatusUnauthorized, decision.Reason)
		return
	case auth.DecisionForbidden:
		a.error(w, http.StatusForbidden, decision.Reason)
		return
	}

	// The three reads are independent, so they run concurrently and gather
	// before aggregation.
	var (
		totalNGOs  int
		totalUsers int
		donations  []domain.DonationRecord
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		totalNGOs, err = a.Stats.CountNGOs(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalUsers, err = a.Stats.CountProfiles(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		donations, err = a.Stats.ListDonations(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.Log.Error().Err(err).Str("admin", decision.UserID).Msg("admin stats: store read failed")
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	stats := domain.AggregateDonations(donations, topNGOLimit, recentLimit)
	a.json(w, http.StatusOK, adminStatsResponse{
		TotalNGOs:       totalNGOs,
		TotalUsers:      totalUsers,
		TotalDonations:  stats.TotalDonations,
		TotalAmount:     stats.TotalAmount,
		RecentDonations: stats.Recent,
		TopNGOs:         stats.TopNGOs,
	})
}
