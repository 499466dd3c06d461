package repo

import (
	"context"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// StatsRepositoryPG implements domain.StatsRepository on PostgreSQL through
// the marker-checked SQL runner.
type StatsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewStatsRepository creates a new stats repo.
func NewStatsRepository(sql infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{sql: sql}
}

// CountNGOs returns the number of registered NGOs.
func (r *StatsRepositoryPG) CountNGOs(ctx context.Context) (int, error) {
	var n int
	if err := r.sql.QueryRow(ctx, sqlinline.QCountNGOs).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountProfiles returns the number of registered user profiles.
func (r *StatsRepositoryPG) CountProfiles(ctx context.Context) (int, error) {
	var n int
	if err := r.sql.QueryRow(ctx, sqlinline.QCountProfiles).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListDonations returns every donation with the donor, NGO, and category
// display names left-joined in. Amounts come back as text so the normalizer
// owns the parse.
func (r *StatsRepositoryPG) ListDonations(ctx context.Context) ([]domain.DonationRecord, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsJoined)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonations(rows)
}

// ListDonationsByDonor returns the donations of a single donor, newest first.
func (r *StatsRepositoryPG) ListDonationsByDonor(ctx context.Context, donorID string) ([]domain.DonationRecord, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsByDonor, donorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonations(rows)
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)

type donationRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanDonations(rows donationRows) ([]domain.DonationRecord, error) {
	var items []domain.DonationRecord
	for rows.Next() {
		var (
			rec     domain.DonationRecord
			amount  *string
			message *string
		)
		if err := rows.Scan(&rec.ID, &amount, &message, &rec.DonorName, &rec.NGOName, &rec.CategoryName, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if amount != nil {
			rec.Amount = *amount
		}
		if message != nil {
			rec.Message = *message
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
