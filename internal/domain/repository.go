package domain

import "context"

// StatsRepository exposes the read capabilities the aggregation endpoints
// depend on. The three platform-wide reads are independent of one another and
// may be issued concurrently.
type StatsRepository interface {
	CountNGOs(ctx context.Context) (int, error)
	CountProfiles(ctx context.Context) (int, error)
	ListDonations(ctx context.Context) ([]DonationRecord, error)
	ListDonationsByDonor(ctx context.Context, donorID string) ([]DonationRecord, error)
}

// RoleRepository resolves role membership for an authenticated user.
type RoleRepository interface {
	HasRole(ctx context.Context, userID string, role Role) (bool, error)
}
