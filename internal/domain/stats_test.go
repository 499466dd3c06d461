package domain

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func record(id string, amount any, ngo *string, createdAt time.Time) DonationRecord {
	return DonationRecord{ID: id, Amount: amount, NGOName: ngo, CreatedAt: createdAt}
}

func TestAggregateDonationsMixedAmounts(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	records := []DonationRecord{
		record("d1", "100", strptr("Alpha"), base),
		record("d2", 200.0, strptr("Alpha"), base.Add(time.Hour)),
		record("d3", nil, nil, base.Add(2*time.Hour)),
	}

	stats := AggregateDonations(records, 5, 10)

	if stats.TotalDonations != 3 {
		t.Fatalf("TotalDonations = %d, want 3", stats.TotalDonations)
	}
	if stats.TotalAmount != 300 {
		t.Fatalf("TotalAmount = %v, want 300", stats.TotalAmount)
	}
	if len(stats.TopNGOs) != 1 {
		t.Fatalf("expected 1 ranked NGO, got %d", len(stats.TopNGOs))
	}
	top := stats.TopNGOs[0]
	if top.Name != "Alpha" || top.DonationCount != 2 || top.TotalAmount != 300 {
		t.Fatalf("unexpected leader: %+v", top)
	}
	if len(stats.Recent) != 3 {
		t.Fatalf("expected 3 recent records, got %d", len(stats.Recent))
	}
	if stats.Recent[0].ID != "d3" || stats.Recent[2].ID != "d1" {
		t.Fatalf("recent not ordered newest-first: %v %v", stats.Recent[0].ID, stats.Recent[2].ID)
	}
}

func TestAggregateDonationsEmptyInput(t *testing.T) {
	stats := AggregateDonations(nil, 5, 10)

	if stats.TotalDonations != 0 || stats.TotalAmount != 0 {
		t.Fatalf("expected zero totals, got %+v", stats)
	}
	if stats.Recent == nil || len(stats.Recent) != 0 {
		t.Fatalf("expected empty recent slice, got %#v", stats.Recent)
	}
	if stats.TopNGOs == nil || len(stats.TopNGOs) != 0 {
		t.Fatalf("expected empty leaderboard, got %#v", stats.TopNGOs)
	}
}

func TestAggregateDonationsTruncation(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var records []DonationRecord
	for i := 0; i < 8; i++ {
		name := string(rune('A' + i))
		records = append(records, record(name, 10*(i+1), strptr("NGO "+name), base.Add(time.Duration(i)*time.Minute)))
	}

	stats := AggregateDonations(records, 3, 4)

	if len(stats.TopNGOs) != 3 {
		t.Fatalf("expected top list truncated to 3, got %d", len(stats.TopNGOs))
	}
	if len(stats.Recent) != 4 {
		t.Fatalf("expected recent list truncated to 4, got %d", len(stats.Recent))
	}
	// Highest amounts were added last, so they are also the newest.
	if stats.TopNGOs[0].Name != "NGO H" {
		t.Fatalf("expected NGO H to lead, got %q", stats.TopNGOs[0].Name)
	}
	if stats.Recent[0].ID != "H" {
		t.Fatalf("expected newest record first, got %q", stats.Recent[0].ID)
	}
}

func TestAggregateDonationsRankingTieKeepsFirstSeenOrder(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []DonationRecord{
		record("d1", 100, strptr("Beta"), base),
		record("d2", 100, strptr("Gamma"), base.Add(time.Minute)),
		record("d3", 250, strptr("Alpha"), base.Add(2*time.Minute)),
	}

	stats := AggregateDonations(records, 5, 10)

	want := []string{"Alpha", "Beta", "Gamma"}
	if len(stats.TopNGOs) != len(want) {
		t.Fatalf("expected %d NGOs, got %d", len(want), len(stats.TopNGOs))
	}
	for i, name := range want {
		if stats.TopNGOs[i].Name != name {
			t.Fatalf("TopNGOs[%d] = %q, want %q", i, stats.TopNGOs[i].Name, name)
		}
	}
}

func TestAggregateDonationsRecentTieStable(t *testing.T) {
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []DonationRecord{
		record("first", 1, nil, at),
		record("second", 2, nil, at),
		record("third", 3, nil, at),
	}

	stats := AggregateDonations(records, 5, 10)

	for i, want := range []string{"first", "second", "third"} {
		if stats.Recent[i].ID != want {
			t.Fatalf("Recent[%d] = %q, want %q (equal timestamps must keep input order)", i, stats.Recent[i].ID, want)
		}
	}
}

func TestAggregateDonationsLeaderboardNeverExceedsTotal(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []DonationRecord{
		record("d1", "40", strptr("Alpha"), base),
		record("d2", "60", nil, base),
		record("d3", "bad-amount", strptr("Beta"), base),
	}

	stats := AggregateDonations(records, 10, 10)

	var grouped float64
	for _, ngo := range stats.TopNGOs {
		grouped += ngo.TotalAmount
	}
	if grouped > stats.TotalAmount {
		t.Fatalf("grouped amount %v exceeds total %v", grouped, stats.TotalAmount)
	}
	// d2 has no NGO join, so grouped must be strictly below the total.
	if grouped >= stats.TotalAmount {
		t.Fatalf("expected strict inequality with an unresolvable NGO reference, got %v vs %v", grouped, stats.TotalAmount)
	}
}

func TestFavoriteCategory(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []DonationRecord{
		{ID: "d1", CategoryName: strptr("Education"), CreatedAt: base},
		{ID: "d2", CategoryName: strptr("Health"), CreatedAt: base},
		{ID: "d3", CategoryName: strptr("Health"), CreatedAt: base},
		{ID: "d4", CreatedAt: base},
	}

	if got := FavoriteCategory(records); got != "Health" {
		t.Fatalf("FavoriteCategory = %q, want %q", got, "Health")
	}
	if got := FavoriteCategory(nil); got != "" {
		t.Fatalf("FavoriteCategory(nil) = %q, want empty", got)
	}

	tied := []DonationRecord{
		{ID: "d1", CategoryName: strptr("Water")},
		{ID: "d2", CategoryName: strptr("Shelter")},
	}
	if got := FavoriteCategory(tied); got != "Water" {
		t.Fatalf("FavoriteCategory tie = %q, want first-seen %q", got, "Water")
	}
}
