package domain

import "sort"

// DonationStats is the aggregate view over a set of donation records. It is
// built fresh per call and never cached.
type DonationStats struct {
	TotalDonations int
	TotalAmount    float64
	Recent         []DonationRecord
	TopNGOs        []NGOSummary
}

// AggregateDonations reduces donation records into bounded summary views:
// overall count and amount, the recentN newest records, and the topN NGOs
// ranked by received amount.
//
// Every record counts toward TotalDonations and TotalAmount, whatever the
// state of its amount or NGO join. Records without a resolvable NGO name are
// excluded from the leaderboard grouping only. Ranking sorts by total amount
// descending; equal totals keep first-seen input order. The function is pure
// and an empty input yields zero totals with empty, non-nil slices.
func AggregateDonations(records []DonationRecord, topN, recentN int) DonationStats {
	stats := DonationStats{
		TotalDonations: len(records),
		Recent:         []DonationRecord{},
		TopNGOs:        []NGOSummary{},
	}

	groups := make(map[string]*NGOSummary, len(records))
	var firstSeen []string
	for _, rec := range records {
		amount := NormalizeAmount(rec.Amount)
		stats.TotalAmount += amount

		if rec.NGOName == nil || *rec.NGOName == "" {
			continue
		}
		name := *rec.NGOName
		group, ok := groups[name]
		if !ok {
			group = &NGOSummary{Name: name}
			groups[name] = group
			firstSeen = append(firstSeen, name)
		}
		group.DonationCount++
		group.TotalAmount += amount
	}

	recent := make([]DonationRecord, len(records))
	copy(recent, records)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if recentN >= 0 && recentN < len(recent) {
		recent = recent[:recentN]
	}
	stats.Recent = recent

	ranked := make([]NGOSummary, 0, len(firstSeen))
	for _, name := range firstSeen {
		ranked = append(ranked, *groups[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalAmount > ranked[j].TotalAmount
	})
	if topN >= 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	stats.TopNGOs = ranked

	return stats
}

// FavoriteCategory returns the category name occurring most often across the
// records, preferring the earliest-seen name on equal counts. Records without
// a joined category are skipped. Empty input yields "".
func FavoriteCategory(records []DonationRecord) string {
	counts := make(map[string]int)
	var firstSeen []string
	for _, rec := range records {
		if rec.CategoryName == nil || *rec.CategoryName == "" {
			continue
		}
		name := *rec.CategoryName
		if _, ok := counts[name]; !ok {
			firstSeen = append(firstSeen, name)
		}
		counts[name]++
	}

	best := ""
	bestCount := 0
	for _, name := range firstSeen {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}
