package domain

import "time"

// DonationRecord is one donation as returned by the store, with the donor
// and NGO display names already joined in. Amount carries the raw store
// value, which may be numeric or text depending on the column it was read
// from; NormalizeAmount turns it into a usable number. Records are never
// mutated once read.
type DonationRecord struct {
	ID           string    `json:"id"`
	Amount       any       `json:"amount"`
	Message      string    `json:"message,omitempty"`
	DonorName    *string   `json:"donor_name"`
	NGOName      *string   `json:"ngo_name"`
	CategoryName *string   `json:"category,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NGOSummary is a per-NGO aggregate derived from donation records. It lives
// only for the duration of one aggregation call and is never persisted.
type NGOSummary struct {
	Name          string  `json:"name"`
	DonationCount int     `json:"donation_count"`
	TotalAmount   float64 `json:"total_amount"`
}
