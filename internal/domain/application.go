package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusCancelled ApplicationStatus = "cancelled"
)

// Application is a band's candidacy to play a specific booking.
// At most one application may exist per (band, booking) pair, and at
// most one application per booking may ever become accepted.
type Application struct {
	ID        string            `json:"id"`
	BandID    string            `json:"band_id"`
	BookingID string            `json:"booking_id"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"applied_at"`
}

// BandSummary is the minimal band identity served by the band directory.
type BandSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ApplicationWithBand is an application enriched with band identity for
// listings. Band is nil when the band directory could not resolve it.
type ApplicationWithBand struct {
	Application
	Band *BandSummary `json:"band,omitempty"`
}
