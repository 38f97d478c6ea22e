package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is a performance slot at a venue, open for band candidacy
// until a band is accepted for it.
type Booking struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	EventDate   time.Time     `json:"event_date"`
	VenueID     string        `json:"venue_id"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	BandID      *string       `json:"band_id"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	Title       string
	Description string
	EventDate   time.Time
	VenueID     string
	StartTime   string
	EndTime     string
}

type UpdateBookingInput struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	VenueID     *string
	StartTime   *string
	EndTime     *string
}
