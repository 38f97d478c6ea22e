package dto

type CreateBookingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	EventDate   string `json:"event_date" binding:"required"`
	VenueID     string `json:"venue_id" binding:"required,uuid"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

type UpdateBookingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	EventDate   *string `json:"event_date"`
	VenueID     *string `json:"venue_id"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
}

type ApplyRequest struct {
	BandID    string `json:"band_id" binding:"required,uuid"`
	BookingID string `json:"booking_id" binding:"required,uuid"`
}
