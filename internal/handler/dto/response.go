package dto

import (
	"time"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
)

type BookingResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventDate   string  `json:"event_date"`
	VenueID     string  `json:"venue_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	BandID      *string `json:"band_id,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ApplicationResponse struct {
	ID        string        `json:"id"`
	BandID    string        `json:"band_id"`
	BookingID string        `json:"booking_id"`
	Status    string        `json:"status"`
	AppliedAt string        `json:"applied_at"`
	Band      *BandResponse `json:"band,omitempty"`
}

type BandResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ApplicationListResponse struct {
	Closed       bool                  `json:"closed"`
	Message      string                `json:"message,omitempty"`
	Applications []ApplicationResponse `json:"applications"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		EventDate:   b.EventDate.Format("2006-01-02"),
		VenueID:     b.VenueID,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		BandID:      b.BandID,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToApplicationResponse(a *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		BandID:    a.BandID,
		BookingID: a.BookingID,
		Status:    string(a.Status),
		AppliedAt: a.AppliedAt.Format(time.RFC3339),
	}
}

func ToApplicationListResponse(apps []domain.ApplicationWithBand, closed bool) ApplicationListResponse {
	resp := ApplicationListResponse{
		Closed:       closed,
		Applications: make([]ApplicationResponse, 0, len(apps)),
	}
	if closed {
		resp.Message = "booking is closed - a band has already been confirmed"
		return resp
	}

	for _, a := range apps {
		item := ToApplicationResponse(&a.Application)
		if a.Band != nil {
			item.Band = &BandResponse{
				ID:          a.Band.ID,
				Name:        a.Band.Name,
				Description: a.Band.Description,
			}
		}
		resp.Applications = append(resp.Applications, item)
	}

	return resp
}
