package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo     ports.BookingRepo
	applicationRepo ports.ApplicationRepo
	venues          ports.VenueDirectory
	logger          logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	applicationRepo ports.ApplicationRepo,
	venues ports.VenueDirectory,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:     bookingRepo,
		applicationRepo: applicationRepo,
		venues:          venues,
		logger:          logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.VenueID == "" {
		return nil, fmt.Errorf("%w: venue_id is required", domain.ErrValidation)
	}
	if input.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	}

	start, end, err := normalizeWindow(input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	ok, err := s.venues.Exists(ctx, input.VenueID)
	if err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}
	if !ok {
		return nil, domain.ErrVenueNotFound
	}

	if err = s.checkOverlap(ctx, input.VenueID, input.EventDate, start, end, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		VenueID:     input.VenueID,
		StartTime:   start,
		EndTime:     end,
		Status:      domain.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("venue_id", booking.VenueID),
		logger.String("event_date", booking.EventDate.Format("2006-01-02")),
	)

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// Update applies a partial edit. Edits are frozen as soon as the first
// application arrives, so a venue cannot change terms under bands that
// already committed to the slot.
func (s *BookingService) Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingLocked
	}

	count, err := s.applicationRepo.CountByBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	if count > 0 {
		return nil, domain.ErrBookingLocked
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
		}
		booking.Title = *input.Title
	}
	if input.Description != nil {
		booking.Description = *input.Description
	}

	windowChanged := false
	if input.EventDate != nil {
		booking.EventDate = *input.EventDate
		windowChanged = true
	}
	if input.VenueID != nil {
		if *input.VenueID == "" {
			return nil, fmt.Errorf("%w: venue_id cannot be empty", domain.ErrValidation)
		}
		booking.VenueID = *input.VenueID
		windowChanged = true
	}
	if input.StartTime != nil {
		booking.StartTime = *input.StartTime
		windowChanged = true
	}
	if input.EndTime != nil {
		booking.EndTime = *input.EndTime
		windowChanged = true
	}

	if windowChanged {
		start, end, err := normalizeWindow(booking.StartTime, booking.EndTime)
		if err != nil {
			return nil, err
		}
		booking.StartTime, booking.EndTime = start, end

		if input.VenueID != nil {
			ok, err := s.venues.Exists(ctx, booking.VenueID)
			if err != nil {
				return nil, fmt.Errorf("check venue: %w", err)
			}
			if !ok {
				return nil, domain.ErrVenueNotFound
			}
		}

		if err = s.checkOverlap(ctx, booking.VenueID, booking.EventDate, start, end, booking.ID); err != nil {
			return nil, err
		}
	}

	booking.UpdatedAt = time.Now().UTC()
	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking updated", logger.String("booking_id", booking.ID))

	return booking, nil
}

// Delete removes a booking. Like edits, deletion is blocked once bands
// have applied.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.bookingRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.applicationRepo.CountByBooking(ctx, id)
	if err != nil {
		return fmt.Errorf("count applications: %w", err)
	}
	if count > 0 {
		return domain.ErrBookingLocked
	}

	if err = s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted", logger.String("booking_id", id))

	return nil
}

func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingLocked
	}

	count, err := s.applicationRepo.CountByBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	if count > 0 {
		return nil, domain.ErrBookingLocked
	}

	booking.Status = domain.BookingStatusCancelled
	booking.UpdatedAt = time.Now().UTC()
	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled", logger.String("booking_id", id))

	return booking, nil
}

func (s *BookingService) CompleteElapsed(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.bookingRepo.CompleteElapsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("elapsed bookings completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}

func (s *BookingService) checkOverlap(ctx context.Context, venueID string, date time.Time, start, end, excludeID string) error {
	existing, err := s.bookingRepo.ListByVenueAndDate(ctx, venueID, date)
	if err != nil {
		return fmt.Errorf("list venue bookings: %w", err)
	}

	for _, b := range existing {
		if b.ID == excludeID {
			continue
		}
		if domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			return domain.ErrBookingConflict
		}
	}

	return nil
}

// normalizeWindow validates "HH:MM" time-of-day values and re-formats them
// zero-padded so string comparison in the overlap rule stays chronological.
func normalizeWindow(startTime, endTime string) (string, string, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: start_time must be HH:MM", domain.ErrValidation)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: end_time must be HH:MM", domain.ErrValidation)
	}

	s, e := start.Format("15:04"), end.Format("15:04")
	if s >= e {
		return "", "", fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}

	return s, e, nil
}
