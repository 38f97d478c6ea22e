package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*mocks.MockBookingRepo, *mocks.MockApplicationRepo, *mocks.MockVenueDirectory, *BookingService) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	applicationRepo := mocks.NewMockApplicationRepo(t)
	venues := mocks.NewMockVenueDirectory(t)
	svc := NewBookingService(bookingRepo, applicationRepo, venues, newTestLogger(t))
	return bookingRepo, applicationRepo, venues, svc
}

func createInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		Title:       "Friday night rock",
		Description: "Opening slot",
		EventDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		VenueID:     "v1",
		StartTime:   "20:00",
		EndTime:     "22:00",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	bookingRepo, _, venues, svc := newBookingService(t)

	venues.EXPECT().Exists(mock.Anything, "v1").Return(true, nil)
	bookingRepo.EXPECT().ListByVenueAndDate(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), createInput())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "v1", booking.VenueID)
	assert.Equal(t, "20:00", booking.StartTime)
	assert.Equal(t, "22:00", booking.EndTime)
	assert.Nil(t, booking.BandID)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_Create_NormalizesTimes(t *testing.T) {
	bookingRepo, _, venues, svc := newBookingService(t)

	venues.EXPECT().Exists(mock.Anything, "v1").Return(true, nil)
	bookingRepo.EXPECT().ListByVenueAndDate(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := createInput()
	input.StartTime = "9:30"
	input.EndTime = "11:00"

	booking, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "09:30", booking.StartTime)
	assert.Equal(t, "11:00", booking.EndTime)
}

func TestBookingService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateBookingInput)
	}{
		{"empty title", func(in *domain.CreateBookingInput) { in.Title = "" }},
		{"empty venue", func(in *domain.CreateBookingInput) { in.VenueID = "" }},
		{"zero date", func(in *domain.CreateBookingInput) { in.EventDate = time.Time{} }},
		{"bad start time", func(in *domain.CreateBookingInput) { in.StartTime = "not-a-time" }},
		{"bad end time", func(in *domain.CreateBookingInput) { in.EndTime = "25:99" }},
		{"start equals end", func(in *domain.CreateBookingInput) { in.StartTime = "20:00"; in.EndTime = "20:00" }},
		{"start after end", func(in *domain.CreateBookingInput) { in.StartTime = "22:00"; in.EndTime = "20:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, svc := newBookingService(t)

			input := createInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Create_VenueNotFound(t *testing.T) {
	_, _, venues, svc := newBookingService(t)

	venues.EXPECT().Exists(mock.Anything, "v1").Return(false, nil)

	_, err := svc.Create(context.Background(), createInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestBookingService_Create_OverlapConflict(t *testing.T) {
	bookingRepo, _, venues, svc := newBookingService(t)

	existing := []*domain.Booking{
		{ID: "b1", VenueID: "v1", StartTime: "19:00", EndTime: "21:00"},
	}

	venues.EXPECT().Exists(mock.Anything, "v1").Return(true, nil)
	bookingRepo.EXPECT().ListByVenueAndDate(mock.Anything, "v1", mock.Anything).Return(existing, nil)

	input := createInput()
	input.StartTime = "20:30"
	input.EndTime = "22:00"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

func TestBookingService_Create_TouchingWindowsAllowed(t *testing.T) {
	bookingRepo, _, venues, svc := newBookingService(t)

	existing := []*domain.Booking{
		{ID: "b1", VenueID: "v1", StartTime: "18:00", EndTime: "20:00"},
	}

	venues.EXPECT().Exists(mock.Anything, "v1").Return(true, nil)
	bookingRepo.EXPECT().ListByVenueAndDate(mock.Anything, "v1", mock.Anything).Return(existing, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), createInput())

	require.NoError(t, err)
	assert.Equal(t, "20:00", booking.StartTime)
}

func TestBookingService_Update_NotFound(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	title := "New title"
	_, err := svc.Update(context.Background(), "missing", domain.UpdateBookingInput{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Update_LockedByApplications(t *testing.T) {
	bookingRepo, applicationRepo, _, svc := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusPending}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	applicationRepo.EXPECT().CountByBooking(mock.Anything, "b1").Return(2, nil)

	title := "New title"
	_, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingLocked)
}

func TestBookingService_Update_LockedOnceAccepted(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bandID := "band-1"
	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusAccepted, BandID: &bandID}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	title := "New title"

	// repeated edits after acceptance fail every time
	for i := 0; i < 2; i++ {
		_, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{Title: &title})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBookingLocked)
	}
}

func TestBookingService_Update_Success(t *testing.T) {
	bookingRepo, applicationRepo, _, svc := newBookingService(t)

	booking := &domain.Booking{
		ID:        "b1",
		Title:     "Old title",
		VenueID:   "v1",
		EventDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "20:00",
		EndTime:   "22:00",
		Status:    domain.BookingStatusPending,
	}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	applicationRepo.EXPECT().CountByBooking(mock.Anything, "b1").Return(0, nil)
	bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	title := "New title"
	updated, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
}

func TestBookingService_Update_WindowChangeChecksOverlap(t *testing.T) {
	bookingRepo, applicationRepo, _, svc := newBookingService(t)

	booking := &domain.Booking{
		ID:        "b1",
		Title:     "Show",
		VenueID:   "v1",
		EventDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "20:00",
		EndTime:   "22:00",
		Status:    domain.BookingStatusPending,
	}
	neighbour := &domain.Booking{ID: "b2", VenueID: "v1", StartTime: "17:00", EndTime: "19:00"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	applicationRepo.EXPECT().CountByBooking(mock.Anything, "b1").Return(0, nil)
	bookingRepo.EXPECT().ListByVenueAndDate(mock.Anything, "v1", mock.Anything).Return([]*domain.Booking{booking, neighbour}, nil)

	start := "18:00"
	_, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{StartTime: &start})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

func TestBookingService_Update_WindowChangeIgnoresSelf(t *testing.T) {
	bookingRepo, applicationRepo, _, svc := newBookingService(t)

	booking := &domain.Booking{
		ID:        "b1",
		Title:     "Show",
		VenueID:   "v1",
		EventDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "20:00",
		EndTime:   "22:00",
		Status:    domain.BookingStatusPending,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	applicationRepo.EXPECT().CountByBooking(mock.Anything, "b1").Return(0, nil)
	bookingRepo.EXPECT().ListByVenueAndDate(mock.Anything, "v1", mock.Anything).Return([]*domain.Booking{booking}, nil)
	bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	start := "19:00"
	updated, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{StartTime: &start})

	require.NoError(t, err)
	assert.Equal(t, "19:00", updated.StartTime)
}

func TestBookingService_Delete_Success(t *testing.T) {
	bookingRepo, applicationRepo, _, svc := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1"}, nil)
	applicationRepo.EXPECT().CountByBooking(mock.Anything, "b1").Return(0, nil)
	bookingRepo.EXPECT().Delete(mock.Anything, "b1").Return(nil)

	err := svc.Delete(context.Background(), "b1")

	require.NoError(t, err)
}

func TestBookingService_Delete_LockedByApplications(t *testing.T) {
	bookingRepo, applicationRepo, _, svc := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1"}, nil)
	applicationRepo.EXPECT().CountByBooking(mock.Anything, "b1").Return(1, nil)

	err := svc.Delete(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingLocked)
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	bookingRepo, applicationRepo, _, svc := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusPending}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	applicationRepo.EXPECT().CountByBooking(mock.Anything, "b1").Return(0, nil)
	bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	cancelled, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
}

func TestBookingService_Cancel_LockedByApplications(t *testing.T) {
	bookingRepo, applicationRepo, _, svc := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusPending}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	applicationRepo.EXPECT().CountByBooking(mock.Anything, "b1").Return(3, nil)

	_, err := svc.Cancel(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingLocked)
}

func TestBookingService_CompleteElapsed_Success(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	completed := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusCompleted},
		{ID: "b2", Status: domain.BookingStatusCompleted},
	}
	bookingRepo.EXPECT().CompleteElapsed(mock.Anything).Return(completed, nil)

	res, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestBookingService_CompleteElapsed_RepoError(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().CompleteElapsed(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CompleteElapsed(context.Background())

	require.Error(t, err)
}
