package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/handler/dto"
	hmocks "github.com/VistorGiese/back-proj-7-REDUZIDO/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockApplicationSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	applicationSvc := hmocks.NewMockApplicationSvc(t)

	h := NewHandler(bookingSvc, applicationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PUT("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.DeleteBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/applications", h.Apply)
		api.POST("/applications/:id/accept", h.AcceptApplication)
		api.GET("/bookings/:id/applications", h.ListBookingApplications)
	}

	return bookingSvc, applicationSvc, r
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New().String(),
		Title:       "Friday Jazz Night",
		Description: "Live jazz",
		EventDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		VenueID:     uuid.New().String(),
		StartTime:   "20:00",
		EndTime:     "22:00",
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Title:     "Friday Jazz Night",
		EventDate: "2024-06-01",
		VenueID:   booking.VenueID,
		StartTime: "20:00",
		EndTime:   "22:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Friday Jazz Night", resp.Title)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"title":"X","event_date":"not-a-date","venue_id":"` + uuid.New().String() + `","start_time":"20:00","end_time":"22:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingConflict)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Title:     "Friday Jazz Night",
		EventDate: "2024-06-01",
		VenueID:   uuid.New().String(),
		StartTime: "20:00",
		EndTime:   "22:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().Get(mock.Anything, booking.ID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+booking.ID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "2024-06-01", resp.EventDate)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBookings_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookings := []*domain.Booking{sampleBooking(), sampleBooking()}
	bookingSvc.EXPECT().List(mock.Anything).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_UpdateBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	booking.Title = "Renamed"
	bookingSvc.EXPECT().Update(mock.Anything, booking.ID, mock.Anything).Return(booking, nil)

	body := []byte(`{"title":"Renamed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+booking.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed", resp.Title)
}

func TestHandler_UpdateBooking_Locked(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, domain.ErrBookingLocked)

	body := []byte(`{"title":"Renamed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBooking_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"event_date":"June 1st"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteBooking_Locked(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Delete(mock.Anything, id).Return(domain.ErrBookingLocked)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusCancelled
	bookingSvc.EXPECT().Cancel(mock.Anything, booking.ID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

// --- Applications ---

func TestHandler_Apply_Success(t *testing.T) {
	_, applicationSvc, r := setupRouter(t)

	bandID := uuid.New().String()
	bookingID := uuid.New().String()
	app := &domain.Application{
		ID:        uuid.New().String(),
		BandID:    bandID,
		BookingID: bookingID,
		Status:    domain.ApplicationStatusPending,
		AppliedAt: time.Now(),
	}

	applicationSvc.EXPECT().Apply(mock.Anything, bandID, bookingID).Return(app, nil)

	body, _ := json.Marshal(dto.ApplyRequest{BandID: bandID, BookingID: bookingID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_Apply_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"band_id":"not-a-uuid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Apply_Duplicate(t *testing.T) {
	_, applicationSvc, r := setupRouter(t)

	bandID := uuid.New().String()
	bookingID := uuid.New().String()
	applicationSvc.EXPECT().Apply(mock.Anything, bandID, bookingID).Return(nil, domain.ErrAlreadyApplied)

	body, _ := json.Marshal(dto.ApplyRequest{BandID: bandID, BookingID: bookingID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Apply_BookingClosed(t *testing.T) {
	_, applicationSvc, r := setupRouter(t)

	bandID := uuid.New().String()
	bookingID := uuid.New().String()
	applicationSvc.EXPECT().Apply(mock.Anything, bandID, bookingID).Return(nil, domain.ErrBookingClosed)

	body, _ := json.Marshal(dto.ApplyRequest{BandID: bandID, BookingID: bookingID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AcceptApplication_Success(t *testing.T) {
	_, applicationSvc, r := setupRouter(t)

	app := &domain.Application{
		ID:        uuid.New().String(),
		BandID:    uuid.New().String(),
		BookingID: uuid.New().String(),
		Status:    domain.ApplicationStatusAccepted,
		AppliedAt: time.Now(),
	}

	applicationSvc.EXPECT().Accept(mock.Anything, app.ID).Return(app, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/applications/"+app.ID+"/accept", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.Status)
}

func TestHandler_AcceptApplication_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/applications/bad-id/accept", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AcceptApplication_RivalChosen(t *testing.T) {
	_, applicationSvc, r := setupRouter(t)

	id := uuid.New().String()
	applicationSvc.EXPECT().Accept(mock.Anything, id).Return(nil, domain.ErrBandAlreadyChosen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/applications/"+id+"/accept", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListBookingApplications_Open(t *testing.T) {
	_, applicationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	apps := []domain.ApplicationWithBand{
		{
			Application: domain.Application{
				ID:        uuid.New().String(),
				BandID:    uuid.New().String(),
				BookingID: bookingID,
				Status:    domain.ApplicationStatusPending,
				AppliedAt: time.Now(),
			},
			Band: &domain.BandSummary{ID: "b1", Name: "The Strays"},
		},
	}

	applicationSvc.EXPECT().ListForBooking(mock.Anything, bookingID).Return(apps, false, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID+"/applications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApplicationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Closed)
	require.Len(t, resp.Applications, 1)
	require.NotNil(t, resp.Applications[0].Band)
	assert.Equal(t, "The Strays", resp.Applications[0].Band.Name)
}

func TestHandler_ListBookingApplications_Closed(t *testing.T) {
	_, applicationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	applicationSvc.EXPECT().ListForBooking(mock.Anything, bookingID).Return([]domain.ApplicationWithBand{}, true, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID+"/applications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApplicationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Closed)
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, resp.Applications)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
