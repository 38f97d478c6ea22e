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

type ApplicationService struct {
	applicationRepo ports.ApplicationRepo
	bookingRepo     ports.BookingRepo
	bands           ports.BandDirectory
	notifier        ports.ApplicationNotifier
	logger          logger.Logger
}

func NewApplicationService(
	applicationRepo ports.ApplicationRepo,
	bookingRepo ports.BookingRepo,
	bands ports.BandDirectory,
	notifier ports.ApplicationNotifier,
	logger logger.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		bookingRepo:     bookingRepo,
		bands:           bands,
		notifier:        notifier,
		logger:          logger,
	}
}

// Apply registers a band's candidacy for an open booking. The repository
// performs the open/duplicate checks atomically; the duplicate verdict
// comes from the unique constraint, not from a pre-check.
func (s *ApplicationService) Apply(ctx context.Context, bandID, bookingID string) (*domain.Application, error) {
	ok, err := s.bands.Exists(ctx, bandID)
	if err != nil {
		return nil, fmt.Errorf("check band: %w", err)
	}
	if !ok {
		return nil, domain.ErrBandNotFound
	}

	app := &domain.Application{
		ID:        uuid.New().String(),
		BandID:    bandID,
		BookingID: bookingID,
		Status:    domain.ApplicationStatusPending,
		AppliedAt: time.Now().UTC(),
	}

	if err = s.applicationRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.logger.Info("application received",
		logger.String("application_id", app.ID),
		logger.String("band_id", bandID),
		logger.String("booking_id", bookingID),
	)

	go s.notifier.ApplicationReceived(context.WithoutCancel(ctx), app)

	return app, nil
}

// Accept closes the booking with the chosen band. Exactly one Accept per
// booking can succeed; concurrent losers get ErrBandAlreadyChosen from
// the repository and no partial outcome is ever visible.
func (s *ApplicationService) Accept(ctx context.Context, id string) (*domain.Application, error) {
	app, err := s.applicationRepo.Accept(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("application accepted",
		logger.String("application_id", app.ID),
		logger.String("band_id", app.BandID),
		logger.String("booking_id", app.BookingID),
	)

	go s.notifier.ApplicationAccepted(context.WithoutCancel(ctx), app)

	return app, nil
}

// ListForBooking returns the open candidacies for a booking enriched with
// band identity. For a booking that already accepted a band it reports
// closed with an empty list instead of the stale set.
func (s *ApplicationService) ListForBooking(ctx context.Context, bookingID string) ([]domain.ApplicationWithBand, bool, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}

	if booking.Status == domain.BookingStatusAccepted {
		return []domain.ApplicationWithBand{}, true, nil
	}

	apps, err := s.applicationRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, false, fmt.Errorf("list applications: %w", err)
	}

	res := make([]domain.ApplicationWithBand, 0, len(apps))
	for _, app := range apps {
		enriched := domain.ApplicationWithBand{Application: *app}

		band, err := s.bands.Summary(ctx, app.BandID)
		if err != nil {
			s.logger.Warn("failed to resolve band summary",
				logger.String("band_id", app.BandID),
				logger.String("error", err.Error()),
			)
		} else {
			enriched.Band = band
		}

		res = append(res, enriched)
	}

	return res, false, nil
}
