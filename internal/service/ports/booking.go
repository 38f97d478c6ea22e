package ports

import (
	"context"
	"time"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByVenueAndDate(ctx context.Context, venueID string, date time.Time) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	CompleteElapsed(ctx context.Context) ([]*domain.Booking, error)
}
