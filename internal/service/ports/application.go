package ports

import (
	"context"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
)

// ApplicationRepo persists band applications. Create and Accept run their
// invariant checks inside a single transaction holding the booking row
// lock, so concurrent calls for the same booking serialize and losers
// observe domain errors instead of partial state.
type ApplicationRepo interface {
	Create(ctx context.Context, a *domain.Application) error
	Accept(ctx context.Context, id string) (*domain.Application, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Application, error)
	CountByBooking(ctx context.Context, bookingID string) (int, error)
}
