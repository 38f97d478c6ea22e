package ports

import (
	"context"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
)

// BandDirectory resolves band identities from the band service.
type BandDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
	Summary(ctx context.Context, id string) (*domain.BandSummary, error)
}
