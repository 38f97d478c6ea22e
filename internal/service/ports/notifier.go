package ports

import (
	"context"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
)

type ApplicationNotifier interface {
	ApplicationReceived(ctx context.Context, app *domain.Application)
	ApplicationAccepted(ctx context.Context, app *domain.Application)
}
