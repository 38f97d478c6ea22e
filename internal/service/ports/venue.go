package ports

import "context"

// VenueDirectory resolves establishment profiles from the establishment service.
type VenueDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
