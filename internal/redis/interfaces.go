package redis

import (
	"context"

	"geogame/internal/domain"
)

// PositionStoreInterface defines the interface for player position
// operations. There is no delete: positions only leave the store by
// expiring.
type PositionStoreInterface interface {
	Upsert(ctx context.Context, pos *domain.PlayerPosition) error
	FindNearby(ctx context.Context, requester string, lat, lon, radiusMeters float64) ([]PlayerLocation, error)
}

// PostIndexInterface defines the interface for post geofence lookups.
type PostIndexInterface interface {
	Add(ctx context.Context, postID string, lat, lon float64) error
	WithinRadius(ctx context.Context, postID string, lat, lon, radiusMeters float64) (bool, error)
}

// Ensure concrete types implement interfaces.
var (
	_ PositionStoreInterface = (*PositionStore)(nil)
	_ PostIndexInterface     = (*PostIndex)(nil)
)
