package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"geogame/internal/domain"
)

const playerGeoKey = "players:locations"

const presenceKeyPrefix = "players:presence:"

// presenceDoc is the JSON payload stored under a player's presence key.
// The key's Redis TTL is what expires the position: the geo set itself
// cannot expire individual members.
type presenceDoc struct {
	DisplayName string    `json:"display_name"`
	LastUpdated time.Time `json:"last_updated"`
}

// PlayerLocation is a stored player position returned by a radius query.
type PlayerLocation struct {
	UserName       string
	DisplayName    string
	Lat            float64
	Lon            float64
	DistanceMeters float64
}

// PositionStore keeps live player positions in a Redis geo set, with a
// companion presence key per player carrying the display name and the
// freshness timestamp. A position is live only while its presence key
// exists; queries skip and lazily reap members whose key has expired.
type PositionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPositionStore creates a new PositionStore. Positions expire ttl
// after their last upsert.
func NewPositionStore(client *redis.Client, ttl time.Duration) *PositionStore {
	return &PositionStore{client: client, ttl: ttl}
}

// Upsert stores a player's position, overwriting any previous one and
// restarting its expiry clock.
func (s *PositionStore) Upsert(ctx context.Context, pos *domain.PlayerPosition) error {
	data, err := json.Marshal(presenceDoc{
		DisplayName: pos.DisplayName,
		LastUpdated: pos.LastUpdated,
	})
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.GeoAdd(ctx, playerGeoKey, &redis.GeoLocation{
		Name:      pos.UserName,
		Longitude: pos.Location.Lon,
		Latitude:  pos.Location.Lat,
	})
	pipe.Set(ctx, presenceKeyPrefix+pos.UserName, data, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// FindNearby returns live positions within radiusMeters of the given
// point, nearest first, excluding the requester. The radius boundary is
// inclusive (Redis BYRADIUS semantics).
func (s *PositionStore) FindNearby(ctx context.Context, requester string, lat, lon, radiusMeters float64) ([]PlayerLocation, error) {
	results, err := s.client.GeoRadius(ctx, playerGeoKey, lon, lat, &redis.GeoRadiusQuery{
		Radius:    radiusMeters,
		Unit:      "m",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}).Result()
	if err != nil {
		return nil, err
	}

	// Fetch all presence docs in one round trip.
	pipe := s.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd, len(results))
	for _, r := range results {
		if r.Name == requester {
			continue
		}
		cmds[r.Name] = pipe.Get(ctx, presenceKeyPrefix+r.Name)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	locations := make([]PlayerLocation, 0, len(cmds))
	for _, r := range results {
		cmd, ok := cmds[r.Name]
		if !ok {
			continue
		}
		data, err := cmd.Bytes()
		if err == redis.Nil {
			// Presence expired; reap the stale geo member.
			_ = s.client.ZRem(ctx, playerGeoKey, r.Name).Err()
			continue
		}
		if err != nil {
			return nil, err
		}

		var doc presenceDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		locations = append(locations, PlayerLocation{
			UserName:       r.Name,
			DisplayName:    doc.DisplayName,
			Lat:            r.Latitude,
			Lon:            r.Longitude,
			DistanceMeters: r.Dist,
		})
	}

	return locations, nil
}
