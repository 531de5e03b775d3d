package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const postGeoKey = "posts:locations"

// PostIndex keeps post locations in a Redis geo set so reachability
// checks run on the same spatial engine as the nearby search.
type PostIndex struct {
	client *redis.Client
}

// NewPostIndex creates a new PostIndex.
func NewPostIndex(client *redis.Client) *PostIndex {
	return &PostIndex{client: client}
}

// Add stores a post's location using GEOADD.
func (s *PostIndex) Add(ctx context.Context, postID string, lat, lon float64) error {
	return s.client.GeoAdd(ctx, postGeoKey, &redis.GeoLocation{
		Name:      postID,
		Longitude: lon,
		Latitude:  lat,
	}).Err()
}

// WithinRadius reports whether the post's stored location lies within
// radiusMeters of the given point. Unknown post ids report false.
func (s *PostIndex) WithinRadius(ctx context.Context, postID string, lat, lon, radiusMeters float64) (bool, error) {
	results, err := s.client.GeoRadius(ctx, postGeoKey, lon, lat, &redis.GeoRadiusQuery{
		Radius: radiusMeters,
		Unit:   "m",
	}).Result()
	if err != nil {
		return false, err
	}

	for _, r := range results {
		if r.Name == postID {
			return true, nil
		}
	}
	return false, nil
}
