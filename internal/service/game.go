package service

import (
	"context"
	"errors"
	"time"

	"geogame/internal/domain"
	"geogame/internal/geo"
	"geogame/internal/redis"
	"geogame/internal/repository"
)

// GameService implements the game operations: check-ins, the nearby
// search and the post reachability check.
type GameService struct {
	identity    *IdentityService
	positions   redis.PositionStoreInterface
	postRepo    repository.PostRepository
	postIndex   redis.PostIndexInterface
	reachRadius float64
}

// NewGameService creates a new GameService. reachRadiusMeters is the
// geofence radius for the post reachability check.
func NewGameService(
	identity *IdentityService,
	positions redis.PositionStoreInterface,
	postRepo repository.PostRepository,
	postIndex redis.PostIndexInterface,
	reachRadiusMeters float64,
) *GameService {
	return &GameService{
		identity:    identity,
		positions:   positions,
		postRepo:    postRepo,
		postIndex:   postIndex,
		reachRadius: reachRadiusMeters,
	}
}

// CheckIn verifies the caller's credentials and upserts their position.
// Nothing is written when the credential check fails. The written record
// expires on its own unless refreshed by a later check-in.
func (s *GameService) CheckIn(ctx context.Context, userName, password string, lon, lat float64) (*domain.PlayerPosition, error) {
	if userName == "" {
		return nil, ErrInvalidUserName
	}
	if !geo.IsValidLatitude(lat) || !geo.IsValidLongitude(lon) {
		return nil, ErrInvalidLocation
	}

	user, err := s.identity.VerifyCredentials(ctx, userName, password)
	if err != nil {
		return nil, err
	}

	pos := &domain.PlayerPosition{
		UserName:    user.UserName,
		DisplayName: user.Name,
		Location:    domain.Point{Lat: lat, Lon: lon},
		LastUpdated: time.Now().UTC(),
	}
	if err := s.positions.Upsert(ctx, pos); err != nil {
		return nil, err
	}
	return pos, nil
}

// NearbyRequest contains the parameters for a nearby-players search.
type NearbyRequest struct {
	UserName       string
	Password       string
	Lat            float64
	Lon            float64
	DistanceMeters float64
}

// NearbyPlayer is one nearby-search result.
//
// Lat and Lon are the REQUESTER's query coordinates, not the matched
// player's stored ones. Existing clients depend on this shape, so it is
// kept even though it reads oddly; the matched coordinates are available
// on redis.PlayerLocation if the contract is ever revised.
type NearbyPlayer struct {
	UserName string  `json:"userName"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// NearbyPlayers checks the caller in at the given point and returns the
// other players within DistanceMeters of it, nearest first. The radius
// boundary is inclusive. No match is an empty slice, not an error.
func (s *GameService) NearbyPlayers(ctx context.Context, req NearbyRequest) ([]NearbyPlayer, error) {
	if req.DistanceMeters < 0 {
		return nil, ErrInvalidDistance
	}

	pos, err := s.CheckIn(ctx, req.UserName, req.Password, req.Lon, req.Lat)
	if err != nil {
		return nil, err
	}

	matches, err := s.positions.FindNearby(ctx, pos.UserName, req.Lat, req.Lon, req.DistanceMeters)
	if err != nil {
		return nil, err
	}

	players := make([]NearbyPlayer, 0, len(matches))
	for _, m := range matches {
		players = append(players, NearbyPlayer{
			UserName: m.UserName,
			Lat:      req.Lat,
			Lon:      req.Lon,
		})
	}
	return players, nil
}

// ReachedPost is the payload returned when a post has been reached.
// The task solution is never part of it.
type ReachedPost struct {
	PostID string `json:"postId"`
	Task   string `json:"task"`
	IsURL  bool   `json:"isUrl"`
}

// GetPostIfReached returns the post's task payload if the post exists
// and its stored location lies within the reach radius of the claimed
// point. Unknown id and too-far both fail with ErrPostNotReached.
func (s *GameService) GetPostIfReached(ctx context.Context, postID string, lat, lon float64) (*ReachedPost, error) {
	if postID == "" {
		return nil, ErrInvalidPostID
	}
	if !geo.IsValidLatitude(lat) || !geo.IsValidLongitude(lon) {
		return nil, ErrInvalidLocation
	}

	reached, err := s.postIndex.WithinRadius(ctx, postID, lat, lon, s.reachRadius)
	if err != nil {
		return nil, err
	}
	if !reached {
		return nil, ErrPostNotReached
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		// Geo index and repository can disagree if a post was indexed
		// but its row is gone; treat it the same as not reached.
		return nil, ErrPostNotReached
	}
	if err != nil {
		return nil, err
	}

	return &ReachedPost{
		PostID: post.ID,
		Task:   post.Task.Text,
		IsURL:  post.Task.IsURL,
	}, nil
}

// AddPostRequest contains the parameters for creating a post.
type AddPostRequest struct {
	PostID       string
	TaskText     string
	IsURL        bool
	TaskSolution string
	Lat          float64
	Lon          float64
}

// AddPost creates a post (admin surface). The row is written first, then
// the location is indexed; posts are immutable afterwards.
func (s *GameService) AddPost(ctx context.Context, req AddPostRequest) (*domain.Post, error) {
	if req.PostID == "" {
		return nil, ErrInvalidPostID
	}
	if req.TaskText == "" {
		return nil, ErrMissingTask
	}
	if !geo.IsValidLatitude(req.Lat) || !geo.IsValidLongitude(req.Lon) {
		return nil, ErrInvalidLocation
	}

	post := &domain.Post{
		ID:           req.PostID,
		Task:         domain.Task{Text: req.TaskText, IsURL: req.IsURL},
		TaskSolution: req.TaskSolution,
		Location:     domain.Point{Lat: req.Lat, Lon: req.Lon},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	if err := s.postIndex.Add(ctx, post.ID, post.Location.Lat, post.Location.Lon); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts retrieves all posts (admin surface).
func (s *GameService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	return s.postRepo.GetAll(ctx)
}

// EnsurePostIndex rehydrates the post geo index from the repository.
// Run at startup so reach checks work against a cold Redis.
func (s *GameService) EnsurePostIndex(ctx context.Context) error {
	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, post := range posts {
		if err := s.postIndex.Add(ctx, post.ID, post.Location.Lat, post.Location.Lon); err != nil {
			return err
		}
	}
	return nil
}
