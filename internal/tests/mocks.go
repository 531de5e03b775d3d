package tests

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"

	"geogame/internal/domain"
	"geogame/internal/geo"
	"geogame/internal/redis"
	"geogame/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
	GetError    error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.UserName] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.UserName]; ok {
		return repository.ErrDuplicate
	}
	m.users[user.UserName] = user
	return nil
}

func (m *MockUserRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[userName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK POST REPOSITORY
// ──────────────────────────────────────────────

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mu    sync.RWMutex
	posts map[string]*domain.Post

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockPostRepository creates a new mock post repository.
func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		posts: make(map[string]*domain.Post),
	}
}

// AddPost adds a post to the mock repository.
func (m *MockPostRepository) AddPost(post *domain.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[post.ID] = post
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[post.ID]; ok {
		return repository.ErrDuplicate
	}
	m.posts[post.ID] = post
	return nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	post, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *post
	return &copy, nil
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]*domain.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Post, 0, len(m.posts))
	for _, p := range m.posts {
		copy := *p
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK POSITION STORE
// ──────────────────────────────────────────────

// MockPositionStore is a mock implementation of PositionStoreInterface.
// It filters with real great-circle math and an injectable clock, so
// tests exercise distance and expiry semantics.
type MockPositionStore struct {
	mu        sync.RWMutex
	positions map[string]*domain.PlayerPosition
	ttl       time.Duration

	// Now is the clock used for expiry checks. Defaults to time.Now.
	Now func() time.Time

	// Counters
	UpsertCallCount int32

	// Error injection
	UpsertError     error
	FindNearbyError error
}

// NewMockPositionStore creates a new mock position store with the given TTL.
func NewMockPositionStore(ttl time.Duration) *MockPositionStore {
	return &MockPositionStore{
		positions: make(map[string]*domain.PlayerPosition),
		ttl:       ttl,
		Now:       time.Now,
	}
}

// SeedPosition inserts a position directly, bypassing counters. Tests
// use it to plant stale entries with an old LastUpdated.
func (m *MockPositionStore) SeedPosition(pos *domain.PlayerPosition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *pos
	m.positions[pos.UserName] = &copy
}

func (m *MockPositionStore) Upsert(ctx context.Context, pos *domain.PlayerPosition) error {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *pos
	m.positions[pos.UserName] = &copy
	return nil
}

func (m *MockPositionStore) FindNearby(ctx context.Context, requester string, lat, lon, radiusMeters float64) ([]redis.PlayerLocation, error) {
	if m.FindNearbyError != nil {
		return nil, m.FindNearbyError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.Now()
	result := make([]redis.PlayerLocation, 0, len(m.positions))
	for _, p := range m.positions {
		if p.UserName == requester {
			continue
		}
		if now.Sub(p.LastUpdated) > m.ttl {
			continue // expired
		}
		d := geo.DistanceMeters(lat, lon, p.Location.Lat, p.Location.Lon)
		if d > radiusMeters {
			continue // boundary is inclusive, matching Redis BYRADIUS
		}
		result = append(result, redis.PlayerLocation{
			UserName:       p.UserName,
			DisplayName:    p.DisplayName,
			Lat:            p.Location.Lat,
			Lon:            p.Location.Lon,
			DistanceMeters: d,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceMeters < result[j].DistanceMeters
	})
	return result, nil
}

// HasPosition checks if a position exists (for test assertions).
func (m *MockPositionStore) HasPosition(userName string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.positions[userName]
	return ok
}

// GetPosition returns a stored position (for test assertions).
func (m *MockPositionStore) GetPosition(userName string) *domain.PlayerPosition {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.positions[userName]
}

// CountPositions returns the number of stored positions.
func (m *MockPositionStore) CountPositions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.positions)
}

// ──────────────────────────────────────────────
// MOCK POST INDEX
// ──────────────────────────────────────────────

// MockPostIndex is a mock implementation of PostIndexInterface backed by
// real great-circle math.
type MockPostIndex struct {
	mu        sync.RWMutex
	locations map[string]domain.Point

	// Error injection
	AddError          error
	WithinRadiusError error
}

// NewMockPostIndex creates a new mock post index.
func NewMockPostIndex() *MockPostIndex {
	return &MockPostIndex{
		locations: make(map[string]domain.Point),
	}
}

func (m *MockPostIndex) Add(ctx context.Context, postID string, lat, lon float64) error {
	if m.AddError != nil {
		return m.AddError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations[postID] = domain.Point{Lat: lat, Lon: lon}
	return nil
}

func (m *MockPostIndex) WithinRadius(ctx context.Context, postID string, lat, lon, radiusMeters float64) (bool, error) {
	if m.WithinRadiusError != nil {
		return false, m.WithinRadiusError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	loc, ok := m.locations[postID]
	if !ok {
		return false, nil
	}
	return geo.DistanceMeters(lat, lon, loc.Lat, loc.Lon) <= radiusMeters, nil
}

// HasPost checks if a post location is indexed (for test assertions).
func (m *MockPostIndex) HasPost(postID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.locations[postID]
	return ok
}

// ──────────────────────────────────────────────
// HELPERS
// ──────────────────────────────────────────────

// mustHash hashes a password with the cheapest bcrypt cost. Fixture use only.
func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

var (
	ErrMockTimeout = errors.New("mock: operation timeout")
)
