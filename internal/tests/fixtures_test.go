package tests

import (
	"time"

	"geogame/internal/domain"
	"geogame/internal/geo"
	"geogame/internal/service"
)

// Fixture layout mirrors the seeded game world: three teams on the same
// meridian, one at the search point, one safely inside the search
// distance, one safely outside it.
const (
	baseLat        = 55.77
	baseLon        = 12.48
	searchDistance = 100.0
	teamPassword   = "secret"
	reachRadius    = 15.0
	positionTTL    = 30 * time.Second
)

type gameFixture struct {
	userRepo  *MockUserRepository
	positions *MockPositionStore
	postRepo  *MockPostRepository
	postIndex *MockPostIndex
	identity  *service.IdentityService
	game      *service.GameService
}

func newGameFixture() *gameFixture {
	f := &gameFixture{
		userRepo:  NewMockUserRepository(),
		positions: NewMockPositionStore(positionTTL),
		postRepo:  NewMockPostRepository(),
		postIndex: NewMockPostIndex(),
	}
	f.identity = service.NewIdentityService(f.userRepo)
	f.game = service.NewGameService(f.identity, f.positions, f.postRepo, f.postIndex, reachRadius)
	return f
}

// addTeam registers a team account with the shared fixture password.
func (f *gameFixture) addTeam(userName, name string) {
	f.userRepo.AddUser(&domain.User{
		ID:           userName,
		UserName:     userName,
		Name:         name,
		PasswordHash: mustHash(teamPassword),
		Role:         domain.RoleTeam,
	})
}

// seedPosition plants a fresh live position for a team.
func (f *gameFixture) seedPosition(userName, name string, lat, lon float64) {
	f.positions.SeedPosition(&domain.PlayerPosition{
		UserName:    userName,
		DisplayName: name,
		Location:    domain.Point{Lat: lat, Lon: lon},
		LastUpdated: time.Now(),
	})
}

// stalePosition builds a position whose last check-in is age in the past.
func stalePosition(userName, name string, lat, lon float64, age time.Duration) *domain.PlayerPosition {
	return &domain.PlayerPosition{
		UserName:    userName,
		DisplayName: name,
		Location:    domain.Point{Lat: lat, Lon: lon},
		LastUpdated: time.Now().Add(-age),
	}
}

// seedTeams builds the standard three-team world.
func seedTeams(f *gameFixture) {
	f.addTeam("t1", "Team1")
	f.addTeam("t2", "Team2")
	f.addTeam("t3", "Team3")

	f.seedPosition("t1", "Team1", baseLat, baseLon)
	f.seedPosition("t2", "Team2", geo.LatitudeInside(baseLat, searchDistance), baseLon)
	f.seedPosition("t3", "Team3", geo.LatitudeOutside(baseLat, searchDistance), baseLon)
}
