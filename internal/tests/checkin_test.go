package tests

import (
	"context"
	"errors"
	"testing"

	"geogame/internal/service"
)

// ──────────────────────────────────────────────
// CHECK-IN (POSITION TRACKER)
// ──────────────────────────────────────────────

func TestCheckIn_WritesPosition(t *testing.T) {
	t.Parallel()

	f := newGameFixture()
	f.addTeam("t1", "Team1")

	pos, err := f.game.CheckIn(context.Background(), "t1", teamPassword, baseLon, baseLat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pos.UserName != "t1" {
		t.Errorf("expected userName t1, got %s", pos.UserName)
	}
	if pos.DisplayName != "Team1" {
		t.Errorf("expected display name from the user record, got %q", pos.DisplayName)
	}
	if pos.LastUpdated.IsZero() {
		t.Error("expected lastUpdated to be set")
	}

	if !f.positions.HasPosition("t1") {
		t.Error("expected position to be stored")
	}
	stored := f.positions.GetPosition("t1")
	if stored.Location.Lat != baseLat || stored.Location.Lon != baseLon {
		t.Errorf("stored location mismatch: got %+v", stored.Location)
	}
}

func TestCheckIn_WrongPassword_NothingWritten(t *testing.T) {
	t.Parallel()

	f := newGameFixture()
	f.addTeam("t1", "Team1")

	_, err := f.game.CheckIn(context.Background(), "t1", "xxxxx", baseLon, baseLat)
	if !errors.Is(err, service.ErrWrongCredentials) {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}

	if f.positions.UpsertCallCount != 0 {
		t.Errorf("expected no store write on auth failure, got %d", f.positions.UpsertCallCount)
	}
	if f.positions.HasPosition("t1") {
		t.Error("expected no position after failed check-in")
	}
}

func TestCheckIn_UnknownUser_SameError(t *testing.T) {
	t.Parallel()

	f := newGameFixture()

	_, err := f.game.CheckIn(context.Background(), "ghost", teamPassword, baseLon, baseLat)
	if !errors.Is(err, service.ErrWrongCredentials) {
		t.Fatalf("expected ErrWrongCredentials for unknown user, got %v", err)
	}
}

func TestCheckIn_InvalidCoordinates_Rejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "latitude too high", lat: 91.0, lon: baseLon, wantErr: true},
		{name: "latitude too low", lat: -91.0, lon: baseLon, wantErr: true},
		{name: "longitude too high", lat: baseLat, lon: 181.0, wantErr: true},
		{name: "longitude too low", lat: baseLat, lon: -181.0, wantErr: true},
		{name: "valid coordinates", lat: baseLat, lon: baseLon, wantErr: false},
		{name: "edge case: max latitude", lat: 90.0, lon: baseLon, wantErr: false},
		{name: "edge case: min latitude", lat: -90.0, lon: baseLon, wantErr: false},
		{name: "edge case: max longitude", lat: baseLat, lon: 180.0, wantErr: false},
		{name: "edge case: min longitude", lat: baseLat, lon: -180.0, wantErr: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newGameFixture()
			f.addTeam("t1", "Team1")

			_, err := f.game.CheckIn(context.Background(), "t1", teamPassword, tc.lon, tc.lat)
			if tc.wantErr && !errors.Is(err, service.ErrInvalidLocation) {
				t.Errorf("expected ErrInvalidLocation, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestCheckIn_Repeated_OverwritesNotAccumulates(t *testing.T) {
	t.Parallel()

	f := newGameFixture()
	f.addTeam("t1", "Team1")

	for i := 0; i < 5; i++ {
		lat := baseLat + float64(i)*0.0001
		if _, err := f.game.CheckIn(context.Background(), "t1", teamPassword, baseLon, lat); err != nil {
			t.Fatalf("check-in %d failed: %v", i, err)
		}
	}

	if got := f.positions.CountPositions(); got != 1 {
		t.Errorf("expected exactly one live position, got %d", got)
	}

	stored := f.positions.GetPosition("t1")
	wantLat := baseLat + 4*0.0001
	if stored.Location.Lat != wantLat {
		t.Errorf("expected last write to win: got lat %v, want %v", stored.Location.Lat, wantLat)
	}
}

func TestCheckIn_StoreError_Propagates(t *testing.T) {
	t.Parallel()

	f := newGameFixture()
	f.addTeam("t1", "Team1")
	f.positions.UpsertError = ErrMockTimeout

	_, err := f.game.CheckIn(context.Background(), "t1", teamPassword, baseLon, baseLat)
	if !errors.Is(err, ErrMockTimeout) {
		t.Fatalf("expected store error to propagate unmodified, got %v", err)
	}
}
