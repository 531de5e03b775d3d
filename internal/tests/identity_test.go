package tests

import (
	"context"
	"errors"
	"testing"

	"geogame/internal/domain"
	"geogame/internal/repository"
	"geogame/internal/service"
)

// ──────────────────────────────────────────────
// IDENTITY STORE
// ──────────────────────────────────────────────

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()

	f := newGameFixture()

	user, err := f.identity.Register(context.Background(), service.RegisterRequest{
		UserName: "t1",
		Name:     "Team1",
		Password: teamPassword,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.PasswordHash == teamPassword {
		t.Error("password must not be stored in plaintext")
	}
	if user.ID == "" {
		t.Error("expected a generated id")
	}

	// The stored hash verifies against the original password.
	if _, err := f.identity.VerifyCredentials(context.Background(), "t1", teamPassword); err != nil {
		t.Errorf("expected registered credentials to verify, got %v", err)
	}
}

func TestRegister_DefaultsToTeamRole(t *testing.T) {
	t.Parallel()

	f := newGameFixture()

	user, err := f.identity.Register(context.Background(), service.RegisterRequest{
		UserName: "t1",
		Password: teamPassword,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleTeam {
		t.Errorf("expected role %s, got %s", domain.RoleTeam, user.Role)
	}
}

func TestRegister_DuplicateUserName_Conflict(t *testing.T) {
	t.Parallel()

	f := newGameFixture()
	f.addTeam("t1", "Team1")

	_, err := f.identity.Register(context.Background(), service.RegisterRequest{
		UserName: "t1",
		Password: teamPassword,
	})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestRegister_MissingPassword_Rejected(t *testing.T) {
	t.Parallel()

	f := newGameFixture()

	_, err := f.identity.Register(context.Background(), service.RegisterRequest{UserName: "t1"})
	if !errors.Is(err, service.ErrMissingPassword) {
		t.Fatalf("expected ErrMissingPassword, got %v", err)
	}
}

func TestVerifyCredentials_WrongPassword(t *testing.T) {
	t.Parallel()

	f := newGameFixture()
	f.addTeam("t1", "Team1")

	_, err := f.identity.VerifyCredentials(context.Background(), "t1", "xxxxx")
	if !errors.Is(err, service.ErrWrongCredentials) {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}
}

func TestVerifyCredentials_UnknownUser_SameError(t *testing.T) {
	t.Parallel()

	f := newGameFixture()

	// Unknown user and wrong password must be indistinguishable.
	_, err := f.identity.VerifyCredentials(context.Background(), "ghost", teamPassword)
	if !errors.Is(err, service.ErrWrongCredentials) {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}
}

func TestVerifyCredentials_StoreError_Propagates(t *testing.T) {
	t.Parallel()

	f := newGameFixture()
	f.userRepo.GetError = ErrMockTimeout

	_, err := f.identity.VerifyCredentials(context.Background(), "t1", teamPassword)
	if !errors.Is(err, ErrMockTimeout) {
		t.Fatalf("expected store error to propagate unmodified, got %v", err)
	}
}
