package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"geogame/internal/domain"
	"geogame/internal/repository"
)

// IdentityService resolves and verifies user accounts. Passwords are
// stored as bcrypt hashes; plaintext never leaves this service.
type IdentityService struct {
	userRepo repository.UserRepository
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(userRepo repository.UserRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo}
}

// RegisterRequest contains the parameters for creating a user account.
type RegisterRequest struct {
	UserName string
	Name     string
	Password string
	Role     domain.Role
}

// Register creates a new user account with a bcrypt-hashed password.
func (s *IdentityService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if req.UserName == "" {
		return nil, ErrInvalidUserName
	}
	if req.Password == "" {
		return nil, ErrMissingPassword
	}

	role := req.Role
	if role == "" {
		role = domain.RoleTeam
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		UserName:     req.UserName,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by userName.
func (s *IdentityService) GetUser(ctx context.Context, userName string) (*domain.User, error) {
	return s.userRepo.GetByUserName(ctx, userName)
}

// VerifyCredentials resolves the user record and checks the password
// against its stored hash. An unknown user and a wrong password both
// yield ErrWrongCredentials; store failures propagate unmodified.
func (s *IdentityService) VerifyCredentials(ctx context.Context, userName, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByUserName(ctx, userName)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrWrongCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongCredentials
	}
	return user, nil
}

// ListUsers retrieves all user accounts (admin surface).
func (s *IdentityService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
