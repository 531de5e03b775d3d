package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"geogame/internal/domain"
	"geogame/internal/repository"
)

// UserRepository implements repository.UserRepository using PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create adds a new user.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, user_name, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.UserName, user.Name, user.PasswordHash, string(user.Role))
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

// GetByUserName retrieves a user by their unique userName.
func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	query := `SELECT id, user_name, name, password_hash, role, created_at
		FROM users WHERE user_name = $1`
	row := r.db.QueryRowContext(ctx, query, userName)

	var user domain.User
	var role string
	err := row.Scan(&user.ID, &user.UserName, &user.Name, &user.PasswordHash, &role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

// GetAll retrieves all users.
func (r *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, user_name, name, password_hash, role, created_at
		FROM users ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		var role string
		if err := rows.Scan(&user.ID, &user.UserName, &user.Name, &user.PasswordHash, &role, &user.CreatedAt); err != nil {
			return nil, err
		}
		user.Role = domain.Role(role)
		users = append(users, &user)
	}
	return users, rows.Err()
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
