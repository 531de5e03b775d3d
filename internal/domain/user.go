package domain

import "time"

// Role controls access to the admin surface.
type Role string

const (
	RoleTeam  Role = "team"
	RoleAdmin Role = "admin"
)

// User represents a player account.
type User struct {
	ID           string
	UserName     string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
