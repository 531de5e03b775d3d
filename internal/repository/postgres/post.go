package postgres

import (
	"context"
	"database/sql"

	"geogame/internal/domain"
	"geogame/internal/repository"
)

// PostRepository implements repository.PostRepository using PostgreSQL.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create adds a new post.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `INSERT INTO posts (id, task_text, task_is_url, task_solution, lat, lon)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Task.Text, post.Task.IsURL, post.TaskSolution,
		post.Location.Lat, post.Location.Lon)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

// GetByID retrieves a post by its id.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `SELECT id, task_text, task_is_url, task_solution, lat, lon, created_at
		FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	post, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetAll retrieves all posts.
func (r *PostRepository) GetAll(ctx context.Context) ([]*domain.Post, error) {
	query := `SELECT id, task_text, task_is_url, task_solution, lat, lon, created_at
		FROM posts ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func scanPost(scan func(dest ...any) error) (*domain.Post, error) {
	var post domain.Post
	err := scan(&post.ID, &post.Task.Text, &post.Task.IsURL, &post.TaskSolution,
		&post.Location.Lat, &post.Location.Lon, &post.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
