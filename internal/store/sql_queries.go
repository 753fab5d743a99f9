package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/nax3t/go-blog/models"
)

const (
	createUser = `INSERT INTO users (id, username, password_hash, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, username, password_hash, created_at, updated_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at, updated_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, created_at, updated_at
    FROM users
    WHERE id = $1;`

	updateUsername = `UPDATE users
    SET username = $1, updated_at = $2
    WHERE id = $3
    RETURNING id, username, password_hash, created_at, updated_at;`

	updatePasswordHash = `UPDATE users
    SET password_hash = $1, updated_at = $2
    WHERE id = $3
    RETURNING id, username, password_hash, created_at, updated_at;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createPost = `INSERT INTO posts (id, title, content, author_id, author_username, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, title, content, author_id, author_username, created_at, updated_at;`

	getPost = `SELECT id, title, content, author_id, author_username, created_at, updated_at
    FROM posts
    WHERE id = $1;`

	listPosts = `SELECT id, title, content, author_id, author_username, created_at, updated_at
    FROM posts
    ORDER BY created_at DESC;`

	deletePost = `DELETE FROM posts WHERE id = $1;`

	createComment = `INSERT INTO comments (id, content, post_id, author_id, author_username, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, content, post_id, author_id, author_username, created_at, updated_at;`

	getComment = `SELECT id, content, post_id, author_id, author_username, created_at, updated_at
    FROM comments
    WHERE id = $1;`

	listPostComments = `SELECT id, content, post_id, author_id, author_username, created_at, updated_at
    FROM comments
    WHERE post_id = $1
    ORDER BY created_at ASC;`

	updateComment = `UPDATE comments
    SET content = $1, updated_at = $2
    WHERE id = $3
    RETURNING id, content, post_id, author_id, author_username, created_at, updated_at;`

	deleteComment = `DELETE FROM comments WHERE id = $1;`
)

// buildUpdatePostQuery assembles the partial UPDATE for a post with squirrel.
// Only non-nil fields of update become SET clauses; updated_at is always
// refreshed to now. Returns [ErrBuildingSQLQuery] when the update carries no
// fields at all.
func buildUpdatePostQuery(update models.PostUpdate, now time.Time) (string, []any, error) {
	if update.Title == nil && update.Content == nil {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.Update("posts").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", now)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, title, content, author_id, author_username, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}
