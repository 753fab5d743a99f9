package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// It executes all post CRUD operations against the "posts" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (post id, author id, etc.).
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost persists a new post and returns the canonical database
// representation via the RETURNING clause of [createPost].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createPost,
		post.ID, post.Title, post.Content, post.AuthorID, post.AuthorUsername, post.CreatedAt, post.UpdatedAt)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*postRepository.CreatePost").
			Str("author_id", post.AuthorID.String()).
			Msg("failed to execute insert for post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var created models.Post
	if err := row.Scan(&created.ID, &created.Title, &created.Content, &created.AuthorID, &created.AuthorUsername, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to scan created post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetPost retrieves a single post by ID.
//
// Returns [ErrPostNotFound] when no row matches.
func (p *postRepository) GetPost(ctx context.Context, id uuid.UUID) (models.Post, error) {
	log := logger.FromContext(ctx)

	var found models.Post
	row := p.DB.QueryRowContext(ctx, getPost, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Str("post_id", id.String()).Msg("failed to execute query for post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&found.ID, &found.Title, &found.Content, &found.AuthorID, &found.AuthorUsername, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("failed to scan post row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListPosts retrieves every post ordered newest-first by creation time.
//
// Returns an empty slice when no records exist.
func (p *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listPosts)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Post, 0, 20)

	for rows.Next() {
		var item models.Post

		scanErr := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Content,
			&item.AuthorID,
			&item.AuthorUsername,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdatePost applies a partial update built by [buildUpdatePostQuery] and
// returns the refreshed record. The statement only ever touches title,
// content, and updated_at; id, author, and created_at are immutable.
//
// Returns [ErrPostNotFound] when no row matches and [ErrBuildingSQLQuery]
// when the update carries no fields.
func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(update, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.UpdatePost").
			Str("post_id", update.ID.String()).
			Msg("failed to build update query")
		return models.Post{}, err
	}

	var updated models.Post
	row := p.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Str("post_id", update.ID.String()).Msg("failed to execute update for post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := row.Scan(&updated.ID, &updated.Title, &updated.Content, &updated.AuthorID, &updated.AuthorUsername, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("failed to scan updated post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeletePost removes the post row; the ON DELETE CASCADE clause on
// comments.post_id removes its comments in the same statement.
//
// Returns [ErrPostNotFound] when no row matches.
func (p *postRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deletePost, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Str("post_id", id.String()).Msg("failed to execute delete for post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
