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

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. It executes all comment CRUD operations against the
// "comments" table using the embedded [*DB] connection.
type commentRepository struct {
	*DB
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns the canonical database
// representation via the RETURNING clause of [createComment].
func (c *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createComment,
		comment.ID, comment.Content, comment.PostID, comment.AuthorID, comment.AuthorUsername, comment.CreatedAt, comment.UpdatedAt)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*commentRepository.CreateComment").
			Str("post_id", comment.PostID.String()).
			Msg("failed to execute insert for comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var created models.Comment
	if err := row.Scan(&created.ID, &created.Content, &created.PostID, &created.AuthorID, &created.AuthorUsername, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("failed to scan created comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetComment retrieves a single comment by ID.
//
// Returns [ErrCommentNotFound] when no row matches.
func (c *commentRepository) GetComment(ctx context.Context, id uuid.UUID) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var found models.Comment
	row := c.DB.QueryRowContext(ctx, getComment, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.GetComment").Str("comment_id", id.String()).Msg("failed to execute query for comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&found.ID, &found.Content, &found.PostID, &found.AuthorID, &found.AuthorUsername, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("failed to scan comment row")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListPostComments retrieves every comment on a post ordered oldest-first
// by creation time.
//
// Returns an empty slice when no records exist.
func (c *commentRepository) ListPostComments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listPostComments, postID)
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.ListPostComments").
			Str("post_id", postID.String()).
			Msg("failed to execute query for listing comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Comment, 0, 20)

	for rows.Next() {
		var item models.Comment

		scanErr := rows.Scan(
			&item.ID,
			&item.Content,
			&item.PostID,
			&item.AuthorID,
			&item.AuthorUsername,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.ListPostComments").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*commentRepository.ListPostComments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateComment replaces the comment's content in a single UPDATE and
// returns the refreshed record. Identity, parent post, author, and
// creation time are immutable.
//
// Returns [ErrCommentNotFound] when no row matches.
func (c *commentRepository) UpdateComment(ctx context.Context, id uuid.UUID, content string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var updated models.Comment
	row := c.DB.QueryRowContext(ctx, updateComment, content, time.Now().UTC(), id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Str("comment_id", id.String()).Msg("failed to execute update for comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := row.Scan(&updated.ID, &updated.Content, &updated.PostID, &updated.AuthorID, &updated.AuthorUsername, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("failed to scan updated comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteComment removes the comment row.
//
// Returns [ErrCommentNotFound] when no row matches.
func (c *commentRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deleteComment, id)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Str("comment_id", id.String()).Msg("failed to execute delete for comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
