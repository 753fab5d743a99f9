package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/store"
	"github.com/nax3t/go-blog/models"
)

// commentService is the concrete implementation of CommentService. It needs
// the post repository as well: comment creation and listing verify that the
// parent post exists before touching the comments table.
type commentService struct {
	commentRepository store.CommentRepository
	postRepository    store.PostRepository
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService wired to the given
// repositories.
func NewCommentService(commentRepository store.CommentRepository, postRepository store.PostRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		logger:            logger,
	}
}

// CreateComment validates the payload, confirms the parent post exists,
// and persists the comment. The id and both timestamps are minted here;
// the author's username is copied onto the comment at write time.
func (c *commentService) CreateComment(ctx context.Context, author models.User, postID uuid.UUID, req models.CreateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		log.Err(err).Str("post_id", postID.String()).Msg("invalid comment data provided")
		return models.Comment{}, err
	}

	if _, err := c.postRepository.GetPost(ctx, postID); err != nil {
		log.Err(err).Str("post_id", postID.String()).Msg("parent post lookup for comment failed")
		return models.Comment{}, fmt.Errorf("parent post lookup for comment failed: %w", err)
	}

	now := time.Now().UTC()
	comment := models.Comment{
		ID:             uuid.New(),
		Content:        req.Content,
		PostID:         postID,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	createdComment, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("post_id", postID.String()).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return createdComment, nil
}

// ListPostComments returns the comments of an existing post oldest-first.
//
// Returns store.ErrPostNotFound when the parent post does not exist, so a
// listing on a deleted post is a 404 rather than an empty 200.
func (c *commentService) ListPostComments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	if _, err := c.postRepository.GetPost(ctx, postID); err != nil {
		return nil, fmt.Errorf("parent post lookup for comment listing failed: %w", err)
	}

	comments, err := c.commentRepository.ListPostComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("comment listing ended with error: %w", err)
	}

	return comments, nil
}

// UpdateComment replaces the content of a comment the actor owns.
//
// Returns ErrValidationFailed, store.ErrCommentNotFound, or ErrForbidden.
func (c *commentService) UpdateComment(ctx context.Context, actor models.User, id uuid.UUID, req models.UpdateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		log.Err(err).Str("comment_id", id.String()).Msg("invalid comment update data provided")
		return models.Comment{}, err
	}

	existing, err := c.commentRepository.GetComment(ctx, id)
	if err != nil {
		log.Err(err).Str("comment_id", id.String()).Msg("comment lookup for update failed")
		return models.Comment{}, fmt.Errorf("comment lookup for update failed: %w", err)
	}

	if existing.AuthorID != actor.ID {
		log.Debug().
			Str("comment_id", id.String()).
			Str("owner_id", existing.AuthorID.String()).
			Str("actor_id", actor.ID.String()).
			Msg("comment update denied: not the owner")
		return models.Comment{}, ErrForbidden
	}

	updatedComment, err := c.commentRepository.UpdateComment(ctx, id, req.Content)
	if err != nil {
		log.Err(err).Str("comment_id", id.String()).Msg("comment update ended with error")
		return models.Comment{}, fmt.Errorf("comment update ended with error: %w", err)
	}

	return updatedComment, nil
}

// DeleteComment removes a comment the actor owns.
//
// Returns store.ErrCommentNotFound or ErrForbidden.
func (c *commentService) DeleteComment(ctx context.Context, actor models.User, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	existing, err := c.commentRepository.GetComment(ctx, id)
	if err != nil {
		log.Err(err).Str("comment_id", id.String()).Msg("comment lookup for delete failed")
		return fmt.Errorf("comment lookup for delete failed: %w", err)
	}

	if existing.AuthorID != actor.ID {
		log.Debug().
			Str("comment_id", id.String()).
			Str("owner_id", existing.AuthorID.String()).
			Str("actor_id", actor.ID.String()).
			Msg("comment delete denied: not the owner")
		return ErrForbidden
	}

	if err := c.commentRepository.DeleteComment(ctx, id); err != nil {
		log.Err(err).Str("comment_id", id.String()).Msg("comment deletion ended with error")
		return fmt.Errorf("comment deletion ended with error: %w", err)
	}

	return nil
}
