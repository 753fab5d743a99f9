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

// postService is the concrete implementation of PostService.
//
// Mutating operations follow a fixed sequence: existence lookup first,
// ownership check second, store mutation last. The ordering keeps the
// error taxonomy honest: a missing post is ErrPostNotFound and someone
// else's post is ErrForbidden, never the other way around.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given PostRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost validates the payload and persists a new post authored by the
// given user. The id and both timestamps are minted here; the author's
// username is copied onto the post at write time.
func (p *postService) CreatePost(ctx context.Context, author models.User, req models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		log.Err(err).Str("author_id", author.ID.String()).Msg("invalid post data provided")
		return models.Post{}, err
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:             uuid.New(),
		Title:          req.Title,
		Content:        req.Content,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	createdPost, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("author_id", author.ID.String()).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// GetPost returns a single post or store.ErrPostNotFound.
func (p *postService) GetPost(ctx context.Context, id uuid.UUID) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup ended with error: %w", err)
	}

	return post, nil
}

// ListPosts returns every post, newest first.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("post listing ended with error: %w", err)
	}

	return posts, nil
}

// UpdatePost applies a partial update to a post the actor owns.
//
// Returns ErrValidationFailed, store.ErrPostNotFound, or ErrForbidden; on
// success the refreshed post is returned with its id, author, and creation
// time untouched.
func (p *postService) UpdatePost(ctx context.Context, actor models.User, id uuid.UUID, req models.UpdatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		log.Err(err).Str("post_id", id.String()).Msg("invalid post update data provided")
		return models.Post{}, err
	}
	if req.Title == nil && req.Content == nil {
		log.Error().Str("post_id", id.String()).Msg("post update carries no fields")
		return models.Post{}, fmt.Errorf("%w: no fields to update", ErrValidationFailed)
	}

	existing, err := p.postRepository.GetPost(ctx, id)
	if err != nil {
		log.Err(err).Str("post_id", id.String()).Msg("post lookup for update failed")
		return models.Post{}, fmt.Errorf("post lookup for update failed: %w", err)
	}

	if existing.AuthorID != actor.ID {
		log.Debug().
			Str("post_id", id.String()).
			Str("owner_id", existing.AuthorID.String()).
			Str("actor_id", actor.ID.String()).
			Msg("post update denied: not the owner")
		return models.Post{}, ErrForbidden
	}

	updatedPost, err := p.postRepository.UpdatePost(ctx, models.PostUpdate{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		log.Err(err).Str("post_id", id.String()).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return updatedPost, nil
}

// DeletePost removes a post the actor owns; its comments go with it via
// the store-level cascade.
//
// Returns store.ErrPostNotFound or ErrForbidden.
func (p *postService) DeletePost(ctx context.Context, actor models.User, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	existing, err := p.postRepository.GetPost(ctx, id)
	if err != nil {
		log.Err(err).Str("post_id", id.String()).Msg("post lookup for delete failed")
		return fmt.Errorf("post lookup for delete failed: %w", err)
	}

	if existing.AuthorID != actor.ID {
		log.Debug().
			Str("post_id", id.String()).
			Str("owner_id", existing.AuthorID.String()).
			Str("actor_id", actor.ID.String()).
			Msg("post delete denied: not the owner")
		return ErrForbidden
	}

	if err := p.postRepository.DeletePost(ctx, id); err != nil {
		log.Err(err).Str("post_id", id.String()).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}
