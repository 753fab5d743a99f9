package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/nax3t/go-blog/models"
)

// UserRepository is the credential store: it exclusively owns user records
// and never exposes password hashes in a verifiable form beyond the model
// it returns to the service layer.
type UserRepository interface {
	// CreateUser persists a new user. Returns [ErrUsernameTaken] when the
	// username unique constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks a user up by its unique username.
	// Returns [ErrUserNotFound] when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks a user up by primary key.
	// Returns [ErrUserNotFound] when no row matches.
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// UpdateUsername changes the account's username and refreshes its
	// updated timestamp. Returns [ErrUserNotFound] or [ErrUsernameTaken].
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) (models.User, error)

	// UpdatePasswordHash replaces the stored password hash and refreshes
	// the updated timestamp. Returns [ErrUserNotFound].
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) (models.User, error)

	// DeleteUser removes the account. The schema cascades the delete to
	// all posts authored by the user and, transitively, to all comments
	// on those posts as well as comments the user left elsewhere.
	// Returns [ErrUserNotFound] when no row matches.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// PostRepository persists posts. Author references are weak: the repository
// only stores the author's ID (and a write-time username copy); the user
// record itself belongs to [UserRepository].
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// GetPost returns a single post by ID or [ErrPostNotFound].
	GetPost(ctx context.Context, id uuid.UUID) (models.Post, error)

	// ListPosts returns all posts ordered newest-first by creation time.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// UpdatePost applies a partial update (title and/or content) and
	// refreshes the updated timestamp. Identity, author, and creation
	// time are never touched. Returns [ErrPostNotFound].
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)

	// DeletePost removes the post; comments on it go with it via the
	// schema cascade. Returns [ErrPostNotFound] when no row matches.
	DeletePost(ctx context.Context, id uuid.UUID) error
}

// CommentRepository persists comments attached to posts.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// GetComment returns a single comment by ID or [ErrCommentNotFound].
	GetComment(ctx context.Context, id uuid.UUID) (models.Comment, error)

	// ListPostComments returns all comments on a post ordered oldest-first
	// by creation time.
	ListPostComments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)

	// UpdateComment replaces the comment's content and refreshes the
	// updated timestamp. Returns [ErrCommentNotFound].
	UpdateComment(ctx context.Context, id uuid.UUID, content string) (models.Comment, error)

	// DeleteComment removes the comment.
	// Returns [ErrCommentNotFound] when no row matches.
	DeleteComment(ctx context.Context, id uuid.UUID) error
}
