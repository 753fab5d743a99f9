package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nax3t/go-blog/models"
)

// AuthService covers the account registration and session lifecycle: it is
// the only place sessions are minted and the single authority that turns an
// inbound cookie value into a verified user identity.
type AuthService interface {
	// Register creates a new account from validated credentials.
	// The password is hashed before it ever reaches the store.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the submitted credentials and returns the account.
	// Unknown username and wrong password are indistinguishable to the
	// caller: both yield ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateSession mints the signed session token for the given user.
	CreateSession(ctx context.Context, user models.User) (models.Session, error)

	// Authenticate resolves a raw session-cookie value into the account it
	// belongs to, re-validating against the credential store on every call.
	// Any failure (forged or expired token, malformed subject, deleted
	// account) yields ErrUnauthenticated.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UserService covers profile self-management for an authenticated account.
type UserService interface {
	// UpdateUsername changes the account's public name.
	UpdateUsername(ctx context.Context, userID uuid.UUID, req models.UpdateUsernameRequest) (models.User, error)

	// UpdatePassword verifies the current password and replaces it with
	// the new one.
	UpdatePassword(ctx context.Context, userID uuid.UUID, req models.UpdatePasswordRequest) (models.User, error)

	// DeleteAccount removes the account and, through store-level cascades,
	// every post and comment it authored.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// PostService covers the post lifecycle including ownership authorization
// on mutating operations.
type PostService interface {
	CreatePost(ctx context.Context, author models.User, req models.CreatePostRequest) (models.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)

	// UpdatePost applies a partial update after the ownership check:
	// existence is decided first (ErrPostNotFound), then ownership
	// (ErrForbidden), and only then is the store touched.
	UpdatePost(ctx context.Context, actor models.User, id uuid.UUID, req models.UpdatePostRequest) (models.Post, error)

	// DeletePost removes the post after the same lookup-then-ownership
	// sequence as UpdatePost.
	DeletePost(ctx context.Context, actor models.User, id uuid.UUID) error
}

// CommentService covers the comment lifecycle including ownership
// authorization on mutating operations.
type CommentService interface {
	// CreateComment attaches a new comment to an existing post; a missing
	// post yields ErrPostNotFound before anything is written.
	CreateComment(ctx context.Context, author models.User, postID uuid.UUID, req models.CreateCommentRequest) (models.Comment, error)

	// ListPostComments returns the comments of an existing post
	// oldest-first.
	ListPostComments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)

	UpdateComment(ctx context.Context, actor models.User, id uuid.UUID, req models.UpdateCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, actor models.User, id uuid.UUID) error
}
