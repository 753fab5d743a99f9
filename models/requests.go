package models

// Request payloads accepted by the HTTP layer. Validation bounds are
// declared as validator/v10 struct tags and enforced by the service layer
// before any store call is made.

// RegisterRequest carries the credentials submitted at registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest carries the credentials submitted at login.
// No length bounds here: any non-matching pair is rejected as invalid
// credentials, without hinting which field was wrong.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUsernameRequest changes the account's public name.
type UpdateUsernameRequest struct {
	Username string `json:"username" validate:"required,min=3"`
}

// UpdatePasswordRequest changes the account password. The current password
// must verify against the stored hash before the new one is accepted.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// CreatePostRequest carries the fields of a new post.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdatePostRequest carries a partial update of a post. Nil fields are
// left untouched; at least one field must be present.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
}

// CreateCommentRequest carries the content of a new comment.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// UpdateCommentRequest replaces the content of an existing comment.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}
