package service

import (
	"github.com/nax3t/go-blog/internal/config"
	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/store"
)

// Services bundles every business-rule service consumed by the HTTP layer.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	CommentService CommentService
}

// NewServices wires all services to the given repositories and configuration.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		UserService:    NewUserService(storages.UserRepository, cfg, logger),
		PostService:    NewPostService(storages.PostRepository, logger),
		CommentService: NewCommentService(storages.CommentRepository, storages.PostRepository, logger),
	}
}
