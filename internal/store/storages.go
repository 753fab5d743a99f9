package store

import (
	"github.com/nax3t/go-blog/internal/logger"
)

// Storages bundles every repository backed by the shared connection pool.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		PostRepository:    NewPostRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
	}
}
