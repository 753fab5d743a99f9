package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authentication: account entry points and all reads
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)

		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/{postID}", h.getPost)
		r.Get("/api/posts/{postID}/comments", h.listPostComments)
	})

	// routes behind the session cookie: every mutation
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Post("/api/posts", h.createPost)
		r.Patch("/api/posts/{postID}", h.updatePost)
		r.Delete("/api/posts/{postID}", h.deletePost)

		r.Post("/api/posts/{postID}/comments", h.createComment)
		r.Patch("/api/comments/{commentID}", h.updateComment)
		r.Delete("/api/comments/{commentID}", h.deleteComment)

		r.Get("/api/user", h.getProfile)
		r.Patch("/api/user/username", h.updateUsername)
		r.Patch("/api/user/password", h.updatePassword)
		r.Delete("/api/user", h.deleteAccount)
	})

	return router
}
