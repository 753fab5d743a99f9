package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/utils"
	"github.com/nax3t/go-blog/models"
)

// pathUUID reads a chi URL parameter and parses it as a UUID. A value that
// does not parse cannot name an existing record, so callers treat a false
// return as not-found.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSONBody.Error(), http.StatusBadRequest)
		return
	}

	createdPost, err := h.services.PostService.CreatePost(ctx, author, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, createdPost, http.StatusCreated)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(r, "postID")
	if !ok {
		http.Error(w, "post was not found", http.StatusNotFound)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	postID, ok := pathUUID(r, "postID")
	if !ok {
		http.Error(w, "post was not found", http.StatusNotFound)
		return
	}

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSONBody.Error(), http.StatusBadRequest)
		return
	}

	updatedPost, err := h.services.PostService.UpdatePost(ctx, actor, postID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedPost, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	postID, ok := pathUUID(r, "postID")
	if !ok {
		http.Error(w, "post was not found", http.StatusNotFound)
		return
	}

	if err := h.services.PostService.DeletePost(r.Context(), actor, postID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
