package http

import (
	"encoding/json"
	"net/http"

	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/utils"
	"github.com/nax3t/go-blog/models"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := currentUser(w, r)
	if !ok {
		return
	}

	postID, ok := pathUUID(r, "postID")
	if !ok {
		http.Error(w, "post was not found", http.StatusNotFound)
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSONBody.Error(), http.StatusBadRequest)
		return
	}

	createdComment, err := h.services.CommentService.CreateComment(ctx, author, postID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, createdComment, http.StatusCreated)
}

func (h *Handler) listPostComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(r, "postID")
	if !ok {
		http.Error(w, "post was not found", http.StatusNotFound)
		return
	}

	comments, err := h.services.CommentService.ListPostComments(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	commentID, ok := pathUUID(r, "commentID")
	if !ok {
		http.Error(w, "comment was not found", http.StatusNotFound)
		return
	}

	var req models.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSONBody.Error(), http.StatusBadRequest)
		return
	}

	updatedComment, err := h.services.CommentService.UpdateComment(ctx, actor, commentID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedComment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}

	commentID, ok := pathUUID(r, "commentID")
	if !ok {
		http.Error(w, "comment was not found", http.StatusNotFound)
		return
	}

	if err := h.services.CommentService.DeleteComment(r.Context(), actor, commentID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
