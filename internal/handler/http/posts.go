package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/internal/workers"
	"github.com/MKhiriev/go-posts/models"
	"github.com/go-chi/chi/v5"
)

const noPostsYetMsg = "No Posts Yet"

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	posts, err := workers.Submit(r.Context(), h.dispatcher, h.services.PostService.ListPublished)
	if err != nil && !errors.Is(err, store.ErrNoPublishedPosts) {
		log.Err(err).Str("func", "*Handler.listPosts").Msg("error listing published posts")
		h.writeError(w, err, "")
		return
	}

	h.state.Counter.Increment()

	if err != nil {
		utils.WriteText(w, noPostsYetMsg, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := postIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPost").Msg("invalid post id")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	post, err := workers.Submit(r.Context(), h.dispatcher, func(ctx context.Context) (models.Post, error) {
		return h.services.PostService.GetByID(ctx, id)
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPost").Int64("id", id).Msg("error getting post")
		h.writeError(w, err, postNotFoundMsg(id))
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.postValidator.Validate(r.Context(), request); err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("invalid post was passed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := workers.Submit(r.Context(), h.dispatcher, func(ctx context.Context) (models.NewPost, error) {
		return h.services.PostService.Create(ctx, request.ToNewPost())
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("error creating post")
		h.writeError(w, err, "")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/posts/get/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) publishPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := postIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.publishPost").Msg("invalid post id")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	post, err := workers.Submit(r.Context(), h.dispatcher, func(ctx context.Context) (models.Post, error) {
		return h.services.PostService.Publish(ctx, id)
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.publishPost").Int64("id", id).Msg("error publishing post")
		h.writeError(w, err, postNotFoundMsg(id))
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := postIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deletePost").Msg("invalid post id")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	post, err := workers.Submit(r.Context(), h.dispatcher, func(ctx context.Context) (models.Post, error) {
		return h.services.PostService.Delete(ctx, id)
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.deletePost").Int64("id", id).Msg("error deleting post")
		h.writeError(w, err, postNotFoundMsg(id))
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) requestCount(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.state.Counter.Value(), http.StatusOK)
}

// writeError answers with the status errorStatusMap assigns to err.
// Not-found answers carry notFoundMsg as a plain-text body; server errors get
// a generic body and the cause stays in the log.
func (h *Handler) writeError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch status := statusFromError(err); status {
	case http.StatusNotFound:
		utils.WriteText(w, notFoundMsg, http.StatusNotFound)
	case http.StatusBadRequest:
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, http.StatusText(status), status)
	}
}

// postIDFromRequest reads the {id} segment as a 32-bit integer, the width of
// the posts primary key. Callers answer 404 when it does not parse.
func postIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse post id %q: %w", raw, err)
	}
	return id, nil
}

func postNotFoundMsg(id int64) string {
	return fmt.Sprintf("No post found with id: %d", id)
}
