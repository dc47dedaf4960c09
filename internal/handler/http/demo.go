package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) plain(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, "Hello", http.StatusOK)
}

func (h *Handler) pathParams(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pathParams").Msg("invalid id path param")
		http.Error(w, "Invalid id path param", http.StatusBadRequest)
		return
	}

	params := models.PathParams{
		Object: chi.URLParam(r, "object"),
		Method: chi.URLParam(r, "method"),
		ID:     int32(id),
	}

	utils.WriteJSON(w, fmt.Sprintf("Received path params: %s %s %d", params.Object, params.Method, params.ID), http.StatusOK)
}

func (h *Handler) queryParam(w http.ResponseWriter, r *http.Request) {
	val, ok := queryVal(r)
	if !ok {
		http.Error(w, "Query param `val` is required", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, fmt.Sprintf("Welcome %s!", val), http.StatusOK)
}

func (h *Handler) pathAndQueryParams(w http.ResponseWriter, r *http.Request) {
	val, ok := queryVal(r)
	if !ok {
		http.Error(w, "Query param `val` is required", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, fmt.Sprintf("Params: %s || Query: %s", chi.URLParam(r, "param1"), val), http.StatusOK)
}

func (h *Handler) postJSON(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType != "application/json" {
		http.Error(w, "Content-Type must be application/json", http.StatusBadRequest)
		return
	}

	var payload models.UsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.postJSON").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.demoValidator.Validate(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, fmt.Sprintf("Body Json: %s", *payload.Username), http.StatusOK)
}

func (h *Handler) postForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.postForm").Msg("invalid form was passed")
		http.Error(w, "Invalid form was passed", http.StatusBadRequest)
		return
	}

	var payload models.UsernameRequest
	if r.PostForm.Has(validators.FieldUsername) {
		username := r.PostForm.Get(validators.FieldUsername)
		payload.Username = &username
	}
	if err := h.demoValidator.Validate(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, fmt.Sprintf("Body Form: %s", *payload.Username), http.StatusOK)
}

func (h *Handler) respJSON(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.UsernamePayload{Username: "leo"}, http.StatusOK)
}

func queryVal(r *http.Request) (string, bool) {
	query := r.URL.Query()
	if !query.Has("val") {
		return "", false
	}
	return query.Get("val"), true
}
