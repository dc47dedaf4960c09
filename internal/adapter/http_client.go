package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpPostsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPostsAdapter constructs an HTTP/REST implementation of [PostsAPI].
// It normalises cfg.ServerAddress and bounds every request by
// cfg.RequestTimeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPPostsAdapter(cfg config.ClientConfig, logger *logger.Logger) (PostsAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpPostsAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListPublished implements [PostsAPI]. GET /posts/list answers 404 when no
// post is published, which is reported as an empty result.
func (h *httpPostsAdapter) ListPublished(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	resp, err := h.request(ctx).SetResult(&posts).Get("/posts/list")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Post{}, nil
		}
		return nil, err
	}

	return posts, nil
}

// Get implements [PostsAPI].
func (h *httpPostsAdapter) Get(ctx context.Context, id int64) (models.Post, error) {
	return h.postByID(ctx, "get", id, (*resty.Request).Get)
}

// Create implements [PostsAPI]. It POSTs the post to /posts/new and reads the
// new id from the Location header.
func (h *httpPostsAdapter) Create(ctx context.Context, post models.NewPost) (models.NewPost, error) {
	var created models.NewPost

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(post).
		SetResult(&created).
		Post("/posts/new")
	if err != nil {
		return models.NewPost{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NewPost{}, err
	}

	created.ID, err = idFromLocation(resp.Header().Get("Location"))
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*httpPostsAdapter.Create").Msg("created post has no usable location")
		return created, err
	}

	return created, nil
}

// Publish implements [PostsAPI].
func (h *httpPostsAdapter) Publish(ctx context.Context, id int64) (models.Post, error) {
	return h.postByID(ctx, "publish", id, (*resty.Request).Put)
}

// Delete implements [PostsAPI].
func (h *httpPostsAdapter) Delete(ctx context.Context, id int64) (models.Post, error) {
	return h.postByID(ctx, "delete", id, (*resty.Request).Delete)
}

// RequestCount implements [PostsAPI].
func (h *httpPostsAdapter) RequestCount(ctx context.Context) (int64, error) {
	var count int64

	resp, err := h.request(ctx).SetResult(&count).Get("/posts/ctx")
	if err != nil {
		return 0, fmt.Errorf("request count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return count, nil
}

type sendFunc func(r *resty.Request, url string) (*resty.Response, error)

func (h *httpPostsAdapter) postByID(ctx context.Context, action string, id int64, send sendFunc) (models.Post, error) {
	var post models.Post

	resp, err := send(h.request(ctx).SetResult(&post), fmt.Sprintf("/posts/%s/%d", action, id))
	if err != nil {
		return models.Post{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpPostsAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

// idFromLocation extracts the id from a "/posts/get/{id}" location.
func idFromLocation(location string) (int64, error) {
	if location == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidLocation)
	}

	id, err := strconv.ParseInt(path.Base(location), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	return id, nil
}
