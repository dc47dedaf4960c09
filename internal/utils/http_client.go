package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient("http://127.0.0.1:80", 5*time.Second)
//	resp, err := client.R().Get("/posts/list")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL. A non-positive timeout
// leaves resty's default (no timeout) in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
