package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:8080", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_BaseURLAndTimeout(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:8080", 3*time.Second)

	if client.BaseURL != "http://127.0.0.1:8080" {
		t.Errorf("unexpected base url %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("unexpected timeout %v", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_ZeroTimeoutKeepsDefault(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:8080", 0)

	if client.GetClient().Timeout != 0 {
		t.Errorf("expected no timeout, got %v", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://a", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected independent *resty.Client instances")
	}
}
