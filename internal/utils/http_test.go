package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"username": "leo"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if w.Body.String() != `{"username":"leo"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_String(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, "Hello", http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != `"Hello"` {
		t.Errorf("expected a JSON string body, got '%s'", w.Body.String())
	}
}

func TestWriteJSON_Integer(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, int64(7), http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "7" {
		t.Errorf("expected body '7', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_EmptySlice(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, []int{}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected body '[]', got '%s'", w.Body.String())
	}
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "No Posts Yet", http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n != len("No Posts Yet") {
		t.Errorf("expected %d bytes, got %d", len("No Posts Yet"), n)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("unexpected Content-Type '%s'", ct)
	}
	if w.Body.String() != "No Posts Yet" {
		t.Errorf("expected exact body, got %q", w.Body.String())
	}
}
