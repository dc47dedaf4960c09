package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, posts, http.StatusOK)
//	WriteJSON(w, "Hello", http.StatusOK) // body: "Hello"
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes msg as a "text/plain; charset=utf-8" body with the given
// status code. Unlike [http.Error] it appends no trailing newline, so the
// body is exactly msg.
func WriteText(w http.ResponseWriter, msg string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write([]byte(msg))
}
