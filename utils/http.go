package utils

import (
	"encoding/json"
	"net/http"
)

// MW is a per-route middleware: it wraps a handler and returns the guarded one.
type MW func(http.HandlerFunc) http.HandlerFunc

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}

// Middleware chains h around final, outermost first.
func Middleware(final http.HandlerFunc, h ...MW) http.HandlerFunc {
	for i := len(h) - 1; i >= 0; i-- {
		final = h[i](final)
	}
	return final
}
