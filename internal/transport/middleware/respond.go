package middleware

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// unauthenticated tells the client to sign in and where to come back to.
func unauthenticated(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{
		"error":    "unauthorized",
		"redirect": "/auth",
		"from":     r.URL.Path,
	})
}

func forbidden(w http.ResponseWriter) {
	writeJSON(w, http.StatusForbidden, map[string]string{
		"error":    "forbidden",
		"redirect": "/unauthorized",
	})
}
