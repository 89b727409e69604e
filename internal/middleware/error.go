package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"
)

// AlertResponse is the body of every error the portal reports as an alert
type AlertResponse struct {
	Success bool   `json:"success"`
	Alert   string `json:"alert"`
}

// ValidationErrorResponse represents a validation error response
type ValidationErrorResponse struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

// WriteAlert writes a JSON alert with status
func WriteAlert(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(AlertResponse{Success: false, Alert: message})
}

// ErrorHandlingMiddleware handles panics and errors
func ErrorHandlingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				// Log the panic with stack trace
				log.Printf("PANIC: %v\n%s", err, debug.Stack())
				WriteAlert(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteAlert(w, http.StatusNotFound, "The page you're looking for doesn't exist.")
	})
}

// MethodNotAllowedHandler handles 405 errors
func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		WriteAlert(w, http.StatusMethodNotAllowed, "Method not allowed for this endpoint.")
	})
}
