package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vendor-booking-portal/internal/middleware"
	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/repositories"
	"vendor-booking-portal/internal/store"
)

// maxJSONBody bounds JSON request bodies
const maxJSONBody = 1 << 20

// writeJSON encodes before writing the header so an unencodable value becomes
// a 500 instead of an empty success
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("failed to encode response: %v", err)
		middleware.WriteAlert(w, http.StatusInternalServerError, repositories.GenericErrorMessage)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		middleware.WriteAlert(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func writeValidationErrors(w http.ResponseWriter, fe models.FieldErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, middleware.ValidationErrorResponse{
		Success: false,
		Errors:  fe,
		Message: "Please correct the highlighted fields",
	})
}

// writeError maps service and upstream errors onto the portal's error shapes:
// field errors inline, everything else as an alert
func writeError(w http.ResponseWriter, err error) {
	if fe, ok := models.AsFieldErrors(err); ok {
		writeValidationErrors(w, fe)
		return
	}

	if models.IsCartRejection(err) {
		middleware.WriteAlert(w, http.StatusConflict, capitalize(rootMessage(err)))
		return
	}

	var apiErr *repositories.APIError
	switch {
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		middleware.WriteAlert(w, status, apiErr.Message)
	case errors.Is(err, models.ErrDraftNotFound):
		middleware.WriteAlert(w, http.StatusConflict, "Start by classifying your product")
	case errors.Is(err, models.ErrProductNotFound), errors.Is(err, models.ErrPricingEntryNotFound):
		middleware.WriteAlert(w, http.StatusNotFound, capitalize(rootMessage(err)))
	case errors.Is(err, models.ErrUnknownStep),
		errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidTicketMode),
		errors.Is(err, models.ErrUnsupportedMedia),
		errors.Is(err, models.ErrCartEmpty):
		middleware.WriteAlert(w, http.StatusBadRequest, capitalize(rootMessage(err)))
	default:
		log.Printf("request failed: %v", err)
		middleware.WriteAlert(w, http.StatusBadGateway, repositories.GenericErrorMessage)
	}
}

// rootMessage returns the sentinel text of err without the wrapping context
func rootMessage(err error) string {
	for _, sentinel := range []error{
		models.ErrSingleTicketLimit,
		models.ErrBulkQuantityExceeded,
		models.ErrBulkCapReached,
		models.ErrProductNotFound,
		models.ErrPricingEntryNotFound,
		models.ErrUnknownStep,
		models.ErrInvalidInput,
		models.ErrInvalidTicketMode,
		models.ErrUnsupportedMedia,
		models.ErrCartEmpty,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// loadWorkspace loads the workspace or answers with a session error
func loadWorkspace(w http.ResponseWriter, r *http.Request, st store.WorkspaceStore) (*models.Workspace, bool) {
	ws, err := st.Load(r)
	if err != nil {
		log.Printf("failed to load workspace: %v", err)
		middleware.WriteAlert(w, http.StatusInternalServerError, "Session error. Please refresh the page and try again.")
		return nil, false
	}
	return ws, true
}

// saveWorkspace persists the workspace. It must run before anything is
// written to w since the session cookie is a header.
func saveWorkspace(w http.ResponseWriter, r *http.Request, st store.WorkspaceStore, ws *models.Workspace) bool {
	if err := st.Save(w, r, ws); err != nil {
		log.Printf("failed to save workspace: %v", err)
		middleware.WriteAlert(w, http.StatusInternalServerError, "Failed to save session")
		return false
	}
	return true
}
