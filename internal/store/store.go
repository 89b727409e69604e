// Package store keeps the per-browser workspace between requests.
package store

import (
	"encoding/json"
	"fmt"
	"net/http"

	"vendor-booking-portal/internal/models"
)

// WorkspaceStore loads and saves the workspace of the browser making r
type WorkspaceStore interface {
	// Load returns the stored workspace or a fresh one
	Load(r *http.Request) (*models.Workspace, error)
	// Save persists ws for the browser making r
	Save(w http.ResponseWriter, r *http.Request, ws *models.Workspace) error
	// Clear forgets the workspace
	Clear(w http.ResponseWriter, r *http.Request) error
}

func encodeWorkspace(ws *models.Workspace) ([]byte, error) {
	data, err := json.Marshal(ws)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workspace: %w", err)
	}
	return data, nil
}

func decodeWorkspace(data []byte) (*models.Workspace, error) {
	ws := models.NewWorkspace()
	if err := json.Unmarshal(data, ws); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workspace: %w", err)
	}
	if !ws.Kind.IsValid() {
		ws.Kind = models.DefaultProductKind
	}
	if ws.Step < models.FirstStep {
		ws.Step = models.FirstStep
	}
	if !ws.Cart.Mode.IsValid() {
		ws.Cart.Mode = models.ModeSingle
	}
	if ws.Cart.Items == nil {
		ws.Cart.Items = []models.CartItem{}
	}
	return ws, nil
}
