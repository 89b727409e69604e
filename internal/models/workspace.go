package models

import "time"

// Workspace is everything the portal remembers for one browser session: the
// draft being built, the wizard position and the ticket cart. Only one request
// mutates a workspace at a time since the UI has a single active form.
type Workspace struct {
	Draft      *Product    `json:"draft"`
	Kind       ProductKind `json:"kind"`
	Step       int         `json:"step"`
	Cart       Cart        `json:"cart"`
	Processing bool        `json:"processing"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewWorkspace returns a workspace in its initial state
func NewWorkspace() *Workspace {
	return &Workspace{
		Kind:      DefaultProductKind,
		Step:      FirstStep,
		Cart:      Cart{Mode: ModeSingle, Items: []CartItem{}},
		UpdatedAt: time.Now(),
	}
}

// Reset drops the draft and rewinds the wizard. The cart is left alone.
func (ws *Workspace) Reset() {
	ws.Draft = nil
	ws.Kind = DefaultProductKind
	ws.Step = FirstStep
	ws.Processing = false
	ws.UpdatedAt = time.Now()
}

// Touch records a mutation
func (ws *Workspace) Touch() {
	ws.UpdatedAt = time.Now()
}
