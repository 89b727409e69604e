package services

import (
	"fmt"
	"net/url"

	"vendor-booking-portal/internal/models"
)

// StepQueryParam is the query parameter mirroring the wizard position
const StepQueryParam = "step"

// StepSequencer maps wizard step indexes to screens and keys
type StepSequencer struct{}

// NewStepSequencer creates a new step sequencer
func NewStepSequencer() *StepSequencer {
	return &StepSequencer{}
}

// Steps returns the step table for kind
func (s *StepSequencer) Steps(kind models.ProductKind) []models.WizardStep {
	return models.GetWizardSteps(kind)
}

// StepFor returns the step at index. False means there is nothing to render.
func (s *StepSequencer) StepFor(kind models.ProductKind, index int) (models.WizardStep, bool) {
	steps := s.Steps(kind)
	if index < 1 || index > len(steps) {
		return models.WizardStep{}, false
	}
	return steps[index-1], true
}

// KeyFor returns the query key of the step at index
func (s *StepSequencer) KeyFor(kind models.ProductKind, index int) (models.StepKey, bool) {
	step, ok := s.StepFor(kind, index)
	if !ok {
		return "", false
	}
	return step.Key, true
}

// IndexFor returns the index of the step with key
func (s *StepSequencer) IndexFor(kind models.ProductKind, key models.StepKey) (int, bool) {
	for _, step := range s.Steps(kind) {
		if step.Key == key {
			return step.Index, true
		}
	}
	return 0, false
}

// LastIndex returns the index of the publish step
func (s *StepSequencer) LastIndex(kind models.ProductKind) int {
	return len(s.Steps(kind))
}

// Current returns the step the workspace is on
func (s *StepSequencer) Current(ws *models.Workspace) (models.WizardStep, bool) {
	return s.StepFor(ws.Kind, ws.Step)
}

// Mount positions the workspace from the raw ?step= value. rewrite is true when
// the URL has to be replaced because the key was missing or unknown.
func (s *StepSequencer) Mount(ws *models.Workspace, rawKey string) (step models.WizardStep, rewrite bool) {
	if rawKey != "" {
		if index, ok := s.IndexFor(ws.Kind, models.StepKey(rawKey)); ok {
			ws.Step = index
			ws.Touch()
			step, _ = s.StepFor(ws.Kind, index)
			return step, false
		}
	}

	ws.Step = models.FirstStep
	ws.Touch()
	step, _ = s.StepFor(ws.Kind, models.FirstStep)
	return step, true
}

// GoTo moves the workspace to index
func (s *StepSequencer) GoTo(ws *models.Workspace, index int) (models.WizardStep, error) {
	step, ok := s.StepFor(ws.Kind, index)
	if !ok {
		return models.WizardStep{}, fmt.Errorf("%w: %d", models.ErrUnknownStep, index)
	}
	ws.Step = index
	ws.Touch()
	return step, nil
}

// GoToKey moves the workspace to the step with key
func (s *StepSequencer) GoToKey(ws *models.Workspace, key models.StepKey) (models.WizardStep, error) {
	index, ok := s.IndexFor(ws.Kind, key)
	if !ok {
		return models.WizardStep{}, fmt.Errorf("%w: %s", models.ErrUnknownStep, key)
	}
	return s.GoTo(ws, index)
}

// Next advances one step. The publish step is terminal: advancing from it
// leaves the workspace where it is.
func (s *StepSequencer) Next(ws *models.Workspace) (models.WizardStep, bool) {
	if ws.Step >= s.LastIndex(ws.Kind) {
		return s.Current(ws)
	}
	ws.Step++
	ws.Touch()
	return s.Current(ws)
}

// Previous goes back one step, stopping at the first one
func (s *StepSequencer) Previous(ws *models.Workspace) (models.WizardStep, bool) {
	if ws.Step > models.FirstStep {
		ws.Step--
		ws.Touch()
	}
	return s.Current(ws)
}

// SetKind switches the step table and keeps the index inside it
func (s *StepSequencer) SetKind(ws *models.Workspace, kind models.ProductKind) {
	ws.Kind = kind
	if last := s.LastIndex(kind); ws.Step > last {
		ws.Step = last
	}
	ws.Touch()
}

// Exit resets the wizard so the next visit starts with a fresh draft
func (s *StepSequencer) Exit(ws *models.Workspace) {
	ws.Reset()
}

// ReplaceStepURL returns u with its step query parameter set to key. Other
// query parameters are kept.
func ReplaceStepURL(u *url.URL, key models.StepKey) string {
	replaced := *u
	query := replaced.Query()
	query.Set(StepQueryParam, string(key))
	replaced.RawQuery = query.Encode()
	return replaced.RequestURI()
}
