package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vendor-booking-portal/internal/middleware"
	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/services"
	"vendor-booking-portal/internal/store"
)

// replaceURLHeader tells htmx to replace the browser URL without a history entry
const replaceURLHeader = "HX-Replace-Url"

// WizardHandler serves the vendor product creation wizard
type WizardHandler struct {
	drafts         *services.DraftService
	sequencer      *services.StepSequencer
	store          store.WorkspaceStore
	maxUploadBytes int64
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(drafts *services.DraftService, sequencer *services.StepSequencer, store store.WorkspaceStore, maxUploadBytes int64) *WizardHandler {
	return &WizardHandler{
		drafts:         drafts,
		sequencer:      sequencer,
		store:          store,
		maxUploadBytes: maxUploadBytes,
	}
}

// WizardResponse describes the wizard state after a request
type WizardResponse struct {
	Success    bool                `json:"success"`
	Step       *models.WizardStep  `json:"step"`
	Steps      []models.WizardStep `json:"steps"`
	Kind       models.ProductKind  `json:"kind"`
	Draft      *models.Product     `json:"draft"`
	Processing bool                `json:"processing"`
	ReplaceURL string              `json:"replace_url,omitempty"`
	Data       interface{}         `json:"data,omitempty"`
}

// Mount positions the wizard from the ?step= query parameter. A missing or
// unknown key falls back to the first step and the URL is rewritten.
func (h *WizardHandler) Mount(w http.ResponseWriter, r *http.Request) {
	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	// a submit in flight owns the workspace; answer with its state untouched
	if ws.Processing {
		h.respond(w, r, ws, http.StatusOK, false, nil)
		return
	}

	_, rewrite := h.sequencer.Mount(ws, r.URL.Query().Get(services.StepQueryParam))
	if !saveWorkspace(w, r, h.store, ws) {
		return
	}

	h.respond(w, r, ws, http.StatusOK, rewrite, nil)
}

// GoTo jumps to a step given by key or index
func (h *WizardHandler) GoTo(w http.ResponseWriter, r *http.Request) {
	var req models.StepRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	var err error
	if req.Step != "" {
		_, err = h.sequencer.GoToKey(ws, req.Step)
	} else {
		_, err = h.sequencer.GoTo(ws, req.Index)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if !saveWorkspace(w, r, h.store, ws) {
		return
	}
	h.respond(w, r, ws, http.StatusOK, true, nil)
}

// Next advances one step. Nothing happens on the publish step.
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.sequencer.Next)
}

// Previous goes back one step
func (h *WizardHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.sequencer.Previous)
}

func (h *WizardHandler) move(w http.ResponseWriter, r *http.Request, fn func(*models.Workspace) (models.WizardStep, bool)) {
	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	before := ws.Step
	fn(ws)

	if !saveWorkspace(w, r, h.store, ws) {
		return
	}
	h.respond(w, r, ws, http.StatusOK, ws.Step != before, nil)
}

// Exit leaves the wizard. The draft, kind and step are reset so the next visit
// starts fresh.
func (h *WizardHandler) Exit(w http.ResponseWriter, r *http.Request) {
	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	h.sequencer.Exit(ws)

	if !saveWorkspace(w, r, h.store, ws) {
		return
	}
	h.respond(w, r, ws, http.StatusOK, false, nil)
}

// SubmitClassification handles the classification step
func (h *WizardHandler) SubmitClassification(w http.ResponseWriter, r *http.Request) {
	var form models.ClassificationForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err)
		return
	}

	h.submit(w, r, func(ws *models.Workspace) (interface{}, error) {
		return h.drafts.SubmitClassification(r.Context(), ws, &form)
	})
}

// SubmitDescription handles the description and location step
func (h *WizardHandler) SubmitDescription(w http.ResponseWriter, r *http.Request) {
	var form models.DescriptionForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err)
		return
	}

	h.submit(w, r, func(ws *models.Workspace) (interface{}, error) {
		return h.drafts.SubmitDescription(r.Context(), ws, &form)
	})
}

// SubmitAvailability handles the availability step
func (h *WizardHandler) SubmitAvailability(w http.ResponseWriter, r *http.Request) {
	var form models.AvailabilityForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err)
		return
	}

	h.submit(w, r, func(ws *models.Workspace) (interface{}, error) {
		return h.drafts.SubmitAvailability(r.Context(), ws, &form)
	})
}

// UploadMedia handles a multipart photo or video upload
func (h *WizardHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		middleware.WriteAlert(w, http.StatusBadRequest, "Invalid or too large upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeValidationErrors(w, models.FieldErrors{"file": {"This field is required"}})
		return
	}
	defer file.Close()

	mediaType := models.MediaType(r.FormValue("media_type"))
	if mediaType == "" {
		mediaType = models.MediaImage
	}

	h.submit(w, r, func(ws *models.Workspace) (interface{}, error) {
		return h.drafts.UploadMedia(r.Context(), ws, mediaType, header.Filename, header.Header.Get("Content-Type"), file)
	})
}

// DeleteMedia removes a photo or video
func (h *WizardHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, err := strconv.Atoi(chi.URLParam(r, "mediaID"))
	if err != nil {
		middleware.WriteAlert(w, http.StatusBadRequest, "Invalid media ID")
		return
	}

	h.submit(w, r, func(ws *models.Workspace) (interface{}, error) {
		return nil, h.drafts.DeleteMedia(r.Context(), ws, mediaID)
	})
}

// SubmitPricing saves one pricing tier without moving the wizard
func (h *WizardHandler) SubmitPricing(w http.ResponseWriter, r *http.Request) {
	var form models.PricingForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err)
		return
	}

	h.submit(w, r, func(ws *models.Workspace) (interface{}, error) {
		return h.drafts.SubmitPricing(r.Context(), ws, &form)
	})
}

// Publish activates the product and closes the wizard
func (h *WizardHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, func(ws *models.Workspace) (interface{}, error) {
		return h.drafts.Publish(r.Context(), ws)
	})
}

// submit runs a step operation and saves the workspace whatever the outcome,
// since earlier slices may already be persisted upstream. A failed operation
// leaves the wizard on its current step.
func (h *WizardHandler) submit(w http.ResponseWriter, r *http.Request, fn func(ws *models.Workspace) (interface{}, error)) {
	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	// publish the in-flight flag so concurrent readers render a placeholder
	ws.Processing = true
	if !saveWorkspace(w, r, h.store, ws) {
		return
	}

	before := ws.Step
	data, err := fn(ws)
	if err != nil {
		ws.Step = before
	}
	ws.Processing = false

	if !saveWorkspace(w, r, h.store, ws) {
		return
	}

	if err != nil {
		writeError(w, err)
		return
	}
	h.respond(w, r, ws, http.StatusOK, ws.Step != before, data)
}

func (h *WizardHandler) respond(w http.ResponseWriter, r *http.Request, ws *models.Workspace, status int, replace bool, data interface{}) {
	resp := WizardResponse{
		Success:    true,
		Steps:      h.sequencer.Steps(ws.Kind),
		Kind:       ws.Kind,
		Draft:      ws.Draft,
		Processing: ws.Processing,
		Data:       data,
	}

	if step, ok := h.sequencer.Current(ws); ok {
		resp.Step = &step
		if page, known := currentPageURL(r); replace && known {
			resp.ReplaceURL = services.ReplaceStepURL(page, step.Key)
			w.Header().Set(replaceURLHeader, resp.ReplaceURL)
		}
	}

	writeJSON(w, status, resp)
}

// currentPageURL is the page the browser shows, as sent by htmx in
// HX-Current-URL. Without it the page is unknown and no URL is replaced.
func currentPageURL(r *http.Request) (*url.URL, bool) {
	raw := r.Header.Get("HX-Current-URL")
	if raw == "" {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}
