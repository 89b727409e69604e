package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vendor-booking-portal/internal/middleware"
	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/services"
	"vendor-booking-portal/internal/store"
)

// ProductHandler handles product actions outside the wizard
type ProductHandler struct {
	drafts *services.DraftService
	store  store.WorkspaceStore
}

// NewProductHandler creates a new product handler
func NewProductHandler(drafts *services.DraftService, store store.WorkspaceStore) *ProductHandler {
	return &ProductHandler{
		drafts: drafts,
		store:  store,
	}
}

// Pause takes a product off sale
func (h *ProductHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ProductPaused, "Product paused")
}

// Activate puts a product back on sale
func (h *ProductHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ProductActive, "Product activated")
}

func (h *ProductHandler) setStatus(w http.ResponseWriter, r *http.Request, status models.ProductStatus, message string) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	product, err := h.drafts.SetStatus(r.Context(), productID, status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"product": product,
		"message": message,
	})
}

// Delete removes a product. If it is the product being drafted, the wizard
// is closed as well.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	if err := h.drafts.DeleteProduct(r.Context(), ws, productID); err != nil {
		writeError(w, err)
		return
	}

	if !saveWorkspace(w, r, h.store, ws) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Product deleted",
	})
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || productID <= 0 {
		middleware.WriteAlert(w, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return productID, true
}
