package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vendor-booking-portal/internal/middleware"
	"vendor-booking-portal/internal/models"
	"vendor-booking-portal/internal/services"
	"vendor-booking-portal/internal/store"
)

// CartHandler handles the ticket cart and checkout
type CartHandler struct {
	cartService     *services.CartService
	checkoutService *services.CheckoutService
	store           store.WorkspaceStore
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	cartService *services.CartService,
	checkoutService *services.CheckoutService,
	store store.WorkspaceStore,
) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		store:           store,
	}
}

// CartResponse is the cart together with its running totals
type CartResponse struct {
	Success bool               `json:"success"`
	Cart    models.Cart        `json:"cart"`
	Summary models.CartSummary `json:"summary"`
	Item    *models.CartItem   `json:"item,omitempty"`
	Message string             `json:"message,omitempty"`
}

// CheckoutResponse is returned once a booking is created
type CheckoutResponse struct {
	Success bool            `json:"success"`
	Booking *models.Booking `json:"booking"`
	Message string          `json:"message"`
}

// ViewCart returns the current cart
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}
	h.respond(w, ws, nil, "")
}

// AddItem adds a ticket line. In single mode the quantity defaults to one.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var form models.AddTicketForm
	if !decodeJSON(w, r, &form) {
		return
	}

	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	if ws.Cart.Mode != models.ModeBulk && form.Quantity == 0 {
		form.Quantity = 1
	}
	if err := form.Validate(); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.cartService.AddTicket(r.Context(), ws, &form)
	if err != nil {
		writeError(w, err)
		return
	}

	if !saveWorkspace(w, r, h.store, ws) {
		return
	}
	h.respond(w, ws, item, "Ticket added to cart")
}

// RemoveItem removes a ticket line
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	if !h.cartService.Remove(&ws.Cart, chi.URLParam(r, "itemID")) {
		h.respond(w, ws, nil, "")
		return
	}
	ws.Touch()

	if !saveWorkspace(w, r, h.store, ws) {
		return
	}
	h.respond(w, ws, nil, "Ticket removed")
}

// SetMode switches between single and bulk mode and empties the cart
func (h *CartHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req models.TicketModeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	if err := h.cartService.SetMode(&ws.Cart, req.Mode); err != nil {
		writeError(w, err)
		return
	}
	ws.Touch()

	if !saveWorkspace(w, r, h.store, ws) {
		return
	}
	h.respond(w, ws, nil, "")
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	h.cartService.Clear(&ws.Cart)
	ws.Touch()

	if !saveWorkspace(w, r, h.store, ws) {
		return
	}
	h.respond(w, ws, nil, "Cart cleared")
}

// Checkout books the cart
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ws, ok := loadWorkspace(w, r, h.store)
	if !ok {
		return
	}

	booking, err := h.checkoutService.Checkout(r.Context(), ws)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.store.Save(w, r, ws); err != nil {
		// the booking exists upstream even though the cart could not be cleared
		log.Printf("booking %s created but workspace save failed: %v", booking.Number, err)
		middleware.WriteAlert(w, http.StatusInternalServerError, "Booking created but your cart could not be updated")
		return
	}

	writeJSON(w, http.StatusCreated, CheckoutResponse{
		Success: true,
		Booking: booking,
		Message: "Booking created",
	})
}

func (h *CartHandler) respond(w http.ResponseWriter, ws *models.Workspace, item *models.CartItem, message string) {
	writeJSON(w, http.StatusOK, CartResponse{
		Success: true,
		Cart:    ws.Cart,
		Summary: ws.Cart.Summary(),
		Item:    item,
		Message: message,
	})
}
