package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"vendor-booking-portal/internal/models"
)

// fakeBookingAPI is an in-memory stand-in for the upstream booking API
type fakeBookingAPI struct {
	mu       sync.Mutex
	nextID   int
	products map[int]*models.Product
	bookings []models.BookingRequest

	holdMu sync.Mutex
	held   *heldRequest
}

// heldRequest parks the next matching upstream call until released
type heldRequest struct {
	method  string
	path    string
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newFakeBookingAPI() *fakeBookingAPI {
	return &fakeBookingAPI{nextID: 100, products: map[int]*models.Product{}}
}

func (f *fakeBookingAPI) id() int {
	f.nextID++
	return f.nextID
}

func (f *fakeBookingAPI) product(w http.ResponseWriter, r *http.Request) (*models.Product, bool) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	p, ok := f.products[id]
	if !ok {
		writeFake(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	}
	return p, ok
}

func (f *fakeBookingAPI) seed(p *models.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[*p.ID] = p
}

func (f *fakeBookingAPI) snapshot(id int) (models.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, false
	}
	return *p, true
}

func (f *fakeBookingAPI) bookingRequests() []models.BookingRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.BookingRequest(nil), f.bookings...)
}

func (f *fakeBookingAPI) productFor(id int) *models.Product {
	return f.products[id]
}

// holdNext parks the next method+path call. entered is closed once the call
// arrives; release lets it through and is safe to call more than once.
func (f *fakeBookingAPI) holdNext(method, path string) (entered <-chan struct{}, release func()) {
	h := &heldRequest{method: method, path: path, entered: make(chan struct{}), release: make(chan struct{})}
	f.holdMu.Lock()
	f.held = h
	f.holdMu.Unlock()
	return h.entered, func() { h.once.Do(func() { close(h.release) }) }
}

func (f *fakeBookingAPI) waitIfHeld(r *http.Request) {
	f.holdMu.Lock()
	h := f.held
	if h == nil || h.method != r.Method || h.path != r.URL.Path {
		f.holdMu.Unlock()
		return
	}
	f.held = nil
	f.holdMu.Unlock()

	close(h.entered)
	select {
	case <-h.release:
	case <-r.Context().Done():
	}
}

func writeFake(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (f *fakeBookingAPI) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.waitIfHeld(r)
			f.mu.Lock()
			defer f.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/products/", func(w http.ResponseWriter, r *http.Request) {
		var body models.Product
		json.NewDecoder(r.Body).Decode(&body)
		if body.Category == "rejected" {
			writeFake(w, http.StatusBadRequest, map[string][]string{"category": {"Unknown category."}})
			return
		}
		id := f.id()
		body.ID = &id
		body.Status = models.ProductDraft
		f.products[id] = &body
		writeFake(w, http.StatusCreated, body)
	})
	r.Get("/products/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if p, ok := f.product(w, r); ok {
			writeFake(w, http.StatusOK, p)
		}
	})
	r.Put("/products/{id}/", func(w http.ResponseWriter, r *http.Request) {
		p, ok := f.product(w, r)
		if !ok {
			return
		}
		var body models.Product
		json.NewDecoder(r.Body).Decode(&body)
		p.Category, p.Subcategory, p.Kind = body.Category, body.Subcategory, body.Kind
		p.Name, p.Description = body.Name, body.Description
		writeFake(w, http.StatusOK, p)
	})
	r.Patch("/products/{id}/", func(w http.ResponseWriter, r *http.Request) {
		p, ok := f.product(w, r)
		if !ok {
			return
		}
		var body models.Product
		json.NewDecoder(r.Body).Decode(&body)
		if body.Status != "" {
			p.Status = body.Status
		}
		writeFake(w, http.StatusOK, p)
	})
	r.Delete("/products/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if p, ok := f.product(w, r); ok {
			delete(f.products, *p.ID)
			w.WriteHeader(http.StatusNoContent)
		}
	})

	r.Post("/location/", func(w http.ResponseWriter, r *http.Request) {
		var body models.Location
		json.NewDecoder(r.Body).Decode(&body)
		id := f.id()
		body.ID = &id
		if p := f.productFor(body.Product); p != nil {
			p.Location = &body
		}
		writeFake(w, http.StatusCreated, body)
	})
	r.Post("/availability/", func(w http.ResponseWriter, r *http.Request) {
		var body models.Availability
		json.NewDecoder(r.Body).Decode(&body)
		id := f.id()
		body.ID = &id
		if p := f.productFor(body.Product); p != nil {
			p.Availability = &body
		}
		writeFake(w, http.StatusCreated, body)
	})
	r.Post("/media/", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			writeFake(w, http.StatusBadRequest, map[string]string{"message": "bad upload"})
			return
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			writeFake(w, http.StatusBadRequest, map[string]string{"message": "file missing"})
			return
		}
		productID, _ := strconv.Atoi(r.FormValue("product"))
		media := models.Media{
			ID:        f.id(),
			Product:   productID,
			MediaType: models.MediaType(r.FormValue("media_type")),
			File:      "https://cdn.example.com/" + header.Filename,
		}
		if p := f.productFor(productID); p != nil {
			p.Media = append(p.Media, media)
		}
		writeFake(w, http.StatusCreated, media)
	})
	r.Post("/pricing/", func(w http.ResponseWriter, r *http.Request) {
		var body models.PricingEntry
		json.NewDecoder(r.Body).Decode(&body)
		id := f.id()
		body.ID = &id
		if p := f.productFor(body.Product); p != nil {
			p.Pricing = append(p.Pricing, body)
		}
		writeFake(w, http.StatusCreated, body)
	})
	r.Post("/bookings/", func(w http.ResponseWriter, r *http.Request) {
		var body models.BookingRequest
		json.NewDecoder(r.Body).Decode(&body)
		f.bookings = append(f.bookings, body)

		var total float64
		for _, line := range body.Tickets {
			total += line.Total
		}
		writeFake(w, http.StatusCreated, models.Booking{
			ID:         len(f.bookings),
			Number:     "BK-" + strconv.Itoa(len(f.bookings)),
			Status:     "pending",
			TotalPrice: total,
		})
	})

	return r
}
