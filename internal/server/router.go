// Package server assembles the portal's HTTP routes.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"vendor-booking-portal/internal/handlers"
	"vendor-booking-portal/internal/middleware"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Wizard   *handlers.WizardHandler
	Pricing  *handlers.PricingHandler
	Cart     *handlers.CartHandler
	Products *handlers.ProductHandler
	Health   *handlers.HealthHandler
}

// Options configures the optional guards. A nil CSRF or Limiter disables it.
type Options struct {
	CORS    middleware.CORSConfig
	CSRF    *middleware.CSRFMiddleware
	Limiter *middleware.RateLimiter
}

// NewRouter builds the chi router with the portal middleware stack
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.CORSMiddleware(opts.CORS))
	r.Use(middleware.SecurityHeadersMiddleware)

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	r.Get("/healthz", h.Health.Health)

	limited := func(r chi.Router) chi.Router {
		if opts.Limiter == nil {
			return r
		}
		return r.With(middleware.RateLimit(opts.Limiter))
	}

	r.Route("/api", func(r chi.Router) {
		if opts.CSRF != nil {
			r.Use(opts.CSRF.Protect)
		}

		r.Route("/wizard", func(r chi.Router) {
			r.Get("/", h.Wizard.Mount)
			r.Delete("/", h.Wizard.Exit)
			r.Post("/step", h.Wizard.GoTo)
			r.Post("/next", h.Wizard.Next)
			r.Post("/previous", h.Wizard.Previous)

			r.Post("/classification", h.Wizard.SubmitClassification)
			r.Post("/description", h.Wizard.SubmitDescription)
			r.Post("/availability", h.Wizard.SubmitAvailability)
			limited(r).Post("/media", h.Wizard.UploadMedia)
			r.Delete("/media/{mediaID}", h.Wizard.DeleteMedia)
			r.Post("/pricing", h.Wizard.SubmitPricing)
			limited(r).Post("/publish", h.Wizard.Publish)
		})

		r.Get("/pricing/quote", h.Pricing.Quote)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.ViewCart)
			r.Delete("/", h.Cart.ClearCart)
			r.Post("/items", h.Cart.AddItem)
			r.Delete("/items/{itemID}", h.Cart.RemoveItem)
			r.Post("/mode", h.Cart.SetMode)
			limited(r).Post("/checkout", h.Cart.Checkout)
		})

		r.Route("/products/{id}", func(r chi.Router) {
			r.Patch("/pause", h.Products.Pause)
			r.Patch("/activate", h.Products.Activate)
			r.Delete("/", h.Products.Delete)
		})
	})

	return r
}
