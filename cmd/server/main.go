package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"

	"vendor-booking-portal/internal/config"
	"vendor-booking-portal/internal/database"
	"vendor-booking-portal/internal/handlers"
	"vendor-booking-portal/internal/middleware"
	"vendor-booking-portal/internal/repositories"
	"vendor-booking-portal/internal/server"
	"vendor-booking-portal/internal/services"
	"vendor-booking-portal/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	sessionOptions := &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}

	// Create session store. With Redis the cookie only carries small ids; the
	// session backend keeps whole workspaces, so those live in session files.
	var sessionStore sessions.Store
	if cfg.UsesRedis() {
		cookieStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
		cookieStore.Options = sessionOptions
		sessionStore = cookieStore
	} else {
		if err := os.MkdirAll(cfg.Session.Dir, 0o700); err != nil {
			log.Fatal("Failed to create session directory:", err)
		}
		sessionStore = store.NewFilesystemSessions(cfg.Session.Dir, sessionOptions, []byte(cfg.Session.Secret))
	}

	checks := map[string]handlers.Pinger{}

	// Workspace storage: the session cookie itself or Redis
	var workspaces store.WorkspaceStore
	if cfg.UsesRedis() {
		client, err := database.NewRedisConnection(database.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer client.Close()
		log.Printf("Redis connection established (%s)", cfg.Redis.Addr)

		redisStore := store.NewRedisWorkspaceStore(client, sessionStore, cfg.Session.Name, cfg.Redis.TTL)
		checks["redis"] = redisStore
		workspaces = redisStore
	} else {
		workspaces = store.NewSessionWorkspaceStore(sessionStore, cfg.Session.Name)
		log.Printf("Keeping workspaces in session files under %s", cfg.Session.Dir)
	}

	// Initialize repositories
	api := repositories.NewAPIClient(repositories.APIConfig{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
	})
	productRepo := repositories.NewProductRepository(api)
	locationRepo := repositories.NewLocationRepository(api)
	availabilityRepo := repositories.NewAvailabilityRepository(api)
	mediaRepo := repositories.NewMediaRepository(api)
	pricingRepo := repositories.NewPricingRepository(api)
	bookingRepo := repositories.NewBookingRepository(api)

	// Initialize services
	sequencer := services.NewStepSequencer()
	calculator := services.NewPricingCalculator(cfg.Pricing.DefaultCurrency)
	mediaService := services.NewMediaService(services.MediaConfig{
		MaxImageWidth:  cfg.Media.MaxImageWidth,
		MaxImageHeight: cfg.Media.MaxImageHeight,
		JPEGQuality:    cfg.Media.JPEGQuality,
	})
	draftService := services.NewDraftService(
		productRepo,
		locationRepo,
		availabilityRepo,
		mediaRepo,
		pricingRepo,
		mediaService,
		sequencer,
		calculator,
	)
	cartService := services.NewCartService(productRepo)
	checkoutService := services.NewCheckoutService(bookingRepo, cartService)

	opts := server.Options{CORS: middleware.DefaultCORSConfig(cfg.Server.AllowedOrigins...)}
	if cfg.Security.CSRFEnabled {
		opts.CSRF = middleware.NewCSRFMiddleware(sessionStore, cfg.Session.Name)
	}
	if cfg.Security.RateLimitRequests > 0 {
		opts.Limiter = middleware.NewRateLimiter(cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow)
		defer opts.Limiter.Stop()
	}

	// Initialize handlers
	router := server.NewRouter(server.Handlers{
		Wizard:   handlers.NewWizardHandler(draftService, sequencer, workspaces, cfg.Media.MaxUploadBytes),
		Pricing:  handlers.NewPricingHandler(calculator, cfg.Pricing.DefaultCurrency),
		Cart:     handlers.NewCartHandler(cartService, checkoutService, workspaces),
		Products: handlers.NewProductHandler(draftService, workspaces),
		Health:   handlers.NewHealthHandler(checks),
	}, opts)

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s (Environment: %s, API: %s)", serverAddr, cfg.Server.Env, cfg.API.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
