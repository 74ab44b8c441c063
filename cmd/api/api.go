package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"chebplace/docs" //this is required to generate swagger docs
	"chebplace/internal/auth"
	"chebplace/internal/domain/storage"
	"chebplace/internal/mailer"
	"chebplace/internal/media"
	"chebplace/internal/metrics"
	"chebplace/internal/moderation"
	"chebplace/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	store       storage.Store
	moderation  *moderation.Engine
	media       media.Store
	localMedia  *media.LocalStore
	logger      *zap.SugaredLogger
	mailer      mailer.Client
	rateLimiter ratelimiter.Limiter
	tokens      *auth.JWTAuthorizer
	wg          sync.WaitGroup
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	corsOrigins []string
	auth        authConfig
	media       mediaConfig
	mail        mailConfig
	rateLimiter ratelimiter.Config
	reviewCache moderation.Config
}

type authConfig struct {
	basic basicConfig
	admin adminConfig
}

type basicConfig struct {
	user string
	pass string
}

type adminConfig struct {
	mode     string // static, bcrypt or jwt
	key      string
	keyHash  string
	iss      string
	tokenExp time.Duration
}

type mediaConfig struct {
	backend          string // local or cloudinary
	root             string
	publicPrefix     string
	cloudinaryURL    string
	cloudinaryFolder string
}

type mailConfig struct {
	smtp        smtpConfig
	fromEmail   string
	notifyEmail string
}

type smtpConfig struct {
	host string
	port int
	user string
	pass string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleTime  time.Duration
	migrate      bool
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", adminKeyHeader},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", app.healthCheckHandler)
	r.Get("/nav", app.navHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
	r.With(app.BasicAuthMiddleware()).Handle("/metrics", promhttp.Handler())

	if app.localMedia != nil {
		prefix := app.localMedia.Prefix()
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(app.localMedia.Root())))
		r.Handle(prefix+"/*", fs)
	}

	// Public routes
	r.Get("/places", app.listPlacesHandler)
	r.Get("/reviews", app.listApprovedReviewsHandler)
	r.With(app.RateLimiterMiddleware).Post("/reviews", app.submitReviewHandler)
	r.Get("/events", app.listEventsHandler)
	r.Get("/gallery", app.listGalleryHandler)
	r.With(app.RateLimiterMiddleware).Post("/gallery/upload", app.uploadGalleryPhotoHandler)
	r.With(app.RateLimiterMiddleware).Post("/feedback", app.createFeedbackHandler)

	if app.tokens != nil {
		r.With(app.BasicAuthMiddleware()).Post("/auth/token", app.createAdminTokenHandler)
	}

	r.Route("/admin", func(r chi.Router) {
		r.Use(app.AdminKeyMiddleware)

		r.Get("/reviews/pending", app.listPendingReviewsHandler)
		r.Post("/reviews/{reviewID}/approve", app.approveReviewHandler)

		r.Post("/places", app.createPlaceHandler)

		r.Route("/events", func(r chi.Router) {
			r.Post("/", app.createEventHandler)
			r.Get("/", app.adminListEventsHandler)
			r.Put("/{eventID}", app.updateEventHandler)
			r.Delete("/{eventID}", app.deleteEventHandler)
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Post("/sections", app.createGallerySectionHandler)
			r.Put("/sections/{sectionID}", app.renameGallerySectionHandler)
			r.Delete("/sections/{sectionID}", app.deleteGallerySectionHandler)
			r.Post("/photos", app.addGalleryPhotoHandler)
			r.Delete("/photos/{photoID}", app.deleteGalleryPhotoHandler)
		})

		r.Get("/feedback", app.listFeedbackHandler)
		r.Post("/feedback/{feedbackID}/mark_read", app.markFeedbackReadHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 30,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		err := srv.Shutdown(ctx)

		app.logger.Infow("waiting for background tasks")
		app.wg.Wait()

		shutdown <- err
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
