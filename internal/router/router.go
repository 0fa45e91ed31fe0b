package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cx-tal-miterani/skybook/internal/handlers"
	"github.com/cx-tal-miterani/skybook/internal/websocket"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Options configures SetupRouter
type Options struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handlers.Handler, hub *websocket.Hub, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Accounts and sessions
	api.HandleFunc("/accounts", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/sessions", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/sessions", h.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions", h.Logout).Methods(http.MethodDelete)

	// Flights
	api.HandleFunc("/flights", h.SearchFlights).Methods(http.MethodGet)
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet)
	api.HandleFunc("/offers", h.ListOffers).Methods(http.MethodGet)
	api.HandleFunc("/search/bounds", h.SearchBounds).Methods(http.MethodGet)

	// Bookings
	api.HandleFunc("/bookings", h.BookFlight).Methods(http.MethodPost)

	// WebSocket for booking notifications
	api.HandleFunc("/flights/{id}/ws", hub.HandleWebSocket).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return c.Handler(r)
}

func accessLog(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.InfoContext(r.Context(), "http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"requestId", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
