package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cx-tal-miterani/skybook/internal/models"
	"github.com/cx-tal-miterani/skybook/internal/service"
	"github.com/cx-tal-miterani/skybook/internal/store"
	"github.com/gorilla/mux"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	svc    service.Service
	logger *slog.Logger
}

// NewHandler creates a new Handler instance
func NewHandler(svc service.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Error: message})
}

func respondFieldErrors(w http.ResponseWriter, status int, errs models.ValidationResult) {
	respondJSON(w, status, models.ValidationErrorResponse{Errors: errs})
}

// maxBodyBytes caps every JSON request body
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// respondServiceError maps service errors onto status codes
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondFieldErrors(w, http.StatusBadRequest, verr.Errors)
	case errors.Is(err, store.ErrDuplicateEmail):
		respondFieldErrors(w, http.StatusConflict, models.ValidationResult{models.FieldEmail: store.MsgDuplicateEmail})
	case errors.Is(err, store.ErrInvalidCredentials):
		respondFieldErrors(w, http.StatusUnauthorized, models.ValidationResult{models.FieldEmail: store.MsgInvalidCredentials})
	case errors.Is(err, store.ErrNoSession):
		respondError(w, http.StatusUnauthorized, "Not logged in")
	case errors.Is(err, service.ErrNotLoggedIn):
		respondError(w, http.StatusUnauthorized, "Please login to book a flight")
	case errors.Is(err, service.ErrFlightNotFound):
		respondError(w, http.StatusNotFound, "Flight not found")
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func flightID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Register handles POST /api/accounts
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var form models.AuthForm
	if err := decodeJSON(w, r, &form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.svc.Register(r.Context(), form)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/sessions
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var form models.AuthForm
	if err := decodeJSON(w, r, &form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.svc.Login(r.Context(), models.AuthForm{Email: form.Email, Password: form.Password})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetSession handles GET /api/sessions
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.AuthState(r.Context()))
}

// Logout handles DELETE /api/sessions
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Logout(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// SearchFlights handles GET /api/flights
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	form := models.SearchForm{
		From:       q.Get("from"),
		To:         q.Get("to"),
		Departure:  q.Get("departure"),
		Return:     q.Get("return"),
		Passengers: q.Get("passengers"),
		Class:      q.Get("class"),
	}

	resp, err := h.svc.SearchFlights(r.Context(), form)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetFlight handles GET /api/flights/{id}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := flightID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Flight not found")
		return
	}

	offer, err := h.svc.GetFlight(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

// ListOffers handles GET /api/offers
func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.ListOffers(r.Context()))
}

// SearchBounds handles GET /api/search/bounds
func (h *Handler) SearchBounds(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.SearchBounds(r.Context(), r.URL.Query().Get("departure")))
}

// BookFlight handles POST /api/bookings
func (h *Handler) BookFlight(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	confirmation, err := h.svc.BookFlight(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, confirmation)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
