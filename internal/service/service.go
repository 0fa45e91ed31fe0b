package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/cx-tal-miterani/skybook/internal/flights"
	"github.com/cx-tal-miterani/skybook/internal/models"
	"github.com/cx-tal-miterani/skybook/internal/store"
	"github.com/cx-tal-miterani/skybook/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrNotLoggedIn    = errors.New("please login to book a flight")
)

const (
	MsgPasswordTooLong = "Password must be at most 72 bytes long"
	MsgFlightRequired  = "Please select a flight"
	MsgFieldTooLong    = "Value is too long"
	MsgBookingThanks   = "Thank you for choosing SkyBook!"
	LabelLogin         = "Login"
)

// ValidationError carries per-field messages for a rejected form
type ValidationError struct {
	Errors models.ValidationResult
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Errors: models.ValidationResult{field: msg}}
}

// BookingNotifier is told about every acknowledged booking
type BookingNotifier interface {
	NotifyFlightBooked(confirmation models.BookingConfirmation)
}

// Service defines the operations exposed over HTTP
type Service interface {
	Register(ctx context.Context, form models.AuthForm) (*models.AuthResponse, error)
	Login(ctx context.Context, form models.AuthForm) (*models.AuthResponse, error)
	Logout(ctx context.Context) (*models.MessageResponse, error)
	AuthState(ctx context.Context) *models.AuthState
	SearchFlights(ctx context.Context, form models.SearchForm) (*models.SearchResponse, error)
	GetFlight(ctx context.Context, id int) (*models.FlightOffer, error)
	ListOffers(ctx context.Context) []models.FlightOffer
	SearchBounds(ctx context.Context, departure string) models.SearchBounds
	BookFlight(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
}

// Dependency holds everything the service needs. Notifier, Logger and Now
// are optional.
type Dependency struct {
	Accounts        *store.AccountStore
	Sessions        *store.SessionStore
	Flights         *flights.Service
	AuthValidator   *validation.AuthValidator
	SearchValidator *validation.SearchValidator
	Notifier        BookingNotifier
	RequireLogin    bool
	Logger          *slog.Logger
	Now             func() time.Time
}

type serviceImpl struct {
	Dependency
	validate *validator.Validate
}

// NewService creates a new Service
func NewService(dep Dependency) Service {
	if dep.Logger == nil {
		dep.Logger = slog.Default()
	}
	if dep.Now == nil {
		dep.Now = time.Now
	}
	return &serviceImpl{
		Dependency: dep,
		validate:   newBookingValidator(),
	}
}

func newBookingValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *serviceImpl) Register(ctx context.Context, form models.AuthForm) (*models.AuthResponse, error) {
	if errs := s.AuthValidator.Validate(form, true); !errs.Valid() {
		return nil, &ValidationError{Errors: errs}
	}

	account, err := s.Accounts.Register(form.Name, form.Email, form.Password)
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return nil, err
	case errors.Is(err, store.ErrPasswordTooLong):
		return nil, invalid(models.FieldPassword, MsgPasswordTooLong)
	case err != nil:
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	session := s.Sessions.Start(account)
	s.Logger.InfoContext(ctx, "account registered", "accountId", account.ID, "email", account.Email)

	return &models.AuthResponse{
		Account: &account,
		Session: &session,
		Message: fmt.Sprintf("Welcome to SkyBook, %s!", account.Name),
	}, nil
}

func (s *serviceImpl) Login(ctx context.Context, form models.AuthForm) (*models.AuthResponse, error) {
	if errs := s.AuthValidator.Validate(form, false); !errs.Valid() {
		return nil, &ValidationError{Errors: errs}
	}

	account, err := s.Accounts.Login(form.Email, form.Password)
	if err != nil {
		s.Logger.WarnContext(ctx, "login failed")
		return nil, err
	}

	session := s.Sessions.Start(account)
	s.Logger.InfoContext(ctx, "login succeeded", "accountId", account.ID)

	return &models.AuthResponse{
		Account: &account,
		Session: &session,
		Message: fmt.Sprintf("Welcome back, %s!", account.Name),
	}, nil
}

func (s *serviceImpl) Logout(ctx context.Context) (*models.MessageResponse, error) {
	account, err := s.Sessions.End()
	if err != nil {
		return nil, err
	}
	s.Logger.InfoContext(ctx, "logged out", "accountId", account.ID)
	return &models.MessageResponse{Message: "Logged out successfully!"}, nil
}

func (s *serviceImpl) AuthState(ctx context.Context) *models.AuthState {
	session, account, ok := s.Sessions.Current()
	if !ok {
		return &models.AuthState{Label: LabelLogin}
	}
	return &models.AuthState{
		Authenticated: true,
		Label:         fmt.Sprintf("Logout (%s)", account.Name),
		Account:       &account,
		Session:       &session,
	}
}

func (s *serviceImpl) SearchFlights(ctx context.Context, form models.SearchForm) (*models.SearchResponse, error) {
	query, errs := s.SearchValidator.Query(form)
	if !errs.Valid() {
		return nil, &ValidationError{Errors: errs}
	}

	criteria := models.SearchCriteria{
		From:          query.From,
		To:            query.To,
		DepartureDate: query.DepartureDate.String(),
		Passengers:    query.Passengers,
		Class:         query.Class,
	}
	if query.ReturnDate != nil {
		ret := query.ReturnDate.String()
		criteria.ReturnDate = &ret
	}

	resp := &models.SearchResponse{
		Criteria: criteria,
		Searched: true,
		Flights:  s.Flights.Search(query.From, query.To),
	}
	if len(resp.Flights) == 0 {
		resp.Message = fmt.Sprintf("No flights available from %s to %s on the selected date.", query.From, query.To)
	}

	s.Logger.DebugContext(ctx, "flight search", "from", query.From, "to", query.To, "results", len(resp.Flights))
	return resp, nil
}

func (s *serviceImpl) GetFlight(ctx context.Context, id int) (*models.FlightOffer, error) {
	offer, ok := s.Flights.Offer(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrFlightNotFound, id)
	}
	return &offer, nil
}

func (s *serviceImpl) ListOffers(ctx context.Context) []models.FlightOffer {
	return s.Flights.Offers()
}

func (s *serviceImpl) SearchBounds(ctx context.Context, departure string) models.SearchBounds {
	return s.SearchValidator.Bounds(departure)
}

func (s *serviceImpl) BookFlight(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, bookingValidationError(err)
	}

	_, account, loggedIn := s.Sessions.Current()
	if s.RequireLogin && !loggedIn {
		return nil, ErrNotLoggedIn
	}

	offer, ok := s.Flights.Book(req.FlightID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrFlightNotFound, req.FlightID)
	}

	confirmation := models.BookingConfirmation{
		ConfirmationCode: "SKY" + strings.ToUpper(uuid.New().String()[:8]),
		Flight:           offer,
		AccountName:      account.Name,
		Passengers:       req.Passengers,
		Class:            req.Class,
		BookedAt:         s.Now(),
	}
	confirmation.Message = fmt.Sprintf(
		"Flight booked successfully!\n\nFlight: %s\nRoute: %s → %s\nDeparture: %s\nPrice: $%d\n\n%s",
		offer.Airline, offer.From, offer.To, offer.Departure, offer.Price, MsgBookingThanks,
	)

	s.Logger.InfoContext(ctx, "booking acknowledged",
		"flightId", offer.ID, "confirmationCode", confirmation.ConfirmationCode, "accountId", account.ID)

	if s.Notifier != nil {
		s.Notifier.NotifyFlightBooked(confirmation)
	}
	return &confirmation, nil
}

func bookingValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate booking: %w", err)
	}

	errs := models.ValidationResult{}
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case models.FieldFlightID:
			errs.Set(models.FieldFlightID, MsgFlightRequired)
		default:
			errs.Set(fe.Field(), MsgFieldTooLong)
		}
	}
	return &ValidationError{Errors: errs}
}
