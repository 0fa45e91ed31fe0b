package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cx-tal-miterani/skybook/internal/models"
)

// MinCityLength is the shortest accepted city name after trimming
const MinCityLength = 2

const (
	MsgFromRequired          = "Departure city is required"
	MsgToRequired            = "Destination city is required"
	MsgCityTooShort          = "City name must be at least 2 characters"
	MsgSameCity              = "Destination must be different from departure city"
	MsgDepartureRequired     = "Departure date is required"
	MsgDepartureInvalid      = "Please enter a valid departure date"
	MsgDepartureInPast       = "Departure date cannot be in the past"
	MsgReturnInvalid         = "Please enter a valid return date"
	MsgReturnBeforeDeparture = "Return date must be after departure date"
	MsgPassengersRequired    = "Number of passengers is required"
	MsgClassRequired         = "Travel class is required"
)

// SearchValidator validates flight search forms against the current date
type SearchValidator struct {
	now func() time.Time
}

// NewSearchValidator creates a SearchValidator. A nil clock uses time.Now.
func NewSearchValidator(now func() time.Time) *SearchValidator {
	if now == nil {
		now = time.Now
	}
	return &SearchValidator{now: now}
}

// Validate checks every field of form independently.
func (v *SearchValidator) Validate(form models.SearchForm) models.ValidationResult {
	_, errs := v.Query(form)
	return errs
}

// Query validates form and, when it is valid, returns the parsed query.
func (v *SearchValidator) Query(form models.SearchForm) (models.SearchQuery, models.ValidationResult) {
	errs := models.ValidationResult{}

	from := strings.TrimSpace(form.From)
	to := strings.TrimSpace(form.To)
	validateCity(errs, models.FieldFrom, from, MsgFromRequired)
	validateCity(errs, models.FieldTo, to, MsgToRequired)

	// Overrides any length error already set on "to".
	if strings.ToLower(from) == strings.ToLower(to) {
		errs.Set(models.FieldTo, MsgSameCity)
	}

	today := models.DateOf(v.now())

	var departure models.Date
	departureOK := false
	if form.Departure == "" {
		errs.Set(models.FieldDeparture, MsgDepartureRequired)
	} else if parsed, err := models.ParseDate(strings.TrimSpace(form.Departure)); err != nil {
		errs.Set(models.FieldDeparture, MsgDepartureInvalid)
	} else {
		departure, departureOK = parsed, true
		if parsed.Before(today) {
			errs.Set(models.FieldDeparture, MsgDepartureInPast)
		}
	}

	var returnDate *models.Date
	if form.Return != "" {
		parsed, err := models.ParseDate(strings.TrimSpace(form.Return))
		switch {
		case err != nil:
			errs.Set(models.FieldReturn, MsgReturnInvalid)
		case departureOK && !parsed.After(departure):
			errs.Set(models.FieldReturn, MsgReturnBeforeDeparture)
		default:
			returnDate = &parsed
		}
	}

	if form.Passengers == "" {
		errs.Set(models.FieldPassengers, MsgPassengersRequired)
	}
	if form.Class == "" {
		errs.Set(models.FieldClass, MsgClassRequired)
	}

	if !errs.Valid() {
		return models.SearchQuery{}, errs
	}

	return models.SearchQuery{
		From:          from,
		To:            to,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		Passengers:    form.Passengers,
		Class:         form.Class,
	}, errs
}

// Bounds returns the earliest dates the form should offer. The return date
// may not precede a chosen departure date.
func (v *SearchValidator) Bounds(departure string) models.SearchBounds {
	today := models.DateOf(v.now())
	bounds := models.SearchBounds{
		MinDeparture: today.String(),
		MinReturn:    today.String(),
	}
	if parsed, err := models.ParseDate(strings.TrimSpace(departure)); err == nil && parsed.After(today) {
		bounds.MinReturn = parsed.String()
	}
	return bounds
}

func validateCity(errs models.ValidationResult, field, value, requiredMsg string) {
	switch {
	case value == "":
		errs.Set(field, requiredMsg)
	case utf8.RuneCountInString(value) < MinCityLength:
		errs.Set(field, MsgCityTooShort)
	}
}
