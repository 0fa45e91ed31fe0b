package validation

import (
	"testing"
	"time"

	"github.com/cx-tal-miterani/skybook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2030, time.June, 15, 18, 45, 0, 0, time.Local)
	}
}

func validSearchForm() models.SearchForm {
	return models.SearchForm{
		From:       "New York",
		To:         "London",
		Departure:  "2030-07-01",
		Passengers: "1",
		Class:      "economy",
	}
}

func TestSearchValidator_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(f *models.SearchForm)
		expected models.ValidationResult
	}{
		{
			name:     "valid form",
			mutate:   func(f *models.SearchForm) {},
			expected: models.ValidationResult{},
		},
		{
			name:     "missing origin",
			mutate:   func(f *models.SearchForm) { f.From = ""; f.To = "Paris" },
			expected: models.ValidationResult{models.FieldFrom: MsgFromRequired},
		},
		{
			name:     "whitespace origin counts as missing",
			mutate:   func(f *models.SearchForm) { f.From = "   " },
			expected: models.ValidationResult{models.FieldFrom: MsgFromRequired},
		},
		{
			name:     "short origin",
			mutate:   func(f *models.SearchForm) { f.From = " N " },
			expected: models.ValidationResult{models.FieldFrom: MsgCityTooShort},
		},
		{
			name:     "missing destination",
			mutate:   func(f *models.SearchForm) { f.To = "" },
			expected: models.ValidationResult{models.FieldTo: MsgToRequired},
		},
		{
			name:     "same city ignoring case and spaces",
			mutate:   func(f *models.SearchForm) { f.From = "Paris"; f.To = " paris " },
			expected: models.ValidationResult{models.FieldTo: MsgSameCity},
		},
		{
			name:   "same city overrides length error",
			mutate: func(f *models.SearchForm) { f.From = "X"; f.To = "x" },
			expected: models.ValidationResult{
				models.FieldFrom: MsgCityTooShort,
				models.FieldTo:   MsgSameCity,
			},
		},
		{
			name:   "both cities empty",
			mutate: func(f *models.SearchForm) { f.From = ""; f.To = "" },
			expected: models.ValidationResult{
				models.FieldFrom: MsgFromRequired,
				models.FieldTo:   MsgSameCity,
			},
		},
		{
			name:     "missing departure",
			mutate:   func(f *models.SearchForm) { f.Departure = "" },
			expected: models.ValidationResult{models.FieldDeparture: MsgDepartureRequired},
		},
		{
			name:     "unparseable departure",
			mutate:   func(f *models.SearchForm) { f.Departure = "next tuesday" },
			expected: models.ValidationResult{models.FieldDeparture: MsgDepartureInvalid},
		},
		{
			name:     "departure in the past",
			mutate:   func(f *models.SearchForm) { f.Departure = "2030-06-14" },
			expected: models.ValidationResult{models.FieldDeparture: MsgDepartureInPast},
		},
		{
			name:     "departure today is allowed",
			mutate:   func(f *models.SearchForm) { f.Departure = "2030-06-15" },
			expected: models.ValidationResult{},
		},
		{
			name:     "return after departure",
			mutate:   func(f *models.SearchForm) { f.Return = "2030-07-02" },
			expected: models.ValidationResult{},
		},
		{
			name:     "return on departure day",
			mutate:   func(f *models.SearchForm) { f.Return = "2030-07-01" },
			expected: models.ValidationResult{models.FieldReturn: MsgReturnBeforeDeparture},
		},
		{
			name:     "return before departure",
			mutate:   func(f *models.SearchForm) { f.Return = "2030-06-20" },
			expected: models.ValidationResult{models.FieldReturn: MsgReturnBeforeDeparture},
		},
		{
			name:     "unparseable return",
			mutate:   func(f *models.SearchForm) { f.Return = "2030-13-01" },
			expected: models.ValidationResult{models.FieldReturn: MsgReturnInvalid},
		},
		{
			name:     "return is not compared without departure",
			mutate:   func(f *models.SearchForm) { f.Departure = ""; f.Return = "2030-06-20" },
			expected: models.ValidationResult{models.FieldDeparture: MsgDepartureRequired},
		},
		{
			name:     "missing passengers",
			mutate:   func(f *models.SearchForm) { f.Passengers = "" },
			expected: models.ValidationResult{models.FieldPassengers: MsgPassengersRequired},
		},
		{
			name:     "missing class",
			mutate:   func(f *models.SearchForm) { f.Class = "" },
			expected: models.ValidationResult{models.FieldClass: MsgClassRequired},
		},
	}

	v := NewSearchValidator(fixedClock())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validSearchForm()
			tt.mutate(&form)
			assert.Equal(t, tt.expected, v.Validate(form))
		})
	}
}

func TestSearchValidator_FarFutureExamples(t *testing.T) {
	v := NewSearchValidator(nil)

	result := v.Validate(models.SearchForm{From: "", To: "Paris", Departure: "2099-01-01", Passengers: "1", Class: "economy"})
	assert.Equal(t, models.ValidationResult{models.FieldFrom: MsgFromRequired}, result)

	result = v.Validate(models.SearchForm{From: "Paris", To: "paris", Departure: "2099-01-01", Passengers: "1", Class: "economy"})
	assert.Equal(t, models.ValidationResult{models.FieldTo: MsgSameCity}, result)
}

func TestSearchValidator_Query(t *testing.T) {
	v := NewSearchValidator(fixedClock())

	form := validSearchForm()
	form.From = "  new york "
	form.Return = "2030-07-10"

	query, errs := v.Query(form)
	require.True(t, errs.Valid())
	assert.Equal(t, "new york", query.From)
	assert.Equal(t, "London", query.To)
	assert.Equal(t, "2030-07-01", query.DepartureDate.String())
	require.NotNil(t, query.ReturnDate)
	assert.Equal(t, "2030-07-10", query.ReturnDate.String())
	assert.Equal(t, "1", query.Passengers)
	assert.Equal(t, "economy", query.Class)

	form.Class = ""
	query, errs = v.Query(form)
	assert.False(t, errs.Valid())
	assert.Equal(t, models.SearchQuery{}, query)
}

func TestSearchValidator_Bounds(t *testing.T) {
	v := NewSearchValidator(fixedClock())

	assert.Equal(t, models.SearchBounds{MinDeparture: "2030-06-15", MinReturn: "2030-06-15"}, v.Bounds(""))
	assert.Equal(t, models.SearchBounds{MinDeparture: "2030-06-15", MinReturn: "2030-07-01"}, v.Bounds("2030-07-01"))
	assert.Equal(t, models.SearchBounds{MinDeparture: "2030-06-15", MinReturn: "2030-06-15"}, v.Bounds("2020-01-01"))
	assert.Equal(t, models.SearchBounds{MinDeparture: "2030-06-15", MinReturn: "2030-06-15"}, v.Bounds("garbage"))
}
