package models

// Form field names used as ValidationResult keys
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldConfirm    = "confirm"
	FieldFrom       = "from"
	FieldTo         = "to"
	FieldDeparture  = "departure"
	FieldReturn     = "return"
	FieldPassengers = "passengers"
	FieldClass      = "class"
	FieldFlightID   = "flightId"
)

// ValidationResult maps a form field to its error message. An empty result
// means every field passed.
type ValidationResult map[string]string

// Set records msg for field, replacing any earlier message.
func (v ValidationResult) Set(field, msg string) {
	v[field] = msg
}

// Valid reports whether no field failed.
func (v ValidationResult) Valid() bool {
	return len(v) == 0
}

// ValidationErrorResponse is the 4xx body carrying per-field messages
type ValidationErrorResponse struct {
	Errors ValidationResult `json:"errors"`
}

// ErrorResponse is the generic error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}
