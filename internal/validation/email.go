// Package validation checks raw form input before any account or flight
// operation runs. Validators report every failing field at once.
package validation

import "regexp"

// emailSegment is one or more characters that are neither '@' nor whitespace.
const emailSegment = `[^@\s\v\p{Z}\x{FEFF}]+`

var emailRegex = regexp.MustCompile(`^` + emailSegment + `@` + emailSegment + `\.` + emailSegment + `$`)

// IsValidEmail reports whether s has the shape local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}
