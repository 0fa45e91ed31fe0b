package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "a@b.co", valid: true},
		{email: "jane.doe@mail.example.com", valid: true},
		{email: "UPPER@CASE.IO", valid: true},
		{email: "a@b", valid: false},
		{email: "a b@c.com", valid: false},
		{email: "", valid: false},
		{email: "@b.co", valid: false},
		{email: "a@.co", valid: false},
		{email: "a@b.", valid: false},
		{email: "a@@b.co", valid: false},
		{email: "a@b.co ", valid: false},
		{email: "a@b c.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}
