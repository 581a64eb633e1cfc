package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is wrapped by every validation error in this package.
var ErrInvalidInput = errors.New("invalid input")

// ErrLocationEmpty is returned when location is empty or whitespace-only after trim.
var ErrLocationEmpty = fmt.Errorf("%w: city name is required", ErrInvalidInput)

// ValidateLocation trims the input and rejects an empty city. Any other text is
// passed through; the provider decides whether it names a place.
func ValidateLocation(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrLocationEmpty
	}
	return s, nil
}

// NormalizeCountryCode trims the input. An empty code is allowed and sent as is.
func NormalizeCountryCode(input string) string {
	return strings.TrimSpace(input)
}
