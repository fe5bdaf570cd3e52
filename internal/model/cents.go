package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Cents is a money amount in integer cents. Settlement math requires exact
// equality, so amounts are never held as floats once parsed.
type Cents int64

// ErrInvalidAmount is returned when an amount string cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrNegativeAmount is returned when an amount string parses to a negative value.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ParseAmount parses a non-negative decimal string ("150", "12.5", "12.50")
// into cents. At most two fraction digits are accepted.
func ParseAmount(raw string) (Cents, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	if s[0] == '-' {
		return 0, ErrNegativeAmount
	}
	if s[0] == '+' {
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: %q has more than two fraction digits", ErrInvalidAmount, raw)
	}

	var cents int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
		if cents > (math.MaxInt64-int64(r-'0'))/10 {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, raw)
		}
		cents = cents*10 + int64(r-'0')
	}
	if cents > math.MaxInt64/100 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, raw)
	}
	cents *= 100

	scale := int64(10)
	for _, r := range frac {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
		cents += int64(r-'0') * scale
		scale /= 10
	}

	return Cents(cents), nil
}

// CentsFromFloat converts a float amount (as received on the wire) to cents,
// rounding to the nearest cent.
func CentsFromFloat(f float64) Cents {
	return Cents(math.Round(f * 100))
}

// Float returns the amount as a float64 for wire encoding.
func (c Cents) Float() float64 {
	return float64(c) / 100
}

// String formats the amount with fixed two decimals ("1234.50").
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
