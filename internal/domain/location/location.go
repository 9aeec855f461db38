package location

import (
	"regexp"
	"strings"

	"foodbridge/internal/pkg/errs"
)

const MaxCityLength = 80

var (
	ErrInvalidPincode = errs.Sentinel(errs.ErrValidation, "pincode must be 6 digits")
	ErrCityTooLong    = errs.Sentinel(errs.ErrValidation, "city exceeds maximum length")
)

var pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)

// Location is where an item can be picked up. Both parts are optional.
type Location struct {
	city    string
	pincode string
}

func NewLocation(city, pincode string) (Location, error) {
	city = strings.TrimSpace(city)
	pincode = strings.TrimSpace(pincode)
	if len(city) > MaxCityLength {
		return Location{}, ErrCityTooLong
	}
	if pincode != "" && !pincodeRegex.MatchString(pincode) {
		return Location{}, ErrInvalidPincode
	}
	return Location{city: city, pincode: pincode}, nil
}

// Reconstruct skips validation for values read back from storage.
func Reconstruct(city, pincode string) Location {
	return Location{city: city, pincode: pincode}
}

func (l Location) City() string    { return l.city }
func (l Location) Pincode() string { return l.pincode }
func (l Location) IsZero() bool    { return l.city == "" && l.pincode == "" }

// Filter narrows listings and demand history to a region. Empty fields match anything.
type Filter struct {
	City    string
	Pincode string
}

func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.City) == "" && strings.TrimSpace(f.Pincode) == ""
}

func (f Filter) Normalize() Filter {
	return Filter{
		City:    strings.ToLower(strings.TrimSpace(f.City)),
		Pincode: strings.TrimSpace(f.Pincode),
	}
}

func (f Filter) Matches(l Location) bool {
	n := f.Normalize()
	if n.City != "" && n.City != strings.ToLower(l.city) {
		return false
	}
	if n.Pincode != "" && n.Pincode != l.pincode {
		return false
	}
	return true
}

// Key is a stable cache key fragment for the filter.
func (f Filter) Key() string {
	n := f.Normalize()
	return n.City + "|" + n.Pincode
}
