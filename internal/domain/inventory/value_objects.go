package inventory

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MaxNameLength    = 120
	QuantityDecimals = 2
)

// Quantity is a strictly positive amount with at most two fractional digits.
type Quantity struct {
	value decimal.Decimal
}

func NewQuantity(d decimal.Decimal) (Quantity, error) {
	if !d.IsPositive() {
		return Quantity{}, ErrInvalidQuantity
	}
	if !d.Equal(d.Round(QuantityDecimals)) {
		return Quantity{}, ErrQuantityPrecision
	}
	return Quantity{value: d}, nil
}

func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quantity{}, ErrInvalidQuantity
	}
	return NewQuantity(d)
}

// ReconstructQuantity skips validation for amounts read back from storage.
func ReconstructQuantity(d decimal.Decimal) Quantity {
	return Quantity{value: d}
}

func (q Quantity) Decimal() decimal.Decimal { return q.value }
func (q Quantity) String() string           { return q.value.String() }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }
