//go:build unit

package location_test

import (
	"strings"
	"testing"

	"foodbridge/internal/domain/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	loc, err := location.NewLocation(" Pune ", "411001")
	require.NoError(t, err)
	assert.Equal(t, "Pune", loc.City())
	assert.False(t, loc.IsZero())

	_, err = location.NewLocation("Pune", "4110")
	assert.ErrorIs(t, err, location.ErrInvalidPincode)

	_, err = location.NewLocation(strings.Repeat("c", location.MaxCityLength+1), "")
	assert.ErrorIs(t, err, location.ErrCityTooLong)

	empty, err := location.NewLocation("", "")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestFilter_Matches(t *testing.T) {
	pune := location.Reconstruct("Pune", "411001")

	testCases := []struct {
		name   string
		filter location.Filter
		want   bool
	}{
		{name: "empty filter matches everything", filter: location.Filter{}, want: true},
		{name: "city is case insensitive", filter: location.Filter{City: " PUNE "}, want: true},
		{name: "pincode exact", filter: location.Filter{Pincode: "411001"}, want: true},
		{name: "both must match", filter: location.Filter{City: "Pune", Pincode: "411002"}, want: false},
		{name: "other city", filter: location.Filter{City: "Mumbai"}, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(pune))
		})
	}
}

func TestFilter_Key(t *testing.T) {
	a := location.Filter{City: "Pune ", Pincode: "411001"}
	b := location.Filter{City: "pune", Pincode: " 411001"}
	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, location.Filter{City: "  "}.IsEmpty())
}
