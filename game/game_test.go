package game

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsValidate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		wantErr bool
		errMsg  string
	}{
		{"ordinary range", Bounds{Min: 0, Max: 10}, false, ""},
		{"degenerate range", Bounds{Min: 5, Max: 5}, false, ""},
		{"negative prices", Bounds{Min: -3, Max: -1}, false, ""},
		{"reversed", Bounds{Min: 10, Max: 0}, true, "pmin greater than pmax"},
		{"nan min", Bounds{Min: math.NaN(), Max: 1}, true, "bounds must be finite"},
		{"inf max", Bounds{Min: 0, Max: math.Inf(1)}, true, "bounds must be finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidBounds)
			assert.Contains(t, err.Error(), tt.errMsg)

			var be *BoundsError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tt.bounds.Max, be.Max)
		})
	}
}

func TestBoundsHelpers(t *testing.T) {
	b := Bounds{Min: 2, Max: 6}
	assert.True(t, b.Contains(2))
	assert.True(t, b.Contains(6))
	assert.False(t, b.Contains(6.0001))
	assert.Equal(t, 4.0, b.Width())
	assert.Equal(t, 4.0, b.Mid())
}

func TestClip(t *testing.T) {
	assert.Equal(t, 0.0, Clip(-1, 0, 10))
	assert.Equal(t, 10.0, Clip(11, 0, 10))
	assert.Equal(t, 3.5, Clip(3.5, 0, 10))
	assert.Equal(t, 5.0, Clip(4, 5, 5))
	assert.True(t, math.IsNaN(Clip(math.NaN(), 0, 10)))
}

func TestCheckPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  error
	}{
		{"lower edge", 0, nil},
		{"upper edge", 10, nil},
		{"inside", 4.2, nil},
		{"below", -0.1, ErrPriceOutOfBounds},
		{"above", 10.1, ErrPriceOutOfBounds},
		{"nan", math.NaN(), ErrPriceNotFinite},
		{"inf", math.Inf(-1), ErrPriceNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPrice(tt.price, 0, 10)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)

			var pe *PriceError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, 0.0, pe.Min)
			assert.Equal(t, 10.0, pe.Max)
			assert.Contains(t, err.Error(), "must be between 0 and 10")
		})
	}
}
