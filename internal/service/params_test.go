package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 10},
		{"5", 5},
		{" 7 ", 7},
		{"0", 10},
		{"-4", 10},
		{"ten", 10},
		{"2.5", 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLimit(tt.raw, DefaultLimit), "ParseLimit(%q)", tt.raw)
	}
}

func TestParseCoordinate(t *testing.T) {
	v, err := ParseCoordinate("40.7128")
	assert.NoError(t, err)
	assert.Equal(t, 40.7128, v)

	v, err = ParseCoordinate("-74")
	assert.NoError(t, err)
	assert.Equal(t, -74.0, v)

	for _, raw := range []string{"abc", "", "NaN", "+Inf", "12abc"} {
		_, err := ParseCoordinate(raw)
		assert.ErrorIs(t, err, ErrInvalidCoordinates, raw)
	}
}
