package omdb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRuntime(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"120 min", 120, false},
		{" 95 min ", 95, false},
		{"90", 90, false},
		{"2 h 15 min", 135, false},
		{"1h", 60, false},
		{"N/A", 0, true},
		{"", 0, true},
		{"min", 0, true},
		{"about two hours", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRuntime(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrMalformedRuntime))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseRating(t *testing.T) {
	v, ok := ParseRating("7.5")
	assert.True(t, ok)
	assert.InDelta(t, 7.5, v, 1e-9)

	for _, in := range []string{"N/A", "", "abc", "-1"} {
		v, ok := ParseRating(in)
		assert.False(t, ok, in)
		assert.Zero(t, v, in)
	}
}
