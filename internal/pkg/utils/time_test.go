package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"10:00", "10:00:00", true},
		{" 09:30 ", "09:30:00", true},
		{"14:05:09", "14:05:09", true},
		{"9:30", "09:30:00", true},
		{"10h30", "", false},
		{"24:00", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeClock(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestNormalizeDate(t *testing.T) {
	got, ok := NormalizeDate("15/03/1990")
	assert.True(t, ok)
	assert.Equal(t, "1990-03-15", got)

	got, ok = NormalizeDate("1990-03-15")
	assert.True(t, ok)
	assert.Equal(t, "1990-03-15", got)

	_, ok = NormalizeDate("31/02/1990")
	assert.False(t, ok)
}
