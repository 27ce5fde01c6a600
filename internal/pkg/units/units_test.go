package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		expected string
	}{
		{"just below feet threshold", 45.71, "149.97 ft"},
		{"feet threshold is meters", 45.72, "45.72 meters"},
		{"just below miles threshold", 999.99, "999.99 meters"},
		{"miles threshold", 1000, "0.62 miles"},
		{"zero", 0, "0 ft"},
		{"whole meters", 100, "100 meters"},
		{"several miles", 5000, "3.11 miles"},
		{"half-up rounding", 100.005, "100.01 meters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDistance(tt.meters))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0 secs"},
		{45, "45 secs"},
		{60, "1 mins"},
		{90, "1 mins 30 secs"},
		{125.4, "2 mins 5 secs"},
		{125.5, "2 mins 6 secs"},
		{119.6, "2 mins"},
		{3600, "60 mins"},
		{-5, "0 secs"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDuration(tt.seconds), "seconds=%v", tt.seconds)
	}
}
