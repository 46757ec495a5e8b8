package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeout(t *testing.T) {
	const fallback = 600 * time.Second

	tests := []struct {
		name string
		raw  string
		want time.Duration
		ok   bool
	}{
		{"empty uses default silently", "", fallback, true},
		{"valid value accepted", "30", 30 * time.Second, true},
		{"non-integer falls back", "abc", fallback, false},
		{"zero falls back", "0", fallback, false},
		{"negative falls back", "-5", fallback, false},
		{"fractional falls back", "2.5", fallback, false},
		{"large value accepted", "3600", time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTimeout(tt.raw, fallback)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
