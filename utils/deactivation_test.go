package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNeedsDeactivationAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		lastLogin        time.Time
		thresholdMinutes int
		want             bool
	}{
		{
			name:             "never logged out is not flagged",
			lastLogin:        time.Time{},
			thresholdMinutes: 1,
			want:             false,
		},
		{
			name:             "exactly at threshold is not flagged",
			lastLogin:        now.Add(-1 * time.Minute),
			thresholdMinutes: 1,
			want:             false,
		},
		{
			name:             "just past threshold is flagged",
			lastLogin:        now.Add(-1*time.Minute - time.Second),
			thresholdMinutes: 1,
			want:             true,
		},
		{
			name:             "recent logout is not flagged",
			lastLogin:        now.Add(-30 * time.Second),
			thresholdMinutes: 1,
			want:             false,
		},
		{
			name:             "larger threshold",
			lastLogin:        now.Add(-90 * time.Minute),
			thresholdMinutes: 60,
			want:             true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeedsDeactivationAt(tt.lastLogin, tt.thresholdMinutes, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeactivationThresholdMinutes(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("DEACTIVATION_THRESHOLD_MINUTES", "")
		assert.Equal(t, DefaultDeactivationThresholdMinutes, DeactivationThresholdMinutes())
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("DEACTIVATION_THRESHOLD_MINUTES", "43200")
		assert.Equal(t, 43200, DeactivationThresholdMinutes())
	})

	t.Run("garbage falls back to default", func(t *testing.T) {
		t.Setenv("DEACTIVATION_THRESHOLD_MINUTES", "soon")
		assert.Equal(t, DefaultDeactivationThresholdMinutes, DeactivationThresholdMinutes())
	})

	t.Run("non-positive falls back to default", func(t *testing.T) {
		t.Setenv("DEACTIVATION_THRESHOLD_MINUTES", "-5")
		assert.Equal(t, DefaultDeactivationThresholdMinutes, DeactivationThresholdMinutes())
	})
}
