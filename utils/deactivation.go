// utils/deactivation.go
package utils

import (
	"os"
	"strconv"
	"time"
)

// DefaultDeactivationThresholdMinutes is the cutoff for flagging
// accounts that have not been seen since their last logout. Kept low
// for testing; override with DEACTIVATION_THRESHOLD_MINUTES.
const DefaultDeactivationThresholdMinutes = 1

// DeactivationThresholdMinutes returns the configured threshold.
func DeactivationThresholdMinutes() int {
	if v := os.Getenv("DEACTIVATION_THRESHOLD_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return minutes
		}
	}
	return DefaultDeactivationThresholdMinutes
}

// NeedsDeactivation reports whether an account should be flagged for
// manual review: strictly more than thresholdMinutes have passed since
// its last logout. A zero lastLogin (never logged out, or legacy
// document without the field) is never flagged. Advisory only; nothing
// auto-deactivates.
func NeedsDeactivation(lastLogin time.Time, thresholdMinutes int) bool {
	return NeedsDeactivationAt(lastLogin, thresholdMinutes, time.Now())
}

// NeedsDeactivationAt is NeedsDeactivation against an explicit clock.
func NeedsDeactivationAt(lastLogin time.Time, thresholdMinutes int, now time.Time) bool {
	if lastLogin.IsZero() {
		return false
	}
	return now.Sub(lastLogin) > time.Duration(thresholdMinutes)*time.Minute
}
