package filters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestIsStillOpenAt_AllLayouts(t *testing.T) {
	// One day in the future in each supported layout.
	future := []string{
		"2026-03-16",
		"16-03-2026",
		"16/03/2026",
		"2026/03/16",
		"16-Mar-2026",
		"16 Mar 2026",
		"2026.03.16",
	}
	for _, s := range future {
		assert.True(t, IsStillOpenAt(s, testNow), "expected open for %q", s)
	}

	// One day in the past in each supported layout.
	past := []string{
		"2026-03-14",
		"14-03-2026",
		"14/03/2026",
		"2026/03/14",
		"14-Mar-2026",
		"14 Mar 2026",
		"2026.03.14",
	}
	for _, s := range past {
		assert.False(t, IsStillOpenAt(s, testNow), "expected closed for %q", s)
	}
}

func TestIsStillOpenAt_TodayIsOpen(t *testing.T) {
	assert.True(t, IsStillOpenAt("2026-03-15", testNow))
}

func TestIsStillOpenAt_DigitRunFallback(t *testing.T) {
	assert.True(t, IsStillOpenAt("deadline 20260316 apply now", testNow))
	assert.False(t, IsStillOpenAt("20250110", testNow))
}

func TestIsStillOpenAt_UnknownCollapsesToClosed(t *testing.T) {
	closed := []string{
		"",
		"   ",
		"rolling basis",
		"ASAP",
		"2026-13-40",
		"2026-02-30", // not a calendar date
	}
	for _, s := range closed {
		assert.False(t, IsStillOpenAt(s, testNow), "expected closed for %q", s)
	}
}
