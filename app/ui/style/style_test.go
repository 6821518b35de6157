package style

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	assert.Equal(t, "Unknown date", Date(nil))

	ts := time.Date(2026, 2, 20, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "Feb 20, 2026", Date(&ts))
}

func TestBadge(t *testing.T) {
	assert.Contains(t, Badge(true), "Cached")
	assert.NotContains(t, Badge(true), "Fresh")
	assert.Contains(t, Badge(false), "Fresh")
	assert.NotContains(t, Badge(false), "Cached")
}

func TestButton(t *testing.T) {
	assert.Contains(t, Button("Next", true), "Next")
	assert.Contains(t, Button("Next", false), "Next")
}
