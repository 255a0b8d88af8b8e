package decode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixDateRejectsDayInvalidForItsOwnMonth(t *testing.T) {
	now := time.Date(2024, time.April, 30, 12, 0, 0, 0, time.UTC)

	_, ok := fixDate(now, 31, 0, 0)

	assert.False(t, ok, "April has no 31st; time.Date's silent rollover to May must not validate it")
}

func TestFixDateAcceptsPlainDayWithinSameMonth(t *testing.T) {
	now := time.Date(2024, time.April, 20, 12, 0, 0, 0, time.UTC)

	got, ok := fixDate(now, 15, 6, 30)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.April, 15, 6, 30, 0, 0, time.UTC), got)
}

func TestFixDateRollsBackToPriorMonthNearBoundary(t *testing.T) {
	now := time.Date(2024, time.May, 1, 6, 0, 0, 0, time.UTC)

	got, ok := fixDate(now, 30, 23, 0)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.April, 30, 23, 0, 0, 0, time.UTC), got)
}
