package memberships

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk/internal/shared"
)

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestScheduleHorizons(t *testing.T) {
	cases := []struct {
		label     string
		canonical string
		created   string
		expiry    string
	}{
		{"standard", TypeStandard, "2024-03-15", "2024-06-15"},
		{"premium", TypePremium, "2024-03-15", "2024-09-15"},
		{"platinum", TypePlatinum, "2024-03-15", "2025-03-15"},
		// Case-insensitive labels resolve to the canonical form.
		{"PLATINUM", TypePlatinum, "2024-03-15", "2025-03-15"},
		{"  Standard  ", TypeStandard, "2024-03-15", "2024-06-15"},
	}
	for _, tc := range cases {
		canonical, start, expiry, err := Schedule(tc.label, day(tc.created))
		require.NoError(t, err, tc.label)
		assert.Equal(t, tc.canonical, canonical)
		assert.Equal(t, day(tc.created), start)
		assert.Equal(t, day(tc.expiry), expiry, "label %s created %s", tc.label, tc.created)
	}
}

func TestScheduleClampsToMonthEnd(t *testing.T) {
	// Jan 31 + 3 calendar months must land on Apr 30, not May 1.
	_, _, expiry, err := Schedule("standard", day("2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, day("2024-04-30"), expiry)

	// Nov 30 + 3 months crosses into a leap February.
	_, _, expiry, err = Schedule("standard", day("2023-11-30"))
	require.NoError(t, err)
	assert.Equal(t, day("2024-02-29"), expiry)

	// Same calculation in a non-leap year clamps to Feb 28.
	_, _, expiry, err = Schedule("standard", day("2022-11-30"))
	require.NoError(t, err)
	assert.Equal(t, day("2023-02-28"), expiry)
}

func TestScheduleDiscardsTimeOfDay(t *testing.T) {
	created := time.Date(2024, time.March, 15, 23, 45, 12, 0, time.UTC)
	_, start, expiry, err := Schedule("premium", created)
	require.NoError(t, err)
	assert.Equal(t, day("2024-03-15"), start)
	assert.Equal(t, day("2024-09-15"), expiry)
}

func TestScheduleRejectsUnknownType(t *testing.T) {
	_, _, _, err := Schedule("gold", day("2024-03-15"))
	assert.ErrorIs(t, err, shared.ErrInvalidMembershipType)
}
