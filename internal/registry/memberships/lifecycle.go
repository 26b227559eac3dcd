package memberships

import (
	"fmt"
	"strings"
	"time"

	"github.com/campusdesk/campusdesk/internal/shared"
)

// expiryMonths maps a normalized type label to its validity horizon.
var expiryMonths = map[string]int{
	TypeStandard: 3,
	TypePremium:  6,
	TypePlatinum: 12,
}

var canonicalTypes = map[string]string{
	"standard": TypeStandard,
	"premium":  TypePremium,
	"platinum": TypePlatinum,
}

// CanonicalType resolves a case-insensitive type label to its stored form.
func CanonicalType(label string) (string, error) {
	canonical, ok := canonicalTypes[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return "", fmt.Errorf("%w: %q", shared.ErrInvalidMembershipType, label)
	}
	return canonical, nil
}

// Schedule derives the start and expiry dates for a membership type created
// on the given day. Start is the day itself at date granularity; expiry is
// start plus the type's horizon in calendar months.
func Schedule(label string, createdAt time.Time) (string, time.Time, time.Time, error) {
	canonical, err := CanonicalType(label)
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	start := truncateToDate(createdAt)
	expiry := addCalendarMonths(start, expiryMonths[canonical])
	return canonical, start, expiry, nil
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// addCalendarMonths advances by whole calendar months, clamping to the last
// day of the target month. Jan 31 + 3 months lands on Apr 30, not May 1.
func addCalendarMonths(date time.Time, months int) time.Time {
	firstOfTarget := time.Date(date.Year(), date.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := date.Day()
	if lastDay := firstOfTarget.AddDate(0, 1, -1).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}
