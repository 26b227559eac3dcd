package memberships

import "time"

// Membership type labels as stored. Each label fixes the expiry horizon
// computed at creation time.
const (
	TypeStandard = "Standard"
	TypePremium  = "Premium"
	TypePlatinum = "Platinum"
)

// Membership holds a type label plus the start/expiry dates derived from it
// at creation time. Dates are stored at date granularity (UTC midnight) and
// are immutable after creation. Exactly one student may own a membership.
type Membership struct {
	ID         int64
	Type       string
	StartDate  time.Time
	ExpiryDate time.Time
}

// ExpiredAt reports whether the membership is past its expiry date on the
// given day.
func (m Membership) ExpiredAt(day time.Time) bool {
	return day.After(m.ExpiryDate)
}
