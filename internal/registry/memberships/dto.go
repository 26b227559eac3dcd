package memberships

import "time"

type CreateMembershipRequest struct {
	Type string `json:"type" validate:"required"`
}

// UpdateMembershipRequest changes the type label only; the originally
// computed dates are preserved.
type UpdateMembershipRequest struct {
	Type string `json:"type" validate:"required"`
}

type MembershipResponse struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	ExpiryDate string `json:"expiry_date"`
}

func toResponse(m Membership) MembershipResponse {
	return MembershipResponse{
		ID:         m.ID,
		Type:       m.Type,
		StartDate:  m.StartDate.Format(time.DateOnly),
		ExpiryDate: m.ExpiryDate.Format(time.DateOnly),
	}
}

func toResponseList(list []Membership) []MembershipResponse {
	out := make([]MembershipResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toResponse(m))
	}
	return out
}
