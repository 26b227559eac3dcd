package students

import (
	"time"

	"github.com/campusdesk/campusdesk/internal/registry/activities"
	"github.com/campusdesk/campusdesk/internal/registry/grades"
)

// StudentInput is the flat write shape. Related records arrive as bare
// identifiers and are resolved against their collections before anything
// is persisted. Updates use the same shape and replace the record
// wholesale, including the full activity set.
type StudentInput struct {
	FirstName    string  `json:"first_name" validate:"required,max=100"`
	LastName     string  `json:"last_name" validate:"required,max=100"`
	Phone        string  `json:"phone" validate:"required,len=10,numeric"`
	Email        string  `json:"email" validate:"required,email"`
	Address      string  `json:"address" validate:"required,max=200"`
	DateOfBirth  string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	GradeID      int64   `json:"grade_id" validate:"required,gt=0"`
	MembershipID int64   `json:"membership_id" validate:"required,gt=0"`
	ActivityIDs  []int64 `json:"activity_ids" validate:"required,min=1,dive,gt=0"`
}

type membershipView struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	ExpiryDate string `json:"expiry_date"`
}

type StudentResponse struct {
	ID          int64                 `json:"id"`
	FirstName   string                `json:"first_name"`
	LastName    string                `json:"last_name"`
	Phone       string                `json:"phone"`
	Email       string                `json:"email"`
	Address     string                `json:"address"`
	DateOfBirth string                `json:"date_of_birth"`
	Grade       grades.Grade          `json:"grade"`
	Membership  membershipView        `json:"membership"`
	Activities  []activities.Activity `json:"activities"`
}

func toResponse(s Student) StudentResponse {
	acts := s.Activities
	if acts == nil {
		acts = []activities.Activity{}
	}
	return StudentResponse{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		DateOfBirth: s.DateOfBirth.Format(time.DateOnly),
		Grade:       s.Grade,
		Membership: membershipView{
			ID:         s.Membership.ID,
			Type:       s.Membership.Type,
			StartDate:  s.Membership.StartDate.Format(time.DateOnly),
			ExpiryDate: s.Membership.ExpiryDate.Format(time.DateOnly),
		},
		Activities: acts,
	}
}

func toResponseList(list []Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toResponse(s))
	}
	return out
}
