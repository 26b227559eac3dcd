package students

import (
	"time"

	"github.com/campusdesk/campusdesk/internal/registry/activities"
	"github.com/campusdesk/campusdesk/internal/registry/grades"
	"github.com/campusdesk/campusdesk/internal/registry/memberships"
)

// Student is the aggregate root of the registry. The membership is owned
// one-to-one and lives or dies with the student; grade and activities are
// shared references.
type Student struct {
	ID          int64
	FirstName   string
	LastName    string
	Phone       string
	Email       string
	Address     string
	DateOfBirth time.Time

	Grade      grades.Grade
	Membership memberships.Membership
	Activities []activities.Activity
}
