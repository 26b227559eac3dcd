package guard

import "github.com/campusdesk/campusdesk/internal/shared"

// Operation names for the role-requirement table. Every protected endpoint
// declares itself through one of these.
const (
	OpStudentsList     = "students.list"
	OpStudentsGet      = "students.get"
	OpStudentsRegister = "students.register"
	OpStudentsUpdate   = "students.update"
	OpStudentsDelete   = "students.delete"

	OpActivitiesList   = "activities.list"
	OpActivitiesCreate = "activities.create"
	OpActivitiesUpdate = "activities.update"
	OpActivitiesDelete = "activities.delete"

	OpMembershipsList   = "memberships.list"
	OpMembershipsGet    = "memberships.get"
	OpMembershipsCreate = "memberships.create"
	OpMembershipsUpdate = "memberships.update"
	OpMembershipsDelete = "memberships.delete"

	OpGradesList   = "grades.list"
	OpGradesGet    = "grades.get"
	OpGradesCreate = "grades.create"
	OpGradesUpdate = "grades.update"
	OpGradesDelete = "grades.delete"
)

// operationRoles maps each operation to the role set that may invoke it.
// Student record access is open to any authenticated role; mutations of the
// collaborator collections are administrative.
var operationRoles = map[string][]string{
	OpStudentsList:     {shared.RoleAdmin, shared.RoleUser},
	OpStudentsGet:      {shared.RoleAdmin, shared.RoleUser},
	OpStudentsRegister: {shared.RoleAdmin, shared.RoleUser},
	OpStudentsUpdate:   {shared.RoleAdmin, shared.RoleUser},
	OpStudentsDelete:   {shared.RoleAdmin, shared.RoleUser},

	OpActivitiesList:   {shared.RoleAdmin},
	OpActivitiesCreate: {shared.RoleAdmin},
	OpActivitiesUpdate: {shared.RoleAdmin},
	OpActivitiesDelete: {shared.RoleAdmin},

	OpMembershipsList:   {shared.RoleAdmin},
	OpMembershipsGet:    {shared.RoleAdmin},
	OpMembershipsCreate: {shared.RoleAdmin},
	OpMembershipsUpdate: {shared.RoleAdmin},
	OpMembershipsDelete: {shared.RoleAdmin},

	OpGradesList:   {shared.RoleAdmin, shared.RoleUser},
	OpGradesGet:    {shared.RoleAdmin, shared.RoleUser},
	OpGradesCreate: {shared.RoleAdmin},
	OpGradesUpdate: {shared.RoleAdmin},
	OpGradesDelete: {shared.RoleAdmin},
}

// RolesFor returns the required role set for an operation. Unknown
// operations resolve to an empty set, which the guard rejects outright.
func RolesFor(operation string) []string {
	return operationRoles[operation]
}
