package domain

import "time"

// Student is a tenant's pre-provisioned student record. Students often exist
// before anyone holds an account for them: the record is created when the
// tenant enrolls the student, and ProfileID / ParentProfileID are attached
// later as accounts are provisioned.
type Student struct {
	ID              string
	TenantID        string
	FullName        string
	ProfileID       string // set when the student's own account is created
	ParentProfileID string // set when a parent account links to this student
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
