package domain

import "time"

// DepartmentID is the opaque identifier of a department. It doubles as
// the name of the broadcast group scoped to that department.
type DepartmentID string

func (id DepartmentID) String() string { return string(id) }

// Department is global reference data: every connected client keeps the
// full department list, so department changes are broadcast to everyone.
type Department struct {
	ID          DepartmentID `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
