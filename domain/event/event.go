package event

import "calsync-lab/domain"

// DomainEvent is one realtime message pushed to connected clients.
// Kind is the wire-level message type of the websocket envelope.
type DomainEvent interface {
	Kind() string
}

// DepartmentCreated and DepartmentDeleted are global: the department
// list is reference data every client mirrors.
type DepartmentCreated struct {
	Department domain.Department
}

func (DepartmentCreated) Kind() string { return "department_created" }

type DepartmentDeleted struct {
	ID domain.DepartmentID
}

func (DepartmentDeleted) Kind() string { return "department_deleted" }

// EventCreated, EventUpdated and EventDeleted are scoped to the
// department group of the calendar event they describe.
type EventCreated struct {
	Event domain.Event
}

func (EventCreated) Kind() string { return "event_created" }

type EventUpdated struct {
	Event domain.Event
}

func (EventUpdated) Kind() string { return "event_updated" }

// EventDeleted carries only identifiers: the full record is already
// present client-side.
type EventDeleted struct {
	ID           string
	DepartmentID domain.DepartmentID
}

func (EventDeleted) Kind() string { return "event_deleted" }

// Connected is sent once to a connection right after establishment.
type Connected struct {
	Message string
}

func (Connected) Kind() string { return "connected" }

// JoinedDepartment and LeftDepartment acknowledge a membership change
// to the originating connection only.
type JoinedDepartment struct {
	DepartmentID domain.DepartmentID
	Message      string
}

func (JoinedDepartment) Kind() string { return "joined_department" }

type LeftDepartment struct {
	DepartmentID domain.DepartmentID
	Message      string
}

func (LeftDepartment) Kind() string { return "left_department" }

// SyncResponse is the point-in-time snapshot answering a sync_request.
// It goes to the requesting connection only and does not imply
// membership.
type SyncResponse struct {
	DepartmentID domain.DepartmentID
	Events       []domain.Event
}

func (SyncResponse) Kind() string { return "sync_response" }

// Error reports a rejected client message back to its sender.
type Error struct {
	Message string
}

func (Error) Kind() string { return "error" }
