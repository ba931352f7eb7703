package ws

import (
	"calsync-lab/domain"
	"calsync-lab/domain/event"
	"encoding/json"
	"fmt"
)

// Client-to-server message types.
const (
	MsgJoinDepartment  = "join_department"
	MsgLeaveDepartment = "leave_department"
	MsgSyncRequest     = "sync_request"
)

// Envelope is the wire frame in both directions:
// {"type": "...", "payload": {...}}.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// departmentRef is the payload of every client-to-server message.
type departmentRef struct {
	DepartmentID domain.DepartmentID `json:"department_id"`
}

type messagePayload struct {
	Message string `json:"message"`
}

type membershipAck struct {
	DepartmentID domain.DepartmentID `json:"department_id"`
	Message      string              `json:"message"`
}

type departmentDeletedPayload struct {
	ID domain.DepartmentID `json:"id"`
}

type eventDeletedPayload struct {
	ID           string              `json:"id"`
	DepartmentID domain.DepartmentID `json:"department_id"`
}

type syncResponsePayload struct {
	DepartmentID domain.DepartmentID `json:"department_id"`
	Events       []domain.Event      `json:"events"`
}

// Encode turns a domain event into its wire envelope. Full records are
// sent flat (the department/event record is the payload); deletions
// carry identifiers only.
func Encode(e event.DomainEvent) (Envelope, error) {
	var payload any
	switch evt := e.(type) {
	case event.DepartmentCreated:
		payload = evt.Department
	case event.DepartmentDeleted:
		payload = departmentDeletedPayload{ID: evt.ID}
	case event.EventCreated:
		payload = evt.Event
	case event.EventUpdated:
		payload = evt.Event
	case event.EventDeleted:
		payload = eventDeletedPayload{ID: evt.ID, DepartmentID: evt.DepartmentID}
	case event.Connected:
		payload = messagePayload{Message: evt.Message}
	case event.JoinedDepartment:
		payload = membershipAck{DepartmentID: evt.DepartmentID, Message: evt.Message}
	case event.LeftDepartment:
		payload = membershipAck{DepartmentID: evt.DepartmentID, Message: evt.Message}
	case event.SyncResponse:
		payload = syncResponsePayload{DepartmentID: evt.DepartmentID, Events: evt.Events}
	case event.Error:
		payload = messagePayload{Message: evt.Message}
	default:
		return Envelope{}, fmt.Errorf("no wire encoding for event %T", e)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: e.Kind(), Payload: raw}, nil
}
