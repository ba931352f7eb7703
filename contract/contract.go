//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"calsync-lab/domain"
	"calsync-lab/domain/event"
	"context"
	"reflect"
)

// EventSink is the delivery end of one client connection. Consume must
// never block the caller: implementations buffer and drop.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry tracks live connections and their department group
// memberships. All methods are safe for concurrent use.
type IRegistry interface {
	Register(connectionID string, sink EventSink)
	Unregister(connectionID string)
	Join(connectionID string, departmentID domain.DepartmentID)
	Leave(connectionID string, departmentID domain.DepartmentID)
	SinksForDepartment(departmentID domain.DepartmentID) []EventSink
	AllSinks() []EventSink
}

// IBroadcaster fans out entity-change notifications. The two methods
// are the two delivery policies: department-scope changes go to every
// connection, event-scope changes only to the department's group.
type IBroadcaster interface {
	BroadcastAll(ctx context.Context, e event.DomainEvent)
	BroadcastGroup(ctx context.Context, departmentID domain.DepartmentID, e event.DomainEvent)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker
// interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
