package ws

import (
	"calsync-lab/domain"
	"calsync-lab/domain/event"
	"calsync-lab/errors"
	"calsync-lab/mocks"
	"calsync-lab/observability"
	"calsync-lab/runtime"
	"calsync-lab/sink"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	handler  *Handler
	registry *runtime.Registry
	events   *mocks.MockIEventService
}

func newHandlerFixture(t *testing.T) handlerFixture {
	ctrl := gomock.NewController(t)
	log := slog.Default()
	registry := runtime.NewRegistry()
	events := mocks.NewMockIEventService(ctrl)
	handler := NewHandler(log, registry, events, observability.NewMonitor(log), 8)
	return handlerFixture{handler: handler, registry: registry, events: events}
}

func drain(t *testing.T, connSink *sink.ConnSink) event.DomainEvent {
	t.Helper()
	select {
	case e := <-connSink.Events:
		return e
	default:
		t.Fatal("expected a reply in the sink")
		return nil
	}
}

func TestDispatch_Join_Acks_And_Subscribes(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	ctx := context.Background()
	connectionID := uuid.NewString()
	connSink := sink.NewConnSink(8)
	f.registry.Register(connectionID, connSink)

	// When the client joins a department
	f.handler.dispatch(ctx, connectionID, connSink, []byte(`{"type":"join_department","payload":{"department_id":"cardiology"}}`))

	// Then the ack arrives on this connection only
	reply := drain(t, connSink)
	req.Equal(event.JoinedDepartment{
		DepartmentID: "cardiology",
		Message:      "joined department group",
	}, reply)

	// And the connection now receives group broadcasts
	req.Len(f.registry.SinksForDepartment("cardiology"), 1)
}

func TestDispatch_Join_Without_DepartmentID_Is_An_Error(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	ctx := context.Background()
	connectionID := uuid.NewString()
	connSink := sink.NewConnSink(8)
	f.registry.Register(connectionID, connSink)

	// When the payload has no department_id
	f.handler.dispatch(ctx, connectionID, connSink, []byte(`{"type":"join_department","payload":{}}`))

	// Then the client gets an explicit error, not silence
	reply := drain(t, connSink)
	req.Equal(event.Error{Message: "department_id is required"}, reply)
	req.Nil(f.registry.SinksForDepartment(""))
}

func TestDispatch_Leave_Acks_And_Unsubscribes(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	ctx := context.Background()
	connectionID := uuid.NewString()
	connSink := sink.NewConnSink(8)
	f.registry.Register(connectionID, connSink)
	f.registry.Join(connectionID, "cardiology")

	// When the client leaves
	f.handler.dispatch(ctx, connectionID, connSink, []byte(`{"type":"leave_department","payload":{"department_id":"cardiology"}}`))

	reply := drain(t, connSink)
	req.Equal(event.LeftDepartment{
		DepartmentID: "cardiology",
		Message:      "left department group",
	}, reply)
	req.Nil(f.registry.SinksForDepartment("cardiology"))
}

func TestDispatch_SyncRequest_Returns_The_Full_Snapshot(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	ctx := context.Background()
	connectionID := uuid.NewString()
	connSink := sink.NewConnSink(8)
	f.registry.Register(connectionID, connSink)

	events := []domain.Event{
		{ID: "evt-1", DepartmentID: "cardiology", EventDate: "2026-09-01"},
		{ID: "evt-2", DepartmentID: "cardiology", EventDate: "2026-09-02"},
	}
	f.events.EXPECT().GetByDepartment(ctx, domain.DepartmentID("cardiology")).Return(events, nil)

	// When the client asks for a resync
	f.handler.dispatch(ctx, connectionID, connSink, []byte(`{"type":"sync_request","payload":{"department_id":"cardiology"}}`))

	reply := drain(t, connSink)
	req.Equal(event.SyncResponse{DepartmentID: "cardiology", Events: events}, reply)
}

func TestDispatch_SyncRequest_Store_Failure_Becomes_An_Error_Reply(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	ctx := context.Background()
	connectionID := uuid.NewString()
	connSink := sink.NewConnSink(8)
	f.registry.Register(connectionID, connSink)

	f.events.EXPECT().GetByDepartment(ctx, domain.DepartmentID("cardiology")).
		Return(nil, errors.ErrStoreFailure)

	f.handler.dispatch(ctx, connectionID, connSink, []byte(`{"type":"sync_request","payload":{"department_id":"cardiology"}}`))

	reply := drain(t, connSink)
	req.Equal(event.Error{Message: "sync failed"}, reply)
}

func TestDispatch_Unknown_Type_And_Malformed_Frames(t *testing.T) {
	req := require.New(t)
	f := newHandlerFixture(t)
	ctx := context.Background()
	connectionID := uuid.NewString()
	connSink := sink.NewConnSink(8)
	f.registry.Register(connectionID, connSink)

	// When the frame is not JSON
	f.handler.dispatch(ctx, connectionID, connSink, []byte(`not json`))
	reply := drain(t, connSink)
	req.Equal(event.Error{Message: "malformed message"}, reply)

	// When the type is unknown
	f.handler.dispatch(ctx, connectionID, connSink, []byte(`{"type":"subscribe_room","payload":{"department_id":"x"}}`))
	reply = drain(t, connSink)
	errReply, ok := reply.(event.Error)
	req.True(ok)
	req.Contains(errReply.Message, "unknown message type")
}
