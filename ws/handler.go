package ws

import (
	"calsync-lab/contract"
	"calsync-lab/domain/event"
	"calsync-lab/observability"
	"calsync-lab/services"
	"calsync-lab/sink"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler owns the websocket surface: one goroutine per connection
// reading join/leave/sync envelopes, one writer goroutine draining the
// connection's sink. Replies and broadcasts share the sink channel, so
// a single writer preserves delivery order.
type Handler struct {
	log        *slog.Logger
	registry   contract.IRegistry
	events     services.IEventService
	monitor    *observability.Monitor
	bufferSize int
}

func NewHandler(log *slog.Logger, registry contract.IRegistry, events services.IEventService,
	monitor *observability.Monitor, bufferSize int) *Handler {
	return &Handler{
		log:        log,
		registry:   registry,
		events:     events,
		monitor:    monitor,
		bufferSize: bufferSize,
	}
}

func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(h.Handle))
}

// Handle runs for the lifetime of one client connection. Registration
// happens before the greeting so the connection cannot miss a broadcast
// emitted between the two; cleanup is unconditional on exit.
func (h *Handler) Handle(c *websocket.Conn) {
	connectionID := uuid.NewString()
	connSink := sink.NewConnSink(h.bufferSize)
	ctx, cancel := context.WithCancel(context.Background())

	h.registry.Register(connectionID, connSink)
	h.monitor.ConnOpened()
	h.log.Info("client connected", "connection_id", connectionID)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writeLoop(ctx, c, connSink)
	}()

	_ = connSink.Consume(ctx, event.Connected{Message: "connected to calendar sync server"})

	h.readLoop(ctx, c, connectionID, connSink)

	h.registry.Unregister(connectionID)
	h.monitor.ConnClosed()
	cancel()
	<-done
	h.log.Info("client disconnected", "connection_id", connectionID)
}

func (h *Handler) writeLoop(ctx context.Context, c *websocket.Conn, connSink *sink.ConnSink) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-connSink.Events:
			envelope, err := Encode(evt)
			if err != nil {
				h.log.Error("unencodable realtime message", "error", err)
				continue
			}
			if err := c.WriteJSON(envelope); err != nil {
				h.log.Warn("websocket write failed", "error", err)
				return
			}
		}
	}
}

func (h *Handler) readLoop(ctx context.Context, c *websocket.Conn, connectionID string, connSink *sink.ConnSink) {
	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read failed", "connection_id", connectionID, "error", err)
			}
			return
		}
		h.dispatch(ctx, connectionID, connSink, raw)
	}
}

// dispatch handles one client envelope. A missing department_id is an
// explicit error reply, not a silent no-op.
func (h *Handler) dispatch(ctx context.Context, connectionID string, connSink contract.EventSink, raw []byte) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		_ = connSink.Consume(ctx, event.Error{Message: "malformed message"})
		return
	}

	var ref departmentRef
	if len(envelope.Payload) > 0 {
		if err := json.Unmarshal(envelope.Payload, &ref); err != nil {
			_ = connSink.Consume(ctx, event.Error{Message: "malformed payload"})
			return
		}
	}

	switch envelope.Type {
	case MsgJoinDepartment:
		if ref.DepartmentID == "" {
			_ = connSink.Consume(ctx, event.Error{Message: "department_id is required"})
			return
		}
		h.registry.Join(connectionID, ref.DepartmentID)
		h.log.Info("joined department group", "connection_id", connectionID, "department_id", ref.DepartmentID)
		_ = connSink.Consume(ctx, event.JoinedDepartment{
			DepartmentID: ref.DepartmentID,
			Message:      "joined department group",
		})

	case MsgLeaveDepartment:
		if ref.DepartmentID == "" {
			_ = connSink.Consume(ctx, event.Error{Message: "department_id is required"})
			return
		}
		h.registry.Leave(connectionID, ref.DepartmentID)
		h.log.Info("left department group", "connection_id", connectionID, "department_id", ref.DepartmentID)
		_ = connSink.Consume(ctx, event.LeftDepartment{
			DepartmentID: ref.DepartmentID,
			Message:      "left department group",
		})

	case MsgSyncRequest:
		if ref.DepartmentID == "" {
			_ = connSink.Consume(ctx, event.Error{Message: "department_id is required"})
			return
		}
		events, err := h.events.GetByDepartment(ctx, ref.DepartmentID)
		if err != nil {
			h.log.Error("sync request failed", "connection_id", connectionID, "department_id", ref.DepartmentID, "error", err)
			_ = connSink.Consume(ctx, event.Error{Message: "sync failed"})
			return
		}
		_ = connSink.Consume(ctx, event.SyncResponse{DepartmentID: ref.DepartmentID, Events: events})

	default:
		_ = connSink.Consume(ctx, event.Error{Message: fmt.Sprintf("unknown message type %q", envelope.Type)})
	}
}
