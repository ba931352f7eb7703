package runtime

import (
	"calsync-lab/contract"
	"calsync-lab/domain"
	"calsync-lab/domain/event"
	"calsync-lab/observability"
	"context"
	"log/slog"
)

// Broadcaster fans entity-change notifications out to connected
// clients. It provides best-effort delivery with no acknowledgment,
// retries, or durability; a connection mid-disconnect may miss the
// message and reconcile later through sync_request.
//
// Fan-out runs synchronously in the mutating request's goroutine, right
// after the store write succeeds. That single-writer-per-request
// sequencing is what keeps per-department delivery in commit order.
type Broadcaster struct {
	log      *slog.Logger
	registry contract.IRegistry
	monitor  *observability.Monitor
}

func NewBroadcaster(log *slog.Logger, registry contract.IRegistry, monitor *observability.Monitor) *Broadcaster {
	return &Broadcaster{log: log, registry: registry, monitor: monitor}
}

// BroadcastAll delivers to every connection. Department-scope changes
// use this: the department list is reference data every client mirrors.
func (b *Broadcaster) BroadcastAll(ctx context.Context, e event.DomainEvent) {
	b.deliver(ctx, b.registry.AllSinks(), e)
}

// BroadcastGroup delivers only to connections joined to the
// department's group.
func (b *Broadcaster) BroadcastGroup(ctx context.Context, departmentID domain.DepartmentID, e event.DomainEvent) {
	b.deliver(ctx, b.registry.SinksForDepartment(departmentID), e)
}

func (b *Broadcaster) deliver(ctx context.Context, sinks []contract.EventSink, e event.DomainEvent) {
	for _, sink := range sinks {
		if err := sink.Consume(ctx, e); err != nil {
			b.monitor.IncrDropped()
			b.log.Warn("realtime message dropped", "kind", e.Kind(), "error", err)
			continue
		}
		b.monitor.IncrDelivered()
	}
}
