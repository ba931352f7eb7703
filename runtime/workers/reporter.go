package workers

import (
	"calsync-lab/observability"
	"context"
	"log/slog"
	"time"
)

// StatsReporter periodically logs the broadcast-layer snapshot. It is
// the only long-running background worker of the server and runs under
// the supervisor.
type StatsReporter struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	interval time.Duration
}

func NewStatsReporter(log *slog.Logger, monitor *observability.Monitor, interval time.Duration) *StatsReporter {
	return &StatsReporter{log: log, monitor: monitor, interval: interval}
}

func (w *StatsReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report()
			return nil
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *StatsReporter) report() {
	stats := w.monitor.Snapshot()
	w.log.Info("realtime stats",
		"active_connections", stats.ActiveConnections,
		"delivered", stats.MessagesDelivered,
		"dropped", stats.MessagesDropped,
		"rss_mb", stats.RssBytes/1024/1024,
		"goroutines", stats.NumGoroutine,
	)
}
