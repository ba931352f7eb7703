package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Snapshot aggregates the broadcast-layer counters and process metrics
// served by /api/stats and logged by the stats reporter.
type Snapshot struct {
	ActiveConnections int64   `json:"active_connections"`
	ConnectionsOpened uint64  `json:"connections_opened"`
	ConnectionsClosed uint64  `json:"connections_closed"`
	MessagesDelivered uint64  `json:"messages_delivered"`
	MessagesDropped   uint64  `json:"messages_dropped"`
	RssBytes          uint64  `json:"rss_bytes"`
	CPUPercent        float64 `json:"cpu_percent"`
	NumGoroutine      int     `json:"num_goroutine"`
	UptimeSeconds     int64   `json:"uptime_seconds"`
}

// Monitor collects realtime-layer telemetry with atomic counters.
// Safe for concurrent use from every connection and broadcast.
type Monitor struct {
	log       *slog.Logger
	startedAt time.Time
	proc      *process.Process

	connectionsOpened uint64
	connectionsClosed uint64
	delivered         uint64
	dropped           uint64
}

func NewMonitor(log *slog.Logger) *Monitor {
	// A nil proc only disables the RSS/CPU fields of the snapshot.
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("process metrics unavailable", "error", err)
		proc = nil
	}
	return &Monitor{log: log, startedAt: time.Now(), proc: proc}
}

func (m *Monitor) ConnOpened() {
	atomic.AddUint64(&m.connectionsOpened, 1)
}

func (m *Monitor) ConnClosed() {
	atomic.AddUint64(&m.connectionsClosed, 1)
}

func (m *Monitor) IncrDelivered() {
	atomic.AddUint64(&m.delivered, 1)
}

func (m *Monitor) IncrDropped() {
	atomic.AddUint64(&m.dropped, 1)
}

func (m *Monitor) Snapshot() Snapshot {
	opened := atomic.LoadUint64(&m.connectionsOpened)
	closed := atomic.LoadUint64(&m.connectionsClosed)

	snapshot := Snapshot{
		ActiveConnections: int64(opened) - int64(closed),
		ConnectionsOpened: opened,
		ConnectionsClosed: closed,
		MessagesDelivered: atomic.LoadUint64(&m.delivered),
		MessagesDropped:   atomic.LoadUint64(&m.dropped),
		NumGoroutine:      runtime.NumGoroutine(),
		UptimeSeconds:     int64(time.Since(m.startedAt).Seconds()),
	}

	if m.proc != nil {
		if memInfo, err := m.proc.MemoryInfo(); err == nil {
			snapshot.RssBytes = memInfo.RSS
		}
		if cpu, err := m.proc.CPUPercent(); err == nil {
			snapshot.CPUPercent = cpu
		}
	}
	return snapshot
}
