package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string        `env:"CALSYNC_SERVER_ADDR,default=http://localhost:5000"`
	DepartmentID  string        `env:"CALSYNC_DEPARTMENT_ID"`
	WatchInterval time.Duration `env:"CALSYNC_WATCH_INTERVAL,default=10s"`
	Watch         bool          `env:"CALSYNC_WATCH,default=false"`
	LogLevel      string        `env:"LOG_LEVEL,default=INFO"`
}

type departmentsResponse struct {
	Departments []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"departments"`
}

type eventsResponse struct {
	Events []struct {
		ID        string `json:"id"`
		EventDate string `json:"event_date"`
		Time      string `json:"time"`
		Title     string `json:"title"`
	} `json:"events"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run loads the configuration, then either prints one snapshot of the
// server's calendars or keeps polling in watch mode until Ctrl+C.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: 10 * time.Second}

	if !config.Watch {
		return exitOK, snapshot(ctx, log, client, config)
	}

	log.Info("Watching calendars", "server", config.ServerAddress, "interval", config.WatchInterval)
	ticker := time.NewTicker(config.WatchInterval)
	defer ticker.Stop()

	for {
		if err := snapshot(ctx, log, client, config); err != nil {
			log.Warn("Snapshot failed", "error", err)
		}
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case <-ticker.C:
		}
	}
}

// snapshot lists departments, then the events of either the configured
// department or every department found.
func snapshot(ctx context.Context, log *slog.Logger, client *http.Client, config Config) error {
	var departments departmentsResponse
	if err := getJSON(ctx, client, config.ServerAddress+"/api/departments", &departments); err != nil {
		return fmt.Errorf("listing departments: %w", err)
	}

	for _, department := range departments.Departments {
		if config.DepartmentID != "" && department.ID != config.DepartmentID {
			continue
		}

		var events eventsResponse
		url := fmt.Sprintf("%s/api/events/%s", config.ServerAddress, department.ID)
		if err := getJSON(ctx, client, url, &events); err != nil {
			return fmt.Errorf("listing events for %s: %w", department.Name, err)
		}

		log.Info(fmt.Sprintf("%s (%d events)", department.Name, len(events.Events)))
		for _, event := range events.Events {
			log.Info(fmt.Sprintf("  [%s %s] %s", event.EventDate, event.Time, event.Title))
		}
	}
	return nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
