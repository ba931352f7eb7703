package main

import (
	"calsync-lab/api"
	"calsync-lab/internal"
	"calsync-lab/observability"
	"calsync-lab/repositories"
	"calsync-lab/runtime"
	"calsync-lab/runtime/workers"
	"calsync-lab/search"
	"calsync-lab/services"
	"calsync-lab/ws"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Deferred cleanup (store, search index) executes before the process exits, and the
// initialization logic stays testable because nothing here calls os.Exit directly.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Store (badger for local runs, redis when hosted)
	var (
		departmentRepository repositories.IDepartmentRepository
		eventRepository      repositories.IEventRepository
		closeStore           func() error
		badgerDB             *badger.DB
	)
	switch config.StoreMode {
	case "badger":
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.ERROR))
		if err != nil {
			return fmt.Errorf("store opening failed: %w", err)
		}
		badgerDB = db
		departmentRepository = repositories.NewDepartmentRepository(db, log)
		eventRepository = repositories.NewEventRepository(db, log)
		closeStore = db.Close
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("redis unreachable at %s: %w", config.RedisAddr, err)
		}
		departmentRepository = repositories.NewRedisDepartmentRepository(client, log)
		eventRepository = repositories.NewRedisEventRepository(client, log)
		closeStore = client.Close
	default:
		return fmt.Errorf("unknown STORE_MODE %q (expected badger or redis)", config.StoreMode)
	}
	defer func() {
		log.Info("Closing store...")
		_ = closeStore()
	}()

	// 3. Search index
	index, err := search.Open(config.SearchFilepath, log)
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = index.Close()
	}()

	// 4. Realtime plumbing & services
	monitor := observability.NewMonitor(log)
	registry := runtime.NewRegistry()
	broadcaster := runtime.NewBroadcaster(log, registry, monitor)
	departmentService := services.NewDepartmentService(departmentRepository, broadcaster, log)
	eventService := services.NewEventService(eventRepository, index, broadcaster, log)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervised background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewStatsReporter(log, monitor, config.StatsInterval))
	go sup.Run(ctx)

	// 7. HTTP app: REST routes plus the websocket endpoint
	app := api.NewRouter(log, departmentService, eventService, monitor, config.StoreMode)
	wsHandler := ws.NewHandler(log, registry, eventService, monitor, config.ConnectionBufferSize)
	ws.RegisterRoutes(app, wsHandler)

	if config.DebugInspect && badgerDB != nil {
		internal.StartDebugServer(badgerDB, config.DebugInspectPort, func() map[string]any {
			snapshot := monitor.Snapshot()
			return map[string]any{
				"active_connections": snapshot.ActiveConnections,
				"delivered":          snapshot.MessagesDelivered,
				"dropped":            snapshot.MessagesDropped,
			}
		}, log)
	}

	// Use an error channel to capture Listen() issues
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting calendar sync server", "address", address, "store_mode", config.StoreMode, "at", time.Now().UTC())
		if err := app.Listen(address); err != nil {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warn("Server shutdown was not clean", "error", err)
	}
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
