package api

import (
	"calsync-lab/observability"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

const serverVersion = "1.0.0"

type StatusController struct {
	monitor   *observability.Monitor
	storeMode string
	log       *slog.Logger
}

func NewStatusController(monitor *observability.Monitor, storeMode string, log *slog.Logger) *StatusController {
	return &StatusController{monitor: monitor, storeMode: storeMode, log: log}
}

// Status answers GET / so load balancers and clients can probe the server.
func (ctl *StatusController) Status(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "running",
		"message":    "calendar sync server",
		"version":    serverVersion,
		"store_mode": ctl.storeMode,
	})
}

// Stats exposes the process counters tracked by the monitor.
func (ctl *StatusController) Stats(c *fiber.Ctx) error {
	return success(c, fiber.StatusOK, fiber.Map{"stats": ctl.monitor.Snapshot()})
}
