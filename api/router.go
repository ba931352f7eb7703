package api

import (
	"calsync-lab/observability"
	"calsync-lab/services"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// NewRouter wires the REST surface. The websocket endpoint is attached
// separately by the ws package so the app can also be exercised in tests
// without a realtime layer.
func NewRouter(log *slog.Logger, departments services.IDepartmentService, events services.IEventService,
	monitor *observability.Monitor, storeMode string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "calsync-lab",
		DisableStartupMessage: true,
	})

	statusController := NewStatusController(monitor, storeMode, log)
	departmentController := NewDepartmentController(departments, log)
	eventController := NewEventController(events, log)

	app.Get("/", statusController.Status)

	api := app.Group("/api")
	api.Get("/stats", statusController.Stats)

	api.Get("/departments", departmentController.List)
	api.Post("/departments", departmentController.Create)
	api.Delete("/departments/:id", departmentController.Delete)

	api.Get("/events/:department_id/search", eventController.Search)
	api.Get("/events/:department_id", eventController.List)
	api.Post("/events/:department_id", eventController.Create)
	api.Put("/events/:id", eventController.Update)
	api.Delete("/events/:id", eventController.Delete)

	return app
}
