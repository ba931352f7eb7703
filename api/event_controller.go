package api

import (
	"calsync-lab/domain"
	"calsync-lab/errors"
	"calsync-lab/services"
	stderrors "errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

const defaultSearchLimit = 20

type EventController struct {
	service services.IEventService
	log     *slog.Logger
}

func NewEventController(service services.IEventService, log *slog.Logger) *EventController {
	return &EventController{service: service, log: log}
}

type CreateEventRequest struct {
	EventDate   string `json:"event_date" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Time        string `json:"time"`
	URL         string `json:"url"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Time        *string `json:"time"`
	URL         *string `json:"url"`
	EventDate   *string `json:"event_date"`
}

// List returns the department's events, optionally restricted to an
// inclusive [start, end] date range when both query params are present.
func (ctl *EventController) List(c *fiber.Ctx) error {
	departmentID := domain.DepartmentID(c.Params("department_id"))
	start, end := c.Query("start"), c.Query("end")

	if (start == "") != (end == "") {
		return fail(c, fiber.StatusBadRequest, "start and end must be provided together")
	}

	var (
		events []domain.Event
		err    error
	)
	if start != "" {
		events, err = ctl.service.GetByDateRange(c.UserContext(), departmentID, start, end)
	} else {
		events, err = ctl.service.GetByDepartment(c.UserContext(), departmentID)
	}
	if err != nil {
		return failFromErr(c, err, "could not list events")
	}
	return success(c, fiber.StatusOK, fiber.Map{"events": events})
}

func (ctl *EventController) Search(c *fiber.Ctx) error {
	departmentID := domain.DepartmentID(c.Params("department_id"))
	query := c.Query("q")
	if query == "" {
		return fail(c, fiber.StatusBadRequest, "query parameter q is required")
	}

	events, err := ctl.service.Search(c.UserContext(), departmentID, query, defaultSearchLimit)
	if err != nil {
		return failFromErr(c, err, "search failed")
	}
	return success(c, fiber.StatusOK, fiber.Map{"events": events})
}

func (ctl *EventController) Create(c *fiber.Ctx) error {
	departmentID := domain.DepartmentID(c.Params("department_id"))

	var request CreateEventRequest
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, "event_date and title are required")
	}

	event, err := ctl.service.Create(c.UserContext(), domain.CreateEventCommand{
		DepartmentID: departmentID,
		EventDate:    request.EventDate,
		Title:        request.Title,
		Description:  request.Description,
		Time:         request.Time,
		URL:          request.URL,
	})
	if err != nil {
		return failFromErr(c, err, "could not create event")
	}
	return success(c, fiber.StatusCreated, fiber.Map{"event": event})
}

func (ctl *EventController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var request UpdateEventRequest
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	event, err := ctl.service.Update(c.UserContext(), id, domain.EventPatch{
		Title:       request.Title,
		Description: request.Description,
		Time:        request.Time,
		URL:         request.URL,
		EventDate:   request.EventDate,
	})
	if stderrors.Is(err, errors.ErrEventNotFound) {
		return failFromErr(c, err, "event not found")
	}
	if stderrors.Is(err, errors.ErrEmptyPatch) {
		return failFromErr(c, err, "no fields to update")
	}
	if err != nil {
		return failFromErr(c, err, "could not update event")
	}
	return success(c, fiber.StatusOK, fiber.Map{"event": event})
}

func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	err := ctl.service.Delete(c.UserContext(), id)
	if stderrors.Is(err, errors.ErrEventNotFound) {
		return failFromErr(c, err, "event not found")
	}
	if err != nil {
		return failFromErr(c, err, "could not delete event")
	}
	return success(c, fiber.StatusOK, fiber.Map{"message": "event deleted"})
}
