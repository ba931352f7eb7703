package api

import (
	"calsync-lab/domain"
	"calsync-lab/errors"
	"calsync-lab/services"
	stderrors "errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type DepartmentController struct {
	service services.IDepartmentService
	log     *slog.Logger
}

func NewDepartmentController(service services.IDepartmentService, log *slog.Logger) *DepartmentController {
	return &DepartmentController{service: service, log: log}
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	departments, err := ctl.service.GetAll(c.UserContext())
	if err != nil {
		return failFromErr(c, err, "could not list departments")
	}
	return success(c, fiber.StatusOK, fiber.Map{"departments": departments})
}

func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var request CreateDepartmentRequest
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, "department name is required")
	}

	department, err := ctl.service.Create(c.UserContext(), domain.CreateDepartmentCommand{
		Name:        request.Name,
		Description: request.Description,
	})
	if stderrors.Is(err, errors.ErrDepartmentNameTaken) {
		return failFromErr(c, err, "department name already exists")
	}
	if err != nil {
		return failFromErr(c, err, "could not create department")
	}
	return success(c, fiber.StatusCreated, fiber.Map{"department": department})
}

func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id := domain.DepartmentID(c.Params("id"))
	if err := ctl.service.Delete(c.UserContext(), id); err != nil {
		return failFromErr(c, err, "could not delete department")
	}
	return success(c, fiber.StatusOK, fiber.Map{"message": "department deleted"})
}
