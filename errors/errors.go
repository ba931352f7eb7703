package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrDepartmentNotFound  = fmt.Errorf("department not found")
	ErrEventNotFound       = fmt.Errorf("event not found")
	ErrDepartmentNameTaken = fmt.Errorf("department name already taken")
	ErrEmptyPatch          = fmt.Errorf("no fields to update")
	ErrStoreFailure        = fmt.Errorf("store failure")
	ErrSinkFull            = fmt.Errorf("connection buffer full")
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrMissingDepartmentID = fmt.Errorf("department_id is required")
)

// HTTPStatus maps a service error onto the REST status taxonomy:
// 400 validation, 404 not-found, 409 conflict, 500 everything else.
func HTTPStatus(err error) int {
	switch {
	case stderrors.Is(err, ErrDepartmentNotFound), stderrors.Is(err, ErrEventNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, ErrDepartmentNameTaken):
		return fiber.StatusConflict
	case stderrors.Is(err, ErrEmptyPatch), stderrors.Is(err, ErrMissingDepartmentID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
