//go:generate go run go.uber.org/mock/mockgen -source=department_service.go -destination=../mocks/mock_department_service.go -package=mocks
package services

import (
	"calsync-lab/contract"
	"calsync-lab/domain"
	"calsync-lab/domain/event"
	"calsync-lab/errors"
	"calsync-lab/repositories"
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type IDepartmentService interface {
	Create(ctx context.Context, cmd domain.CreateDepartmentCommand) (domain.Department, error)
	GetAll(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id domain.DepartmentID) (domain.Department, error)
	Delete(ctx context.Context, id domain.DepartmentID) error
}

// DepartmentService owns department CRUD. Store errors never leave this
// boundary raw: they are logged and surfaced as ErrStoreFailure, and a
// failed mutation emits no broadcast, so other clients see nothing.
type DepartmentService struct {
	repository  repositories.IDepartmentRepository
	broadcaster contract.IBroadcaster
	log         *slog.Logger
}

func NewDepartmentService(repository repositories.IDepartmentRepository, broadcaster contract.IBroadcaster, log *slog.Logger) *DepartmentService {
	return &DepartmentService{repository: repository, broadcaster: broadcaster, log: log}
}

// Create rejects duplicate names (case-sensitive exact match) before
// writing, then broadcasts the full record to every connection.
func (s *DepartmentService) Create(ctx context.Context, cmd domain.CreateDepartmentCommand) (domain.Department, error) {
	_, err := s.repository.GetByName(ctx, cmd.Name)
	if err == nil {
		return domain.Department{}, errors.ErrDepartmentNameTaken
	}
	if !stderrors.Is(err, errors.ErrDepartmentNotFound) {
		s.log.Error("department name lookup failed", "name", cmd.Name, "error", err)
		return domain.Department{}, errors.ErrStoreFailure
	}

	now := time.Now().UTC()
	department := domain.Department{
		ID:          domain.DepartmentID(uuid.NewString()),
		Name:        cmd.Name,
		Description: cmd.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.Put(ctx, department); err != nil {
		s.log.Error("department write failed", "name", cmd.Name, "error", err)
		return domain.Department{}, errors.ErrStoreFailure
	}

	s.broadcaster.BroadcastAll(ctx, event.DepartmentCreated{Department: department})
	return department, nil
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.repository.GetAll(ctx)
	if err != nil {
		s.log.Error("department listing failed", "error", err)
		return nil, errors.ErrStoreFailure
	}
	return departments, nil
}

func (s *DepartmentService) GetByID(ctx context.Context, id domain.DepartmentID) (domain.Department, error) {
	department, err := s.repository.GetByID(ctx, id)
	if stderrors.Is(err, errors.ErrDepartmentNotFound) {
		return domain.Department{}, err
	}
	if err != nil {
		s.log.Error("department lookup failed", "id", id, "error", err)
		return domain.Department{}, errors.ErrStoreFailure
	}
	return department, nil
}

// Delete removes the department by id. The store treats deleting an
// absent id as success, so the deletion is always announced.
func (s *DepartmentService) Delete(ctx context.Context, id domain.DepartmentID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		s.log.Error("department delete failed", "id", id, "error", err)
		return errors.ErrStoreFailure
	}
	s.broadcaster.BroadcastAll(ctx, event.DepartmentDeleted{ID: id})
	return nil
}
