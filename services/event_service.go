//go:generate go run go.uber.org/mock/mockgen -source=event_service.go -destination=../mocks/mock_event_service.go -package=mocks
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

type IEventService interface {
	Create(ctx context.Context, cmd domain.CreateEventCommand) (domain.Event, error)
	GetByDepartment(ctx context.Context, departmentID domain.DepartmentID) ([]domain.Event, error)
	GetByDateRange(ctx context.Context, departmentID domain.DepartmentID, start, end string) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (domain.Event, error)
	Update(ctx context.Context, id string, patch domain.EventPatch) (domain.Event, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, departmentID domain.DepartmentID, query string, limit int) ([]domain.Event, error)
}

// IEventIndex is the search side-channel maintained on every event
// mutation. Index failures are logged but never fail the mutation: the
// store is the source of truth.
type IEventIndex interface {
	IndexEvent(e domain.Event) error
	DeleteEvent(id string) error
	Search(ctx context.Context, departmentID domain.DepartmentID, query string, limit int) ([]string, error)
}

// EventService owns calendar event CRUD for the realtime layer. Every
// successful mutation broadcasts to the event's department group, in
// the same goroutine, after the store write: commit order is delivery
// order within a group.
type EventService struct {
	repository  repositories.IEventRepository
	index       IEventIndex
	broadcaster contract.IBroadcaster
	log         *slog.Logger
}

func NewEventService(repository repositories.IEventRepository, index IEventIndex, broadcaster contract.IBroadcaster, log *slog.Logger) *EventService {
	return &EventService{repository: repository, index: index, broadcaster: broadcaster, log: log}
}

func (s *EventService) Create(ctx context.Context, cmd domain.CreateEventCommand) (domain.Event, error) {
	now := time.Now().UTC()
	evt := domain.Event{
		ID:           uuid.NewString(),
		DepartmentID: cmd.DepartmentID,
		EventDate:    cmd.EventDate,
		Title:        cmd.Title,
		Description:  cmd.Description,
		Time:         cmd.Time,
		URL:          cmd.URL,
		CreatedAt:    now,
		LastModified: now,
	}
	if err := s.repository.Put(ctx, evt); err != nil {
		s.log.Error("event write failed", "department_id", cmd.DepartmentID, "error", err)
		return domain.Event{}, errors.ErrStoreFailure
	}
	s.reindex(evt)

	s.broadcaster.BroadcastGroup(ctx, evt.DepartmentID, event.EventCreated{Event: evt})
	return evt, nil
}

func (s *EventService) GetByDepartment(ctx context.Context, departmentID domain.DepartmentID) ([]domain.Event, error) {
	events, err := s.repository.GetByDepartment(ctx, departmentID)
	if err != nil {
		s.log.Error("event listing failed", "department_id", departmentID, "error", err)
		return nil, errors.ErrStoreFailure
	}
	return events, nil
}

func (s *EventService) GetByDateRange(ctx context.Context, departmentID domain.DepartmentID, start, end string) ([]domain.Event, error) {
	events, err := s.repository.GetByDateRange(ctx, departmentID, start, end)
	if err != nil {
		s.log.Error("event range listing failed", "department_id", departmentID, "error", err)
		return nil, errors.ErrStoreFailure
	}
	return events, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (domain.Event, error) {
	evt, err := s.repository.GetByID(ctx, id)
	if stderrors.Is(err, errors.ErrEventNotFound) {
		return domain.Event{}, err
	}
	if err != nil {
		s.log.Error("event lookup failed", "id", id, "error", err)
		return domain.Event{}, errors.ErrStoreFailure
	}
	return evt, nil
}

// Update applies a partial patch. It fails when the event does not
// exist or when no fields were supplied; last_modified is always
// refreshed on success.
func (s *EventService) Update(ctx context.Context, id string, patch domain.EventPatch) (domain.Event, error) {
	if patch.IsEmpty() {
		return domain.Event{}, errors.ErrEmptyPatch
	}
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	updated := patch.Apply(current)
	updated.LastModified = time.Now().UTC()
	if err := s.repository.Put(ctx, updated); err != nil {
		s.log.Error("event update failed", "id", id, "error", err)
		return domain.Event{}, errors.ErrStoreFailure
	}
	s.reindex(updated)

	s.broadcaster.BroadcastGroup(ctx, updated.DepartmentID, event.EventUpdated{Event: updated})
	return updated, nil
}

// Delete resolves the record first to learn its department (the
// partition key and the broadcast group), then removes it.
func (s *EventService) Delete(ctx context.Context, id string) error {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, current.DepartmentID, id); err != nil {
		if stderrors.Is(err, errors.ErrEventNotFound) {
			return err
		}
		s.log.Error("event delete failed", "id", id, "error", err)
		return errors.ErrStoreFailure
	}
	if err := s.index.DeleteEvent(id); err != nil {
		s.log.Warn("event removal from index failed", "id", id, "error", err)
	}

	s.broadcaster.BroadcastGroup(ctx, current.DepartmentID, event.EventDeleted{
		ID:           id,
		DepartmentID: current.DepartmentID,
	})
	return nil
}

// Search resolves matching ids from the index back into records; ids
// deleted since the last index write are skipped. Results come back in
// calendar order, not relevance order, to match the rest of the API.
func (s *EventService) Search(ctx context.Context, departmentID domain.DepartmentID, query string, limit int) ([]domain.Event, error) {
	ids, err := s.index.Search(ctx, departmentID, query, limit)
	if err != nil {
		s.log.Error("event search failed", "department_id", departmentID, "error", err)
		return nil, errors.ErrStoreFailure
	}
	events := make([]domain.Event, 0, len(ids))
	for _, id := range ids {
		evt, err := s.GetByID(ctx, id)
		if stderrors.Is(err, errors.ErrEventNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	domain.SortEvents(events)
	return events, nil
}

func (s *EventService) reindex(evt domain.Event) {
	if err := s.index.IndexEvent(evt); err != nil {
		s.log.Warn("event indexing failed", "id", evt.ID, "error", err)
	}
}
