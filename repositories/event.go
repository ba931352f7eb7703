//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../mocks/mock_event_repository.go -package=mocks
package repositories

import (
	"calsync-lab/domain"
	"calsync-lab/errors"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const (
	evtPrefix     = "evt:"
	evtDeptPrefix = "idx:evtdept:"
)

type IEventRepository interface {
	Put(ctx context.Context, event domain.Event) error
	GetByID(ctx context.Context, id string) (domain.Event, error)
	GetByDepartment(ctx context.Context, departmentID domain.DepartmentID) ([]domain.Event, error)
	GetByDateRange(ctx context.Context, departmentID domain.DepartmentID, start, end string) ([]domain.Event, error)
	Delete(ctx context.Context, departmentID domain.DepartmentID, id string) error
}

// EventRepository persists calendar events in BadgerDB.
// The key "evt:{department_id}:{event_id}" partitions events by
// department so per-department reads are one prefix scan. The lookup by
// bare event id goes through "idx:evtdept:{event_id}" -> department_id,
// the cross-partition equivalent of the original secondary index.
type EventRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewEventRepository(db *badger.DB, log *slog.Logger) EventRepository {
	return EventRepository{db: db, log: log}
}

func eventKey(departmentID domain.DepartmentID, id string) []byte {
	return []byte(evtPrefix + string(departmentID) + ":" + id)
}

func (r EventRepository) Put(_ context.Context, event domain.Event) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(eventKey(event.DepartmentID, event.ID), bytes); err != nil {
			return err
		}
		return txn.Set([]byte(evtDeptPrefix+event.ID), []byte(event.DepartmentID))
	})
}

func (r EventRepository) GetByID(_ context.Context, id string) (domain.Event, error) {
	var event domain.Event
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(evtDeptPrefix + id))
		if err != nil {
			return err
		}
		departmentID, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return readJSON(txn, string(eventKey(domain.DepartmentID(departmentID), id)), &event)
	})
	if err == badger.ErrKeyNotFound {
		return domain.Event{}, errors.ErrEventNotFound
	}
	return event, err
}

func (r EventRepository) GetByDepartment(ctx context.Context, departmentID domain.DepartmentID) ([]domain.Event, error) {
	return r.scan(ctx, departmentID, func(domain.Event) bool { return true })
}

// GetByDateRange keeps events whose event_date falls inside [start, end],
// bounds included, compared as strings.
func (r EventRepository) GetByDateRange(ctx context.Context, departmentID domain.DepartmentID, start, end string) ([]domain.Event, error) {
	return r.scan(ctx, departmentID, func(e domain.Event) bool {
		return e.EventDate >= start && e.EventDate <= end
	})
}

func (r EventRepository) scan(_ context.Context, departmentID domain.DepartmentID, keep func(domain.Event) bool) ([]domain.Event, error) {
	events := make([]domain.Event, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(evtPrefix + string(departmentID) + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var event domain.Event
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &event)
			})
			if err != nil {
				return err
			}
			if keep(event) {
				events = append(events, event)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	domain.SortEvents(events)
	return events, nil
}

// Delete fails with ErrEventNotFound when the record is absent: event
// deletion is observed by other clients, so it must be exact.
func (r EventRepository) Delete(_ context.Context, departmentID domain.DepartmentID, id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := eventKey(departmentID, id)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		if err := txn.Delete([]byte(evtDeptPrefix + id)); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err == badger.ErrKeyNotFound {
		return errors.ErrEventNotFound
	}
	return err
}
