package repositories

import (
	"calsync-lab/domain"
	"calsync-lab/errors"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

func deptEventsKey(departmentID domain.DepartmentID) string {
	return deptPrefix + string(departmentID) + ":events"
}

// RedisEventRepository keeps one JSON record per event under
// "evt:{id}" and tracks the department partition through the member set
// "dept:{department_id}:events".
type RedisEventRepository struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedisEventRepository(client *redis.Client, log *slog.Logger) RedisEventRepository {
	return RedisEventRepository{client: client, log: log}
}

func (r RedisEventRepository) Put(ctx context.Context, event domain.Event) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, evtPrefix+event.ID, bytes, 0)
		pipe.SAdd(ctx, deptEventsKey(event.DepartmentID), event.ID)
		return nil
	})
	return err
}

func (r RedisEventRepository) GetByID(ctx context.Context, id string) (domain.Event, error) {
	bytes, err := r.client.Get(ctx, evtPrefix+id).Bytes()
	if err == redis.Nil {
		return domain.Event{}, errors.ErrEventNotFound
	}
	if err != nil {
		return domain.Event{}, err
	}
	var event domain.Event
	if err := json.Unmarshal(bytes, &event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (r RedisEventRepository) GetByDepartment(ctx context.Context, departmentID domain.DepartmentID) ([]domain.Event, error) {
	return r.members(ctx, departmentID, func(domain.Event) bool { return true })
}

func (r RedisEventRepository) GetByDateRange(ctx context.Context, departmentID domain.DepartmentID, start, end string) ([]domain.Event, error) {
	return r.members(ctx, departmentID, func(e domain.Event) bool {
		return e.EventDate >= start && e.EventDate <= end
	})
}

func (r RedisEventRepository) members(ctx context.Context, departmentID domain.DepartmentID, keep func(domain.Event) bool) ([]domain.Event, error) {
	ids, err := r.client.SMembers(ctx, deptEventsKey(departmentID)).Result()
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(ids))
	for _, id := range ids {
		event, err := r.GetByID(ctx, id)
		if err == errors.ErrEventNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		if keep(event) {
			events = append(events, event)
		}
	}
	domain.SortEvents(events)
	return events, nil
}

// Delete removes the record and its set membership in one transaction,
// mirroring Put: a crash can never leave a dangling id in the set.
func (r RedisEventRepository) Delete(ctx context.Context, departmentID domain.DepartmentID, id string) error {
	var deleted *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, evtPrefix+id)
		pipe.SRem(ctx, deptEventsKey(departmentID), id)
		return nil
	})
	if err != nil {
		return err
	}
	if deleted.Val() == 0 {
		return errors.ErrEventNotFound
	}
	return nil
}
