package repositories

import (
	"calsync-lab/domain"
	"calsync-lab/errors"
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/redis/go-redis/v9"
)

const deptAllKey = "dept:all"

// RedisDepartmentRepository is the hosted-store twin of
// DepartmentRepository: JSON record strings under "dept:{id}", the id
// set under "dept:all", and the same "idx:deptname:" name index.
// Entity Service behavior is identical over both backends.
type RedisDepartmentRepository struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedisDepartmentRepository(client *redis.Client, log *slog.Logger) RedisDepartmentRepository {
	return RedisDepartmentRepository{client: client, log: log}
}

func (r RedisDepartmentRepository) Put(ctx context.Context, department domain.Department) error {
	bytes, err := json.Marshal(department)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, deptPrefix+string(department.ID), bytes, 0)
		pipe.Set(ctx, deptNamePrefix+department.Name, string(department.ID), 0)
		pipe.SAdd(ctx, deptAllKey, string(department.ID))
		return nil
	})
	return err
}

func (r RedisDepartmentRepository) GetByID(ctx context.Context, id domain.DepartmentID) (domain.Department, error) {
	return r.fetch(ctx, deptPrefix+string(id))
}

func (r RedisDepartmentRepository) GetByName(ctx context.Context, name string) (domain.Department, error) {
	id, err := r.client.Get(ctx, deptNamePrefix+name).Result()
	if err == redis.Nil {
		return domain.Department{}, errors.ErrDepartmentNotFound
	}
	if err != nil {
		return domain.Department{}, err
	}
	return r.fetch(ctx, deptPrefix+id)
}

func (r RedisDepartmentRepository) GetAll(ctx context.Context) ([]domain.Department, error) {
	ids, err := r.client.SMembers(ctx, deptAllKey).Result()
	if err != nil {
		return nil, err
	}
	departments := make([]domain.Department, 0, len(ids))
	for _, id := range ids {
		department, err := r.fetch(ctx, deptPrefix+id)
		if err == errors.ErrDepartmentNotFound {
			// Record expired or deleted between SMembers and Get.
			continue
		}
		if err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})
	return departments, nil
}

func (r RedisDepartmentRepository) Delete(ctx context.Context, id domain.DepartmentID) error {
	department, err := r.fetch(ctx, deptPrefix+string(id))
	if err == errors.ErrDepartmentNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, deptPrefix+string(id), deptNamePrefix+department.Name)
		pipe.SRem(ctx, deptAllKey, string(id))
		return nil
	})
	return err
}

func (r RedisDepartmentRepository) fetch(ctx context.Context, key string) (domain.Department, error) {
	bytes, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return domain.Department{}, errors.ErrDepartmentNotFound
	}
	if err != nil {
		return domain.Department{}, err
	}
	var department domain.Department
	if err := json.Unmarshal(bytes, &department); err != nil {
		return domain.Department{}, err
	}
	return department, nil
}
