//go:generate go run go.uber.org/mock/mockgen -source=department.go -destination=../mocks/mock_department_repository.go -package=mocks
package repositories

import (
	"calsync-lab/domain"
	"calsync-lab/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v4"
)

const (
	deptPrefix     = "dept:"
	deptNamePrefix = "idx:deptname:"
)

type IDepartmentRepository interface {
	Put(ctx context.Context, department domain.Department) error
	GetByID(ctx context.Context, id domain.DepartmentID) (domain.Department, error)
	GetByName(ctx context.Context, name string) (domain.Department, error)
	GetAll(ctx context.Context) ([]domain.Department, error)
	Delete(ctx context.Context, id domain.DepartmentID) error
}

// DepartmentRepository persists departments in BadgerDB.
// Records live under "dept:{id}". The unique-name lookup is an explicit
// secondary index "idx:deptname:{name}" -> id instead of a full scan,
// kept in sync inside the same transaction as the record itself.
type DepartmentRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDepartmentRepository(db *badger.DB, log *slog.Logger) DepartmentRepository {
	return DepartmentRepository{db: db, log: log}
}

func (r DepartmentRepository) Put(_ context.Context, department domain.Department) error {
	bytes, err := json.Marshal(department)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(deptPrefix+string(department.ID)), bytes); err != nil {
			return err
		}
		return txn.Set([]byte(deptNamePrefix+department.Name), []byte(department.ID))
	})
}

func (r DepartmentRepository) GetByID(_ context.Context, id domain.DepartmentID) (domain.Department, error) {
	var department domain.Department
	err := r.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, deptPrefix+string(id), &department)
	})
	if err == badger.ErrKeyNotFound {
		return domain.Department{}, errors.ErrDepartmentNotFound
	}
	return department, err
}

// GetByName resolves the name index first, then the record.
// The match is case-sensitive and exact, like the unique-name rule.
func (r DepartmentRepository) GetByName(_ context.Context, name string) (domain.Department, error) {
	var department domain.Department
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(deptNamePrefix + name))
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return readJSON(txn, deptPrefix+string(id), &department)
	})
	if err == badger.ErrKeyNotFound {
		return domain.Department{}, errors.ErrDepartmentNotFound
	}
	return department, err
}

func (r DepartmentRepository) GetAll(_ context.Context) ([]domain.Department, error) {
	departments := make([]domain.Department, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(deptPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var department domain.Department
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &department)
			})
			if err != nil {
				return err
			}
			departments = append(departments, department)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})
	return departments, nil
}

// Delete removes the record and its name index entry. Deleting an
// absent id is a success, matching the store contract.
func (r DepartmentRepository) Delete(_ context.Context, id domain.DepartmentID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var department domain.Department
		err := readJSON(txn, deptPrefix+string(id), &department)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		if err := txn.Delete([]byte(deptNamePrefix + department.Name)); err != nil {
			return err
		}
		return txn.Delete([]byte(deptPrefix + string(id)))
	})
}

func readJSON(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(value []byte) error {
		if err := json.Unmarshal(value, out); err != nil {
			return fmt.Errorf("decoding %s: %w", key, err)
		}
		return nil
	})
}
