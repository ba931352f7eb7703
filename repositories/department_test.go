package repositories

import (
	"calsync-lab/domain"
	"calsync-lab/errors"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func aDepartment(name string) domain.Department {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.Department{
		ID:          domain.DepartmentID(uuid.NewString()),
		Name:        name,
		Description: name + " department calendar",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestDepartmentRepository_Put_Then_GetByID(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewDepartmentRepository(openTestDB(t), slog.Default())

	// Given a stored department
	department := aDepartment("Cardiology")
	req.NoError(repo.Put(ctx, department))

	// When fetching it by id
	fetched, err := repo.GetByID(ctx, department.ID)

	// Then the record round-trips
	req.NoError(err)
	req.Equal(department, fetched)
}

func TestDepartmentRepository_GetByID_Unknown(t *testing.T) {
	req := require.New(t)
	repo := NewDepartmentRepository(openTestDB(t), slog.Default())

	// When fetching an id that was never stored
	_, err := repo.GetByID(context.Background(), domain.DepartmentID(uuid.NewString()))

	// Then the sentinel is returned
	req.ErrorIs(err, errors.ErrDepartmentNotFound)
}

func TestDepartmentRepository_GetByName_Uses_The_Index(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewDepartmentRepository(openTestDB(t), slog.Default())

	// Given two departments
	cardiology := aDepartment("Cardiology")
	surgery := aDepartment("Surgery")
	req.NoError(repo.Put(ctx, cardiology))
	req.NoError(repo.Put(ctx, surgery))

	// When looking one up by its exact name
	fetched, err := repo.GetByName(ctx, "Surgery")
	req.NoError(err)
	req.Equal(surgery.ID, fetched.ID)

	// Then the match is case-sensitive
	_, err = repo.GetByName(ctx, "surgery")
	req.ErrorIs(err, errors.ErrDepartmentNotFound)
}

func TestDepartmentRepository_GetAll_Sorted_By_Name(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewDepartmentRepository(openTestDB(t), slog.Default())

	// Given departments stored out of order
	req.NoError(repo.Put(ctx, aDepartment("Surgery")))
	req.NoError(repo.Put(ctx, aDepartment("Cardiology")))
	req.NoError(repo.Put(ctx, aDepartment("Emergency Medicine")))

	// When listing them
	departments, err := repo.GetAll(ctx)

	// Then they come back sorted by name
	req.NoError(err)
	req.Len(departments, 3)
	req.Equal("Cardiology", departments[0].Name)
	req.Equal("Emergency Medicine", departments[1].Name)
	req.Equal("Surgery", departments[2].Name)
}

func TestDepartmentRepository_Delete_Removes_Record_And_Index(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewDepartmentRepository(openTestDB(t), slog.Default())

	// Given a stored department
	department := aDepartment("Cardiology")
	req.NoError(repo.Put(ctx, department))

	// When deleting it
	req.NoError(repo.Delete(ctx, department.ID))

	// Then both lookups miss
	_, err := repo.GetByID(ctx, department.ID)
	req.ErrorIs(err, errors.ErrDepartmentNotFound)
	_, err = repo.GetByName(ctx, "Cardiology")
	req.ErrorIs(err, errors.ErrDepartmentNotFound)

	// And the name is free for reuse
	req.NoError(repo.Put(ctx, aDepartment("Cardiology")))
}

func TestDepartmentRepository_Delete_Absent_Is_A_Success(t *testing.T) {
	req := require.New(t)
	repo := NewDepartmentRepository(openTestDB(t), slog.Default())

	// When deleting an id that was never stored
	err := repo.Delete(context.Background(), domain.DepartmentID(uuid.NewString()))

	// Then the operation succeeds
	req.NoError(err)
}
