package repositories

import (
	"calsync-lab/domain"
	"calsync-lab/errors"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func anEvent(departmentID domain.DepartmentID, date, timeOfDay, title string) domain.Event {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.Event{
		ID:           uuid.NewString(),
		DepartmentID: departmentID,
		EventDate:    date,
		Title:        title,
		Time:         timeOfDay,
		CreatedAt:    now,
		LastModified: now,
	}
}

func TestEventRepository_Put_Then_GetByID(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t), slog.Default())
	departmentID := domain.DepartmentID(uuid.NewString())

	// Given a stored event
	event := anEvent(departmentID, "2026-09-01", "09:00", "Morning rounds")
	req.NoError(repo.Put(ctx, event))

	// When fetching it by bare id, without knowing the department
	fetched, err := repo.GetByID(ctx, event.ID)

	// Then the index resolves the partition
	req.NoError(err)
	req.Equal(event, fetched)
}

func TestEventRepository_GetByID_Unknown(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	req.ErrorIs(err, errors.ErrEventNotFound)
}

func TestEventRepository_GetByDepartment_Is_Partitioned_And_Sorted(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t), slog.Default())
	cardiology := domain.DepartmentID(uuid.NewString())
	surgery := domain.DepartmentID(uuid.NewString())

	// Given events in two departments, stored out of order
	req.NoError(repo.Put(ctx, anEvent(cardiology, "2026-09-03", "14:00", "Echo review")))
	req.NoError(repo.Put(ctx, anEvent(cardiology, "2026-09-01", "09:00", "Morning rounds")))
	req.NoError(repo.Put(ctx, anEvent(cardiology, "2026-09-01", "08:00", "Handover")))
	req.NoError(repo.Put(ctx, anEvent(surgery, "2026-09-02", "07:30", "Theatre list")))

	// When listing one department
	events, err := repo.GetByDepartment(ctx, cardiology)

	// Then only its events come back, ordered by date then time
	req.NoError(err)
	req.Len(events, 3)
	req.Equal("Handover", events[0].Title)
	req.Equal("Morning rounds", events[1].Title)
	req.Equal("Echo review", events[2].Title)
}

func TestEventRepository_GetByDateRange_Bounds_Are_Inclusive(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t), slog.Default())
	departmentID := domain.DepartmentID(uuid.NewString())

	req.NoError(repo.Put(ctx, anEvent(departmentID, "2026-08-31", "10:00", "Before")))
	req.NoError(repo.Put(ctx, anEvent(departmentID, "2026-09-01", "10:00", "Start")))
	req.NoError(repo.Put(ctx, anEvent(departmentID, "2026-09-15", "10:00", "Middle")))
	req.NoError(repo.Put(ctx, anEvent(departmentID, "2026-09-30", "10:00", "End")))
	req.NoError(repo.Put(ctx, anEvent(departmentID, "2026-10-01", "10:00", "After")))

	// When querying September
	events, err := repo.GetByDateRange(ctx, departmentID, "2026-09-01", "2026-09-30")

	// Then both bounds are part of the window
	req.NoError(err)
	req.Len(events, 3)
	req.Equal("Start", events[0].Title)
	req.Equal("Middle", events[1].Title)
	req.Equal("End", events[2].Title)
}

func TestEventRepository_Delete_Removes_Record_And_Index(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t), slog.Default())
	departmentID := domain.DepartmentID(uuid.NewString())

	// Given a stored event
	event := anEvent(departmentID, "2026-09-01", "09:00", "Morning rounds")
	req.NoError(repo.Put(ctx, event))

	// When deleting it
	req.NoError(repo.Delete(ctx, departmentID, event.ID))

	// Then it is gone from both access paths
	_, err := repo.GetByID(ctx, event.ID)
	req.ErrorIs(err, errors.ErrEventNotFound)

	events, err := repo.GetByDepartment(ctx, departmentID)
	req.NoError(err)
	req.Empty(events)
}

func TestEventRepository_Delete_Absent_Fails(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	// When deleting an event that was never stored
	err := repo.Delete(context.Background(), domain.DepartmentID(uuid.NewString()), uuid.NewString())

	// Then the caller learns it
	req.ErrorIs(err, errors.ErrEventNotFound)
}
