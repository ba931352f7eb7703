package services

import (
	"calsync-lab/domain"
	"calsync-lab/domain/event"
	"calsync-lab/errors"
	"calsync-lab/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type eventServiceFixture struct {
	repository  *mocks.MockIEventRepository
	index       *mocks.MockIEventIndex
	broadcaster *mocks.MockIBroadcaster
	service     *EventService
}

func newEventServiceFixture(t *testing.T) eventServiceFixture {
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIEventRepository(ctrl)
	index := mocks.NewMockIEventIndex(ctrl)
	broadcaster := mocks.NewMockIBroadcaster(ctrl)
	return eventServiceFixture{
		repository:  repository,
		index:       index,
		broadcaster: broadcaster,
		service:     NewEventService(repository, index, broadcaster, slog.Default()),
	}
}

func TestEventService_Create_Broadcasts_To_The_Department_Group(t *testing.T) {
	req := require.New(t)
	f := newEventServiceFixture(t)
	ctx := context.Background()
	departmentID := domain.DepartmentID("cardiology")

	f.repository.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	f.index.EXPECT().IndexEvent(gomock.Any()).Return(nil)

	// Then the broadcast is scoped to the event's department
	f.broadcaster.EXPECT().BroadcastGroup(ctx, departmentID, gomock.Any()).
		Do(func(_ context.Context, _ domain.DepartmentID, e event.DomainEvent) {
			created, ok := e.(event.EventCreated)
			req.True(ok)
			req.Equal("Morning rounds", created.Event.Title)
		})

	// When creating the event
	evt, err := f.service.Create(ctx, domain.CreateEventCommand{
		DepartmentID: departmentID,
		EventDate:    "2026-09-01",
		Title:        "Morning rounds",
		Time:         "09:00",
	})

	req.NoError(err)
	req.NotEmpty(evt.ID)
	req.Equal(departmentID, evt.DepartmentID)
	req.Equal(evt.CreatedAt, evt.LastModified)
}

func TestEventService_Create_Index_Failure_Does_Not_Fail_The_Write(t *testing.T) {
	req := require.New(t)
	f := newEventServiceFixture(t)
	ctx := context.Background()
	departmentID := domain.DepartmentID("cardiology")

	f.repository.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	// Given the search index is unavailable
	f.index.EXPECT().IndexEvent(gomock.Any()).Return(fmt.Errorf("index closed"))
	f.broadcaster.EXPECT().BroadcastGroup(ctx, departmentID, gomock.Any())

	// When creating the event
	_, err := f.service.Create(ctx, domain.CreateEventCommand{
		DepartmentID: departmentID,
		EventDate:    "2026-09-01",
		Title:        "Morning rounds",
	})

	// Then the store stays the source of truth
	req.NoError(err)
}

func TestEventService_Update_Applies_Patch_And_Refreshes_LastModified(t *testing.T) {
	req := require.New(t)
	f := newEventServiceFixture(t)
	ctx := context.Background()
	departmentID := domain.DepartmentID("cardiology")
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	current := domain.Event{
		ID:           "evt-1",
		DepartmentID: departmentID,
		EventDate:    "2026-09-01",
		Title:        "Morning rounds",
		Time:         "09:00",
		CreatedAt:    created,
		LastModified: created,
	}
	f.repository.EXPECT().GetByID(ctx, "evt-1").Return(current, nil)

	var stored domain.Event
	f.repository.EXPECT().Put(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.Event) error {
			stored = e
			return nil
		})
	f.index.EXPECT().IndexEvent(gomock.Any()).Return(nil)
	f.broadcaster.EXPECT().BroadcastGroup(ctx, departmentID, gomock.Any()).
		Do(func(_ context.Context, _ domain.DepartmentID, e event.DomainEvent) {
			updated, ok := e.(event.EventUpdated)
			req.True(ok)
			req.Equal("Evening rounds", updated.Event.Title)
		})

	// When patching only the title and time
	updated, err := f.service.Update(ctx, "evt-1", domain.EventPatch{
		Title: lo.ToPtr("Evening rounds"),
		Time:  lo.ToPtr("18:00"),
	})

	// Then untouched fields survive and last_modified moves forward
	req.NoError(err)
	req.Equal("Evening rounds", updated.Title)
	req.Equal("18:00", updated.Time)
	req.Equal("2026-09-01", updated.EventDate)
	req.Equal(created, updated.CreatedAt)
	req.True(updated.LastModified.After(created))
	req.Equal(stored, updated)
}

func TestEventService_Update_Empty_Patch_Is_Rejected(t *testing.T) {
	req := require.New(t)
	f := newEventServiceFixture(t)

	// When updating with no fields at all
	_, err := f.service.Update(context.Background(), "evt-1", domain.EventPatch{})

	// Then the store is never touched
	req.ErrorIs(err, errors.ErrEmptyPatch)
}

func TestEventService_Update_Unknown_Event(t *testing.T) {
	req := require.New(t)
	f := newEventServiceFixture(t)
	ctx := context.Background()

	f.repository.EXPECT().GetByID(ctx, "missing").
		Return(domain.Event{}, errors.ErrEventNotFound)

	_, err := f.service.Update(ctx, "missing", domain.EventPatch{Title: lo.ToPtr("x")})
	req.ErrorIs(err, errors.ErrEventNotFound)
}

func TestEventService_Delete_Broadcasts_Identifiers_Only(t *testing.T) {
	req := require.New(t)
	f := newEventServiceFixture(t)
	ctx := context.Background()
	departmentID := domain.DepartmentID("cardiology")

	f.repository.EXPECT().GetByID(ctx, "evt-1").
		Return(domain.Event{ID: "evt-1", DepartmentID: departmentID}, nil)
	f.repository.EXPECT().Delete(ctx, departmentID, "evt-1").Return(nil)
	f.index.EXPECT().DeleteEvent("evt-1").Return(nil)

	// Then the notification carries the id and its department
	f.broadcaster.EXPECT().BroadcastGroup(ctx, departmentID, event.EventDeleted{
		ID:           "evt-1",
		DepartmentID: departmentID,
	})

	req.NoError(f.service.Delete(ctx, "evt-1"))
}

func TestEventService_Delete_Unknown_Event(t *testing.T) {
	req := require.New(t)
	f := newEventServiceFixture(t)
	ctx := context.Background()

	f.repository.EXPECT().GetByID(ctx, "missing").
		Return(domain.Event{}, errors.ErrEventNotFound)

	// When deleting an event that does not exist
	err := f.service.Delete(ctx, "missing")

	// Then nothing is broadcast
	req.ErrorIs(err, errors.ErrEventNotFound)
}

func TestEventService_Search_Skips_Stale_Index_Hits(t *testing.T) {
	req := require.New(t)
	f := newEventServiceFixture(t)
	ctx := context.Background()
	departmentID := domain.DepartmentID("cardiology")

	// Given the index still knows a deleted event
	f.index.EXPECT().Search(ctx, departmentID, "rounds", 20).
		Return([]string{"evt-2", "evt-gone", "evt-1"}, nil)
	f.repository.EXPECT().GetByID(ctx, "evt-2").
		Return(domain.Event{ID: "evt-2", DepartmentID: departmentID, EventDate: "2026-09-02"}, nil)
	f.repository.EXPECT().GetByID(ctx, "evt-gone").
		Return(domain.Event{}, errors.ErrEventNotFound)
	f.repository.EXPECT().GetByID(ctx, "evt-1").
		Return(domain.Event{ID: "evt-1", DepartmentID: departmentID, EventDate: "2026-09-01"}, nil)

	// When searching
	events, err := f.service.Search(ctx, departmentID, "rounds", 20)

	// Then the stale hit is dropped and results are in calendar order
	req.NoError(err)
	req.Len(events, 2)
	req.Equal("evt-1", events[0].ID)
	req.Equal("evt-2", events[1].ID)
}
