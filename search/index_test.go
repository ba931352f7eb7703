package search

import (
	"calsync-lab/domain"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	index, err := InMemory(slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })
	return index
}

func TestIndex_Search_Matches_Title_And_Description(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	ctx := context.Background()
	departmentID := domain.DepartmentID(uuid.NewString())

	// Given events with the term in different fields
	req.NoError(index.IndexEvent(domain.Event{
		ID:           "evt-title",
		DepartmentID: departmentID,
		Title:        "Morning rounds",
	}))
	req.NoError(index.IndexEvent(domain.Event{
		ID:           "evt-desc",
		DepartmentID: departmentID,
		Title:        "Handover",
		Description:  "Rounds of the night shift",
	}))
	req.NoError(index.IndexEvent(domain.Event{
		ID:           "evt-other",
		DepartmentID: departmentID,
		Title:        "Budget meeting",
	}))

	// When searching the department
	ids, err := index.Search(ctx, departmentID, "rounds", 10)

	// Then both field matches are found
	req.NoError(err)
	req.Len(ids, 2)
	req.Contains(ids, "evt-title")
	req.Contains(ids, "evt-desc")
}

func TestIndex_Search_Is_Scoped_To_The_Department(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	ctx := context.Background()
	cardiology := domain.DepartmentID(uuid.NewString())
	surgery := domain.DepartmentID(uuid.NewString())

	// Given the same term in two departments
	req.NoError(index.IndexEvent(domain.Event{
		ID:           "evt-cardio",
		DepartmentID: cardiology,
		Title:        "Morning rounds",
	}))
	req.NoError(index.IndexEvent(domain.Event{
		ID:           "evt-surgery",
		DepartmentID: surgery,
		Title:        "Morning rounds",
	}))

	// When searching one department
	ids, err := index.Search(ctx, cardiology, "rounds", 10)

	// Then the other department's events stay invisible
	req.NoError(err)
	req.Equal([]string{"evt-cardio"}, ids)
}

func TestIndex_IndexEvent_Is_An_Upsert(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	ctx := context.Background()
	departmentID := domain.DepartmentID(uuid.NewString())

	// Given an event indexed twice with different titles
	evt := domain.Event{ID: "evt-1", DepartmentID: departmentID, Title: "Draft title"}
	req.NoError(index.IndexEvent(evt))
	evt.Title = "Final review"
	req.NoError(index.IndexEvent(evt))

	// Then only the latest version matches
	ids, err := index.Search(ctx, departmentID, "draft", 10)
	req.NoError(err)
	req.Empty(ids)

	ids, err = index.Search(ctx, departmentID, "review", 10)
	req.NoError(err)
	req.Equal([]string{"evt-1"}, ids)
}

func TestIndex_DeleteEvent_Removes_The_Document(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)
	ctx := context.Background()
	departmentID := domain.DepartmentID(uuid.NewString())

	req.NoError(index.IndexEvent(domain.Event{
		ID:           "evt-1",
		DepartmentID: departmentID,
		Title:        "Morning rounds",
	}))

	// When deleting it
	req.NoError(index.DeleteEvent("evt-1"))

	// Then it no longer matches
	ids, err := index.Search(ctx, departmentID, "rounds", 10)
	req.NoError(err)
	req.Empty(ids)
}
