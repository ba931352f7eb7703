package domain

import (
	"sort"
	"time"
)

// Event is one calendar entry of a department.
// EventDate and Time are kept as sortable strings ("2006-01-02", "15:04")
// so that ordering and range filtering are plain lexicographic comparisons.
type Event struct {
	ID           string       `json:"id"`
	DepartmentID DepartmentID `json:"department_id"`
	EventDate    string       `json:"event_date"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Time         string       `json:"time"`
	URL          string       `json:"url"`
	CreatedAt    time.Time    `json:"created_at"`
	LastModified time.Time    `json:"last_modified"`
}

// EventPatch is a partial update: only non-nil fields are applied.
type EventPatch struct {
	Title       *string
	Description *string
	Time        *string
	URL         *string
	EventDate   *string
}

func (p EventPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Time == nil &&
		p.URL == nil && p.EventDate == nil
}

// Apply returns a copy of e with the patched fields replaced.
// LastModified is the caller's responsibility.
func (p EventPatch) Apply(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.URL != nil {
		e.URL = *p.URL
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
	}
	return e
}

// SortEvents orders events ascending by (event_date, time).
func SortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].EventDate != events[j].EventDate {
			return events[i].EventDate < events[j].EventDate
		}
		return events[i].Time < events[j].Time
	})
}
