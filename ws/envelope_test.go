package ws

import (
	"calsync-lab/domain"
	"calsync-lab/domain/event"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, envelope Envelope) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	return payload
}

func TestEncode_EventCreated_Carries_The_Full_Record(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	evt := domain.Event{
		ID:           "evt-1",
		DepartmentID: "cardiology",
		EventDate:    "2026-09-01",
		Title:        "Morning rounds",
		Time:         "09:00",
		CreatedAt:    now,
		LastModified: now,
	}

	envelope, err := Encode(event.EventCreated{Event: evt})
	req.NoError(err)
	req.Equal("event_created", envelope.Type)

	payload := decodePayload(t, envelope)
	req.Equal("evt-1", payload["id"])
	req.Equal("cardiology", payload["department_id"])
	req.Equal("2026-09-01", payload["event_date"])
	req.Equal("Morning rounds", payload["title"])
	req.Contains(payload, "last_modified")
}

func TestEncode_EventDeleted_Carries_Identifiers_Only(t *testing.T) {
	req := require.New(t)

	envelope, err := Encode(event.EventDeleted{ID: "evt-1", DepartmentID: "cardiology"})
	req.NoError(err)
	req.Equal("event_deleted", envelope.Type)

	payload := decodePayload(t, envelope)
	req.Equal(map[string]any{
		"id":            "evt-1",
		"department_id": "cardiology",
	}, payload)
}

func TestEncode_DepartmentDeleted_Carries_The_ID(t *testing.T) {
	req := require.New(t)

	envelope, err := Encode(event.DepartmentDeleted{ID: "dept-1"})
	req.NoError(err)
	req.Equal("department_deleted", envelope.Type)
	req.Equal(map[string]any{"id": "dept-1"}, decodePayload(t, envelope))
}

func TestEncode_Membership_Acks(t *testing.T) {
	req := require.New(t)

	joined, err := Encode(event.JoinedDepartment{DepartmentID: "cardiology", Message: "joined department group"})
	req.NoError(err)
	req.Equal("joined_department", joined.Type)
	req.Equal(map[string]any{
		"department_id": "cardiology",
		"message":       "joined department group",
	}, decodePayload(t, joined))

	left, err := Encode(event.LeftDepartment{DepartmentID: "cardiology", Message: "left department group"})
	req.NoError(err)
	req.Equal("left_department", left.Type)
}

func TestEncode_SyncResponse_Embeds_The_Event_List(t *testing.T) {
	req := require.New(t)

	envelope, err := Encode(event.SyncResponse{
		DepartmentID: "cardiology",
		Events: []domain.Event{
			{ID: "evt-1", DepartmentID: "cardiology", EventDate: "2026-09-01"},
			{ID: "evt-2", DepartmentID: "cardiology", EventDate: "2026-09-02"},
		},
	})
	req.NoError(err)
	req.Equal("sync_response", envelope.Type)

	payload := decodePayload(t, envelope)
	req.Equal("cardiology", payload["department_id"])
	req.Len(payload["events"], 2)
}

func TestEncode_Error_And_Connected(t *testing.T) {
	req := require.New(t)

	errEnvelope, err := Encode(event.Error{Message: "department_id is required"})
	req.NoError(err)
	req.Equal("error", errEnvelope.Type)
	req.Equal(map[string]any{"message": "department_id is required"}, decodePayload(t, errEnvelope))

	connected, err := Encode(event.Connected{Message: "hello"})
	req.NoError(err)
	req.Equal("connected", connected.Type)
}
