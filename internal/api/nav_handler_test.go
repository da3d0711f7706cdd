package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"osas/clubport/internal/db/repositories"
)

type fakeAuditLog struct {
	gotUserID *int64
	gotLimit  int
	events    []repositories.NavigationEvent
}

func (f *fakeAuditLog) Recent(_ context.Context, userID *int64, limit int) ([]repositories.NavigationEvent, error) {
	f.gotUserID = userID
	f.gotLimit = limit
	return f.events, nil
}

func TestRecentEventsPassesFilters(t *testing.T) {
	fake := &fakeAuditLog{events: []repositories.NavigationEvent{
		{ToRoute: "session-logs", Decision: "proceed"},
	}}
	h := NewNavHandler(nil, nil, fake)

	req := httptest.NewRequest(http.MethodGet, "/audit/navigation?user_id=42&limit=5", nil)
	rec := httptest.NewRecorder()
	h.RecentEvents(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	if fake.gotUserID == nil || *fake.gotUserID != 42 {
		t.Fatalf("user filter not passed through: %v", fake.gotUserID)
	}
	if fake.gotLimit != 5 {
		t.Fatalf("limit not passed through: %d", fake.gotLimit)
	}

	var resp APIResponse[AuditEventsResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if len(resp.Data.Events) != 1 || resp.Data.Events[0].ToRoute != "session-logs" {
		t.Fatalf("events not relayed: %+v", resp.Data)
	}
}

func TestRecentEventsRejectsBadUserID(t *testing.T) {
	h := NewNavHandler(nil, nil, &fakeAuditLog{})

	req := httptest.NewRequest(http.MethodGet, "/audit/navigation?user_id=zero", nil)
	rec := httptest.NewRecorder()
	h.RecentEvents(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a bad user_id, got %d", rec.Code)
	}
}

func TestRecentEventsWithoutAuditLog(t *testing.T) {
	h := NewNavHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/audit/navigation", nil)
	rec := httptest.NewRecorder()
	h.RecentEvents(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when auditing is disabled, got %d", rec.Code)
	}
}
