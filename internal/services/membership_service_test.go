package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"osas/clubport/internal/models"
	"osas/clubport/internal/upstream"
)

func TestUserClubsMapsMemberships(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/42/clubs" {
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("missing bearer: %q", got)
		}
		_ = json.NewEncoder(w).Encode(models.UserClubs{Clubs: []models.Club{
			{ID: 7, Name: "Chess Club", Membership: &models.ClubMembership{Role: "President", Status: "active"}},
			{ID: 8, Name: "Glee Club", Membership: &models.ClubMembership{Role: "member", Status: "active"}},
			{ID: 9, Name: "Orphan Club"}, // no membership block
		}})
	}))
	defer srv.Close()

	svc := NewMembershipService(upstream.New(srv.URL, 5*time.Second, nil))
	memberships, err := svc.UserClubs(authedContext("tok", 42), 42)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if len(memberships) != 2 {
		t.Fatalf("expected 2 memberships, got %d", len(memberships))
	}
	if memberships[0].ClubID != 7 || memberships[0].Role != "President" {
		t.Fatalf("first membership mangled: %+v", memberships[0])
	}
}

func TestUserClubsRequiresToken(t *testing.T) {
	svc := NewMembershipService(upstream.New("http://localhost:0", time.Second, nil))
	if _, err := svc.UserClubs(context.Background(), 42); err == nil {
		t.Fatal("expected error without session token")
	}
}
