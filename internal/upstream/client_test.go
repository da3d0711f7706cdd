package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"osas/clubport/internal/models"
)

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Email: "a@b.c"})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil).WithToken("tok-123", "", nil)
	if _, err := client.Users.Get(context.Background(), 1); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestAnonymousClientSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil)
	if err := client.Auth.ForgotPassword(context.Background(), "a@b.c"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestRefreshRetryOn401(t *testing.T) {
	var refreshed bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["refreshToken"] != "refresh-1" {
				t.Errorf("unexpected refresh token %q", body["refreshToken"])
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok-new"})
		case "/users/1":
			if r.Header.Get("Authorization") == "Bearer tok-old" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
				return
			}
			_ = json.NewEncoder(w).Encode(models.User{ID: 1})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil).WithToken("tok-old", "refresh-1", func(newToken string) {
		refreshed = newToken == "tok-new"
	})

	user, err := client.Users.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("unexpected user %+v", user)
	}
	if !refreshed {
		t.Fatal("onRefresh callback not invoked with new token")
	}
}

func TestNoRefreshLoopOnRefreshEndpoint(t *testing.T) {
	var refreshCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshCalls++
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil).WithToken("tok", "bad-refresh", nil)
	if _, err := client.Auth.Refresh(context.Background(), "bad-refresh"); err == nil {
		t.Fatal("expected refresh to fail")
	}
	if refreshCalls != 1 {
		t.Fatalf("refresh endpoint must not retry itself, got %d calls", refreshCalls)
	}
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "already exists"})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, nil)
	err := client.Auth.Register(context.Background(), RegisterRequest{Email: "a@b.c"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsStatus(err, http.StatusConflict) {
		t.Fatalf("expected 409, got %v", err)
	}
	apiErr := err.(*APIError)
	if apiErr.Message != "already exists" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestListQueryDropsZeroValues(t *testing.T) {
	q := ListQuery{Page: 2, Limit: 25, Order: "desc", ClubID: 9}
	v := q.Values()

	if v.Get("page") != "2" || v.Get("limit") != "25" {
		t.Fatalf("pagination not encoded: %v", v)
	}
	if v.Get("order") != "DESC" {
		t.Fatalf("order must be upper-cased, got %q", v.Get("order"))
	}
	if v.Get("club_id") != "9" {
		t.Fatalf("club filter missing: %v", v)
	}
	for _, absent := range []string{"sort", "q", "status"} {
		if _, ok := v[absent]; ok {
			t.Errorf("zero-valued %q must be dropped", absent)
		}
	}
}

func TestWithClubDoesNotOverrideExplicitFilter(t *testing.T) {
	q := ListQuery{ClubID: 3}.WithClub(9)
	if q.ClubID != 3 {
		t.Fatalf("explicit club filter overridden: %d", q.ClubID)
	}
	if q := (ListQuery{}).WithClub(9); q.ClubID != 9 {
		t.Fatalf("scope not applied: %d", q.ClubID)
	}
}

func TestParseSSOFragment(t *testing.T) {
	frag := "#sso=google&accessToken=tok&refreshToken=ref&id=12&email=a%40b.c&role=student&first_name=Juan&twoFAEnabled=0"
	res := ParseSSOFragment(frag)

	if res.Provider != "google" || res.AccessToken != "tok" || res.RefreshToken != "ref" {
		t.Fatalf("tokens not parsed: %+v", res)
	}
	if res.Userdata == nil || res.Userdata.ID != 12 || res.Userdata.Email != "a@b.c" {
		t.Fatalf("userdata not parsed: %+v", res.Userdata)
	}
	if res.Userdata.Role != "student" {
		t.Fatalf("role not parsed: %q", res.Userdata.Role)
	}
}

func TestParseSSOFragmentEmptyAndError(t *testing.T) {
	if res := ParseSSOFragment("#/dashboard"); res.AccessToken != "" || res.Userdata != nil {
		t.Fatalf("plain route fragment must parse empty: %+v", res)
	}
	if res := ParseSSOFragment("sso=google&error=denied"); res.Error != "denied" {
		t.Fatalf("error not surfaced: %+v", res)
	}
}
