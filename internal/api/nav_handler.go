package api

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/constants"
	"osas/clubport/internal/db/repositories"
	"osas/clubport/internal/guard"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/routes"
	"osas/clubport/internal/workers"
)

// AuditLog reads back recorded navigation events.
type AuditLog interface {
	Recent(ctx context.Context, userID *int64, limit int) ([]repositories.NavigationEvent, error)
}

// NavHandler answers the frontend's navigation questions: the route table on
// boot, one authorization verdict per route change, and the audit trail for
// administrators.
type NavHandler struct {
	guard *guard.Guard
	audit *workers.AuditFlusher
	log   AuditLog // nil when auditing is disabled
}

func NewNavHandler(g *guard.Guard, audit *workers.AuditFlusher, log AuditLog) *NavHandler {
	return &NavHandler{guard: g, audit: audit, log: log}
}

// RoutesResponse carries the static route table.
type RoutesResponse struct {
	Routes []*routes.Route `json:"routes"`
}

// Routes handles GET /nav/routes.
func (h *NavHandler) Routes(w http.ResponseWriter, r *http.Request) {
	respondWithSuccess(w, http.StatusOK, &RoutesResponse{Routes: h.guard.Table().All()})
}

// AuthorizeRequest names the navigation being attempted. Either symbolic
// route names or paths are accepted.
type AuthorizeRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
}

// AuthorizeResponse is the guard's verdict.
type AuthorizeResponse struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

// Authorize handles POST /nav/authorize.
func (h *NavHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	var req AuthorizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	table := h.guard.Table()
	from := h.lookup(table, req.From)
	to := h.lookup(table, req.To)
	sess := auth.GetSession(r.Context())

	decision := h.guard.Authorize(r.Context(), from, to, sess)
	h.record(r, req, decision)

	respondWithSuccess(w, http.StatusOK, &AuthorizeResponse{
		Allowed:  decision.Allowed(),
		Redirect: decision.Redirect,
	})
}

// lookup resolves a route reference by name first, then by path. Unknown
// references resolve to the not-found route so the guard still sees a
// concrete target.
func (h *NavHandler) lookup(table *routes.Table, ref string) *routes.Route {
	if ref == "" {
		return nil
	}
	if rt, ok := table.ByName(ref); ok {
		return rt
	}
	if rt, ok := table.ByPath(ref); ok {
		return rt
	}
	rt, _ := table.ByName(constants.RouteNotFound)
	return rt
}

// AuditEventsResponse carries a page of the navigation audit trail.
type AuditEventsResponse struct {
	Events []repositories.NavigationEvent `json:"events"`
}

// RecentEvents handles GET /audit/navigation (admin only). Optional query
// params: user_id to filter, limit to cap the page.
func (h *NavHandler) RecentEvents(w http.ResponseWriter, r *http.Request) {
	if h.log == nil {
		respondWithError(w, http.StatusServiceUnavailable, "navigation auditing is disabled")
		return
	}

	var userID *int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondWithError(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		userID = &id
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.log.Recent(r.Context(), userID, limit)
	if err != nil {
		logging.Warn("audit trail query failed", "error", err.Error())
		respondWithError(w, http.StatusInternalServerError, "failed to read audit trail")
		return
	}
	respondWithSuccess(w, http.StatusOK, &AuditEventsResponse{Events: events})
}

func (h *NavHandler) record(r *http.Request, req AuthorizeRequest, decision guard.Decision) {
	ev := repositories.NavigationEvent{
		RequestID: auth.RequestID(r.Context()),
		FromRoute: req.From,
		ToRoute:   req.To,
		Decision:  "proceed",
		Redirect:  decision.Redirect,
		CreatedAt: time.Now().UTC(),
	}
	if !decision.Allowed() {
		ev.Decision = "redirect"
	}
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ev.IP = ip
	} else {
		ev.IP = r.RemoteAddr
	}
	if s := auth.GetSession(r.Context()); s != nil {
		ev.SessionID = s.ID
		if id := s.UserID(); id != 0 {
			ev.UserID = &id
		}
		ev.UserRole = s.BaseRole().String()
	}
	h.audit.Record(ev)
}
