package api

import (
	"net/http"
	"strconv"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/services"
	"osas/clubport/internal/upstream"
)

// BadgesHandler serves the unread counters shown in the portal header: the
// remarks inbox across all filing pipelines plus notification stats.
type BadgesHandler struct {
	inbox *services.RemarksInbox
	scope *services.ScopeService
	api   *upstream.Client
}

func NewBadgesHandler(inbox *services.RemarksInbox, scope *services.ScopeService, api *upstream.Client) *BadgesHandler {
	return &BadgesHandler{inbox: inbox, scope: scope, api: api}
}

// Remarks handles GET /badges/remarks.
func (h *BadgesHandler) Remarks(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())

	clubID, err := h.scope.Get(r.Context(), sess.ID)
	if err != nil {
		logging.Debug("scope lookup failed", "error", err.Error())
	}

	summary, err := h.inbox.Summary(r.Context(), sess.UserID(), clubID)
	if err != nil {
		logging.Warn("remarks summary failed", "user_id", sess.UserID(), "error", err.Error())
		respondWithError(w, http.StatusBadGateway, "failed to aggregate remarks")
		return
	}
	respondWithSuccess(w, http.StatusOK, summary)
}

// MarkThreadRead handles POST /badges/remarks/read.
func (h *BadgesHandler) MarkThreadRead(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())

	var req struct {
		Kind string `json:"kind"`
		ID   int64  `json:"id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Kind == "" || req.ID == 0 {
		respondWithError(w, http.StatusBadRequest, "kind and id are required")
		return
	}

	if err := h.inbox.MarkThreadRead(r.Context(), sess.UserID(), req.Kind, req.ID); err != nil {
		respondWithError(w, http.StatusBadGateway, "failed to mark thread read")
		return
	}
	respondWithSuccess[struct{}](w, http.StatusOK, nil)
}

// MarkAllRead handles POST /badges/remarks/read-all.
func (h *BadgesHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())

	clubID, err := h.scope.Get(r.Context(), sess.ID)
	if err != nil {
		logging.Debug("scope lookup failed", "error", err.Error())
	}

	if err := h.inbox.MarkAllRead(r.Context(), sess.UserID(), clubID); err != nil {
		respondWithError(w, http.StatusBadGateway, "failed to mark remarks read")
		return
	}
	respondWithSuccess[struct{}](w, http.StatusOK, nil)
}

// Notifications handles GET /badges/notifications, relaying the upstream
// counter endpoint.
func (h *BadgesHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())

	stats, err := h.api.WithToken(sess.Token, "", nil).Notifications.Stats(r.Context())
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "failed to fetch notification stats")
		return
	}
	respondWithSuccess(w, http.StatusOK, stats)
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}
