package api

import (
	"net/http"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/services"
)

// ScopeHandler lets the frontend read and change the session's active club.
type ScopeHandler struct {
	scope *services.ScopeService
}

func NewScopeHandler(scope *services.ScopeService) *ScopeHandler {
	return &ScopeHandler{scope: scope}
}

// ScopeResponse carries the active club selection; zero means none.
type ScopeResponse struct {
	ClubID int64 `json:"club_id"`
}

// Get handles GET /scope.
func (h *ScopeHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())

	clubID, err := h.scope.Get(r.Context(), sess.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to read club scope")
		return
	}
	respondWithSuccess(w, http.StatusOK, &ScopeResponse{ClubID: clubID})
}

// Set handles PUT /scope.
func (h *ScopeHandler) Set(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())

	var req ScopeResponse
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ClubID <= 0 {
		respondWithError(w, http.StatusBadRequest, "club_id must be positive")
		return
	}

	if err := h.scope.Set(r.Context(), sess.ID, req.ClubID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to store club scope")
		return
	}
	respondWithSuccess(w, http.StatusOK, &req)
}

// Clear handles DELETE /scope.
func (h *ScopeHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := auth.GetSession(r.Context())

	if err := h.scope.Clear(r.Context(), sess.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to clear club scope")
		return
	}
	respondWithSuccess[struct{}](w, http.StatusOK, nil)
}
