package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/docs"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/upstream"
)

// DocsHandler renders approved filings into downloadable PDF documents.
type DocsHandler struct {
	renderer *docs.Renderer
	api      *upstream.Client
}

func NewDocsHandler(renderer *docs.Renderer, api *upstream.Client) *DocsHandler {
	return &DocsHandler{renderer: renderer, api: api}
}

// Render handles GET /docs/{kind}/{id}/pdf.
func (h *DocsHandler) Render(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "invalid document id")
		return
	}
	kind := chi.URLParam(r, "kind")

	sess := auth.GetSession(r.Context())
	client := h.api.WithToken(sess.Token, "", nil)

	var (
		pdf      []byte
		filename string
		err      error
	)
	switch kind {
	case "activity-design":
		design, ferr := client.ActivityDesigns.Get(r.Context(), id)
		if ferr != nil {
			err = ferr
			break
		}
		pdf, err = h.renderer.ActivityDesign(design, h.clubName(r, client, design.ClubID))
		filename = fmt.Sprintf("activity-design-%s.pdf", design.ReferenceCode)
	case "utilization-request":
		ur, ferr := client.UtilizationRequests.Get(r.Context(), id)
		if ferr != nil {
			err = ferr
			break
		}
		pdf, err = h.renderer.UtilizationRequest(ur, h.clubName(r, client, ur.ClubID))
		filename = fmt.Sprintf("utilization-request-%s.pdf", ur.ReferenceCode)
	case "liquidation-fund":
		fund, ferr := client.LiquidationFunds.Get(r.Context(), id)
		if ferr != nil {
			err = ferr
			break
		}
		pdf, err = h.renderer.LiquidationFund(fund, h.clubName(r, client, fund.ClubID))
		filename = fmt.Sprintf("liquidation-fund-%s.pdf", fund.ReferenceCode)
	default:
		respondWithError(w, http.StatusNotFound, "unknown document kind")
		return
	}

	if err != nil {
		if upstream.IsStatus(err, http.StatusNotFound) {
			respondWithError(w, http.StatusNotFound, "filing not found")
			return
		}
		logging.Error("document render failed", "kind", kind, "id", id, "error", err.Error())
		respondWithError(w, http.StatusInternalServerError, "failed to render document")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(pdf)
}

// clubName resolves the club's display name for the document header; a
// failed lookup just leaves it blank.
func (h *DocsHandler) clubName(r *http.Request, client *upstream.Client, clubID int64) string {
	if clubID == 0 {
		return ""
	}
	club, err := client.Clubs.Get(r.Context(), clubID)
	if err != nil {
		return ""
	}
	return club.Name
}
