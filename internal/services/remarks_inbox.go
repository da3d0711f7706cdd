package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/models"
	"osas/clubport/internal/upstream"
)

// Filing kinds aggregated by the remarks inbox.
const (
	KindActivityDesign     = "activity_design"
	KindUtilizationRequest = "utilization_request"
	KindLiquidationFund    = "liquidation_fund"
	KindAnnualPlan         = "annual_plan"
)

// Thread is one filing's remark conversation as seen by a user.
type Thread struct {
	Kind          string          `json:"kind"`
	ID            int64           `json:"id"`
	ReferenceCode string          `json:"reference_code,omitempty"`
	Title         string          `json:"title"`
	Status        string          `json:"status"`
	Remarks       []models.Remark `json:"remarks"`
	Unread        int             `json:"unread"`
}

// InboxSummary is the badge payload: unread counts per kind plus the total.
type InboxSummary struct {
	Total   int            `json:"total"`
	ByKind  map[string]int `json:"by_kind"`
	Threads []Thread       `json:"threads"`
}

// RemarksInbox aggregates remark threads across the four filing pipelines so
// the portal can show unread badges without the backend supporting them
// natively. A remark counts as unread when someone else wrote it and the
// viewing user is not on its read list.
type RemarksInbox struct {
	api *upstream.Client
}

func NewRemarksInbox(api *upstream.Client) *RemarksInbox {
	return &RemarksInbox{api: api}
}

func (ri *RemarksInbox) bound(ctx context.Context) (*upstream.Client, error) {
	token := auth.Token(ctx)
	if token == "" {
		return nil, errors.New("no session token in context")
	}
	return ri.api.WithToken(token, "", nil), nil
}

// Summary fetches the user's filings across all four pipelines concurrently
// and folds them into unread-badge counts. clubID of zero means no club
// filter.
func (ri *RemarksInbox) Summary(ctx context.Context, userID, clubID int64) (*InboxSummary, error) {
	client, err := ri.bound(ctx)
	if err != nil {
		return nil, err
	}
	q := upstream.ListQuery{Limit: 100}.WithClub(clubID)

	var (
		designs *models.ActivityDesignPage
		reqs    *models.UtilizationRequestPage
		funds   *models.LiquidationFundPage
		plans   *models.AnnualPlanPage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		designs, err = client.ActivityDesigns.List(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		reqs, err = client.UtilizationRequests.List(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		funds, err = client.LiquidationFunds.List(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		plans, err = client.AnnualPlans.List(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &InboxSummary{ByKind: map[string]int{}}
	for _, d := range designs.Data {
		summary.add(userID, Thread{
			Kind: KindActivityDesign, ID: d.ID, ReferenceCode: d.ReferenceCode,
			Title: d.NameOfActivity, Status: d.Status, Remarks: models.ParseRemarks(d.Remarks),
		})
	}
	for _, r := range reqs.Data {
		summary.add(userID, Thread{
			Kind: KindUtilizationRequest, ID: r.ID, ReferenceCode: r.ReferenceCode,
			Title: utilizationTitle(r), Status: r.Status, Remarks: models.ParseRemarks(r.Remarks),
		})
	}
	for _, f := range funds.Data {
		summary.add(userID, Thread{
			Kind: KindLiquidationFund, ID: f.ID, ReferenceCode: f.ReferenceCode,
			Title: liquidationTitle(f), Status: f.Status, Remarks: models.ParseRemarks(f.Remarks),
		})
	}
	for _, p := range plans.Data {
		summary.add(userID, Thread{
			Kind: KindAnnualPlan, ID: p.ID, ReferenceCode: p.ReferenceCode,
			Title: "Annual Plan " + p.SchoolYear, Status: p.Status, Remarks: models.ParseRemarks(p.Remarks),
		})
	}

	// Unread threads first, then by kind/id so the order is stable.
	sort.SliceStable(summary.Threads, func(i, j int) bool {
		a, b := summary.Threads[i], summary.Threads[j]
		if (a.Unread > 0) != (b.Unread > 0) {
			return a.Unread > 0
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.ID > b.ID
	})
	return summary, nil
}

func (s *InboxSummary) add(userID int64, t Thread) {
	for _, r := range t.Remarks {
		if !r.ReadByUser(userID) {
			t.Unread++
		}
	}
	s.ByKind[t.Kind] += t.Unread
	s.Total += t.Unread
	s.Threads = append(s.Threads, t)
}

// MarkThreadRead stamps the user onto the read list of every remark in one
// filing's thread and pushes the updated thread upstream.
func (ri *RemarksInbox) MarkThreadRead(ctx context.Context, userID int64, kind string, id int64) error {
	client, err := ri.bound(ctx)
	if err != nil {
		return err
	}

	switch kind {
	case KindActivityDesign:
		d, err := client.ActivityDesigns.Get(ctx, id)
		if err != nil {
			return err
		}
		updated, changed := markAllRead(models.ParseRemarks(d.Remarks), userID)
		if !changed {
			return nil
		}
		return client.ActivityDesigns.UpdateRemarks(ctx, id, updated)
	case KindUtilizationRequest:
		r, err := client.UtilizationRequests.Get(ctx, id)
		if err != nil {
			return err
		}
		updated, changed := markAllRead(models.ParseRemarks(r.Remarks), userID)
		if !changed {
			return nil
		}
		return client.UtilizationRequests.UpdateRemarks(ctx, id, updated)
	case KindLiquidationFund:
		f, err := client.LiquidationFunds.Get(ctx, id)
		if err != nil {
			return err
		}
		updated, changed := markAllRead(models.ParseRemarks(f.Remarks), userID)
		if !changed {
			return nil
		}
		return client.LiquidationFunds.UpdateRemarks(ctx, id, updated)
	case KindAnnualPlan:
		p, err := client.AnnualPlans.Get(ctx, id)
		if err != nil {
			return err
		}
		updated, changed := markAllRead(models.ParseRemarks(p.Remarks), userID)
		if !changed {
			return nil
		}
		return client.AnnualPlans.UpdateRemarks(ctx, id, updated)
	}
	return fmt.Errorf("unknown filing kind %q", kind)
}

// MarkAllRead clears the user's unread badges across every thread that still
// carries unread remarks. A thread that fails to update is skipped so one
// broken filing can't keep the rest of the inbox unread.
func (ri *RemarksInbox) MarkAllRead(ctx context.Context, userID, clubID int64) error {
	summary, err := ri.Summary(ctx, userID, clubID)
	if err != nil {
		return err
	}
	for _, t := range summary.Threads {
		if t.Unread == 0 {
			continue
		}
		if err := ri.MarkThreadRead(ctx, userID, t.Kind, t.ID); err != nil {
			logging.Warn("failed to mark thread read",
				"kind", t.Kind, "id", t.ID, "error", err.Error())
		}
	}
	return nil
}

func markAllRead(remarks []models.Remark, userID int64) ([]models.Remark, bool) {
	changed := false
	out := make([]models.Remark, len(remarks))
	for i, r := range remarks {
		out[i] = r.MarkRead(userID)
		if !r.ReadByUser(userID) {
			changed = true
		}
	}
	return out, changed
}

func utilizationTitle(r models.UtilizationRequest) string {
	if r.ActivityDesign != nil && r.ActivityDesign.NameOfActivity != "" {
		return r.ActivityDesign.NameOfActivity
	}
	return "Utilization Request " + r.ReferenceCode
}

func liquidationTitle(f models.LiquidationFund) string {
	if f.ActivityDesign != nil && f.ActivityDesign.NameOfActivity != "" {
		return f.ActivityDesign.NameOfActivity
	}
	return "Liquidation " + f.ReferenceCode
}
