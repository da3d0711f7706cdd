package upstream

import (
	"context"
	"fmt"

	"osas/clubport/internal/models"
)

// AnnualPlansService fronts the upstream /annual-plans endpoint set.
type AnnualPlansService struct {
	client *Client
}

func (s *AnnualPlansService) List(ctx context.Context, q ListQuery) (*models.AnnualPlanPage, error) {
	var out models.AnnualPlanPage
	if err := s.client.get(ctx, "/annual-plans", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnnualPlansService) Get(ctx context.Context, id int64) (*models.AnnualPlan, error) {
	var out models.AnnualPlan
	if err := s.client.get(ctx, fmt.Sprintf("/annual-plans/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnnualPlansService) Create(ctx context.Context, plan map[string]interface{}) (*models.AnnualPlan, error) {
	var out models.AnnualPlan
	if err := s.client.post(ctx, "/annual-plans", plan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnnualPlansService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.AnnualPlan, error) {
	var out models.AnnualPlan
	if err := s.client.put(ctx, fmt.Sprintf("/annual-plans/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnnualPlansService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/annual-plans/%d", id), nil)
}

func (s *AnnualPlansService) Submit(ctx context.Context, id int64) (*models.AnnualPlan, error) {
	var out models.AnnualPlan
	if err := s.client.post(ctx, fmt.Sprintf("/annual-plans/%d/submit", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnnualPlansService) Approve(ctx context.Context, id int64, remark string) (*models.AnnualPlan, error) {
	return s.transition(ctx, id, "approve", remark)
}

func (s *AnnualPlansService) Reject(ctx context.Context, id int64, remark string) (*models.AnnualPlan, error) {
	return s.transition(ctx, id, "reject", remark)
}

func (s *AnnualPlansService) transition(ctx context.Context, id int64, action, remark string) (*models.AnnualPlan, error) {
	var body interface{}
	if remark != "" {
		body = map[string]string{"remark": remark}
	}
	var out models.AnnualPlan
	if err := s.client.post(ctx, fmt.Sprintf("/annual-plans/%d/%s", id, action), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnnualPlansService) UpdateRemarks(ctx context.Context, id int64, remarks []models.Remark) error {
	encoded, err := models.EncodeRemarks(remarks)
	if err != nil {
		return err
	}
	body := map[string]string{"remarks": encoded}
	return s.client.put(ctx, fmt.Sprintf("/annual-plans/%d/remarks", id), body, nil)
}
