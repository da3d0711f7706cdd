package upstream

import (
	"context"
	"fmt"

	"osas/clubport/internal/models"
)

// LiquidationFundsService fronts the upstream /liquidation-funds endpoint set.
type LiquidationFundsService struct {
	client *Client
}

func (s *LiquidationFundsService) List(ctx context.Context, q ListQuery) (*models.LiquidationFundPage, error) {
	var out models.LiquidationFundPage
	if err := s.client.get(ctx, "/liquidation-funds", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LiquidationFundsService) Get(ctx context.Context, id int64) (*models.LiquidationFund, error) {
	var out models.LiquidationFund
	if err := s.client.get(ctx, fmt.Sprintf("/liquidation-funds/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LiquidationFundsService) Create(ctx context.Context, fund map[string]interface{}) (*models.LiquidationFund, error) {
	var out models.LiquidationFund
	if err := s.client.post(ctx, "/liquidation-funds", fund, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LiquidationFundsService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.LiquidationFund, error) {
	var out models.LiquidationFund
	if err := s.client.put(ctx, fmt.Sprintf("/liquidation-funds/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LiquidationFundsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/liquidation-funds/%d", id), nil)
}

func (s *LiquidationFundsService) Submit(ctx context.Context, id int64) (*models.LiquidationFund, error) {
	var out models.LiquidationFund
	if err := s.client.post(ctx, fmt.Sprintf("/liquidation-funds/%d/submit", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LiquidationFundsService) Approve(ctx context.Context, id int64, remark string) (*models.LiquidationFund, error) {
	return s.transition(ctx, id, "approve", remark)
}

func (s *LiquidationFundsService) Reject(ctx context.Context, id int64, remark string) (*models.LiquidationFund, error) {
	return s.transition(ctx, id, "reject", remark)
}

func (s *LiquidationFundsService) Cancel(ctx context.Context, id int64, remark string) (*models.LiquidationFund, error) {
	return s.transition(ctx, id, "cancel", remark)
}

func (s *LiquidationFundsService) transition(ctx context.Context, id int64, action, remark string) (*models.LiquidationFund, error) {
	var body interface{}
	if remark != "" {
		body = map[string]string{"remark": remark}
	}
	var out models.LiquidationFund
	if err := s.client.post(ctx, fmt.Sprintf("/liquidation-funds/%d/%s", id, action), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LiquidationFundsService) UpdateRemarks(ctx context.Context, id int64, remarks []models.Remark) error {
	encoded, err := models.EncodeRemarks(remarks)
	if err != nil {
		return err
	}
	body := map[string]string{"remarks": encoded}
	return s.client.put(ctx, fmt.Sprintf("/liquidation-funds/%d/remarks", id), body, nil)
}

func (s *LiquidationFundsService) Attachments(ctx context.Context, id int64) ([]models.Attachment, error) {
	var out []models.Attachment
	if err := s.client.get(ctx, fmt.Sprintf("/liquidation-funds/%d/attachments", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LiquidationFundsService) AddAttachment(ctx context.Context, id int64, fileName, fileBase64 string) (*models.Attachment, error) {
	body := map[string]string{"file_name": fileName, "file": fileBase64}
	var out models.Attachment
	if err := s.client.post(ctx, fmt.Sprintf("/liquidation-funds/%d/attachments", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LiquidationFundsService) DeleteAttachment(ctx context.Context, id, attachmentID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/liquidation-funds/%d/attachments/%d", id, attachmentID), nil)
}
