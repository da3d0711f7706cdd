package upstream

import (
	"context"
	"fmt"

	"osas/clubport/internal/models"
)

// ActivityDesignsService fronts the upstream /activity-designs endpoint set.
type ActivityDesignsService struct {
	client *Client
}

func (s *ActivityDesignsService) List(ctx context.Context, q ListQuery) (*models.ActivityDesignPage, error) {
	var out models.ActivityDesignPage
	if err := s.client.get(ctx, "/activity-designs", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ActivityDesignsService) Get(ctx context.Context, id int64) (*models.ActivityDesign, error) {
	var out models.ActivityDesign
	if err := s.client.get(ctx, fmt.Sprintf("/activity-designs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ActivityDesignsService) Create(ctx context.Context, design map[string]interface{}) (*models.ActivityDesign, error) {
	var out models.ActivityDesign
	if err := s.client.post(ctx, "/activity-designs", design, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ActivityDesignsService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ActivityDesign, error) {
	var out models.ActivityDesign
	if err := s.client.put(ctx, fmt.Sprintf("/activity-designs/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ActivityDesignsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/activity-designs/%d", id), nil)
}

// Submit moves a draft into the review pipeline.
func (s *ActivityDesignsService) Submit(ctx context.Context, id int64) (*models.ActivityDesign, error) {
	var out models.ActivityDesign
	if err := s.client.post(ctx, fmt.Sprintf("/activity-designs/%d/submit", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ActivityDesignsService) Approve(ctx context.Context, id int64, remark string) (*models.ActivityDesign, error) {
	return s.transition(ctx, id, "approve", remark)
}

func (s *ActivityDesignsService) Reject(ctx context.Context, id int64, remark string) (*models.ActivityDesign, error) {
	return s.transition(ctx, id, "reject", remark)
}

func (s *ActivityDesignsService) Cancel(ctx context.Context, id int64, remark string) (*models.ActivityDesign, error) {
	return s.transition(ctx, id, "cancel", remark)
}

func (s *ActivityDesignsService) transition(ctx context.Context, id int64, action, remark string) (*models.ActivityDesign, error) {
	var body interface{}
	if remark != "" {
		body = map[string]string{"remark": remark}
	}
	var out models.ActivityDesign
	if err := s.client.post(ctx, fmt.Sprintf("/activity-designs/%d/%s", id, action), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRemarks replaces the remarks thread on the filing. The thread is
// stored upstream as a JSON string, so it is re-encoded here.
func (s *ActivityDesignsService) UpdateRemarks(ctx context.Context, id int64, remarks []models.Remark) error {
	encoded, err := models.EncodeRemarks(remarks)
	if err != nil {
		return err
	}
	body := map[string]string{"remarks": encoded}
	return s.client.put(ctx, fmt.Sprintf("/activity-designs/%d/remarks", id), body, nil)
}

func (s *ActivityDesignsService) Attachments(ctx context.Context, id int64) ([]models.Attachment, error) {
	var out []models.Attachment
	if err := s.client.get(ctx, fmt.Sprintf("/activity-designs/%d/attachments", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ActivityDesignsService) AddAttachment(ctx context.Context, id int64, fileName, fileBase64 string) (*models.Attachment, error) {
	body := map[string]string{"file_name": fileName, "file": fileBase64}
	var out models.Attachment
	if err := s.client.post(ctx, fmt.Sprintf("/activity-designs/%d/attachments", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ActivityDesignsService) DeleteAttachment(ctx context.Context, id, attachmentID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/activity-designs/%d/attachments/%d", id, attachmentID), nil)
}
