package upstream

import (
	"context"
	"fmt"
	"net/url"

	"osas/clubport/internal/models"
)

// UtilizationRequestsService fronts the upstream /utilization-requests
// endpoint set.
type UtilizationRequestsService struct {
	client *Client
}

func (s *UtilizationRequestsService) List(ctx context.Context, q ListQuery) (*models.UtilizationRequestPage, error) {
	var out models.UtilizationRequestPage
	if err := s.client.get(ctx, "/utilization-requests", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UtilizationRequestsService) Get(ctx context.Context, id int64) (*models.UtilizationRequest, error) {
	var out models.UtilizationRequest
	if err := s.client.get(ctx, fmt.Sprintf("/utilization-requests/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UtilizationRequestsService) Create(ctx context.Context, req map[string]interface{}) (*models.UtilizationRequest, error) {
	var out models.UtilizationRequest
	if err := s.client.post(ctx, "/utilization-requests", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UtilizationRequestsService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.UtilizationRequest, error) {
	var out models.UtilizationRequest
	if err := s.client.put(ctx, fmt.Sprintf("/utilization-requests/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UtilizationRequestsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/utilization-requests/%d", id), nil)
}

func (s *UtilizationRequestsService) Submit(ctx context.Context, id int64) (*models.UtilizationRequest, error) {
	var out models.UtilizationRequest
	if err := s.client.post(ctx, fmt.Sprintf("/utilization-requests/%d/submit", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UtilizationRequestsService) Approve(ctx context.Context, id int64, remark string) (*models.UtilizationRequest, error) {
	return s.transition(ctx, id, "approve", remark)
}

func (s *UtilizationRequestsService) Reject(ctx context.Context, id int64, remark string) (*models.UtilizationRequest, error) {
	return s.transition(ctx, id, "reject", remark)
}

func (s *UtilizationRequestsService) Cancel(ctx context.Context, id int64, remark string) (*models.UtilizationRequest, error) {
	return s.transition(ctx, id, "cancel", remark)
}

func (s *UtilizationRequestsService) transition(ctx context.Context, id int64, action, remark string) (*models.UtilizationRequest, error) {
	var body interface{}
	if remark != "" {
		body = map[string]string{"remark": remark}
	}
	var out models.UtilizationRequest
	if err := s.client.post(ctx, fmt.Sprintf("/utilization-requests/%d/%s", id, action), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UtilizationRequestsService) UpdateRemarks(ctx context.Context, id int64, remarks []models.Remark) error {
	encoded, err := models.EncodeRemarks(remarks)
	if err != nil {
		return err
	}
	body := map[string]string{"remarks": encoded}
	return s.client.put(ctx, fmt.Sprintf("/utilization-requests/%d/remarks", id), body, nil)
}

// CheckAvailability probes whether the requested facilities are free in the
// given window. Dates are YYYY-MM-DD, times HH:MM.
func (s *UtilizationRequestsService) CheckAvailability(ctx context.Context, startDate, startTime, endDate, endTime string, facilityIDs []int64) (*models.AvailabilityResult, error) {
	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("start_time", startTime)
	q.Set("end_date", endDate)
	q.Set("end_time", endTime)
	for _, id := range facilityIDs {
		q.Add("facility_id", fmt.Sprintf("%d", id))
	}
	var out models.AvailabilityResult
	if err := s.client.get(ctx, "/utilization-requests/availability", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UtilizationRequestsService) Attachments(ctx context.Context, id int64) ([]models.Attachment, error) {
	var out []models.Attachment
	if err := s.client.get(ctx, fmt.Sprintf("/utilization-requests/%d/attachments", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UtilizationRequestsService) AddAttachment(ctx context.Context, id int64, fileName, fileBase64 string) (*models.Attachment, error) {
	body := map[string]string{"file_name": fileName, "file": fileBase64}
	var out models.Attachment
	if err := s.client.post(ctx, fmt.Sprintf("/utilization-requests/%d/attachments", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UtilizationRequestsService) DeleteAttachment(ctx context.Context, id, attachmentID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/utilization-requests/%d/attachments/%d", id, attachmentID), nil)
}
