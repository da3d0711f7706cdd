package upstream

import (
	"context"
	"fmt"

	"osas/clubport/internal/models"
)

// GrievancesService fronts the upstream /grievances endpoint set.
type GrievancesService struct {
	client *Client
}

func (s *GrievancesService) List(ctx context.Context, q ListQuery) (*models.GrievancePage, error) {
	var out models.GrievancePage
	if err := s.client.get(ctx, "/grievances", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GrievancesService) Get(ctx context.Context, id int64) (*models.Grievance, error) {
	var out models.Grievance
	if err := s.client.get(ctx, fmt.Sprintf("/grievances/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GrievancesService) Create(ctx context.Context, grievance map[string]interface{}) (*models.Grievance, error) {
	var out models.Grievance
	if err := s.client.post(ctx, "/grievances", grievance, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GrievancesService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Grievance, error) {
	var out models.Grievance
	if err := s.client.put(ctx, fmt.Sprintf("/grievances/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GrievancesService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/grievances/%d", id), nil)
}

// Resolve closes a grievance with a resolution note.
func (s *GrievancesService) Resolve(ctx context.Context, id int64, resolution string) (*models.Grievance, error) {
	body := map[string]string{"resolution": resolution}
	var out models.Grievance
	if err := s.client.post(ctx, fmt.Sprintf("/grievances/%d/resolve", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GrievancesService) AddAttachment(ctx context.Context, id int64, name, data string) error {
	body := map[string]string{"name": name, "data": data}
	return s.client.post(ctx, fmt.Sprintf("/grievances/%d/attachments", id), body, nil)
}

func (s *GrievancesService) DeleteAttachment(ctx context.Context, id, attachmentID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/grievances/%d/attachments/%d", id, attachmentID), nil)
}
