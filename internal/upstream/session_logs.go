package upstream

import (
	"context"
	"fmt"

	"osas/clubport/internal/models"
)

// SessionLogsService fronts the admin-only /session-logs endpoint.
type SessionLogsService struct {
	client *Client
}

func (s *SessionLogsService) List(ctx context.Context, q ListQuery) (*models.SessionLogPage, error) {
	var out models.SessionLogPage
	if err := s.client.get(ctx, "/session-logs", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SessionLogsService) Get(ctx context.Context, id int64) (*models.SessionLog, error) {
	var out models.SessionLog
	if err := s.client.get(ctx, fmt.Sprintf("/session-logs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
