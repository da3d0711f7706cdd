package upstream

import (
	"context"
	"fmt"

	"osas/clubport/internal/models"
)

// NotificationsService fronts the upstream /notifications endpoint set.
type NotificationsService struct {
	client *Client
}

func (s *NotificationsService) List(ctx context.Context, q ListQuery) (*models.NotificationPage, error) {
	var out models.NotificationPage
	if err := s.client.get(ctx, "/notifications", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns the total/unread counters shown on the bell badge.
func (s *NotificationsService) Stats(ctx context.Context) (*models.NotificationStats, error) {
	var out models.NotificationStats
	if err := s.client.get(ctx, "/notifications/_stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *NotificationsService) MarkRead(ctx context.Context, id int64) error {
	return s.client.post(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

func (s *NotificationsService) MarkUnread(ctx context.Context, id int64) error {
	return s.client.post(ctx, fmt.Sprintf("/notifications/%d/unread", id), nil, nil)
}

func (s *NotificationsService) MarkAllRead(ctx context.Context) error {
	return s.client.post(ctx, "/notifications/read-all", nil, nil)
}

func (s *NotificationsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/notifications/%d", id), nil)
}
