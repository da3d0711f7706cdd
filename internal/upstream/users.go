package upstream

import (
	"context"
	"fmt"

	"osas/clubport/internal/models"
)

// UsersService fronts the upstream /users endpoint set.
type UsersService struct {
	client *Client
}

func (s *UsersService) List(ctx context.Context, q ListQuery) (*models.UserPage, error) {
	var out models.UserPage
	if err := s.client.get(ctx, "/users", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsersService) Get(ctx context.Context, id int64) (*models.User, error) {
	var out models.User
	if err := s.client.get(ctx, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsersService) Create(ctx context.Context, user map[string]interface{}) (*models.User, error) {
	var out models.User
	if err := s.client.post(ctx, "/users", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsersService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	var out models.User
	if err := s.client.put(ctx, fmt.Sprintf("/users/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/users/%d", id), nil)
}

// UploadAvatar sends a base64-encoded image for the user's avatar.
func (s *UsersService) UploadAvatar(ctx context.Context, id int64, imageBase64 string) error {
	body := map[string]string{"image": imageBase64}
	return s.client.post(ctx, fmt.Sprintf("/users/%d/avatar", id), body, nil)
}

// UploadCover sends a base64-encoded image for the user's profile cover.
func (s *UsersService) UploadCover(ctx context.Context, id int64, imageBase64 string) error {
	body := map[string]string{"image": imageBase64}
	return s.client.post(ctx, fmt.Sprintf("/users/%d/cover", id), body, nil)
}

// GetClubs lists the clubs a user belongs to, each carrying the user's
// membership role and status within it.
func (s *UsersService) GetClubs(ctx context.Context, id int64) (*models.UserClubs, error) {
	var out models.UserClubs
	if err := s.client.get(ctx, fmt.Sprintf("/users/%d/clubs", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

