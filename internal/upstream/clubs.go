package upstream

import (
	"context"
	"fmt"

	"osas/clubport/internal/models"
)

// ClubsService fronts the upstream /clubs endpoint set, including member
// management and club document storage.
type ClubsService struct {
	client *Client
}

func (s *ClubsService) List(ctx context.Context, q ListQuery) (*models.ClubPage, error) {
	var out models.ClubPage
	if err := s.client.get(ctx, "/clubs", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClubsService) Get(ctx context.Context, id int64) (*models.Club, error) {
	var out models.Club
	if err := s.client.get(ctx, fmt.Sprintf("/clubs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClubsService) Create(ctx context.Context, club map[string]interface{}) (*models.Club, error) {
	var out models.Club
	if err := s.client.post(ctx, "/clubs", club, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClubsService) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Club, error) {
	var out models.Club
	if err := s.client.put(ctx, fmt.Sprintf("/clubs/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClubsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/clubs/%d", id), nil)
}

// CanEditMedia reports whether the calling user may change the club's logo
// and banner. Any failure reads as "no".
func (s *ClubsService) CanEditMedia(ctx context.Context, id int64) (bool, error) {
	var out struct {
		CanEdit bool `json:"can_edit"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/clubs/%d/can-edit-media", id), nil, &out); err != nil {
		return false, err
	}
	return out.CanEdit, nil
}

func (s *ClubsService) Members(ctx context.Context, id int64, q ListQuery) (*models.UserPage, error) {
	var out models.UserPage
	if err := s.client.get(ctx, fmt.Sprintf("/clubs/%d/members", id), q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClubsService) AddMember(ctx context.Context, id, userID int64, role string) error {
	body := map[string]interface{}{"user_id": userID, "role": role}
	return s.client.post(ctx, fmt.Sprintf("/clubs/%d/members", id), body, nil)
}

func (s *ClubsService) UpdateMember(ctx context.Context, id, userID int64, fields map[string]interface{}) error {
	return s.client.put(ctx, fmt.Sprintf("/clubs/%d/members/%d", id, userID), fields, nil)
}

func (s *ClubsService) RemoveMember(ctx context.Context, id, userID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/clubs/%d/members/%d", id, userID), nil)
}

// UploadLogo sends a base64-encoded image for the club logo.
func (s *ClubsService) UploadLogo(ctx context.Context, id int64, imageBase64 string) error {
	body := map[string]string{"image": imageBase64}
	return s.client.post(ctx, fmt.Sprintf("/clubs/%d/logo", id), body, nil)
}

// UploadBanner sends a base64-encoded image for the club banner.
func (s *ClubsService) UploadBanner(ctx context.Context, id int64, imageBase64 string) error {
	body := map[string]string{"image": imageBase64}
	return s.client.post(ctx, fmt.Sprintf("/clubs/%d/banner", id), body, nil)
}

func (s *ClubsService) ListDocs(ctx context.Context, id int64, q ListQuery) (*models.ClubDocPage, error) {
	var out models.ClubDocPage
	if err := s.client.get(ctx, fmt.Sprintf("/clubs/%d/docs", id), q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClubsService) CreateDoc(ctx context.Context, id int64, doc map[string]interface{}) (*models.ClubDoc, error) {
	var out models.ClubDoc
	if err := s.client.post(ctx, fmt.Sprintf("/clubs/%d/docs", id), doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClubsService) UpdateDoc(ctx context.Context, id, docID int64, fields map[string]interface{}) (*models.ClubDoc, error) {
	var out models.ClubDoc
	if err := s.client.put(ctx, fmt.Sprintf("/clubs/%d/docs/%d", id, docID), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClubsService) DeleteDoc(ctx context.Context, id, docID int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/clubs/%d/docs/%d", id, docID), nil)
}
