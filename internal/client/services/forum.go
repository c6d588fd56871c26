package services

import (
	"context"
	"fmt"

	"github.com/ARKNravi/Gelatik/internal/client/api"
)

type ForumService interface {
	Posts(ctx context.Context) ([]api.ForumPost, error)
}

type forumService struct {
	client api.Client
}

func NewForumService(client api.Client) ForumService {
	return &forumService{client: client}
}

func (s *forumService) Posts(ctx context.Context) ([]api.ForumPost, error) {
	posts, err := s.client.ForumPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forum posts error: %w", err)
	}
	return posts, nil
}
