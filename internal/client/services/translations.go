package services

import (
	"context"
	"fmt"

	"github.com/ARKNravi/Gelatik/internal/client/api"
)

// TranslationService lists JBI interpreters and the user's bookings.
type TranslationService interface {
	Translators(ctx context.Context) ([]api.Translator, error)
	MyOrders(ctx context.Context) ([]api.TranslationOrder, error)
}

type translationService struct {
	client api.Client
}

func NewTranslationService(client api.Client) TranslationService {
	return &translationService{client: client}
}

func (s *translationService) Translators(ctx context.Context) ([]api.Translator, error) {
	list, err := s.client.Translators(ctx)
	if err != nil {
		return nil, fmt.Errorf("list translators error: %w", err)
	}
	return list.Items, nil
}

func (s *translationService) MyOrders(ctx context.Context) ([]api.TranslationOrder, error) {
	list, err := s.client.MyOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders error: %w", err)
	}
	return list.Items, nil
}
