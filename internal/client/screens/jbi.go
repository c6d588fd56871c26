package screens

import (
	"context"
	"sync"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/result"
	"github.com/ARKNravi/Gelatik/internal/client/services"
)

// JBI tabs.
const (
	TabTranslators = 0
	TabOrders      = 1
)

// JBIScreen lists interpreters and the user's bookings on two tabs.
type JBIScreen struct {
	base
	translations services.TranslationService

	mu    sync.Mutex
	tab   int
	query string

	Translators *result.Holder[[]api.Translator]
	Orders      *result.Holder[[]api.TranslationOrder]
}

func NewJBIScreen(translations services.TranslationService) *JBIScreen {
	s := &JBIScreen{
		base:         newBase(),
		translations: translations,
		Translators:  result.NewHolder[[]api.Translator](),
		Orders:       result.NewHolder[[]api.TranslationOrder](),
	}
	s.onDispose(s.Translators.Close)
	s.onDispose(s.Orders.Close)
	return s
}

func (s *JBIScreen) Name() string { return "jbi" }

func (s *JBIScreen) LoadTranslators(ctx context.Context) result.Result[[]api.Translator] {
	ctx, cancel := s.bind(ctx)
	defer cancel()
	return result.Track(ctx, s.Translators, s.translations.Translators, Message)
}

func (s *JBIScreen) LoadOrders(ctx context.Context) result.Result[[]api.TranslationOrder] {
	ctx, cancel := s.bind(ctx)
	defer cancel()
	return result.Track(ctx, s.Orders, s.translations.MyOrders, Message)
}

func (s *JBIScreen) Tab() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// SelectTab switches tabs. Opening the orders tab fetches orders when none
// are loaded yet.
func (s *JBIScreen) SelectTab(ctx context.Context, tab int) {
	if tab != TabTranslators && tab != TabOrders {
		return
	}
	s.mu.Lock()
	s.tab = tab
	s.mu.Unlock()

	if tab != TabOrders {
		return
	}
	if orders, ok := s.Orders.Get().Value(); ok && len(orders) > 0 {
		return
	}
	s.LoadOrders(ctx)
}

func (s *JBIScreen) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

func (s *JBIScreen) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// FilteredTranslators applies the search query to the loaded translators,
// matching name and address.
func (s *JBIScreen) FilteredTranslators() []api.Translator {
	all, _ := s.Translators.Get().Value()
	q := normalize(s.Query())
	if q == "" {
		return all
	}
	out := make([]api.Translator, 0, len(all))
	for _, t := range all {
		if matches(q, t.Name, t.Address) {
			out = append(out, t)
		}
	}
	return out
}
