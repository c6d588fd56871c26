package screens

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/result"
	"github.com/ARKNravi/Gelatik/internal/client/services"
)

// ForumScreen lists community summaries with a search box and a topic
// filter, both applied locally.
type ForumScreen struct {
	base
	forum services.ForumService

	mu    sync.Mutex
	query string
	topic string

	Posts *result.Holder[[]api.ForumPost]
}

func NewForumScreen(forum services.ForumService) *ForumScreen {
	s := &ForumScreen{base: newBase(), forum: forum, Posts: result.NewHolder[[]api.ForumPost]()}
	s.onDispose(s.Posts.Close)
	return s
}

func (s *ForumScreen) Name() string { return "forum" }

func (s *ForumScreen) Load(ctx context.Context) result.Result[[]api.ForumPost] {
	ctx, cancel := s.bind(ctx)
	defer cancel()
	return result.Track(ctx, s.Posts, s.forum.Posts, Message)
}

func (s *ForumScreen) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

// SetTopic filters by topic; "" shows every topic.
func (s *ForumScreen) SetTopic(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topic = topic
}

// Topics returns the distinct topics of the loaded posts, sorted.
func (s *ForumScreen) Topics() []string {
	posts, _ := s.Posts.Get().Value()
	var topics []string
	for _, p := range posts {
		t := normalize(p.Topic)
		if t != "" && !slices.Contains(topics, t) {
			topics = append(topics, t)
		}
	}
	slices.Sort(topics)
	return topics
}

func (s *ForumScreen) Filtered() []api.ForumPost {
	posts, _ := s.Posts.Get().Value()

	s.mu.Lock()
	q, topic := normalize(s.query), normalize(s.topic)
	s.mu.Unlock()

	out := make([]api.ForumPost, 0, len(posts))
	for _, p := range posts {
		if topic != "" && !strings.EqualFold(strings.TrimSpace(p.Topic), topic) {
			continue
		}
		if !matches(q, p.Title, p.Subtitle, p.Content) {
			continue
		}
		out = append(out, p)
	}
	return out
}
