package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"outlet-assistant/internal/model"
	"outlet-assistant/pkg/log"
)

const (
	// DefaultWindowSize is the number of turns retained per session.
	DefaultWindowSize = 10
	// DefaultMaxSessions caps the store before LRU eviction kicks in.
	DefaultMaxSessions = 10000
	// DefaultTTL evicts sessions idle longer than this.
	DefaultTTL = 30 * time.Minute
)

type memoryStore struct {
	l          log.Logger
	mu         sync.Mutex
	sessions   *expirable.LRU[string, *model.Session]
	windowSize int
}

// Config tunes the in-memory store.
type Config struct {
	WindowSize  int
	MaxSessions int
	TTL         time.Duration
}

// NewMemoryStore builds an in-memory Store over an expirable LRU.
// Idle sessions are evicted after the TTL; the capacity bound evicts
// least-recently-used sessions first.
func NewMemoryStore(l log.Logger, cfg Config) Store {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	return &memoryStore{
		l:          l,
		sessions:   expirable.NewLRU[string, *model.Session](cfg.MaxSessions, nil, cfg.TTL),
		windowSize: cfg.WindowSize,
	}
}

func (s *memoryStore) create(ctx context.Context) *model.Session {
	now := time.Now()
	sess := &model.Session{
		ID:        uuid.NewString(),
		Context:   make(map[string]any),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions.Add(sess.ID, sess)
	s.l.Debugf(ctx, "session.create: id=%s", sess.ID)
	return sess
}

func (s *memoryStore) GetOrCreate(ctx context.Context, sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if _, ok := s.sessions.Get(sessionID); ok {
			return sessionID
		}
	}
	return s.create(ctx).ID
}

func (s *memoryStore) AddTurn(ctx context.Context, sessionID, userMessage, botResponse string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		sess = s.create(ctx)
	}

	turn := model.Turn{
		UserMessage: userMessage,
		BotResponse: botResponse,
		Timestamp:   time.Now(),
		TurnNumber:  len(sess.Turns) + 1,
	}
	sess.Turns = append(sess.Turns, turn)
	if len(sess.Turns) > s.windowSize {
		sess.Turns = sess.Turns[len(sess.Turns)-s.windowSize:]
	}
	sess.UpdatedAt = time.Now()

	// Re-add so the TTL clock restarts on activity.
	s.sessions.Add(sess.ID, sess)

	return turn.TurnNumber
}

func (s *memoryStore) GetContext(ctx context.Context, sessionID, key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}
	return sess.Context[key]
}

func (s *memoryStore) Context(ctx context.Context, sessionID string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]any)
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return snapshot
	}
	for k, v := range sess.Context {
		snapshot[k] = v
	}
	return snapshot
}

func (s *memoryStore) UpdateContext(ctx context.Context, sessionID, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	sess.Context[key] = value
	sess.UpdatedAt = time.Now()
	s.sessions.Add(sess.ID, sess)
}

func (s *memoryStore) History(ctx context.Context, sessionID string) []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}
	turns := make([]model.Turn, len(sess.Turns))
	copy(turns, sess.Turns)
	return turns
}

func (s *memoryStore) Stats(ctx context.Context, sessionID string) *model.SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(sess.Context))
	for k := range sess.Context {
		keys = append(keys, k)
	}

	return &model.SessionStats{
		SessionID:   sess.ID,
		TotalTurns:  len(sess.Turns),
		CreatedAt:   sess.CreatedAt,
		LastUpdated: sess.UpdatedAt,
		ContextKeys: keys,
	}
}

func (s *memoryStore) Clear(ctx context.Context, sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions.Get(sessionID); !ok {
		return false
	}
	s.sessions.Remove(sessionID)
	s.l.Debugf(ctx, "session.clear: id=%s", sessionID)
	return true
}
