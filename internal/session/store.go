package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"collab-dashboard/pkg/log"
)

// BuildFunc wires a fresh Session for token. It must not block on the network.
type BuildFunc func(id, token string) *Session

// Store keeps sessions in memory. Idle sessions expire after the configured TTL
// and the least recently used ones are evicted past the size bound.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Session]
	build BuildFunc
	l     log.Logger
}

// NewStore creates a Store holding at most size sessions for ttl each.
func NewStore(size int, ttl time.Duration, build BuildFunc, l log.Logger) *Store {
	return &Store{
		cache: expirable.NewLRU[string, *Session](size, nil, ttl),
		build: build,
		l:     l,
	}
}

// Resolve returns the session named id when it exists and belongs to token.
// Otherwise it builds a new session under a new id; created reports which case applied.
func (s *Store) Resolve(ctx context.Context, id, token string) (sess *Session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if existing, ok := s.cache.Get(id); ok && existing.Token == token {
			return existing, false
		}
	}

	sess = s.build(uuid.NewString(), token)
	s.cache.Add(sess.ID, sess)
	s.l.Debugf(ctx, "session.Store.Resolve: new session %s", sess.ID)
	return sess, true
}

// Len reports how many sessions are live.
func (s *Store) Len() int {
	return s.cache.Len()
}
