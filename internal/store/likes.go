package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/salad-karo/storefront/internal/repo/mirror"
	"github.com/salad-karo/storefront/internal/storage"
)

// likesKeyPrefix scopes each identity to its own snapshot key.
const likesKeyPrefix = "salad-karo/likes:"

// LikesStore owns the current identity's set of liked product ids. Toggles
// are optimistic local mutations mirrored best-effort to the remote
// favorites endpoint. Without an identity the set lives in memory only.
type LikesStore struct {
	mu       sync.Mutex
	identity string
	liked    map[string]bool

	local  storage.Store
	mirror mirror.Client

	inflight sync.WaitGroup
}

func NewLikesStore(local storage.Store, mirrorClient mirror.Client) *LikesStore {
	return &LikesStore{
		liked:  map[string]bool{},
		local:  local,
		mirror: mirrorClient,
	}
}

// SetIdentity switches the store to a new identity: in-memory state for the
// previous identity is discarded, then the new identity's snapshot is
// loaded. A malformed snapshot falls back to an empty set.
func (s *LikesStore) SetIdentity(ctx context.Context, identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = identity
	s.liked = map[string]bool{}
	if identity == "" {
		return
	}

	data, err := s.local.Read(likesKeyPrefix + identity)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			log.Warnw(ctx, "failed to read likes snapshot, starting empty", "error", err, "identity", identity)
		}
		return
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Warnw(ctx, "malformed likes snapshot, starting empty", "error", err, "identity", identity)
		return
	}
	for _, id := range ids {
		s.liked[id] = true
	}
}

func (s *LikesStore) Identity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// IsLiked is a pure membership test.
func (s *LikesStore) IsLiked(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked[productID]
}

// Toggle flips membership and reports the new state. The mirror call
// follows the new state: POST when now liked, DELETE when now unliked.
func (s *LikesStore) Toggle(ctx context.Context, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	liked := !s.liked[productID]
	if liked {
		s.liked[productID] = true
	} else {
		delete(s.liked, productID)
	}
	s.persist(ctx)

	if s.mirror != nil {
		sendCtx := context.WithoutCancel(ctx)
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			var err error
			if liked {
				err = s.mirror.FavoriteAdded(sendCtx, productID)
			} else {
				err = s.mirror.FavoriteRemoved(sendCtx, productID)
			}
			if err != nil {
				log.Warnw(sendCtx, "favorites mirror call failed", "error", err)
			}
		}()
	}
	return liked
}

// Flush waits up to the timeout for in-flight mirror calls, for process
// shutdown. Returns false if calls were still pending.
func (s *LikesStore) Flush(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// ClearAll empties the set for the current identity and persists it.
func (s *LikesStore) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked = map[string]bool{}
	s.persist(ctx)
}

// All returns the liked ids in a stable order.
func (s *LikesStore) All() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.liked))
	for id := range s.liked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *LikesStore) persist(ctx context.Context) {
	if s.identity == "" {
		return
	}
	ids := make([]string, 0, len(s.liked))
	for id := range s.liked {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		log.Errorw(ctx, "failed to encode likes snapshot", "error", err)
		return
	}
	if err := s.local.Write(likesKeyPrefix+s.identity, data); err != nil {
		log.Warnw(ctx, "failed to write likes snapshot", "error", err)
	}
}
