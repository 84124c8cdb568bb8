// Package store holds the storefront's client-side state: the cart and the
// per-identity likes set. Both follow the same policy: the local snapshot
// store is the single source of truth, remote mirroring is a fire-and-forget
// notification whose outcome is only logged.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/salad-karo/storefront/internal/models"
	"github.com/salad-karo/storefront/internal/repo/mirror"
	"github.com/salad-karo/storefront/internal/storage"
)

// CartStorageKey is the fixed snapshot key for the cart.
const CartStorageKey = "salad-karo/cart"

// CartStore owns the cart state for one storefront session. Mutations are
// serialized; each one updates the running total incrementally, writes the
// full snapshot to local storage, then spawns a best-effort mirror call.
type CartStore struct {
	mu    sync.Mutex
	items []models.CartLineItem
	total float64

	local  storage.Store
	mirror mirror.Client

	// inflight tracks spawned mirror calls so a shutting-down process can
	// drain them. Mutations never wait on it.
	inflight sync.WaitGroup
}

// NewCartStore hydrates the cart from a prior snapshot if one exists. A
// missing or malformed snapshot means an empty cart, never an error.
func NewCartStore(ctx context.Context, local storage.Store, mirrorClient mirror.Client) *CartStore {
	s := &CartStore{
		local:  local,
		mirror: mirrorClient,
	}
	s.hydrate(ctx)
	return s
}

func (s *CartStore) hydrate(ctx context.Context) {
	data, err := s.local.Read(CartStorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			log.Warnw(ctx, "failed to read cart snapshot, starting empty", "error", err)
		}
		return
	}
	var snap models.CartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warnw(ctx, "malformed cart snapshot, starting empty", "error", err)
		return
	}
	s.items = snap.Items
	s.total = snap.Total
}

// Add puts one unit of the product in the cart: an existing line item gains
// quantity, otherwise a new line item is appended. Never fails.
func (s *CartStore) Add(ctx context.Context, p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity := 1
	if idx := s.indexOf(p.ID); idx >= 0 {
		s.items[idx].Quantity++
		quantity = s.items[idx].Quantity
	} else {
		s.items = append(s.items, models.CartLineItem{Product: p, Quantity: 1})
	}
	s.total += p.Price

	s.persist(ctx)
	s.notify(ctx, func(ctx context.Context) error {
		return s.mirror.CartAdded(ctx, p.ID, quantity)
	})
}

// Remove deletes the product's line item. An absent id is a no-op.
func (s *CartStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID)
}

func (s *CartStore) removeLocked(ctx context.Context, productID string) {
	idx := s.indexOf(productID)
	if idx < 0 {
		return
	}
	s.total -= s.items[idx].Subtotal()
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	s.persist(ctx)
	s.notify(ctx, func(ctx context.Context) error {
		return s.mirror.CartRemoved(ctx, productID)
	})
}

// SetQuantity replaces a line item's quantity. Zero deletes the line item,
// an absent id or a negative quantity is a no-op.
func (s *CartStore) SetQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity == 0 {
		s.removeLocked(ctx, productID)
		return
	}
	if quantity < 0 {
		return
	}
	idx := s.indexOf(productID)
	if idx < 0 {
		return
	}

	item := &s.items[idx]
	s.total += item.Price * float64(quantity-item.Quantity)
	item.Quantity = quantity

	s.persist(ctx)
	s.notify(ctx, func(ctx context.Context) error {
		return s.mirror.CartAdded(ctx, productID, quantity)
	})
}

// Clear resets the cart to empty in one step.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.total = 0
	s.persist(ctx)
}

// Items returns the line items in first-added order.
func (s *CartStore) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Count is the number of units across all line items, the figure shown on
// the cart badge and fed to the visibility policy.
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

func (s *CartStore) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *CartStore) snapshotLocked() models.CartSnapshot {
	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	return models.CartSnapshot{Items: items, Total: s.total}
}

func (s *CartStore) indexOf(productID string) int {
	for i, item := range s.items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// persist writes the full snapshot under the fixed key. A write failure is
// logged and swallowed; the in-memory state already committed.
func (s *CartStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		log.Errorw(ctx, "failed to encode cart snapshot", "error", err)
		return
	}
	if err := s.local.Write(CartStorageKey, data); err != nil {
		log.Warnw(ctx, "failed to write cart snapshot", "error", err)
	}
}

// notify spawns the mirror call without awaiting it. The request outlives
// the triggering UI action, so cancellation is detached.
func (s *CartStore) notify(ctx context.Context, send func(context.Context) error) {
	if s.mirror == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if err := send(ctx); err != nil {
			log.Warnw(ctx, "cart mirror call failed", "error", err)
		}
	}()
}

// Flush waits up to the timeout for in-flight mirror calls, for process
// shutdown. Returns false if calls were still pending.
func (s *CartStore) Flush(timeout time.Duration) bool {
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
