package store

import (
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/salad-karo/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saladA = models.Product{ID: "A", Name: "Classic Garden Salad", Price: 199}
	saladB = models.Product{ID: "B", Name: "Protein Power Bowl", Price: 249}
)

// requireTotalInvariant checks the running total against a full recompute.
func requireTotalInvariant(t *testing.T, s *CartStore) {
	t.Helper()
	want := 0.0
	for _, item := range s.Items() {
		want += item.Subtotal()
	}
	require.InDelta(t, want, s.Total(), 1e-9)
}

func TestCartAdd(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("repeated adds accumulate into one line item", func(t *testing.T) {
		s := NewCartStore(ctx, newMemStore(), nil)
		for range 3 {
			s.Add(ctx, saladA)
			requireTotalInvariant(t, s)
		}

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "A", items[0].ID)
		assert.Equal(t, 3, items[0].Quantity)
		assert.InDelta(t, 597, s.Total(), 1e-9)
	})

	t.Run("new products append in first-added order", func(t *testing.T) {
		s := NewCartStore(ctx, newMemStore(), nil)
		s.Add(ctx, saladB)
		s.Add(ctx, saladA)
		s.Add(ctx, saladB)

		ids := make([]string, 0, 2)
		for _, item := range s.Items() {
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []string{"B", "A"}, ids)
	})
}

func TestCartRemove(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("removes the whole line item", func(t *testing.T) {
		s := NewCartStore(ctx, newMemStore(), nil)
		s.Add(ctx, saladA)
		s.Add(ctx, saladA)
		s.Add(ctx, saladB)

		s.Remove(ctx, "A")
		requireTotalInvariant(t, s)
		require.Len(t, s.Items(), 1)
		assert.InDelta(t, 249, s.Total(), 1e-9)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		local := newMemStore()
		s := NewCartStore(ctx, local, nil)
		s.Add(ctx, saladA)
		before := s.Snapshot()
		writes := local.writeCount(CartStorageKey)

		s.Remove(ctx, "nope")
		assert.Equal(t, before, s.Snapshot())
		assert.Equal(t, writes, local.writeCount(CartStorageKey), "a no-op must not persist")
	})
}

func TestCartSetQuantity(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("replaces quantity and adjusts total", func(t *testing.T) {
		s := NewCartStore(ctx, newMemStore(), nil)
		s.Add(ctx, saladA)
		s.SetQuantity(ctx, "A", 5)
		requireTotalInvariant(t, s)
		assert.Equal(t, 5, s.Items()[0].Quantity)
		assert.InDelta(t, 995, s.Total(), 1e-9)
	})

	t.Run("zero behaves exactly like remove", func(t *testing.T) {
		viaSet := NewCartStore(ctx, newMemStore(), nil)
		viaRemove := NewCartStore(ctx, newMemStore(), nil)
		for _, s := range []*CartStore{viaSet, viaRemove} {
			s.Add(ctx, saladA)
			s.Add(ctx, saladB)
		}

		viaSet.SetQuantity(ctx, "A", 0)
		viaRemove.Remove(ctx, "A")
		assert.Equal(t, viaRemove.Snapshot(), viaSet.Snapshot())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s := NewCartStore(ctx, newMemStore(), nil)
		s.Add(ctx, saladA)
		before := s.Snapshot()
		s.SetQuantity(ctx, "zzz", 4)
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("negative quantity is a no-op", func(t *testing.T) {
		s := NewCartStore(ctx, newMemStore(), nil)
		s.Add(ctx, saladA)
		before := s.Snapshot()
		s.SetQuantity(ctx, "A", -1)
		assert.Equal(t, before, s.Snapshot())
	})
}

func TestCartCheckoutScenario(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	s := NewCartStore(ctx, newMemStore(), nil)

	s.Add(ctx, saladA)
	s.Add(ctx, saladA)
	requireTotalInvariant(t, s)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 2, s.Items()[0].Quantity)
	assert.InDelta(t, 398, s.Total(), 1e-9)

	s.Add(ctx, saladB)
	requireTotalInvariant(t, s)
	require.Len(t, s.Items(), 2)
	assert.InDelta(t, 647, s.Total(), 1e-9)

	s.SetQuantity(ctx, "A", 5)
	requireTotalInvariant(t, s)
	assert.InDelta(t, 1244, s.Total(), 1e-9)

	s.Remove(ctx, "B")
	requireTotalInvariant(t, s)
	assert.InDelta(t, 995, s.Total(), 1e-9)
}

func TestCartClear(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	local := newMemStore()
	s := NewCartStore(ctx, local, nil)
	s.Add(ctx, saladA)
	s.Add(ctx, saladB)

	s.Clear(ctx)
	assert.Empty(t, s.Items())
	assert.Zero(t, s.Total())
	assert.Zero(t, s.Count())

	// clear persists the empty snapshot
	data, err := local.Read(CartStorageKey)
	require.NoError(t, err)
	var snap models.CartSnapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Empty(t, snap.Items)
}

func TestCartHydration(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("restores a prior snapshot", func(t *testing.T) {
		local := newMemStore()
		first := NewCartStore(ctx, local, nil)
		first.Add(ctx, saladA)
		first.Add(ctx, saladA)
		first.Add(ctx, saladB)

		second := NewCartStore(ctx, local, nil)
		assert.Equal(t, first.Snapshot(), second.Snapshot())
		requireTotalInvariant(t, second)
	})

	t.Run("malformed snapshot falls back to empty", func(t *testing.T) {
		local := newMemStore()
		require.NoError(t, local.Write(CartStorageKey, []byte("{not json")))

		s := NewCartStore(ctx, local, nil)
		assert.Empty(t, s.Items())
		assert.Zero(t, s.Total())
	})
}

func TestCartPersistsEveryMutation(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	local := newMemStore()
	s := NewCartStore(ctx, local, nil)

	s.Add(ctx, saladA)
	s.Add(ctx, saladB)
	s.SetQuantity(ctx, "A", 3)
	s.Remove(ctx, "B")
	s.Clear(ctx)

	assert.Equal(t, 5, local.writeCount(CartStorageKey))
}

func TestCartMirroring(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("deltas are mirrored after the local commit", func(t *testing.T) {
		remote := &recordingMirror{}
		s := NewCartStore(ctx, newMemStore(), remote)

		s.Add(ctx, saladA)
		s.Add(ctx, saladA)
		s.SetQuantity(ctx, "A", 5)
		s.Remove(ctx, "A")

		assert.Eventually(t, func() bool {
			return len(remote.recorded()) == 4
		}, time.Second, 5*time.Millisecond)

		calls := remote.recorded()
		slices.Sort(calls)
		assert.Equal(t, []string{
			"cart-add A 1",
			"cart-add A 2",
			"cart-add A 5",
			"cart-remove A",
		}, calls)
	})

	t.Run("mirror failure leaves local state authoritative", func(t *testing.T) {
		remote := &recordingMirror{fail: true}
		local := newMemStore()
		s := NewCartStore(ctx, local, remote)

		s.Add(ctx, saladA)
		assert.Eventually(t, func() bool {
			return len(remote.recorded()) == 1
		}, time.Second, 5*time.Millisecond)

		assert.InDelta(t, 199, s.Total(), 1e-9)
		data, err := local.Read(CartStorageKey)
		require.NoError(t, err)
		var snap models.CartSnapshot
		require.NoError(t, json.Unmarshal(data, &snap))
		require.Len(t, snap.Items, 1)
	})
}
