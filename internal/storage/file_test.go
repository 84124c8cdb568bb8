package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	newStore := func(t *testing.T) *FileStore {
		s, err := NewFileStore(t.TempDir())
		require.NoError(t, err)
		return s
	}

	t.Run("read missing key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Read("cart")
		assert.ErrorIs(t, err, ErrNoSnapshot)
	})

	t.Run("write then read", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Write("cart", []byte(`{"items":[],"total":0}`)))
		data, err := s.Read("cart")
		require.NoError(t, err)
		assert.JSONEq(t, `{"items":[],"total":0}`, string(data))
	})

	t.Run("overwrite replaces prior snapshot", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Write("cart", []byte(`{"total":1}`)))
		require.NoError(t, s.Write("cart", []byte(`{"total":2}`)))
		data, err := s.Read("cart")
		require.NoError(t, err)
		assert.JSONEq(t, `{"total":2}`, string(data))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Write("likes", []byte(`[]`)))
		require.NoError(t, s.Delete("likes"))
		require.NoError(t, s.Delete("likes"))
		_, err := s.Read("likes")
		assert.ErrorIs(t, err, ErrNoSnapshot)
	})

	t.Run("keys with identity suffixes stay distinct", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Write("likes:alice@example.com", []byte(`["1"]`)))
		require.NoError(t, s.Write("likes:bob@example.com", []byte(`["2"]`)))
		data, err := s.Read("likes:alice@example.com")
		require.NoError(t, err)
		assert.JSONEq(t, `["1"]`, string(data))
		data, err = s.Read("likes:bob@example.com")
		require.NoError(t, err)
		assert.JSONEq(t, `["2"]`, string(data))
	})

	t.Run("near-identical identities never share a snapshot", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Write("likes:a@b.com", []byte(`["1"]`)))
		require.NoError(t, s.Write("likes:a_b.com", []byte(`["2"]`)))
		data, err := s.Read("likes:a@b.com")
		require.NoError(t, err)
		assert.JSONEq(t, `["1"]`, string(data))
		data, err = s.Read("likes:a_b.com")
		require.NoError(t, err)
		assert.JSONEq(t, `["2"]`, string(data))
	})
}

func TestSanitizeKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"cart", "cart"},
		{"likes:alice@example.com", "likes_3aalice_40example.com"},
		{"a/b\\c", "a_2fb_5cc"},
		{"snap-shot_1.v2", "snap-shot_5f1.v2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeKey(tt.in), tt.in)
	}

	// The escape must be injective: identities that sanitize to the same
	// shape under a lossy mapping must still get distinct file names.
	assert.NotEqual(t, sanitizeKey("likes:a@b.com"), sanitizeKey("likes:a_b.com"))
	assert.NotEqual(t, sanitizeKey("likes:a_40b.com"), sanitizeKey("likes:a@b.com"))
}
