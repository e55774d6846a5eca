package hasher_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/hasher"
)

func TestHash(t *testing.T) {
	h := hasher.New()

	t.Run("produces salt:hash hex format", func(t *testing.T) {
		stored, err := h.Hash("secret1")
		require.NoError(t, err)

		salt, digest, found := strings.Cut(stored, ":")
		require.True(t, found)
		// 16-byte salt, 64-byte digest, hex-encoded
		assert.Len(t, salt, 32)
		assert.Len(t, digest, 128)
	})

	t.Run("same password produces different hashes (salt)", func(t *testing.T) {
		h1, err := h.Hash("samepassword")
		require.NoError(t, err)
		h2, err := h.Hash("samepassword")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})
}

func TestVerify(t *testing.T) {
	h := hasher.New()

	t.Run("correct password verifies", func(t *testing.T) {
		stored, err := h.Hash("correctpassword")
		require.NoError(t, err)
		assert.True(t, h.Verify("correctpassword", stored))
	})

	t.Run("incorrect password fails", func(t *testing.T) {
		stored, err := h.Hash("correctpassword")
		require.NoError(t, err)
		assert.False(t, h.Verify("wrongpassword", stored))
	})

	t.Run("missing separator fails without panicking", func(t *testing.T) {
		assert.False(t, h.Verify("password", "deadbeef"))
	})

	t.Run("non-hex salt fails", func(t *testing.T) {
		assert.False(t, h.Verify("password", "not-hex:deadbeef"))
	})

	t.Run("non-hex hash fails", func(t *testing.T) {
		assert.False(t, h.Verify("password", "deadbeef:zzzz"))
	})

	t.Run("empty stored value fails", func(t *testing.T) {
		assert.False(t, h.Verify("password", ""))
	})
}
