package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos-backend/internal/config"
)

func newGate(offline bool) *Gate {
	return NewGate(config.AuthConfig{
		OfflineMode: offline,
		ExpirySkew:  5 * time.Minute,
	})
}

func TestGateExpirySkew(t *testing.T) {
	t.Run("no credential", func(t *testing.T) {
		g := newGate(false)
		assert.False(t, g.Valid())

		_, err := g.AccessToken()
		assert.ErrorIs(t, err, ErrCredentialExpired)
	})

	t.Run("token expiring inside skew window treated as expired", func(t *testing.T) {
		g := newGate(false)
		g.SetCredential("tok", time.Now().Add(4*time.Minute))

		assert.False(t, g.Valid())
		_, err := g.AccessToken()
		assert.ErrorIs(t, err, ErrCredentialExpired)
	})

	t.Run("token expiring beyond skew window is valid", func(t *testing.T) {
		g := newGate(false)
		g.SetCredential("tok", time.Now().Add(6*time.Minute))

		assert.True(t, g.Valid())
		tok, err := g.AccessToken()
		require.NoError(t, err)
		assert.Equal(t, "tok", tok)
	})

	t.Run("clear credential invalidates", func(t *testing.T) {
		g := newGate(false)
		g.SetCredential("tok", time.Now().Add(time.Hour))
		require.True(t, g.Valid())

		g.ClearCredential()
		assert.False(t, g.Valid())
	})
}

func TestGateOfflineMode(t *testing.T) {
	g := newGate(true)

	assert.True(t, g.Offline())
	assert.True(t, g.Valid())

	tok, err := g.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "offline-session", tok)

	// offline credential không bị logout xóa mất
	g.ClearCredential()
	assert.True(t, g.Valid())
}
