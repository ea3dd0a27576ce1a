package grpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeerLimiter_Disabled(t *testing.T) {
	assert.Nil(t, newPeerLimiter(0, 5))
	assert.Nil(t, newPeerLimiter(-1, 5))

	var p *peerLimiter
	assert.True(t, p.Allow("1.2.3.4:1"))
}

func TestPeerLimiter_Prune(t *testing.T) {
	p := newPeerLimiter(1, 1)
	require.NotNil(t, p)

	require.True(t, p.Allow("1.1.1.1:1"))
	require.True(t, p.Allow("2.2.2.2:1"))
	require.False(t, p.Allow("2.2.2.2:2"))

	assert.Equal(t, 2, p.prune(time.Now()))
	assert.Zero(t, p.prune(time.Now().Add(10*time.Second)))
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "10.0.0.1", hostOf("10.0.0.1:80"))
	assert.Equal(t, "::1", hostOf("[::1]:10000"))
	assert.Equal(t, "bufconn", hostOf("bufconn"))
	assert.Equal(t, "unknown", hostOf(""))
}
