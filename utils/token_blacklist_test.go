package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlacklistTokenWithoutRedis(t *testing.T) {
	require.Nil(t, GetRedis())

	BlacklistToken("revoked-token", time.Now().Add(time.Hour))

	assert.True(t, IsTokenBlacklisted("revoked-token"))
	assert.False(t, IsTokenBlacklisted("some-other-token"))
}

func TestBlacklistedTokenExpiresNaturally(t *testing.T) {
	BlacklistToken("stale-token", time.Now().Add(-time.Minute))

	assert.False(t, IsTokenBlacklisted("stale-token"))
}
