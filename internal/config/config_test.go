package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "WORDS_FILE", "DB_PATH", "SERVER_SECRET", "CLIENT_ORIGIN", "REQUEST_TIMEOUT", "ROUND_TTL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":5175", c.Addr())
	assert.Equal(t, "words.txt", c.WordsFile)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 24*time.Hour, c.RoundTTL)
	assert.True(t, c.DevSecret())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WORDS_FILE", "/srv/words.txt")
	t.Setenv("SERVER_SECRET", "s3cret")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("ROUND_TTL", "15m")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, "/srv/words.txt", c.WordsFile)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.Equal(t, 15*time.Minute, c.RoundTTL)
	assert.False(t, c.DevSecret())
}

func TestLoad_InvalidDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "garbage", value: "soon"},
		{name: "negative", value: "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REQUEST_TIMEOUT", tt.value)
			_, err := Load()
			assert.ErrorContains(t, err, "REQUEST_TIMEOUT")
		})
	}
}

func TestDeriveKey(t *testing.T) {
	a, err := DeriveKey("secret", "round/sign", 32)
	require.NoError(t, err)
	b, err := DeriveKey("secret", "round/seal", 32)
	require.NoError(t, err)
	again, err := DeriveKey("secret", "round/sign", 32)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, again)
}
