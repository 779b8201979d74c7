package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordventure/word-api/internal/match"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	m, err := match.New([2]string{"Ana", "Ben"}, [2]string{"crane", "robot"})
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, m))

	v, err := s.View(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", v.Players[0].Name)

	err = s.Update(ctx, m.ID, func(mt *match.Match) error {
		_, err := mt.Guess("slate")
		return err
	})
	require.NoError(t, err)

	v, err = s.View(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"slate"}, v.Players[0].Guesses)
	assert.Equal(t, 1, v.Active)

	_, err = s.View(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, "missing", func(*match.Match) error { return nil }), ErrNotFound)
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	m, err := match.New([2]string{"Ana", "Ben"}, [2]string{"crane", "robot"})
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, m))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, m.ID, func(mt *match.Match) error {
				_, err := mt.Guess("maple")
				return err
			})
			_, _ = s.View(ctx, m.ID)
		}()
	}
	wg.Wait()

	v, err := s.View(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, v.Players[0].Guesses, 4)
	assert.Len(t, v.Players[1].Guesses, 4)
}
