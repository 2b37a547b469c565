package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type cachedGrade struct {
	Marks       float64 `json:"marks"`
	Explanation string  `json:"explanation"`
}

func TestGradeCacheRoundTrip(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	c := NewGradeCache(client, time.Minute, zerolog.Nop())
	key := Key("q1", "reference", "answer", "5")

	var missing cachedGrade
	require.False(t, c.Get(context.Background(), key, &missing))

	c.Set(context.Background(), key, cachedGrade{Marks: 4.5, Explanation: "good"})

	var loaded cachedGrade
	require.True(t, c.Get(context.Background(), key, &loaded))
	require.Equal(t, 4.5, loaded.Marks)
	require.Equal(t, "good", loaded.Explanation)
}

func TestGradeCacheNilClient(t *testing.T) {
	c := NewGradeCache(nil, time.Minute, zerolog.Nop())

	var dest cachedGrade
	require.False(t, c.Get(context.Background(), "key", &dest))
	c.Set(context.Background(), "key", cachedGrade{})

	var nilCache *GradeCache
	require.False(t, nilCache.Get(context.Background(), "key", &dest))
	nilCache.Set(context.Background(), "key", cachedGrade{})
}

func TestKeyStable(t *testing.T) {
	require.Equal(t, Key("a", "b"), Key("a", "b"))
	require.NotEqual(t, Key("a", "b"), Key("ab", ""))
	require.NotEqual(t, Key("a", "b"), Key("b", "a"))
}
