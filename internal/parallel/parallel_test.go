package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	visited := make([]int, 100)
	For(100, func(i int) { visited[i]++ }, cfg)

	for i, v := range visited {
		assert.Equal(t, 1, v, "index %d", i)
	}
}

func TestFor_BelowChunkSizeStaysSequential(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1000}

	// With n below MinChunkSize no goroutines are spawned, so plain
	// (unsynchronized) writes are safe.
	visited := make([]int, 10)
	For(10, func(i int) { visited[i]++ }, cfg)

	for i, v := range visited {
		assert.Equal(t, 1, v, "index %d", i)
	}
}

func TestFor_Parallel(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	const n = 10_000
	var counter atomic.Int64
	visited := make([]atomic.Int32, n)

	For(n, func(i int) {
		visited[i].Add(1)
		counter.Add(1)
	}, cfg)

	assert.Equal(t, int64(n), counter.Load())
	for i := range visited {
		assert.Equal(t, int32(1), visited[i].Load(), "index %d", i)
	}
}

func TestFor_ZeroItems(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Positive(t, cfg.NumWorkers)
	assert.Positive(t, cfg.MinChunkSize)
}
