package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceSource_ReplaysInOrder(t *testing.T) {
	src := NewSequenceSource(0.1, 0.2, 0.3)

	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 0.2, src.Float64())
	assert.Equal(t, 0.3, src.Float64())
	assert.Equal(t, 3, src.Calls())
}

func TestSequenceSource_Cycles(t *testing.T) {
	src := NewSequenceSource(0.5, 0.25)

	got := []float64{src.Float64(), src.Float64(), src.Float64(), src.Float64()}
	assert.Equal(t, []float64{0.5, 0.25, 0.5, 0.25}, got)
}

func TestSequenceSource_Empty(t *testing.T) {
	src := NewSequenceSource()
	assert.Equal(t, 0.0, src.Float64())
	assert.Equal(t, 1, src.Calls())
}

func TestSequenceSource_Reset(t *testing.T) {
	src := NewSequenceSource(0.9, 0.8)
	src.Float64()
	src.Float64()
	src.Float64()

	src.Reset()
	assert.Equal(t, 0, src.Calls())
	assert.Equal(t, 0.9, src.Float64())
}

func TestSequenceSource_DoesNotAliasInput(t *testing.T) {
	draws := []float64{0.1, 0.2}
	src := NewSequenceSource(draws...)
	draws[0] = 0.99

	assert.Equal(t, 0.1, src.Float64())
}

func TestSequenceSource_ThreadSafe(t *testing.T) {
	src := NewSequenceSource(0.5)
	const numGoroutines = 20
	const callsPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				src.Float64()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, numGoroutines*callsPerGoroutine, src.Calls())
}
