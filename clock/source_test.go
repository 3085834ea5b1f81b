package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemSource_Monotonic(t *testing.T) {
	src := NewSystemSource()
	require.NotZero(t, src.Frequency())

	prev := src.Ticks()
	for i := 0; i < 1000; i++ {
		now := src.Ticks()
		if now < prev {
			t.Fatalf("counter went backward: prev=%d, now=%d", prev, now)
		}
		prev = now
	}
}

func TestSystemSource_Progresses(t *testing.T) {
	src := NewSystemSource()

	start := src.Ticks()
	time.Sleep(10 * time.Millisecond)
	end := src.Ticks()

	elapsed := float64(end-start) / float64(src.Frequency())
	assert.GreaterOrEqual(t, elapsed, 0.009)
	assert.Less(t, elapsed, 0.5)
}

func TestSystemSource_PrefersHighResolution(t *testing.T) {
	src := NewSystemSource()
	if _, ok := newHighResSource(); !ok {
		t.Skip("no high-resolution counter on this host")
	}
	assert.True(t, src.HighResolution())
	assert.IsType(t, &HighResSource{}, src)
	assert.GreaterOrEqual(t, src.Frequency(), CoarseFrequency)
}

func TestCoarseSource(t *testing.T) {
	src := NewCoarseSource()
	assert.Equal(t, CoarseFrequency, src.Frequency())
	assert.False(t, src.HighResolution())
	assert.Equal(t, "coarse-ms", src.Name())

	start := src.Ticks()
	time.Sleep(15 * time.Millisecond)
	assert.GreaterOrEqual(t, src.Ticks()-start, uint64(14))
}

func TestManualSource(t *testing.T) {
	src := NewManualSource(0, true)
	assert.Equal(t, NanosPerSecond, src.Frequency())
	assert.Zero(t, src.Ticks())

	src.SetTicks(1000)
	assert.Equal(t, uint64(1000), src.Ticks())

	src.Advance(24)
	assert.Equal(t, uint64(1024), src.Ticks())

	// Backward jumps are allowed
	src.SetTicks(5)
	assert.Equal(t, uint64(5), src.Ticks())
}

func TestManualSource_AdvanceDuration(t *testing.T) {
	tests := []struct {
		name      string
		frequency uint64
		highRes   bool
		d         time.Duration
		want      uint64
	}{
		{"nanoseconds", NanosPerSecond, true, time.Millisecond, 1_000_000},
		{"performance counter", 10_000_000, true, time.Microsecond, 10},
		{"performance counter seconds", 10_000_000, true, 2*time.Second + time.Microsecond, 20_000_010},
		{"coarse", 0, false, 1500 * time.Millisecond, 1500},
		{"coarse truncates", 0, false, 999 * time.Microsecond, 0},
		{"negative ignored", NanosPerSecond, true, -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewManualSource(tt.frequency, tt.highRes)
			src.AdvanceDuration(tt.d)
			assert.Equal(t, tt.want, src.Ticks())
		})
	}
}

func TestManualSource_LowResolutionCountsMilliseconds(t *testing.T) {
	src := NewManualSource(NanosPerSecond, false)
	assert.Equal(t, CoarseFrequency, src.Frequency())
	assert.False(t, src.HighResolution())
}

func TestManualSource_Concurrency(t *testing.T) {
	src := NewManualSource(0, true)

	const goroutines = 10
	const advances = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < advances; j++ {
				src.Advance(1)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < advances; j++ {
				_ = src.Ticks()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(goroutines*advances), src.Ticks())
}
