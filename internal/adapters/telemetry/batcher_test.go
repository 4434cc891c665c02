package telemetry_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinolab/autd3-link-soem/internal/adapters/telemetry"
)

type batchRecorder struct {
	mu      sync.Mutex
	batches []string
}

func (r *batchRecorder) emit(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, string(data))
}

func (r *batchRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.batches...)
}

func TestLineBatcher_FullQueueEmitsCompleteLinesOnly(t *testing.T) {
	rec := &batchRecorder{}
	b := telemetry.NewLineBatcher(8, time.Hour, rec.emit)
	defer func() { _ = b.Close() }()

	_, err := b.Write([]byte("ab\ncd"))
	require.NoError(t, err)
	assert.Empty(t, rec.snapshot())

	_, err = b.Write([]byte("efgh"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab\n"}, rec.snapshot())
}

func TestLineBatcher_OverlongLineIsEmitted(t *testing.T) {
	rec := &batchRecorder{}
	b := telemetry.NewLineBatcher(4, time.Hour, rec.emit)
	defer func() { _ = b.Close() }()

	_, err := b.Write([]byte("Compiling"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Compiling"}, rec.snapshot())
}

func TestLineBatcher_IntervalHoldsBackPartialLine(t *testing.T) {
	rec := &batchRecorder{}
	b := telemetry.NewLineBatcher(1024, 10*time.Millisecond, rec.emit)

	_, err := b.Write([]byte("running 3 tests\ntest a"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"running 3 tests\n"}, rec.snapshot())

	_, err = b.Write([]byte(" ... ok\n"))
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "test a ... ok\n", rec.snapshot()[1])

	require.NoError(t, b.Close())
	assert.Len(t, rec.snapshot(), 2)
}

func TestLineBatcher_CloseEmitsTailAndRejectsWrites(t *testing.T) {
	rec := &batchRecorder{}
	b := telemetry.NewLineBatcher(1024, time.Hour, rec.emit)

	_, err := b.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	assert.Equal(t, []string{"tail"}, rec.snapshot())

	_, err = b.Write([]byte("late"))
	require.Error(t, err)
}

func TestLineBatcher_Flush(t *testing.T) {
	rec := &batchRecorder{}
	b := telemetry.NewLineBatcher(0, time.Hour, rec.emit)
	defer func() { _ = b.Close() }()

	b.Flush()
	assert.Empty(t, rec.snapshot(), "empty queue emits nothing")

	_, _ = b.Write([]byte("x"))
	b.Flush()
	assert.Equal(t, []string{"x"}, rec.snapshot())
}
