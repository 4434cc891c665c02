package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

var errBatcherClosed = errors.New("line batcher is closed")

const (
	// DefaultMaxPending is how many bytes of an unterminated line are held
	// back before they are emitted anyway.
	DefaultMaxPending = 4096
	// DefaultInterval is how long complete lines may wait before they are emitted.
	DefaultInterval = 50 * time.Millisecond
)

// LineBatcher groups step output into whole lines for the renderer, which
// prefixes every line with its step name. A batch ends on a newline unless
// the pending tail grew past maxPending, or the batcher was flushed or closed.
// It is safe for concurrent use.
type LineBatcher struct {
	maxPending int
	interval   time.Duration
	emit       func([]byte)

	mu      sync.Mutex
	pending []byte
	timer   *time.Timer
	armed   bool
	closed  bool
}

// NewLineBatcher returns a LineBatcher that hands each batch to emit.
// Non-positive limits select the defaults.
func NewLineBatcher(maxPending int, interval time.Duration, emit func([]byte)) *LineBatcher {
	if maxPending <= 0 {
		maxPending = DefaultMaxPending
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &LineBatcher{
		maxPending: maxPending,
		interval:   interval,
		emit:       emit,
	}
}

// Write queues p. Complete lines are emitted once the interval elapses, or at
// once when the queue reaches maxPending.
func (b *LineBatcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errBatcherClosed
	}

	b.pending = append(b.pending, p...)
	if len(b.pending) >= b.maxPending {
		b.emitLocked(false)
	}
	if len(b.pending) > 0 && !b.armed {
		b.arm()
	}
	return len(p), nil
}

// Flush emits everything queued, including an unterminated last line.
func (b *LineBatcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.emitLocked(true)
}

// Close emits everything queued and rejects later writes.
func (b *LineBatcher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
	}
	b.emitLocked(true)
	return nil
}

// arm must be called with mu held.
func (b *LineBatcher) arm() {
	b.armed = true
	if b.timer == nil {
		b.timer = time.AfterFunc(b.interval, b.tick)
		return
	}
	b.timer.Reset(b.interval)
}

func (b *LineBatcher) tick() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.armed = false
	if b.closed {
		return
	}
	b.emitLocked(false)
}

// emitLocked hands the queued complete lines to emit. With all set, or when
// the unterminated tail alone reaches maxPending, the tail goes too.
// It must be called with mu held; holding it keeps batches ordered.
func (b *LineBatcher) emitLocked(all bool) {
	n := bytes.LastIndexByte(b.pending, '\n') + 1
	if all || len(b.pending)-n >= b.maxPending {
		n = len(b.pending)
	}
	if n == 0 {
		return
	}

	batch := bytes.Clone(b.pending[:n])
	b.pending = append(b.pending[:0], b.pending[n:]...)

	if b.emit != nil {
		b.emit(batch)
	}
}
