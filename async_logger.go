package asynclog

import (
	"sync"
	"sync/atomic"

	"github.com/hyp3rd/ewrap"
	"github.com/petermattis/goid"
)

// lifecycle state of an AsyncLogger. Transitions are linear with no re-entry:
// Init → Running → Stopped.
type lifecycleState uint8

const (
	stateInit lifecycleState = iota
	stateRunning
	stateStopped
)

// AsyncLogger forwards log records to a Sink from a dedicated writer
// goroutine, performing double buffering. Producers append to the active
// buffer and wake the writer; the writer swaps in the second buffer and
// drains the accumulated records to the sink while producers keep filling
// the fresh one.
//
// The swap is the only point where producers and the writer contend on the
// same lock. Drain I/O happens outside the lock, so producers are never
// blocked by sink latency, only by the size-based backpressure bound, which
// prevents runaway memory usage when the sink stalls.
type AsyncLogger struct {
	config Config
	sink   Sink

	// mu protects the two buffers, the lifecycle state, and writerID.
	mu sync.Mutex

	// wakeWriter is signaled by producers when new data or a state change
	// needs the writer's attention.
	wakeWriter *sync.Cond

	// drainComplete is broadcast by the writer after each completed
	// swap-and-drain cycle. Flush callers and backpressure-blocked producers
	// wait on it.
	drainComplete *sync.Cond

	// active receives new appends; flushing is being drained by the writer.
	// The two roles swap by pointer exchange under mu.
	active   *recordBuffer
	flushing *recordBuffer

	state lifecycleState

	// writerID is the writer goroutine's id while the logger runs. Write
	// compares against it to detect re-entrant calls from the drain path.
	writerID atomic.Int64

	wg sync.WaitGroup

	metricsMu sync.Mutex

	appendedCount atomic.Uint64
	flushCount    atomic.Uint64
	dropCount     atomic.Uint64
	sinkErrors    atomic.Uint64
}

// NewAsyncLogger creates an AsyncLogger wrapping the given sink. The logger
// is created in its initial state; call Start before writing.
func NewAsyncLogger(sink Sink, config Config) *AsyncLogger {
	// Set defaults for config if needed
	if config.MaxBufferBytes <= 0 {
		config.MaxBufferBytes = DefaultMaxBufferBytes
	}

	if !config.ForceFlushSeverity.IsValid() {
		config.ForceFlushSeverity = DefaultForceFlushSeverity
	}

	if !config.FatalSeverity.IsValid() {
		config.FatalSeverity = DefaultFatalSeverity
	}

	if config.ErrorHandler == nil {
		config.ErrorHandler = func(error) {}
	}

	if config.DropHandler == nil {
		config.DropHandler = func(Record) {}
	}

	logger := &AsyncLogger{
		config:   config,
		sink:     sink,
		active:   newRecordBuffer(),
		flushing: newRecordBuffer(),
	}

	logger.wakeWriter = sync.NewCond(&logger.mu)
	logger.drainComplete = sync.NewCond(&logger.mu)

	return logger
}

// Start spawns the writer goroutine and transitions the logger to its
// running state. Valid only once, from the initial state.
func (l *AsyncLogger) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != stateInit {
		return ErrAlreadyStarted
	}

	l.state = stateRunning

	l.wg.Add(1)

	go l.runWriter()

	return nil
}

// Stop transitions the logger to its stopped state, wakes the writer, and
// waits for it to drain all remaining buffered records and terminate. After
// Stop returns, Write and Flush must not be called.
func (l *AsyncLogger) Stop() error {
	l.mu.Lock()

	if l.state != stateRunning {
		current := l.state
		l.mu.Unlock()

		if current == stateStopped {
			return ErrStopped
		}

		return ErrNotRunning
	}

	l.state = stateStopped
	l.wakeWriter.Signal()
	l.mu.Unlock()

	l.wg.Wait()

	return nil
}

// Write appends a record to the active buffer and wakes the writer.
//
// When the active buffer is at its size bound the caller blocks until the
// writer completes a drain cycle; that backpressure is what bounds memory
// when the sink is slow. The one exception is the writer goroutine itself:
// if the sink or a handler logs back into the logger from the drain path,
// blocking would deadlock, so the record is dropped and counted instead.
//
// forceFlush requests a sink flush once the record's buffer is drained.
// Records at or above the configured force-flush severity imply it. Records
// at or above the fatal severity are synchronous: Write does not return
// until the record has been handed to the sink and the sink flushed, so a
// crash immediately after a fatal log call cannot lose the message.
func (l *AsyncLogger) Write(r Record, forceFlush bool) error {
	if r.Severity >= l.config.ForceFlushSeverity {
		forceFlush = true
	}

	onWriter := goid.Get() == l.writerID.Load()

	l.mu.Lock()

	if l.state != stateRunning {
		current := l.state
		l.mu.Unlock()

		if current == stateStopped {
			return ErrStopped
		}

		return ErrNotRunning
	}

	for l.active.approximateSize() >= l.config.MaxBufferBytes {
		if onWriter {
			// Re-entrant write from the drain path; waiting here would
			// deadlock against ourselves.
			l.dropCount.Add(1)
			l.mu.Unlock()

			l.config.DropHandler(r)
			l.reportMetrics()

			return nil
		}

		l.wakeWriter.Signal()
		l.drainComplete.Wait()

		if l.state != stateRunning {
			l.mu.Unlock()

			return ErrStopped
		}
	}

	l.active.append(r, forceFlush)
	l.appendedCount.Add(1)
	l.wakeWriter.Signal()

	if r.Severity >= l.config.FatalSeverity && !onWriter {
		l.waitForDrainLocked()
	}

	l.mu.Unlock()

	l.reportMetrics()

	return nil
}

// Flush blocks until every record appended before the call has been handed
// to the sink and the sink flushed.
func (l *AsyncLogger) Flush() error {
	l.mu.Lock()

	if l.state != stateRunning {
		stopped := l.state == stateStopped
		l.mu.Unlock()

		if stopped {
			return ErrStopped
		}

		return ErrNotRunning
	}

	l.waitForDrainLocked()
	l.mu.Unlock()

	return nil
}

// ApproximateSize reports the current size of the sink's destination. The
// value is approximate since buffered records may not have been drained yet.
func (l *AsyncLogger) ApproximateSize() int64 {
	return l.sink.ApproximateSize()
}

// Metrics returns a snapshot of the current counters and pending buffer bytes.
func (l *AsyncLogger) Metrics() Metrics {
	l.mu.Lock()
	pending := l.active.approximateSize() + l.flushing.approximateSize()
	l.mu.Unlock()

	return Metrics{
		Appended:     l.appendedCount.Load(),
		Flushes:      l.flushCount.Load(),
		Dropped:      l.dropCount.Load(),
		SinkErrors:   l.sinkErrors.Load(),
		PendingBytes: pending,
	}
}

// waitForDrainLocked blocks until the writer completes two drain cycles,
// which guarantees the buffer that was active on entry has been handed to
// the sink regardless of an in-flight swap. The active buffer is re-marked
// for flush each iteration so an idle writer still cycles. Returns early if
// the logger stopped, since Stop drains everything itself.
//
// Caller must hold l.mu.
func (l *AsyncLogger) waitForDrainLocked() {
	target := l.flushCount.Load() + 2

	for l.flushCount.Load() < target && l.state != stateStopped {
		l.active.markFlush()
		l.wakeWriter.Signal()
		l.drainComplete.Wait()
	}
}

// runWriter is the writer goroutine. It swaps the buffers under the lock,
// drains the previous generation to the sink outside the lock, and signals
// completion. It terminates once the logger is stopped and both buffers are
// empty.
func (l *AsyncLogger) runWriter() {
	defer l.wg.Done()

	l.writerID.Store(goid.Get())
	defer l.writerID.Store(0)

	l.mu.Lock()

	for {
		for !l.active.needsFlushOrWrite() && l.state == stateRunning {
			l.wakeWriter.Wait()
		}

		if !l.active.needsFlushOrWrite() && l.state == stateStopped {
			// Nothing left to drain; release anyone still waiting before
			// terminating.
			l.drainComplete.Broadcast()
			l.mu.Unlock()

			return
		}

		l.active, l.flushing = l.flushing, l.active
		l.mu.Unlock()

		l.drain(l.flushing)

		l.mu.Lock()
		l.flushing.clear()
		l.flushCount.Add(1)
		l.drainComplete.Broadcast()
	}
}

// drain hands one buffer generation to the sink in insertion order, then
// flushes the sink if the generation requested it. Sink failures are counted
// and surfaced through the error handler; the writer does not retry, since
// losing the logger entirely would be worse than losing one sink write.
//
// Runs without holding l.mu.
func (l *AsyncLogger) drain(buf *recordBuffer) {
	if len(buf.records) > 0 {
		err := l.sink.Write(buf.records)
		if err != nil {
			l.sinkErrors.Add(1)
			l.config.ErrorHandler(ewrap.Wrap(err, "writing records to sink"))
		}
	}

	if buf.mustFlush {
		err := l.sink.Flush()
		if err != nil {
			l.sinkErrors.Add(1)
			l.config.ErrorHandler(ewrap.Wrap(err, "flushing sink"))
		}
	}

	l.reportMetrics()
}

func (l *AsyncLogger) reportMetrics() {
	reporter := l.config.MetricsReporter
	if reporter == nil {
		return
	}

	l.metricsMu.Lock()
	defer l.metricsMu.Unlock()

	reporter(l.Metrics())
}
