package asynclog

import (
	"context"
	"sync"

	"github.com/xiaojitui007/asynclog/internal/constants"
)

// Metrics represents health metrics emitted by the async logger.
type Metrics struct {
	// Appended counts records accepted into a buffer.
	Appended uint64
	// Flushes counts completed swap-and-drain cycles.
	Flushes uint64
	// Dropped counts records discarded on the writer's re-entrant write path.
	Dropped uint64
	// SinkErrors counts failed sink writes and flushes.
	SinkErrors uint64
	// PendingBytes is the approximate size of both buffers at snapshot time.
	PendingBytes int
}

// MetricsHandler receives async logger metrics.
type MetricsHandler func(context.Context, Metrics)

//nolint:gochecknoglobals // metrics use a package-level registry for global handlers.
var metricsRegistryOnce = sync.OnceValue(func() *metricsHandlerRegistry {
	return &metricsHandlerRegistry{}
})

// RegisterMetricsHandler adds a global handler invoked when metrics are emitted.
func RegisterMetricsHandler(handler MetricsHandler) {
	if handler == nil {
		return
	}

	metricsRegistryOnce().register(handler)
}

// ClearMetricsHandlers removes all registered metrics handlers.
func ClearMetricsHandlers() {
	metricsRegistryOnce().reset()
}

// EmitMetrics notifies global handlers with the provided metrics snapshot.
func EmitMetrics(ctx context.Context, metrics Metrics) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	metricsRegistryOnce().emit(ctx, metrics)
}

type metricsHandlerRegistry struct {
	mu       sync.RWMutex
	handlers []MetricsHandler
}

func (r *metricsHandlerRegistry) register(handler MetricsHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = append(r.handlers, handler)
}

func (r *metricsHandlerRegistry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = nil
}

func (r *metricsHandlerRegistry) emit(ctx context.Context, metrics Metrics) {
	handlers := r.snapshot()
	for _, handler := range handlers {
		handler(ctx, metrics)
	}
}

func (r *metricsHandlerRegistry) snapshot() []MetricsHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.handlers) == 0 {
		return nil
	}

	clone := make([]MetricsHandler, len(r.handlers))
	copy(clone, r.handlers)

	return clone
}
