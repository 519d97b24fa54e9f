package asynclog

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
)

// MetricsExporter exposes async logger metrics via a Prometheus-style HTTP
// handler. Register the Observe method using RegisterMetricsHandler to begin
// collecting data.
type MetricsExporter struct {
	appended     atomic.Uint64
	flushes      atomic.Uint64
	dropped      atomic.Uint64
	sinkErrors   atomic.Uint64
	pendingBytes atomic.Int64
}

// NewMetricsExporter creates a new exporter instance.
func NewMetricsExporter() *MetricsExporter {
	return &MetricsExporter{}
}

// Observe can be registered with RegisterMetricsHandler to record metrics snapshots.
func (e *MetricsExporter) Observe(_ context.Context, metrics Metrics) {
	e.appended.Store(metrics.Appended)
	e.flushes.Store(metrics.Flushes)
	e.dropped.Store(metrics.Dropped)
	e.sinkErrors.Store(metrics.SinkErrors)
	e.pendingBytes.Store(int64(metrics.PendingBytes))
}

// ServeHTTP renders the metrics using Prometheus exposition format.
func (e *MetricsExporter) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintln(w, "# HELP asynclog_appended_total Total log records appended")
	fmt.Fprintln(w, "# TYPE asynclog_appended_total counter")
	fmt.Fprintf(w, "asynclog_appended_total %d\n", e.appended.Load())

	fmt.Fprintln(w, "# HELP asynclog_flushes_total Total completed drain cycles")
	fmt.Fprintln(w, "# TYPE asynclog_flushes_total counter")
	fmt.Fprintf(w, "asynclog_flushes_total %d\n", e.flushes.Load())

	fmt.Fprintln(w, "# HELP asynclog_dropped_total Total log records dropped")
	fmt.Fprintln(w, "# TYPE asynclog_dropped_total counter")
	fmt.Fprintf(w, "asynclog_dropped_total %d\n", e.dropped.Load())

	fmt.Fprintln(w, "# HELP asynclog_sink_errors_total Total sink write and flush errors")
	fmt.Fprintln(w, "# TYPE asynclog_sink_errors_total counter")
	fmt.Fprintf(w, "asynclog_sink_errors_total %d\n", e.sinkErrors.Load())

	fmt.Fprintln(w, "# HELP asynclog_pending_bytes Approximate bytes waiting in the buffers")
	fmt.Fprintln(w, "# TYPE asynclog_pending_bytes gauge")
	fmt.Fprintf(w, "asynclog_pending_bytes %d\n", e.pendingBytes.Load())
}
