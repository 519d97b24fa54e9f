package asynclog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMetricsExporter(t *testing.T) {
	exporter := NewMetricsExporter()

	exporter.Observe(context.Background(), Metrics{
		Appended:     10,
		Flushes:      8,
		Dropped:      2,
		SinkErrors:   1,
		PendingBytes: 4,
	})

	rec := httptest.NewRecorder()
	exporter.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()

	for _, metric := range []string{
		"asynclog_appended_total 10",
		"asynclog_flushes_total 8",
		"asynclog_dropped_total 2",
		"asynclog_sink_errors_total 1",
		"asynclog_pending_bytes 4",
	} {
		if !strings.Contains(body, metric) {
			t.Fatalf("expected response to contain %q, got %q", metric, body)
		}
	}
}
