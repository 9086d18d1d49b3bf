package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderReportReads(t *testing.T) {
	rec := NewRecorder()

	rec.RecordReportRead("file", 12*time.Millisecond, nil)
	rec.RecordReportRead("file", 8*time.Millisecond, errors.New("boom"))

	if got := rec.ReportReads("file"); got != 2 {
		t.Fatalf("expected 2 reads, got %d", got)
	}
	if got := rec.ReportReadErrors("file"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastReadLatency("file"); got != 8*time.Millisecond {
		t.Fatalf("expected last latency 8ms, got %s", got)
	}
}

func TestRecorderExtractions(t *testing.T) {
	rec := NewRecorder()

	rec.RecordExtraction(time.Millisecond, 20, nil)
	rec.RecordExtraction(time.Millisecond, 0, errors.New("boom"))

	if got := rec.Extractions(); got != 2 {
		t.Fatalf("expected 2 cycles, got %d", got)
	}
	if got := rec.ExtractionErrors(); got != 1 {
		t.Fatalf("expected 1 failed cycle, got %d", got)
	}
	if got := rec.LastClubCount(); got != 20 {
		t.Fatalf("expected club count from last success, got %d", got)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordReportRead("file", time.Millisecond, nil)
	rec.RecordExtraction(time.Millisecond, 1, nil)
	rec.RecordHTTPRequest("GET", "/clubs", 200, time.Millisecond)
	if rec.Extractions() != 0 || rec.ReportReads("file") != 0 {
		t.Fatalf("expected zero counts on nil recorder")
	}
}

func TestSetupDisabledReturnsRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledProvidesHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, Port: "0"})
	if err != nil {
		t.Fatalf("expected setup to succeed, got %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
	}()
	if handler == nil {
		t.Fatal("expected prometheus handler")
	}

	rec.RecordExtraction(time.Millisecond, 20, nil)
	rec.RecordHTTPRequest("GET", "/clubs", 200, time.Millisecond)
	if got := rec.Extractions(); got != 1 {
		t.Fatalf("expected in-memory count alongside otel, got %d", got)
	}
}
