package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	reads           int
	errors          int
	lastReadLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about report reads and
// extraction cycles. It is intentionally simple so it can be swapped for a
// real backend later; when OTel instruments are attached it mirrors every
// observation to them.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats

	extractions      int
	extractionErrors int
	lastClubCount    int

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordReportRead tracks one provider read attempt with its latency.
func (r *Recorder) RecordReportRead(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.reads++
	stats.lastReadLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReportRead(provider, duration, err)
	}
}

// RecordExtraction tracks one extraction cycle: its latency, outcome, and
// the number of club sections found.
func (r *Recorder) RecordExtraction(duration time.Duration, clubs int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.extractions++
	if err != nil {
		r.extractionErrors++
	} else {
		r.lastClubCount = clubs
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordExtraction(duration, clubs, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ReportReads returns the total read attempts recorded for a provider.
func (r *Recorder) ReportReads(provider string) int {
	return r.snapshot(provider).reads
}

// ReportReadErrors returns the failed read attempts recorded for a provider.
func (r *Recorder) ReportReadErrors(provider string) int {
	return r.snapshot(provider).errors
}

// LastReadLatency returns the last recorded latency for a provider read.
func (r *Recorder) LastReadLatency(provider string) time.Duration {
	return r.snapshot(provider).lastReadLatency
}

// Extractions returns the total extraction cycles recorded.
func (r *Recorder) Extractions() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.extractions
}

// ExtractionErrors returns the failed extraction cycles recorded.
func (r *Recorder) ExtractionErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.extractionErrors
}

// LastClubCount returns the club count from the last successful extraction.
func (r *Recorder) LastClubCount() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastClubCount
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	if r == nil {
		return providerStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
