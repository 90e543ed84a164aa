package metrics

import (
	"sync"
	"time"
)

type queryStats struct {
	calls       int
	misses      int
	lastResults int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset queries and
// forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu      sync.Mutex
	queries map[string]*queryStats
	records int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		queries: make(map[string]*queryStats),
		otel:    otel,
	}
}

// RecordQuery counts a query operation. A query with zero results is a miss.
func (r *Recorder) RecordQuery(operation string, duration time.Duration, results int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.queries[operation]
	if !ok {
		stats = &queryStats{}
		r.queries[operation] = stats
	}
	stats.calls++
	stats.lastResults = results
	stats.lastLatency = duration
	if results == 0 {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuery(operation, duration, results)
	}
}

// RecordDatasetLoad stores the size of the loaded dataset and load latency.
func (r *Recorder) RecordDatasetLoad(records int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.records = records
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDatasetLoad(records, duration)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the stats recorded for one query operation.
type Snapshot struct {
	Calls       int
	Misses      int
	LastResults int
	LastLatency time.Duration
}

// Snapshot returns the current stats for the operation.
func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.queries[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Misses:      stats.misses,
		LastResults: stats.lastResults,
		LastLatency: stats.lastLatency,
	}
}

// QueryCalls returns the total calls recorded for an operation.
func (r *Recorder) QueryCalls(operation string) int {
	return r.Snapshot(operation).Calls
}

// QueryMisses returns how many calls of an operation found nothing.
func (r *Recorder) QueryMisses(operation string) int {
	return r.Snapshot(operation).Misses
}

// DatasetRecords returns the size of the last recorded dataset load.
func (r *Recorder) DatasetRecords() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records
}
