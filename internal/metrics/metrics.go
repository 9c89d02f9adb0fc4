package metrics

import (
	"sync"
	"time"
)

// DrawObservation describes one completed draw.
type DrawObservation struct {
	RefineMode string
	Duration   time.Duration
	Assigned   int
	Unassigned int
	Swaps      int
	Spread     int
}

type drawStats struct {
	draws        int
	failures     int
	assigned     int
	unassigned   int
	swaps        int
	lastSpread   int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about draws and mirrors
// them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu       sync.Mutex
	draws    drawStats
	requests int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{otel: otel}
}

// RecordDraw tracks a successful draw.
func (r *Recorder) RecordDraw(obs DrawObservation) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.draws.draws++
	r.draws.assigned += obs.Assigned
	r.draws.unassigned += obs.Unassigned
	r.draws.swaps += obs.Swaps
	r.draws.lastSpread = obs.Spread
	r.draws.lastDuration = obs.Duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDraw(obs)
	}
}

// RecordDrawFailure tracks a draw rejected before balancing.
func (r *Recorder) RecordDrawFailure(reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.draws.failures++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDrawFailure(reason)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.requests++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// Snapshot is a copy of the recorder totals.
type Snapshot struct {
	Draws        int
	Failures     int
	Assigned     int
	Unassigned   int
	Swaps        int
	LastSpread   int
	LastDuration time.Duration
	Requests     int
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Draws:        r.draws.draws,
		Failures:     r.draws.failures,
		Assigned:     r.draws.assigned,
		Unassigned:   r.draws.unassigned,
		Swaps:        r.draws.swaps,
		LastSpread:   r.draws.lastSpread,
		LastDuration: r.draws.lastDuration,
		Requests:     r.requests,
	}
}

// Draws returns the number of successful draws recorded.
func (r *Recorder) Draws() int {
	return r.Snapshot().Draws
}

// UnassignedPlayers returns the total overflow players across draws.
func (r *Recorder) UnassignedPlayers() int {
	return r.Snapshot().Unassigned
}
