package syncer

import "sync/atomic"

// Stats tracks coordinator activity using atomic operations for thread-safety
type Stats struct {
	submitted atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	simulated atomic.Int64
	remapped  atomic.Int64
	inFlight  atomic.Int64
}

// StatsSnapshot represents a point-in-time snapshot of coordinator stats
type StatsSnapshot struct {
	Submitted int64 `json:"submitted"`
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
	Simulated int64 `json:"simulated"`
	Remapped  int64 `json:"remapped"`
	InFlight  int64 `json:"inFlight"`
}

// Snapshot returns the current counter values
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Submitted: s.submitted.Load(),
		Succeeded: s.succeeded.Load(),
		Failed:    s.failed.Load(),
		Simulated: s.simulated.Load(),
		Remapped:  s.remapped.Load(),
		InFlight:  s.inFlight.Load(),
	}
}
