package game

import "time"

// Recorder turns consecutive input timestamps into inter-action
// latencies. The first recorded timestamp yields no latency; each later
// one yields the gap to its predecessor. Latencies are non-negative by
// the monotonic clock guarantee; none is discarded or deduplicated.
type Recorder struct {
	last time.Time
	has  bool
}

// Record stores the timestamp and returns the latency since the
// previous one. ok is false on the first call of an attempt.
func (r *Recorder) Record(t time.Time) (latency time.Duration, ok bool) {
	if !r.has {
		r.last = t
		r.has = true
		return 0, false
	}
	latency = t.Sub(r.last)
	if latency < 0 {
		latency = 0
	}
	r.last = t
	return latency, true
}

// Reset clears the recorder for a fresh attempt.
func (r *Recorder) Reset() {
	r.has = false
}
