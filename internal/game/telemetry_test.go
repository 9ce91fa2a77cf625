package game

import (
	"testing"
	"time"
)

func TestRecorder_FirstCallYieldsNothing(t *testing.T) {
	var r Recorder
	if _, ok := r.Record(time.Unix(100, 0)); ok {
		t.Error("first Record should not yield a latency")
	}
}

func TestRecorder_InterArrivalLatencies(t *testing.T) {
	var r Recorder
	base := time.Unix(100, 0)
	r.Record(base)

	lat, ok := r.Record(base.Add(300 * time.Millisecond))
	if !ok || lat != 300*time.Millisecond {
		t.Errorf("latency = %v ok=%v, want 300ms true", lat, ok)
	}

	lat, ok = r.Record(base.Add(450 * time.Millisecond))
	if !ok || lat != 150*time.Millisecond {
		t.Errorf("latency = %v ok=%v, want 150ms true", lat, ok)
	}
}

func TestRecorder_Reset(t *testing.T) {
	var r Recorder
	r.Record(time.Unix(100, 0))
	r.Reset()
	if _, ok := r.Record(time.Unix(200, 0)); ok {
		t.Error("Record after Reset should behave like the first call")
	}
}
