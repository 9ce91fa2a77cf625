package session

import (
	"testing"
	"time"

	"github.com/atreya/mindplay/internal/game"
	"github.com/atreya/mindplay/internal/level"
)

// fakeMachine is a scriptable machine for controller tests.
type fakeMachine struct {
	status  game.Status
	score   int
	outcome *game.Outcome // returned by the next event, then cleared
}

func (f *fakeMachine) Start(now time.Time) { f.status = game.StatusActive }

func (f *fakeMachine) pop() *game.Outcome {
	out := f.outcome
	f.outcome = nil
	if out != nil {
		if out.Success {
			f.status = game.StatusSucceeded
		} else {
			f.status = game.StatusFailed
		}
	}
	return out
}

func (f *fakeMachine) HandleInput(dir game.Direction, now time.Time) *game.Outcome { return f.pop() }
func (f *fakeMachine) Step(now time.Time) *game.Outcome                            { return f.pop() }
func (f *fakeMachine) TickSecond() *game.Outcome                                   { return f.pop() }
func (f *fakeMachine) Status() game.Status                                         { return f.status }
func (f *fakeMachine) Score() int                                                  { return f.score }
func (f *fakeMachine) Remaining() int                                              { return 10 }

func testLevel() level.Level {
	return level.Level{
		ID: "runner-easy", Variant: level.VariantRunner,
		Difficulty: level.DifficultyEasy,
		Speed:      1.0, ObstacleCount: 4, TimeLimitSecs: 60,
	}
}

func newTestController(m *fakeMachine) *Controller {
	return NewController("child-1", testLevel(), func() (game.Machine, error) {
		return m, nil
	})
}

func TestController_LifecyclePhases(t *testing.T) {
	c := newTestController(&fakeMachine{})
	if c.Phase() != PhaseInstructions {
		t.Fatalf("phase = %v, want Instructions", c.Phase())
	}
	c.Ready()
	if c.Phase() != PhaseAwaitingStart {
		t.Fatalf("phase = %v, want AwaitingStart", c.Phase())
	}
	if err := c.StartAttempt(time.Unix(0, 0)); err != nil {
		t.Fatal(err)
	}
	if c.Phase() != PhaseActive {
		t.Fatalf("phase = %v, want Active", c.Phase())
	}
}

func TestController_SuccessBuildsResult(t *testing.T) {
	m := &fakeMachine{}
	c := newTestController(m)
	c.Ready()
	start := time.Unix(100, 0)
	c.StartAttempt(start)

	// Three inputs, then a winning one.
	c.HandleInput(game.Up, start.Add(1*time.Second))
	c.HandleInput(game.Down, start.Add(1500*time.Millisecond))
	m.outcome = &game.Outcome{Score: 86, Success: true}
	res := c.HandleInput(game.Right, start.Add(40*time.Second))

	if res == nil {
		t.Fatal("expected a result on success")
	}
	if c.Phase() != PhaseCompleted {
		t.Errorf("phase = %v, want Completed", c.Phase())
	}
	if res.Score != 86 {
		t.Errorf("score = %d, want 86", res.Score)
	}
	if res.CompletionTime != 40*time.Second {
		t.Errorf("completion = %v, want 40s", res.CompletionTime)
	}
	if res.SuccessRate != 0.86 {
		t.Errorf("successRate = %v, want 0.86", res.SuccessRate)
	}
	// First input sets the reference timestamp; two latencies follow.
	if len(res.Samples) != 2 {
		t.Errorf("samples = %d, want 2", len(res.Samples))
	}
	if res.Emotion.Joy < 0 || res.Emotion.Joy > 1 {
		t.Errorf("emotion out of range: %+v", res.Emotion)
	}
}

func TestController_FailureArmsRetry(t *testing.T) {
	m := &fakeMachine{}
	c := newTestController(m)
	c.Ready()
	c.StartAttempt(time.Unix(0, 0))

	m.outcome = &game.Outcome{Score: 12, Success: false}
	res := c.TickFrame(time.Unix(5, 0))
	if res != nil {
		t.Fatal("failure should not produce a result")
	}
	if c.Phase() != PhaseAwaitingRetry {
		t.Fatalf("phase = %v, want AwaitingRetry", c.Phase())
	}
	if c.RetryCount() != 1 {
		t.Errorf("retryCount = %d, want 1", c.RetryCount())
	}

	c.Retry()
	if c.Phase() != PhaseAwaitingStart {
		t.Fatalf("phase = %v, want AwaitingStart", c.Phase())
	}
}

func TestController_RetryCountPersistsAcrossAttempts(t *testing.T) {
	m := &fakeMachine{}
	c := newTestController(m)
	c.Ready()

	for i := 0; i < 3; i++ {
		m.status = game.StatusIdle
		c.StartAttempt(time.Unix(int64(i*100), 0))
		m.outcome = &game.Outcome{Success: false}
		c.TickSecond(time.Unix(int64(i*100+30), 0))
		c.Retry()
	}
	if c.RetryCount() != 3 {
		t.Fatalf("retryCount = %d, want 3", c.RetryCount())
	}

	// A final success carries the accumulated retries.
	m.status = game.StatusIdle
	c.StartAttempt(time.Unix(1000, 0))
	m.outcome = &game.Outcome{Score: 100, Success: true}
	res := c.TickFrame(time.Unix(1020, 0))
	if res == nil {
		t.Fatal("expected result")
	}
	if res.RetryCount != 3 {
		t.Errorf("result retryCount = %d, want 3", res.RetryCount)
	}
}

func TestController_SamplesResetEachAttempt(t *testing.T) {
	m := &fakeMachine{}
	c := newTestController(m)
	c.Ready()
	start := time.Unix(0, 0)
	c.StartAttempt(start)

	c.HandleInput(game.Up, start.Add(time.Second))
	c.HandleInput(game.Up, start.Add(2*time.Second))
	if len(c.Samples()) != 1 {
		t.Fatalf("samples = %d, want 1", len(c.Samples()))
	}

	m.outcome = &game.Outcome{Success: false}
	c.TickSecond(start.Add(3 * time.Second))
	c.Retry()
	m.status = game.StatusIdle
	c.StartAttempt(start.Add(10 * time.Second))
	if len(c.Samples()) != 0 {
		t.Errorf("samples after restart = %d, want 0", len(c.Samples()))
	}
}

func TestController_DoubleTerminalIsNoOp(t *testing.T) {
	m := &fakeMachine{}
	c := newTestController(m)
	c.Ready()
	c.StartAttempt(time.Unix(0, 0))

	m.outcome = &game.Outcome{Score: 100, Success: true}
	res := c.TickFrame(time.Unix(20, 0))
	if res == nil {
		t.Fatal("expected result")
	}

	// A second terminal signal for the same attempt must be ignored.
	m.status = game.StatusActive
	m.outcome = &game.Outcome{Score: 1, Success: false}
	if again := c.TickFrame(time.Unix(21, 0)); again != nil {
		t.Error("second terminal produced a result")
	}
	if c.Phase() != PhaseCompleted {
		t.Errorf("phase = %v, want Completed unchanged", c.Phase())
	}
	if c.Result().Score != 100 {
		t.Errorf("result mutated by second terminal: %+v", c.Result())
	}
}

func TestController_AbandonStopsInput(t *testing.T) {
	m := &fakeMachine{}
	c := newTestController(m)
	c.Ready()
	c.StartAttempt(time.Unix(0, 0))
	c.Abandon()

	m.outcome = &game.Outcome{Score: 100, Success: true}
	if res := c.HandleInput(game.Up, time.Unix(5, 0)); res != nil {
		t.Error("abandoned session accepted input")
	}
	if c.Result() != nil {
		t.Error("abandoned session produced a result")
	}
}
