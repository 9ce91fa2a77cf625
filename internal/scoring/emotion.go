// Package scoring converts raw session telemetry into a normalized
// emotional-state estimate for caregiver summaries.
package scoring

import (
	"math"
	"time"
)

const (
	// defaultMeanReaction substitutes for an empty sample sequence.
	defaultMeanReaction = 500 * time.Millisecond

	// neutralConsistency substitutes when fewer than two samples exist.
	neutralConsistency = 0.7

	// timeEfficiencyCap bounds the reward for finishing far under the
	// time limit.
	timeEfficiencyCap = 3.0

	// fastReaction and reactionWindow shape the reaction-speed score:
	// full marks at or below fastReaction, zero at
	// fastReaction+reactionWindow.
	fastReaction   = 250 * time.Millisecond
	reactionWindow = 1250 * time.Millisecond
)

// Inputs are the five observations a finished attempt produces.
type Inputs struct {
	CompletionTime time.Duration
	TimeLimit      time.Duration
	RetryCount     int
	SuccessRate    float64 // 0..1
	Samples        []time.Duration
}

// Emotion is the derived emotional-state vector. Joy, Frustration,
// Engagement and Focus are in [0,1]; Overall is in [-1,1]. Values are
// never mutated after creation.
type Emotion struct {
	Joy         float64
	Frustration float64
	Engagement  float64
	Focus       float64
	Overall     float64
}

// Weights are the tunable blend coefficients. They are policy, not
// contract: the binding invariants are output ranges and finiteness.
type Weights struct {
	JoySuccess     float64
	JoyEfficiency  float64
	JoyRetry       float64
	JoyConsistency float64

	FrustFailure       float64
	FrustRetry         float64
	FrustSlowness      float64
	FrustInconsistency float64

	EngSpeed       float64
	EngConsistency float64
	EngSuccess     float64
	EngEfficiency  float64

	FocusConsistency float64
	FocusEfficiency  float64
	FocusCalm        float64

	RetryPenalty   float64 // per-retry factor drop for joy
	FrustRetryStep float64 // per-retry frustration contribution
	FocusRetryStep float64 // per-retry focus drop
	FocusRetryCap  float64

	OverallJoy         float64
	OverallEngagement  float64
	OverallFocus       float64
	OverallFrustration float64
}

// DefaultWeights returns the tuning used in production.
func DefaultWeights() Weights {
	return Weights{
		JoySuccess: 0.40, JoyEfficiency: 0.25, JoyRetry: 0.20, JoyConsistency: 0.15,
		FrustFailure: 0.35, FrustRetry: 0.25, FrustSlowness: 0.20, FrustInconsistency: 0.20,
		EngSpeed: 0.30, EngConsistency: 0.25, EngSuccess: 0.25, EngEfficiency: 0.20,
		FocusConsistency: 0.40, FocusEfficiency: 0.30, FocusCalm: 0.30,
		RetryPenalty:   0.15,
		FrustRetryStep: 0.20,
		FocusRetryStep: 0.10,
		FocusRetryCap:  0.60,
		OverallJoy:     0.35, OverallEngagement: 0.30, OverallFocus: 0.25, OverallFrustration: 0.50,
	}
}

// Score derives the emotion vector from the session observations. It is
// a pure function: deterministic, no side effects, and finite in-range
// outputs for any inputs satisfying the Inputs contract.
func Score(in Inputs, w Weights) Emotion {
	completion := in.CompletionTime
	if completion <= 0 {
		completion = time.Millisecond
	}
	limit := in.TimeLimit
	if limit <= 0 {
		limit = time.Second
	}
	successRate := clamp(in.SuccessRate, 0, 1)
	retries := in.RetryCount
	if retries < 0 {
		retries = 0
	}

	timeEff := clamp(float64(limit)/float64(completion), 0, timeEfficiencyCap)
	timeEffNorm := timeEff / timeEfficiencyCap
	timeEff01 := math.Min(timeEff, 1)

	retryFactor := clamp(1-float64(retries)*w.RetryPenalty, 0, 1)

	mean := meanDuration(in.Samples)
	consistency := neutralConsistency
	if len(in.Samples) >= 2 && mean > 0 {
		consistency = clamp(1-stdevDuration(in.Samples, mean)/float64(mean), 0, 1)
	}

	speed := clamp(1-float64(mean-fastReaction)/float64(reactionWindow), 0, 1)

	joy := clamp(
		w.JoySuccess*successRate+
			w.JoyEfficiency*timeEffNorm+
			w.JoyRetry*retryFactor+
			w.JoyConsistency*consistency,
		0, 1)

	frustration := clamp(
		w.FrustFailure*(1-successRate)+
			w.FrustRetry*math.Min(float64(retries)*w.FrustRetryStep, 1)+
			w.FrustSlowness*(1-timeEff01)+
			w.FrustInconsistency*(1-consistency),
		0, 1)

	engagement := clamp(
		w.EngSpeed*speed+
			w.EngConsistency*consistency+
			w.EngSuccess*successRate+
			w.EngEfficiency*timeEff01,
		0, 1)

	focus := clamp(
		w.FocusConsistency*consistency+
			w.FocusEfficiency*timeEffNorm+
			w.FocusCalm*(1-math.Min(float64(retries)*w.FocusRetryStep, w.FocusRetryCap)),
		0, 1)

	overall := clamp(
		w.OverallJoy*joy+
			w.OverallEngagement*engagement+
			w.OverallFocus*focus-
			w.OverallFrustration*frustration,
		-1, 1)

	return Emotion{
		Joy:         joy,
		Frustration: frustration,
		Engagement:  engagement,
		Focus:       focus,
		Overall:     overall,
	}
}

func meanDuration(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return defaultMeanReaction
	}
	var sum time.Duration
	for _, s := range samples {
		sum += s
	}
	return sum / time.Duration(len(samples))
}

func stdevDuration(samples []time.Duration, mean time.Duration) float64 {
	var acc float64
	for _, s := range samples {
		d := float64(s - mean)
		acc += d * d
	}
	return math.Sqrt(acc / float64(len(samples)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
