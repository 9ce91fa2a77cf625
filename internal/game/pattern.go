package game

import (
	"math/rand"
	"time"

	"github.com/atreya/mindplay/internal/level"
)

// PatternPhase is the sub-state of a pattern-recall round.
type PatternPhase int

const (
	PatternShowing PatternPhase = iota // playing the sequence back
	PatternInput                       // accepting directional guesses
	PatternPause                       // short break before the next round
)

const (
	patternLives     = 3
	patternRoundCap  = 8
	patternPauseTime = time.Second
	patternBasePace  = 900 * time.Millisecond
)

// forgivenessRule decides what an incorrect guess costs, keyed by
// difficulty and a round upper bound. Rules are evaluated in order.
type forgivenessRule struct {
	difficulty   level.Difficulty
	throughRound int
	consumesLife bool
	reshows      bool
}

// forgivenessPolicy: early easy rounds re-show the sequence for free;
// everything else costs a life and re-shows.
var forgivenessPolicy = []forgivenessRule{
	{level.DifficultyEasy, 3, false, true},
	{"", 0, true, true}, // default
}

func forgivenessFor(d level.Difficulty, round int) forgivenessRule {
	for _, r := range forgivenessPolicy {
		if r.difficulty != "" && r.difficulty != d {
			continue
		}
		if r.throughRound > 0 && round > r.throughRound {
			continue
		}
		return r
	}
	return forgivenessRule{consumesLife: true, reshows: true}
}

func patternMaxLen(d level.Difficulty) int {
	switch d {
	case level.DifficultyEasy:
		return 4
	case level.DifficultyMedium:
		return 6
	default:
		return 8
	}
}

func patternMultiplier(d level.Difficulty) int {
	switch d {
	case level.DifficultyEasy:
		return 12
	case level.DifficultyMedium:
		return 14
	default:
		return 16
	}
}

func patternTarget(d level.Difficulty) int {
	switch d {
	case level.DifficultyEasy:
		return 60
	case level.DifficultyMedium:
		return 100
	default:
		return 140
	}
}

// SequenceLength returns the sequence length for a 1-based round number.
func SequenceLength(d level.Difficulty, round int) int {
	n := 2 + round/4
	if m := patternMaxLen(d); n > m {
		n = m
	}
	return n
}

// Pattern is the pattern-recall game: watch a direction sequence, then
// repeat it. Rounds grow longer; completing one scores
// multiplier × length.
type Pattern struct {
	difficulty level.Difficulty
	pace       time.Duration

	round    int // 1-based
	sequence []Direction
	phase    PatternPhase

	showIndex  int
	inputIndex int
	nextAt     time.Time

	lives     int
	score     int
	remaining int
	status    Status
	rng       *rand.Rand
}

// NewPattern builds a pattern-recall machine from a level. Higher level
// speed plays sequences back faster.
func NewPattern(lvl level.Level, rng *rand.Rand) *Pattern {
	pace := time.Duration(float64(patternBasePace) / lvl.Speed)
	return &Pattern{
		difficulty: lvl.Difficulty,
		pace:       pace,
		lives:      patternLives,
		remaining:  lvl.TimeLimitSecs,
		rng:        rng,
	}
}

func (p *Pattern) Start(now time.Time) {
	if p.status != StatusIdle {
		return
	}
	p.status = StatusActive
	p.round = 1
	p.beginRound(now)
}

func (p *Pattern) Status() Status          { return p.status }
func (p *Pattern) Score() int              { return p.score }
func (p *Pattern) Remaining() int          { return p.remaining }
func (p *Pattern) Phase() PatternPhase     { return p.phase }
func (p *Pattern) Round() int              { return p.round }
func (p *Pattern) Lives() int              { return p.lives }
func (p *Pattern) Sequence() []Direction   { return p.sequence }
func (p *Pattern) ShowIndex() int          { return p.showIndex }
func (p *Pattern) InputIndex() int         { return p.inputIndex }
func (p *Pattern) Target() int             { return patternTarget(p.difficulty) }

func (p *Pattern) beginRound(now time.Time) {
	n := SequenceLength(p.difficulty, p.round)
	p.sequence = make([]Direction, n)
	for i := range p.sequence {
		p.sequence[i] = Direction(p.rng.Intn(4))
	}
	p.reshow(now)
}

func (p *Pattern) reshow(now time.Time) {
	p.phase = PatternShowing
	p.showIndex = 0
	p.inputIndex = 0
	p.nextAt = now.Add(p.pace)
}

// Step advances sequence playback and round pauses.
func (p *Pattern) Step(now time.Time) *Outcome {
	if p.status != StatusActive {
		return nil
	}
	switch p.phase {
	case PatternShowing:
		if now.Before(p.nextAt) {
			return nil
		}
		p.showIndex++
		if p.showIndex >= len(p.sequence) {
			p.phase = PatternInput
			p.inputIndex = 0
			return nil
		}
		p.nextAt = now.Add(p.pace)
	case PatternPause:
		if now.Before(p.nextAt) {
			return nil
		}
		p.round++
		p.beginRound(now)
	}
	return nil
}

// HandleInput checks a guess against the sequence. Ignored outside the
// input phase.
func (p *Pattern) HandleInput(dir Direction, now time.Time) *Outcome {
	if p.status != StatusActive || p.phase != PatternInput {
		return nil
	}

	if dir != p.sequence[p.inputIndex] {
		rule := forgivenessFor(p.difficulty, p.round)
		if rule.consumesLife {
			p.lives--
			if p.lives <= 0 {
				p.status = StatusFailed
				return &Outcome{Score: p.score, Success: false}
			}
		}
		if rule.reshows {
			p.reshow(now)
		}
		return nil
	}

	p.inputIndex++
	if p.inputIndex < len(p.sequence) {
		return nil
	}

	// Full match: score the round.
	p.score += patternMultiplier(p.difficulty) * len(p.sequence)
	if p.score >= patternTarget(p.difficulty) || p.round >= patternRoundCap {
		p.status = StatusSucceeded
		return &Outcome{Score: p.score, Success: true}
	}
	p.phase = PatternPause
	p.nextAt = now.Add(patternPauseTime)
	return nil
}

// TickSecond burns one second of the countdown.
func (p *Pattern) TickSecond() *Outcome {
	if p.status != StatusActive {
		return nil
	}
	p.remaining--
	if p.remaining <= 0 {
		p.remaining = 0
		p.status = StatusFailed
		return &Outcome{Score: p.score, Success: false}
	}
	return nil
}
