package game

import (
	"math/rand"
	"time"

	"github.com/atreya/mindplay/internal/level"
)

const (
	snakeStartLen   = 3
	snakeFoodPoints = 10

	// snakeRelocateDraws bounds target relocation sampling; the grid is
	// large relative to the body for any winnable game.
	snakeRelocateDraws = 2000
)

// Cell is a grid coordinate used by the snake variant.
type Cell struct {
	X, Y int
}

// Snake is the grid-growth game: the body advances one cell per move
// tick in the last committed direction, growing when it eats the target.
type Snake struct {
	w, h int

	body      []Cell // head first
	committed Direction
	pending   Direction

	target    Cell
	obstacles map[Cell]bool

	moveEvery int
	frame     int

	score     int
	remaining int
	status    Status
	rng       *rand.Rand
}

// NewSnake builds a snake machine from a level. Higher level speed
// shortens the move cadence.
func NewSnake(lvl level.Level, rng *rand.Rand) *Snake {
	w, h := level.GridSize(level.VariantSnake, lvl.Difficulty)
	moveEvery := int(8.0 / lvl.Speed)
	if moveEvery < 2 {
		moveEvery = 2
	}

	s := &Snake{
		w:         w,
		h:         h,
		committed: Right,
		pending:   Right,
		moveEvery: moveEvery,
		remaining: lvl.TimeLimitSecs,
		obstacles: make(map[Cell]bool),
		rng:       rng,
	}

	// Body starts horizontal at mid-field, head to the right.
	headX, headY := w/2, h/2
	for i := 0; i < snakeStartLen; i++ {
		s.body = append(s.body, Cell{headX - i, headY})
	}

	for i := 0; i < lvl.ObstacleCount; i++ {
		if c, ok := s.freeCell(); ok {
			s.obstacles[c] = true
		}
	}
	if c, ok := s.freeCell(); ok {
		s.target = c
	}
	return s
}

func (s *Snake) Start(now time.Time) {
	if s.status == StatusIdle {
		s.status = StatusActive
	}
}

func (s *Snake) Status() Status   { return s.status }
func (s *Snake) Score() int       { return s.score }
func (s *Snake) Remaining() int   { return s.remaining }
func (s *Snake) Size() (int, int) { return s.w, s.h }
func (s *Snake) Body() []Cell     { return s.body }
func (s *Snake) Target() Cell     { return s.target }

// CommittedDirection returns the direction of the last committed move.
func (s *Snake) CommittedDirection() Direction { return s.committed }

// ObstacleCells returns the obstacle positions.
func (s *Snake) ObstacleCells() []Cell {
	cells := make([]Cell, 0, len(s.obstacles))
	for c := range s.obstacles {
		cells = append(cells, c)
	}
	return cells
}

// HandleInput queues a direction change. A direction reversing the
// immediately-preceding committed move is rejected so the head can
// never fold back onto the neck.
func (s *Snake) HandleInput(dir Direction, now time.Time) *Outcome {
	if s.status != StatusActive {
		return nil
	}
	if dir == s.committed.Reverse() {
		return nil
	}
	s.pending = dir
	return nil
}

// Step advances the move cadence; the body moves one cell per move tick.
func (s *Snake) Step(now time.Time) *Outcome {
	if s.status != StatusActive {
		return nil
	}
	s.frame++
	if s.frame%s.moveEvery != 0 {
		return nil
	}

	s.committed = s.pending
	head := s.body[0]
	switch s.committed {
	case Up:
		head.Y--
	case Down:
		head.Y++
	case Left:
		head.X--
	case Right:
		head.X++
	}

	if head.X < 0 || head.X >= s.w || head.Y < 0 || head.Y >= s.h {
		s.status = StatusFailed
		return &Outcome{Score: s.score, Success: false}
	}
	if s.obstacles[head] {
		s.status = StatusFailed
		return &Outcome{Score: s.score, Success: false}
	}

	grew := head == s.target

	// The tail cell vacates this tick unless the snake grows, so exclude
	// it from the self-collision check in the non-growing case.
	bodyToCheck := s.body
	if !grew {
		bodyToCheck = s.body[:len(s.body)-1]
	}
	for _, c := range bodyToCheck {
		if c == head {
			s.status = StatusFailed
			return &Outcome{Score: s.score, Success: false}
		}
	}

	if grew {
		s.body = append([]Cell{head}, s.body...)
		s.score += snakeFoodPoints
		if s.score >= MaxScore {
			s.score = MaxScore
			s.status = StatusSucceeded
			return &Outcome{Score: s.score, Success: true}
		}
		if c, ok := s.freeCell(); ok {
			s.target = c
		}
	} else {
		copy(s.body[1:], s.body[:len(s.body)-1])
		s.body[0] = head
	}
	return nil
}

// TickSecond burns one second of the countdown.
func (s *Snake) TickSecond() *Outcome {
	if s.status != StatusActive {
		return nil
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.status = StatusFailed
		return &Outcome{Score: s.score, Success: false}
	}
	return nil
}

// freeCell draws a cell overlapping neither body, obstacles nor target.
func (s *Snake) freeCell() (Cell, bool) {
	for draw := 0; draw < snakeRelocateDraws; draw++ {
		c := Cell{s.rng.Intn(s.w), s.rng.Intn(s.h)}
		if s.obstacles[c] || c == s.target {
			continue
		}
		onBody := false
		for _, b := range s.body {
			if b == c {
				onBody = true
				break
			}
		}
		if !onBody {
			return c, true
		}
	}
	return Cell{}, false
}
