package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/atreya/mindplay/internal/level"
)

const (
	// runnerScoreEvery is the frame interval between score increments.
	runnerScoreEvery = 5

	// runnerCellsPerFrame scales level speed to obstacle cells per frame.
	runnerCellsPerFrame = 0.12
)

type runnerObstacle struct {
	x float64
	y int
}

// Runner is the obstacle-avoidance game: the player dodges obstacles
// sliding in from the right while the score climbs at a fixed rate.
type Runner struct {
	w, h      int
	playerX   int
	playerY   int
	obstacles []runnerObstacle

	speed      float64
	spawnEvery int
	frame      int

	score     int
	remaining int
	status    Status
	rng       *rand.Rand
}

// NewRunner builds a runner machine from a level.
func NewRunner(lvl level.Level, rng *rand.Rand) *Runner {
	w, h := level.GridSize(level.VariantRunner, lvl.Difficulty)
	spawnEvery := 0
	if lvl.ObstacleCount > 0 {
		// More obstacles in the level mean a tighter spawn cadence.
		spawnEvery = 60 / lvl.ObstacleCount
		if spawnEvery < 6 {
			spawnEvery = 6
		}
	}
	return &Runner{
		w:          w,
		h:          h,
		playerX:    2,
		playerY:    h / 2,
		speed:      lvl.Speed,
		spawnEvery: spawnEvery,
		remaining:  lvl.TimeLimitSecs,
		rng:        rng,
	}
}

func (r *Runner) Start(now time.Time) {
	if r.status == StatusIdle {
		r.status = StatusActive
	}
}

func (r *Runner) Status() Status  { return r.status }
func (r *Runner) Score() int      { return r.score }
func (r *Runner) Remaining() int  { return r.remaining }
func (r *Runner) Size() (int, int) { return r.w, r.h }

// Player returns the player cell.
func (r *Runner) Player() (int, int) { return r.playerX, r.playerY }

// Obstacles returns the current obstacle cells.
func (r *Runner) Obstacles() [][2]int {
	cells := make([][2]int, 0, len(r.obstacles))
	for _, o := range r.obstacles {
		cells = append(cells, [2]int{int(math.Round(o.x)), o.y})
	}
	return cells
}

// HandleInput moves the player one cell, clamped to the field bounds.
func (r *Runner) HandleInput(dir Direction, now time.Time) *Outcome {
	if r.status != StatusActive {
		return nil
	}
	switch dir {
	case Up:
		if r.playerY > 0 {
			r.playerY--
		}
	case Down:
		if r.playerY < r.h-1 {
			r.playerY++
		}
	case Left:
		if r.playerX > 0 {
			r.playerX--
		}
	case Right:
		if r.playerX < r.w-1 {
			r.playerX++
		}
	}
	return r.checkCollision()
}

// Step advances obstacles, spawns new ones and accrues score.
func (r *Runner) Step(now time.Time) *Outcome {
	if r.status != StatusActive {
		return nil
	}
	r.frame++

	kept := r.obstacles[:0]
	for _, o := range r.obstacles {
		o.x -= r.speed * runnerCellsPerFrame
		if o.x > -1 {
			kept = append(kept, o)
		}
	}
	r.obstacles = kept

	if r.spawnEvery > 0 && r.frame%r.spawnEvery == 0 {
		r.obstacles = append(r.obstacles, runnerObstacle{
			x: float64(r.w - 1),
			y: r.rng.Intn(r.h),
		})
	}

	if out := r.checkCollision(); out != nil {
		return out
	}

	if r.frame%runnerScoreEvery == 0 && r.score < MaxScore {
		r.score++
		if r.score >= MaxScore {
			r.score = MaxScore
			r.status = StatusSucceeded
			return &Outcome{Score: r.score, Success: true}
		}
	}
	return nil
}

// TickSecond burns one second of the countdown.
func (r *Runner) TickSecond() *Outcome {
	if r.status != StatusActive {
		return nil
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.status = StatusFailed
		return &Outcome{Score: r.score, Success: false}
	}
	return nil
}

// checkCollision applies the axis-aligned overlap test on cell centers.
func (r *Runner) checkCollision() *Outcome {
	for _, o := range r.obstacles {
		if int(math.Round(o.x)) == r.playerX && o.y == r.playerY {
			r.status = StatusFailed
			return &Outcome{Score: r.score, Success: false}
		}
	}
	return nil
}
