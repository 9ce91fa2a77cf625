package game

import (
	"math/rand"
	"time"

	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/maze"
)

// MazeExitBonus is added to the time-based score on reaching the exit.
const MazeExitBonus = 10

// MazeNav is the maze-navigation game: walk from entrance to exit
// through a perfect maze, avoiding obstacle cells, before time runs out.
type MazeNav struct {
	m    *maze.Maze
	x, y int

	timeLimit int
	remaining int
	score     int
	status    Status
}

// NewMazeNav builds a maze-navigation machine from a level, generating
// a fresh maze with obstacles.
func NewMazeNav(lvl level.Level, rng *rand.Rand) (*MazeNav, error) {
	w, h := level.GridSize(level.VariantMaze, lvl.Difficulty)
	m, err := maze.Generate(w, h, rng)
	if err != nil {
		return nil, err
	}
	m.PlaceObstacles(lvl.ObstacleCount, rng)
	return &MazeNav{
		m:         m,
		timeLimit: lvl.TimeLimitSecs,
		remaining: lvl.TimeLimitSecs,
	}, nil
}

func (n *MazeNav) Start(now time.Time) {
	if n.status == StatusIdle {
		n.status = StatusActive
	}
}

func (n *MazeNav) Status() Status      { return n.status }
func (n *MazeNav) Score() int          { return n.score }
func (n *MazeNav) Remaining() int      { return n.remaining }
func (n *MazeNav) Maze() *maze.Maze    { return n.m }
func (n *MazeNav) Player() (int, int)  { return n.x, n.y }

// HandleInput moves the player into the adjacent cell unless a wall
// blocks the edge.
func (n *MazeNav) HandleInput(dir Direction, now time.Time) *Outcome {
	if n.status != StatusActive {
		return nil
	}

	var wall maze.Wall
	nx, ny := n.x, n.y
	switch dir {
	case Up:
		wall, ny = maze.WallNorth, n.y-1
	case Down:
		wall, ny = maze.WallSouth, n.y+1
	case Left:
		wall, nx = maze.WallWest, n.x-1
	case Right:
		wall, nx = maze.WallEast, n.x+1
	}

	if nx < 0 || nx >= n.m.W || ny < 0 || ny >= n.m.H {
		return nil
	}
	if !n.m.Open(n.x, n.y, wall) {
		return nil
	}

	n.x, n.y = nx, ny

	if n.m.Cells[ny][nx].Obstacle {
		n.status = StatusFailed
		return &Outcome{Score: n.score, Success: false}
	}
	if nx == n.m.W-1 && ny == n.m.H-1 {
		n.score = 100*n.remaining/n.timeLimit + MazeExitBonus
		n.status = StatusSucceeded
		return &Outcome{Score: n.score, Success: true}
	}
	return nil
}

// Step is a no-op: the maze has no autonomous motion.
func (n *MazeNav) Step(now time.Time) *Outcome {
	return nil
}

// TickSecond burns one second of the countdown.
func (n *MazeNav) TickSecond() *Outcome {
	if n.status != StatusActive {
		return nil
	}
	n.remaining--
	if n.remaining <= 0 {
		n.remaining = 0
		n.status = StatusFailed
		return &Outcome{Score: n.score, Success: false}
	}
	return nil
}
