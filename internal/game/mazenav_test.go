package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/maze"
)

func mazeLevel() level.Level {
	return level.Level{
		ID: "maze-test", Variant: level.VariantMaze,
		Difficulty: level.DifficultyEasy,
		Speed:      1.0, ObstacleCount: 0, TimeLimitSecs: 60,
	}
}

// pathToExit finds the unique entrance-to-exit direction sequence by BFS
// over open edges.
func pathToExit(m *maze.Maze) []Direction {
	type node struct{ x, y int }
	prev := make(map[node]node)
	prevDir := make(map[node]Direction)
	seen := map[node]bool{{0, 0}: true}
	queue := []node{{0, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.x == m.W-1 && cur.y == m.H-1 {
			var dirs []Direction
			for cur != (node{0, 0}) {
				dirs = append([]Direction{prevDir[cur]}, dirs...)
				cur = prev[cur]
			}
			return dirs
		}
		steps := []struct {
			wall maze.Wall
			dir  Direction
			next node
		}{
			{maze.WallNorth, Up, node{cur.x, cur.y - 1}},
			{maze.WallSouth, Down, node{cur.x, cur.y + 1}},
			{maze.WallWest, Left, node{cur.x - 1, cur.y}},
			{maze.WallEast, Right, node{cur.x + 1, cur.y}},
		}
		for _, s := range steps {
			if s.next.x < 0 || s.next.x >= m.W || s.next.y < 0 || s.next.y >= m.H {
				continue
			}
			if !m.Open(cur.x, cur.y, s.wall) || seen[s.next] {
				continue
			}
			seen[s.next] = true
			prev[s.next] = cur
			prevDir[s.next] = s.dir
			queue = append(queue, s.next)
		}
	}
	return nil
}

func TestMazeNav_WalkToExitScores(t *testing.T) {
	n, err := NewMazeNav(mazeLevel(), rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}
	now := time.Unix(0, 0)
	n.Start(now)

	// Burn 20 seconds so remaining time is 40 of 60.
	for i := 0; i < 20; i++ {
		n.TickSecond()
	}

	path := pathToExit(n.Maze())
	if path == nil {
		t.Fatal("no path to exit in a perfect maze")
	}

	var out *Outcome
	for _, d := range path {
		out = n.HandleInput(d, now)
	}
	if out == nil || !out.Success {
		t.Fatalf("outcome = %+v, want success at exit", out)
	}
	want := 100*40/60 + MazeExitBonus
	if out.Score != want {
		t.Errorf("score = %d, want %d", out.Score, want)
	}
}

func TestMazeNav_WallsBlockMovement(t *testing.T) {
	n, err := NewMazeNav(mazeLevel(), rand.New(rand.NewSource(10)))
	if err != nil {
		t.Fatal(err)
	}
	now := time.Unix(0, 0)
	n.Start(now)

	// From the entrance, Up always leaves the grid and is a no-op.
	n.HandleInput(Up, now)
	if x, y := n.Player(); x != 0 || y != 0 {
		t.Errorf("player = (%d,%d), want (0,0)", x, y)
	}
}

func TestMazeNav_ObstacleCellFails(t *testing.T) {
	n, err := NewMazeNav(mazeLevel(), rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatal(err)
	}
	now := time.Unix(0, 0)
	n.Start(now)

	path := pathToExit(n.Maze())
	if len(path) < 2 {
		t.Fatal("path too short for the test")
	}

	out := n.HandleInput(path[0], now)
	if out != nil {
		t.Fatalf("unexpected terminal: %+v", out)
	}

	// Drop an obstacle on the next cell along the path and step into it.
	x, y := n.Player()
	nx, ny := x, y
	switch path[1] {
	case Up:
		ny--
	case Down:
		ny++
	case Left:
		nx--
	case Right:
		nx++
	}
	n.Maze().Cells[ny][nx].Obstacle = true

	out = n.HandleInput(path[1], now)
	if out == nil || out.Success {
		t.Fatalf("outcome = %+v, want failure on obstacle cell", out)
	}
}

func TestMazeNav_CountdownFails(t *testing.T) {
	n, err := NewMazeNav(mazeLevel(), rand.New(rand.NewSource(12)))
	if err != nil {
		t.Fatal(err)
	}
	n.Start(time.Unix(0, 0))

	var out *Outcome
	for i := 0; i < 60; i++ {
		out = n.TickSecond()
	}
	if out == nil || out.Success {
		t.Fatalf("outcome = %+v, want countdown failure", out)
	}
}
