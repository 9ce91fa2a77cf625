// Package maze builds perfect mazes for the maze-navigation game.
package maze

import (
	"fmt"
	"math/rand"
)

// Wall identifies one side of a cell.
type Wall int

const (
	WallNorth Wall = iota
	WallEast
	WallSouth
	WallWest
)

// Opposite returns the facing wall of the adjacent cell.
func (w Wall) Opposite() Wall {
	switch w {
	case WallNorth:
		return WallSouth
	case WallSouth:
		return WallNorth
	case WallEast:
		return WallWest
	default:
		return WallEast
	}
}

// Cell is one grid cell with four wall flags.
type Cell struct {
	Walls    [4]bool
	Obstacle bool
	visited  bool
}

// Maze is a grid of cells with entrance at (0,0) and exit at (W-1,H-1).
type Maze struct {
	W, H  int
	Cells [][]Cell // Cells[y][x]
}

// Generate builds a perfect maze (spanning tree of the grid graph) using
// randomized depth-first backtracking. Every cell is reachable from the
// entrance and there is exactly one path between any two cells. The
// entrance's west wall and the exit's east wall are opened afterwards so
// both are enterable from outside the grid.
func Generate(w, h int, rng *rand.Rand) (*Maze, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("maze dimensions %dx%d: width and height must be at least 1", w, h)
	}

	m := &Maze{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range m.Cells {
		m.Cells[y] = make([]Cell, w)
		for x := range m.Cells[y] {
			m.Cells[y][x] = Cell{Walls: [4]bool{true, true, true, true}}
		}
	}

	type pos struct{ x, y int }
	stack := []pos{{0, 0}}
	m.Cells[0][0].visited = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Collect unvisited grid neighbours of the stack top.
		type step struct {
			p pos
			w Wall
		}
		var next []step
		if cur.y > 0 && !m.Cells[cur.y-1][cur.x].visited {
			next = append(next, step{pos{cur.x, cur.y - 1}, WallNorth})
		}
		if cur.x < w-1 && !m.Cells[cur.y][cur.x+1].visited {
			next = append(next, step{pos{cur.x + 1, cur.y}, WallEast})
		}
		if cur.y < h-1 && !m.Cells[cur.y+1][cur.x].visited {
			next = append(next, step{pos{cur.x, cur.y + 1}, WallSouth})
		}
		if cur.x > 0 && !m.Cells[cur.y][cur.x-1].visited {
			next = append(next, step{pos{cur.x - 1, cur.y}, WallWest})
		}

		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		chosen := next[rng.Intn(len(next))]
		m.Cells[cur.y][cur.x].Walls[chosen.w] = false
		m.Cells[chosen.p.y][chosen.p.x].Walls[chosen.w.Opposite()] = false
		m.Cells[chosen.p.y][chosen.p.x].visited = true
		stack = append(stack, chosen.p)
	}

	m.Cells[0][0].Walls[WallWest] = false
	m.Cells[h-1][w-1].Walls[WallEast] = false

	return m, nil
}

// maxObstacleDraws bounds rejection sampling per obstacle. At sane
// obstacle densities the cap is never hit; when it is, the obstacle is
// skipped rather than stalling generation.
const maxObstacleDraws = 1000

// PlaceObstacles marks up to n interior cells as obstacles, drawn
// uniformly at random and rejecting the entrance, the exit and cells
// already holding an obstacle. Returns the number actually placed.
func (m *Maze) PlaceObstacles(n int, rng *rand.Rand) int {
	placed := 0
	for i := 0; i < n; i++ {
		for draw := 0; draw < maxObstacleDraws; draw++ {
			x := rng.Intn(m.W)
			y := rng.Intn(m.H)
			if x == 0 && y == 0 {
				continue
			}
			if x == m.W-1 && y == m.H-1 {
				continue
			}
			if m.Cells[y][x].Obstacle {
				continue
			}
			m.Cells[y][x].Obstacle = true
			placed++
			break
		}
	}
	return placed
}

// Open reports whether the wall on side w of cell (x,y) is open.
func (m *Maze) Open(x, y int, w Wall) bool {
	return !m.Cells[y][x].Walls[w]
}

// OpenInternalEdges counts open walls between adjacent cell pairs. A
// perfect maze over W×H cells has exactly W·H−1 of them.
func (m *Maze) OpenInternalEdges() int {
	count := 0
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if x < m.W-1 && m.Open(x, y, WallEast) {
				count++
			}
			if y < m.H-1 && m.Open(x, y, WallSouth) {
				count++
			}
		}
	}
	return count
}
