package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/atreya/mindplay/internal/game"
	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/maze"
	"github.com/atreya/mindplay/internal/session"
	"github.com/atreya/mindplay/internal/ui/components"
	"github.com/atreya/mindplay/internal/ui/theme"
)

func (s *GameScreen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, theme.Incorrect.Render("Something went wrong: "+s.errMsg) +
			"\n\n" + theme.Hint.Render("Press any key to go back"))
	}

	switch s.ctrl.Phase() {
	case session.PhaseInstructions:
		return s.renderInstructions(width)
	case session.PhaseAwaitingStart:
		return s.renderStartPrompt(width, "Ready?")
	case session.PhaseAwaitingRetry:
		return s.renderRetryPrompt(width)
	case session.PhaseActive:
		return s.renderField(width)
	case session.PhaseCompleted:
		if s.saving {
			return centered(width, s.spin.View()+theme.Hint.Render(" Saving your game..."))
		}
	}
	return ""
}

// instructions gives each variant a short kid-level explanation.
func instructions(v level.Variant) string {
	switch v {
	case level.VariantRunner:
		return "Stars are falling from the right!\nMove up and down to dodge them.\nSurvive until the bar fills up."
	case level.VariantPattern:
		return "Watch the arrows light up,\nthen repeat them in the same order.\nYou have three hearts."
	case level.VariantSnake:
		return "Steer the snake to the fruit.\nDon't hit the walls, the thorns\nor your own tail!"
	case level.VariantMaze:
		return "Find your way through the hedges\nto the exit on the right.\nWatch out for thorn bushes!"
	}
	return ""
}

func (s *GameScreen) renderInstructions(width int) string {
	cw := components.ContentWidth(width)
	title := theme.Title.Width(cw).Render(s.lvl.Variant.DisplayName())
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Render(instructions(s.lvl.Variant))
	card := components.ArcadeCard(body, cw)
	hint := theme.Hint.Width(cw).Align(lipgloss.Center).
		Render("Press any key when you're ready")

	return centered(width, title+"\n\n"+card+"\n\n"+hint)
}

func (s *GameScreen) renderStartPrompt(width int, heading string) string {
	cw := components.ContentWidth(width)
	head := theme.Title.Width(cw).Render(heading)
	lvlLine := theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("%s · %s on the clock", s.lvl.DisplayName, fmtSecs(s.lvl.TimeLimitSecs)))
	btn := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(components.ArcadeButton("START", true, 20))

	return centered(width, head+"\n"+lvlLine+"\n\n"+btn)
}

func (s *GameScreen) renderRetryPrompt(width int) string {
	cw := components.ContentWidth(width)
	head := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Oops!")
	sub := theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("Attempt %d didn't work out. Want another go?", s.ctrl.RetryCount()))
	btn := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(components.ArcadeButton("TRY AGAIN", true, 20))

	return centered(width, head+"\n"+sub+"\n\n"+btn)
}

// renderField draws the active play field for the running variant.
func (s *GameScreen) renderField(width int) string {
	m := s.ctrl.Machine()

	var field string
	switch v := m.(type) {
	case *game.Runner:
		field = renderRunner(v)
	case *game.Pattern:
		field = renderPattern(v)
	case *game.Snake:
		field = renderSnake(v)
	case *game.MazeNav:
		field = renderMaze(v)
	}

	hud := renderHUD(m, s.ctrl.RetryCount())
	return centered(width, hud+"\n\n"+field)
}

func renderHUD(m game.Machine, retries int) string {
	parts := []string{
		theme.Goal.Render(fmt.Sprintf("Score %d", m.Score())),
		theme.Body.Render(fmt.Sprintf("Time %s", fmtSecs(m.Remaining()))),
	}
	if p, ok := m.(*game.Pattern); ok {
		parts = append(parts,
			theme.Incorrect.Render(strings.Repeat("♥", p.Lives())),
			theme.Body.Render(fmt.Sprintf("Round %d", p.Round())))
	}
	if retries > 0 {
		parts = append(parts, theme.Hint.Render(fmt.Sprintf("retry %d", retries)))
	}
	return strings.Join(parts, "    ")
}

func renderRunner(r *game.Runner) string {
	w, h := r.Size()
	px, py := r.Player()

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	for _, o := range r.Obstacles() {
		x, y := o[0], o[1]
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = '✦'
		}
	}
	grid[py][px] = '▶'

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch grid[y][x] {
			case '▶':
				b.WriteString(theme.Player.Render("▶"))
			case '✦':
				b.WriteString(theme.Hazard.Render("✦"))
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	return boxed(strings.TrimRight(b.String(), "\n"))
}

var arrowGlyphs = map[game.Direction]string{
	game.Up:    "▲",
	game.Down:  "▼",
	game.Left:  "◀",
	game.Right: "▶",
}

func renderPattern(p *game.Pattern) string {
	seq := p.Sequence()

	var b strings.Builder
	switch p.Phase() {
	case game.PatternShowing:
		b.WriteString(theme.Subtitle.Render("Watch closely...") + "\n\n")
		for i := range seq {
			if i == p.ShowIndex() {
				b.WriteString(theme.Goal.Render(" " + arrowGlyphs[seq[i]] + " "))
			} else {
				b.WriteString(theme.Hint.Render(" · "))
			}
		}
	case game.PatternInput:
		b.WriteString(theme.Subtitle.Render("Your turn!") + "\n\n")
		for i := range seq {
			if i < p.InputIndex() {
				b.WriteString(theme.Correct.Render(" " + arrowGlyphs[seq[i]] + " "))
			} else {
				b.WriteString(theme.Body.Render(" ? "))
			}
		}
	case game.PatternPause:
		b.WriteString(theme.Correct.Render("Great! Next round coming up..."))
	}
	return boxed(b.String())
}

func renderSnake(s *game.Snake) string {
	w, h := s.Size()

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	for _, c := range s.ObstacleCells() {
		grid[c.Y][c.X] = '▲'
	}
	t := s.Target()
	grid[t.Y][t.X] = '★'
	for i, c := range s.Body() {
		if i == 0 {
			grid[c.Y][c.X] = '●'
		} else {
			grid[c.Y][c.X] = 'o'
		}
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch grid[y][x] {
			case '●':
				b.WriteString(theme.Player.Render("●"))
			case 'o':
				b.WriteString(theme.Player.Render("o"))
			case '★':
				b.WriteString(theme.Goal.Render("★"))
			case '▲':
				b.WriteString(theme.Hazard.Render("▲"))
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	return boxed(strings.TrimRight(b.String(), "\n"))
}

// renderMaze draws walls with box characters, two columns per cell.
func renderMaze(n *game.MazeNav) string {
	m := n.Maze()
	px, py := n.Player()

	var b strings.Builder

	// Top border.
	for x := 0; x < m.W; x++ {
		b.WriteString("+")
		if m.Cells[0][x].Walls[maze.WallNorth] {
			b.WriteString("--")
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("+\n")

	for y := 0; y < m.H; y++ {
		// Cell row with west walls.
		for x := 0; x < m.W; x++ {
			if m.Cells[y][x].Walls[maze.WallWest] {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
			switch {
			case x == px && y == py:
				b.WriteString(theme.Player.Render("●") + " ")
			case m.Cells[y][x].Obstacle:
				b.WriteString(theme.Hazard.Render("▲") + " ")
			case x == m.W-1 && y == m.H-1:
				b.WriteString(theme.Goal.Render("⚑") + " ")
			default:
				b.WriteString("  ")
			}
		}
		if m.Cells[y][m.W-1].Walls[maze.WallEast] {
			b.WriteString("|\n")
		} else {
			b.WriteString(" \n")
		}

		// South wall row.
		for x := 0; x < m.W; x++ {
			b.WriteString("+")
			if m.Cells[y][x].Walls[maze.WallSouth] {
				b.WriteString("--")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("+\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func boxed(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

func centered(width int, content string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func fmtSecs(secs int) string {
	if secs >= 60 {
		return fmt.Sprintf("%d:%02d", secs/60, secs%60)
	}
	return fmt.Sprintf("%d", secs)
}
