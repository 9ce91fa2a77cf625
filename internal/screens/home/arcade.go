package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/atreya/mindplay/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` ███╗   ███╗██╗███╗   ██╗██████╗ ██████╗ ██╗      █████╗ ██╗   ██╗
 ████╗ ████║██║████╗  ██║██╔══██╗██╔══██╗██║     ██╔══██╗╚██╗ ██╔╝
 ██╔████╔██║██║██╔██╗ ██║██║  ██║██████╔╝██║     ███████║ ╚████╔╝
 ██║╚██╔╝██║██║██║╚██╗██║██║  ██║██╔═══╝ ██║     ██╔══██║  ╚██╔╝
 ██║ ╚═╝ ██║██║██║ ╚████║██████╔╝██║     ███████╗██║  ██║   ██║
 ╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝ ╚═╝     ╚══════╝╚═╝  ╚═╝   ╚═╝`

const arcadeTitleCompact = "M · I · N · D · P · L · A · Y"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 70 {
		w = 70
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(streak, totalGames int, challengeDone bool, cw int, compact bool) string {
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	gamesStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			streakStyle.Render(fmt.Sprintf("🔥%d", streak)),
			gamesStyle.Render(fmt.Sprintf("▶%d", totalGames)),
			challengeText(challengeDone, true, doneStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			streakStyle.Render(fmt.Sprintf("🔥 %d DAY STREAK", streak)),
			gamesStyle.Render(fmt.Sprintf("▶ %d GAMES", totalGames)),
			challengeText(challengeDone, false, doneStyle, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func challengeText(done, compact bool, active, dim lipgloss.Style) string {
	if done {
		if compact {
			return active.Render("★")
		}
		return active.Render("★ QUEST DONE")
	}
	if compact {
		return dim.Render("☆")
	}
	return dim.Render("☆ QUEST OPEN")
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderDifficultyRow renders the three difficulty choices side by side.
func renderDifficultyRow(labels []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 2)

	normalBtn := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2)

	var buttons []string
	for i, label := range labels {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render(label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(row)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderCabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
