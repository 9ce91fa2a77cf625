package home

import (
	"charm.land/lipgloss/v2"

	"github.com/atreya/mindplay/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default blue
	MascotCelebrating                      // Gold, star eyes — daily quest done
	MascotWaving                           // Streak going, keep it up
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ▲▶◀ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ▲▶◀ │
└─╥═╥─┘
  ╚═╝`

const mascotWaving = `┌─────┐
│ ◉ ◉ │╱
│  ▽  │
│ ▲▶◀ │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotWaving:
		art = mascotWaving
		fg = theme.Secondary
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
