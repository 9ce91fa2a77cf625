package progression

// Achievement is one unlockable goal definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	MaxProgress int
}

// Thresholds used by emotion-based achievement rules.
const (
	focusThreshold = 0.8
	joyThreshold   = 0.8
)

// Achievements is the fixed rule set evaluated after every successful
// session.
var Achievements = []Achievement{
	{ID: "first-play", Name: "First Steps", Description: "Finish your first game", MaxProgress: 1},
	{ID: "ten-games", Name: "Regular Player", Description: "Finish 10 games", MaxProgress: 10},
	{ID: "fifty-games", Name: "Arcade Veteran", Description: "Finish 50 games", MaxProgress: 50},
	{ID: "laser-focus", Name: "Laser Focus", Description: "5 games with very high focus", MaxProgress: 5},
	{ID: "sunny-days", Name: "Sunny Days", Description: "5 games full of joy", MaxProgress: 5},
	{ID: "week-streak", Name: "Week Warrior", Description: "Play 7 days in a row", MaxProgress: 7},
	{ID: "all-rounder", Name: "All-Rounder", Description: "Beat every game type", MaxProgress: 4},
}

// AchievementByID returns the definition, or nil for an unknown id.
func AchievementByID(id string) *Achievement {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}
