// Package story holds the 35-level campaign catalog and its scoring rules.
package story

import (
	"errors"
	"fmt"
	"time"
)

type Tier int

const (
	TierEasy Tier = iota + 1
	TierMedium
	TierHard
)

func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

var ErrLevelOutOfRange = errors.New("level out of range")

// Level is one stage of the campaign. MinLen and MaxLen select the word pool;
// a MaxLen of zero means no upper bound.
type Level struct {
	Index     int
	Name      string
	MinLen    int
	MaxLen    int
	Lives     int
	TimeLimit time.Duration
	Flavor    string
}

// Tier derives the difficulty band from the index.
func (l Level) Tier() Tier {
	switch {
	case l.Index <= 15:
		return TierEasy
	case l.Index <= 25:
		return TierMedium
	default:
		return TierHard
	}
}

func lv(index int, name string, minLen, maxLen, lives, seconds int, flavor string) Level {
	return Level{
		Index:     index,
		Name:      name,
		MinLen:    minLen,
		MaxLen:    maxLen,
		Lives:     lives,
		TimeLimit: time.Duration(seconds) * time.Second,
		Flavor:    flavor,
	}
}

// Levels is the campaign, in play order.
var Levels = []Level{
	// easy
	lv(1, "Village", 3, 5, 8, 150, "You set out from a quiet village."),
	lv(2, "Meadow", 3, 5, 8, 140, "Grass ripples under a light breeze."),
	lv(3, "Orchard", 3, 6, 8, 140, "Ripe fruit scents the air."),
	lv(4, "Brook", 3, 6, 8, 135, "Clear water shows you the way."),
	lv(5, "Thicket", 3, 6, 8, 130, "Leaves rustle all around you."),
	lv(6, "Grove", 3, 6, 7, 130, "You weave between close-set trunks."),
	lv(7, "Trail", 3, 6, 7, 125, "The path winds on, peaceful."),
	lv(8, "Wooden Bridge", 4, 6, 7, 125, "An old bridge creaks with every step."),
	lv(9, "Mill", 4, 6, 7, 120, "The sails turn to the rhythm of the wind."),
	lv(10, "Chapel", 4, 6, 7, 120, "A sacred silence urges you onward."),
	lv(11, "Forest", 4, 7, 7, 115, "Tall trees hide the light."),
	lv(12, "Marsh", 4, 7, 7, 110, "The ground sinks beneath careful feet."),
	lv(13, "Hill", 4, 7, 7, 110, "The view widens as you climb."),
	lv(14, "Ruined Tower", 4, 7, 7, 105, "Mossy stones whisper of old times."),
	lv(15, "Rampart", 4, 7, 7, 105, "Battlements watch over the valley."),
	// medium
	lv(16, "Valley", 5, 8, 6, 100, "An echo carries your steps back to you."),
	lv(17, "River", 5, 8, 6, 100, "The current defies you, but a ford appears."),
	lv(18, "Cave", 5, 8, 6, 95, "The rock seeps and the air turns cool."),
	lv(19, "Ancient Marble", 5, 8, 6, 95, "An engraved floor catches your eye."),
	lv(20, "Stone Bridge", 6, 9, 6, 90, "The river roars beneath confident steps."),
	lv(21, "Cliffs", 6, 9, 6, 90, "The wind howls and the sea foams far below."),
	lv(22, "Mountains", 6, 10, 6, 85, "The air thins and the sky hardens."),
	lv(23, "Bastion", 6, 10, 6, 85, "Arrow slits watch the horizon."),
	lv(24, "Canyon", 7, 10, 6, 80, "Red walls swallow your voice."),
	lv(25, "Glacier", 7, 10, 6, 80, "The ice cracks like old parchment."),
	// hard
	lv(26, "Jungle", 8, 11, 5, 75, "Distant cries tear through the canopy."),
	lv(27, "Temple", 8, 11, 5, 75, "Frescoes tell a forgotten story."),
	lv(28, "Labyrinth", 9, 12, 5, 70, "Every turn could lead you astray."),
	lv(29, "Catacombs", 9, 12, 5, 70, "The halls smell of ancient dust."),
	lv(30, "Fortress", 10, 13, 5, 65, "Massive doors defy your will."),
	lv(31, "Observatory", 10, 13, 5, 65, "The stars seem to guide your steps."),
	lv(32, "Machinery", 10, 14, 5, 60, "Gears grind in the shadows."),
	lv(33, "Hall of Echoes", 10, 14, 5, 60, "Every word becomes riddle and clue."),
	lv(34, "Forecourt", 11, 15, 5, 55, "The Citadel is only a breath away."),
	lv(35, "Citadel", 12, 0, 4, 55, "The heart of the mystery beats behind these doors."),
}

// Count is the number of levels in the campaign.
func Count() int {
	return len(Levels)
}

// Get returns the level with the given 1-based index.
func Get(index int) (Level, error) {
	if index < 1 || index > len(Levels) {
		return Level{}, fmt.Errorf("%w: %d not in [1,%d]", ErrLevelOutOfRange, index, len(Levels))
	}
	return Levels[index-1], nil
}
