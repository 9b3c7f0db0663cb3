package state

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jwebster45206/hangman/pkg/item"
)

// legacySave holds the keys of the first save format, which stored a 0-based
// level_idx and no id.
type legacySave struct {
	LevelIdx *int `json:"level_idx"`
}

// Decode parses a save document and upgrades saves written in the first
// format. levels is the size of the campaign; a level_idx past the last level
// marks the campaign as completed.
func Decode(data []byte, levels int) (*GameState, error) {
	var gs GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, err
	}

	var legacy legacySave
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, err
	}
	if legacy.LevelIdx != nil && gs.Level == 0 {
		if *legacy.LevelIdx < 0 {
			return nil, fmt.Errorf("level_idx %d is negative", *legacy.LevelIdx)
		}
		gs.Level = *legacy.LevelIdx + 1
		if gs.Level > levels {
			gs.Level = levels
			gs.Completed = true
		}
		if gs.ID == uuid.Nil {
			gs.ID = uuid.New()
		}
	}
	if gs.Inventory == nil {
		gs.Inventory = make(map[item.Kind]int)
	}
	return &gs, nil
}
