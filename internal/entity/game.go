package entity

import (
	"strconv"
	"time"
)

type Game struct {
	ID        string    `json:"id"`
	URI       string    `json:"uri"`
	Board     *Board    `json:"board"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGame - cfg must pass BoardConfig.Validate.
func NewGame(id, uri string, cfg BoardConfig) *Game {
	now := time.Now().UTC()

	return &Game{
		ID:        id,
		URI:       uri,
		Board:     NewInitializedBoard(cfg),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (that *Game) IsFinished() bool {
	return that.Board != nil && that.Board.IsFinished()
}

// PitStatus - stone counts keyed by 1-based pit number, as rendered to clients.
func (that *Game) PitStatus() map[string]string {
	if that.Board == nil {
		return map[string]string{}
	}

	status := make(map[string]string, len(that.Board.Pits))
	for _, pit := range that.Board.Pits {
		status[strconv.Itoa(pit.Index+1)] = strconv.Itoa(pit.StoneCount)
	}

	return status
}
