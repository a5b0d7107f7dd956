package entity

import (
	"errors"
	"fmt"
)

const (
	StatusRunning  = "running"
	StatusFinished = "finished"

	Player1 = "player1"
	Player2 = "player2"

	ResultPlayer1Wins = "player1_wins"
	ResultPlayer2Wins = "player2_wins"
	ResultTie         = "tie"
)

const (
	DefaultSeatsPerPlayer = 6
	DefaultInitialStones  = 6
)

var (
	ErrPitOutOfRange     = errors.New("pit index out of range")
	ErrInvalidBoardSetup = errors.New("invalid board configuration")
)

// BoardConfig - immutable parameters of a board variant.
type BoardConfig struct {
	SeatsPerPlayer int `json:"seats_per_player"`
	InitialStones  int `json:"initial_stones"`
}

// DefaultBoardConfig - classic Kalah with six seats and six stones per seat.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		SeatsPerPlayer: DefaultSeatsPerPlayer,
		InitialStones:  DefaultInitialStones,
	}
}

func (that BoardConfig) Validate() error {
	if that.SeatsPerPlayer < 1 {
		return fmt.Errorf("%w: seats per player must be positive, got %d", ErrInvalidBoardSetup, that.SeatsPerPlayer)
	}

	if that.InitialStones < 1 {
		return fmt.Errorf("%w: initial stones must be positive, got %d", ErrInvalidBoardSetup, that.InitialStones)
	}

	return nil
}

// PitCount - number of pits in the full ring, both Kalahs included.
func (that BoardConfig) PitCount() int {
	return 2*that.SeatsPerPlayer + 2
}

// Pit is a single position on the ring. Ring metadata is fixed when the board is built.
type Pit struct {
	Index         int    `json:"index"`
	NextIndex     int    `json:"next_index"`
	OppositeIndex int    `json:"opposite_index"`
	StoneCount    int    `json:"stone_count"`
	IsKalah       bool   `json:"is_kalah"`
	Owner         string `json:"owner"`
}

func (that *Pit) IsEmpty() bool {
	return that.StoneCount == 0
}

func (that *Pit) BelongsTo(player string) bool {
	return that.Owner == player
}

type Board struct {
	Pits   []Pit  `json:"pits"`
	Turn   string `json:"turn"`
	Status string `json:"status"`
}

// NewInitializedBoard - builds the ring for the given variant.
//
// Player 1 owns seats 0..n-1 and the Kalah at n, player 2 owns seats n+1..2n and the Kalah at 2n+1.
// Seat i faces seat 2n-i. cfg must pass Validate.
func NewInitializedBoard(cfg BoardConfig) *Board {
	seats := cfg.SeatsPerPlayer
	total := cfg.PitCount()

	pits := make([]Pit, total)
	for i := range pits {
		pit := Pit{
			Index:         i,
			NextIndex:     (i + 1) % total,
			OppositeIndex: -1,
			StoneCount:    cfg.InitialStones,
			Owner:         Player1,
		}

		if i > seats {
			pit.Owner = Player2
		}

		if i == seats || i == total-1 {
			pit.IsKalah = true
			pit.StoneCount = 0
		} else {
			pit.OppositeIndex = 2*seats - i
		}

		pits[i] = pit
	}

	return &Board{
		Pits:   pits,
		Turn:   Player1,
		Status: StatusRunning,
	}
}

// Pit - bounds-checked lookup.
func (that *Board) Pit(index int) (*Pit, error) {
	if index < 0 || index >= len(that.Pits) {
		return nil, fmt.Errorf("%w: %d", ErrPitOutOfRange, index)
	}

	return &that.Pits[index], nil
}

func (that *Board) SeatsPerPlayer() int {
	return (len(that.Pits) - 2) / 2
}

// KalahIndex - index of the store owned by player.
func (that *Board) KalahIndex(player string) int {
	if player == Player2 {
		return len(that.Pits) - 1
	}

	return that.SeatsPerPlayer()
}

func (that *Board) Kalah(player string) *Pit {
	return &that.Pits[that.KalahIndex(player)]
}

// Seats - a copy of the non-Kalah pits owned by player, in ring order.
func (that *Board) Seats(player string) []Pit {
	kalah := that.KalahIndex(player)

	seats := make([]Pit, that.SeatsPerPlayer())
	copy(seats, that.Pits[kalah-that.SeatsPerPlayer():kalah])

	return seats
}

func (that *Board) SeatsEmpty(player string) bool {
	for _, pit := range that.Seats(player) {
		if !pit.IsEmpty() {
			return false
		}
	}

	return true
}

func (that *Board) SeatStones(player string) int {
	var sum int
	for _, pit := range that.Seats(player) {
		sum += pit.StoneCount
	}

	return sum
}

func (that *Board) TotalStones() int {
	var sum int
	for _, pit := range that.Pits {
		sum += pit.StoneCount
	}

	return sum
}

func (that *Board) IsRunning() bool {
	return that.Status == StatusRunning
}

func (that *Board) IsFinished() bool {
	return that.Status == StatusFinished
}

// Result - compares the two Kalahs. The second value is false while the game is running.
func (that *Board) Result() (string, bool) {
	if !that.IsFinished() {
		return "", false
	}

	first, second := that.Kalah(Player1).StoneCount, that.Kalah(Player2).StoneCount

	switch {
	case first > second:
		return ResultPlayer1Wins, true
	case second > first:
		return ResultPlayer2Wins, true
	default:
		return ResultTie, true
	}
}

func (that *Board) Clone() *Board {
	pits := make([]Pit, len(that.Pits))
	copy(pits, that.Pits)

	return &Board{
		Pits:   pits,
		Turn:   that.Turn,
		Status: that.Status,
	}
}

// Opponent - the other player.
func Opponent(player string) string {
	if player == Player1 {
		return Player2
	}

	return Player1
}
