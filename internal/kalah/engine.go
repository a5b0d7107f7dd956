package kalah

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

var (
	ErrInvalidPit          = errors.New("invalid pit index")
	ErrGameAlreadyFinished = errors.New("game is already finished")
	ErrCannotPlayFromKalah = errors.New("playing from a kalah is not allowed")
	ErrNotPlayersTurn      = errors.New("it's not this player's turn")
	ErrEmptyPit            = errors.New("pit is empty")
)

// MoveOutcome - state of the board after an accepted move.
type MoveOutcome struct {
	Board *entity.Board

	// LandingPit received the last sown stone.
	LandingPit int
	// Captured is the number of stones moved into the mover's Kalah by a capture, zero if none.
	Captured int
	// ExtraTurn is set when the last stone landed in the mover's own Kalah.
	ExtraTurn bool

	// Result is filled only when this move finished the game.
	Result   string
	Finished bool
}

// CreateInitialBoard - a fresh running board, player 1 to move.
func CreateInitialBoard(cfg entity.BoardConfig) (*entity.Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err //nolint: wrapcheck // already carries ErrInvalidBoardSetup
	}

	return entity.NewInitializedBoard(cfg), nil
}

// ApplyMove - sows the stones of seat for the player whose turn it is.
// The board is mutated in place; on error it is left untouched.
func ApplyMove(board *entity.Board, seat int) (*MoveOutcome, error) {
	source, err := validateMove(board, seat)
	if err != nil {
		return nil, err
	}

	mover := board.Turn
	landing := sow(board, source, mover)

	outcome := &MoveOutcome{
		Board:      board,
		LandingPit: landing.Index,
	}

	switch {
	case landing.IsKalah && landing.BelongsTo(mover):
		outcome.ExtraTurn = true
	default:
		outcome.Captured = capture(board, landing, mover)
		board.Turn = entity.Opponent(mover)
	}

	if finishIfSideEmpty(board) {
		outcome.Finished = true
		outcome.Result, _ = board.Result()
	}

	return outcome, nil
}

// validateMove - checks if the move is valid. The first failing check wins.
func validateMove(board *entity.Board, seat int) (*entity.Pit, error) {
	pit, err := board.Pit(seat)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPit, seat)
	}

	if !board.IsRunning() {
		return nil, ErrGameAlreadyFinished
	}

	if pit.IsKalah {
		return nil, fmt.Errorf("%w: %d", ErrCannotPlayFromKalah, seat)
	}

	if !pit.BelongsTo(board.Turn) {
		return nil, fmt.Errorf("%w: pit %d belongs to %s", ErrNotPlayersTurn, seat, pit.Owner)
	}

	if pit.IsEmpty() {
		return nil, fmt.Errorf("%w: %d", ErrEmptyPit, seat)
	}

	return pit, nil
}

// sow - drops the source stones one by one along the ring, never into the opponent's Kalah.
// Returns the pit that received the last stone.
func sow(board *entity.Board, source *entity.Pit, mover string) *entity.Pit {
	stones := source.StoneCount
	source.StoneCount = 0

	current := source
	for stones > 0 {
		current = &board.Pits[current.NextIndex]
		if current.IsKalah && !current.BelongsTo(mover) {
			continue
		}

		current.StoneCount++
		stones--
	}

	return current
}

// capture - a last stone dropped into an empty own seat takes the opposite seat with it.
func capture(board *entity.Board, landing *entity.Pit, mover string) int {
	if landing.IsKalah || !landing.BelongsTo(mover) || landing.StoneCount != 1 {
		return 0
	}

	opposite := &board.Pits[landing.OppositeIndex]
	if opposite.IsEmpty() {
		return 0
	}

	captured := landing.StoneCount + opposite.StoneCount
	landing.StoneCount = 0
	opposite.StoneCount = 0
	board.Kalah(mover).StoneCount += captured

	return captured
}

// finishIfSideEmpty - ends the game once either side has no stones left in its seats,
// collecting whatever remains on the other side into that side's own Kalah.
func finishIfSideEmpty(board *entity.Board) bool {
	if !board.SeatsEmpty(entity.Player1) && !board.SeatsEmpty(entity.Player2) {
		return false
	}

	for _, player := range []string{entity.Player1, entity.Player2} {
		kalah := board.Kalah(player)
		for _, pit := range board.Seats(player) {
			kalah.StoneCount += pit.StoneCount
			board.Pits[pit.Index].StoneCount = 0
		}
	}

	board.Status = entity.StatusFinished

	return true
}

// LegalMoves - seats the player to move may sow from. Empty once the game is finished.
func LegalMoves(board *entity.Board) []int {
	if !board.IsRunning() {
		return nil
	}

	var moves []int
	for _, pit := range board.Seats(board.Turn) {
		if !pit.IsEmpty() {
			moves = append(moves, pit.Index)
		}
	}

	return moves
}
