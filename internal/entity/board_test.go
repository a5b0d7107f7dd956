package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitializedBoard(t *testing.T) {
	t.Run("Classic board layout", func(t *testing.T) {
		// Given: the classic configuration
		cfg := DefaultBoardConfig()

		// When: building a board
		board := NewInitializedBoard(cfg)

		// Then: there are 14 pits, the game is running and player 1 starts
		require.Len(t, board.Pits, 14)
		assert.Equal(t, StatusRunning, board.Status)
		assert.Equal(t, Player1, board.Turn)
		assert.Equal(t, 72, board.TotalStones())

		for i, pit := range board.Pits {
			assert.Equal(t, i, pit.Index)
			assert.Equal(t, (i+1)%14, pit.NextIndex)
		}

		// And: only pits 6 and 13 are Kalahs and they start empty
		for _, i := range []int{6, 13} {
			assert.True(t, board.Pits[i].IsKalah)
			assert.Zero(t, board.Pits[i].StoneCount)
			assert.Equal(t, -1, board.Pits[i].OppositeIndex)
		}
	})

	t.Run("Opposite pairs are symmetric", func(t *testing.T) {
		// Given: a classic board
		board := NewInitializedBoard(DefaultBoardConfig())

		// Then: seat i faces seat 12-i
		pairs := [][2]int{{0, 12}, {1, 11}, {2, 10}, {3, 9}, {4, 8}, {5, 7}}
		for _, pair := range pairs {
			assert.Equal(t, pair[1], board.Pits[pair[0]].OppositeIndex)
			assert.Equal(t, pair[0], board.Pits[pair[1]].OppositeIndex)
		}
	})

	t.Run("Ownership", func(t *testing.T) {
		// Given: a classic board
		board := NewInitializedBoard(DefaultBoardConfig())

		// Then: pits 0-6 belong to player 1 and pits 7-13 to player 2
		for i := 0; i <= 6; i++ {
			assert.True(t, board.Pits[i].BelongsTo(Player1), "pit %d", i)
		}
		for i := 7; i <= 13; i++ {
			assert.True(t, board.Pits[i].BelongsTo(Player2), "pit %d", i)
		}
	})

	t.Run("Custom variant", func(t *testing.T) {
		// Given: four seats with three stones
		cfg := BoardConfig{SeatsPerPlayer: 4, InitialStones: 3}

		// When: building a board
		board := NewInitializedBoard(cfg)

		// Then: Kalahs sit at 4 and 9 and seat 0 faces seat 8
		require.Len(t, board.Pits, 10)
		assert.Equal(t, 4, board.KalahIndex(Player1))
		assert.Equal(t, 9, board.KalahIndex(Player2))
		assert.Equal(t, 8, board.Pits[0].OppositeIndex)
		assert.Equal(t, 24, board.TotalStones())
		assert.Equal(t, 4, board.SeatsPerPlayer())
	})
}

func TestBoardConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultBoardConfig().Validate())
	assert.ErrorIs(t, BoardConfig{SeatsPerPlayer: 0, InitialStones: 6}.Validate(), ErrInvalidBoardSetup)
	assert.ErrorIs(t, BoardConfig{SeatsPerPlayer: -3, InitialStones: 6}.Validate(), ErrInvalidBoardSetup)
	assert.ErrorIs(t, BoardConfig{SeatsPerPlayer: 6, InitialStones: -1}.Validate(), ErrInvalidBoardSetup)
	assert.ErrorIs(t, BoardConfig{SeatsPerPlayer: 6, InitialStones: 0}.Validate(), ErrInvalidBoardSetup)
}

func TestBoard_Pit(t *testing.T) {
	board := NewInitializedBoard(DefaultBoardConfig())

	t.Run("Returns pit in range", func(t *testing.T) {
		pit, err := board.Pit(13)

		require.NoError(t, err)
		assert.Equal(t, 13, pit.Index)
	})

	t.Run("Returned pit is writable", func(t *testing.T) {
		pit, err := board.Pit(3)
		require.NoError(t, err)

		pit.StoneCount = 42

		assert.Equal(t, 42, board.Pits[3].StoneCount)
	})

	t.Run("Fails out of range", func(t *testing.T) {
		_, err := board.Pit(14)
		assert.ErrorIs(t, err, ErrPitOutOfRange)

		_, err = board.Pit(-1)
		assert.ErrorIs(t, err, ErrPitOutOfRange)
	})
}

func TestBoard_Seats(t *testing.T) {
	// Given: a board where player 1's seats are all empty
	board := NewInitializedBoard(DefaultBoardConfig())
	for i := 0; i < 6; i++ {
		board.Pits[i].StoneCount = 0
	}

	// Then: seat helpers reflect each side
	assert.Len(t, board.Seats(Player1), 6)
	assert.Equal(t, 7, board.Seats(Player2)[0].Index)
	assert.True(t, board.SeatsEmpty(Player1))
	assert.False(t, board.SeatsEmpty(Player2))
	assert.Zero(t, board.SeatStones(Player1))
	assert.Equal(t, 36, board.SeatStones(Player2))
}

func TestBoard_SeatsIsACopy(t *testing.T) {
	// Given: a fresh board
	board := NewInitializedBoard(DefaultBoardConfig())

	// When: a returned seat is changed
	seats := board.Seats(Player1)
	seats[0].StoneCount = 99

	// Then: the board is untouched
	assert.Equal(t, 6, board.Pits[0].StoneCount)
	assert.Equal(t, 72, board.TotalStones())
}

func TestBoard_Result(t *testing.T) {
	t.Run("No result while running", func(t *testing.T) {
		board := NewInitializedBoard(DefaultBoardConfig())

		_, ok := board.Result()

		assert.False(t, ok)
	})

	cases := []struct {
		name     string
		first    int
		second   int
		expected string
	}{
		{"Player 1 wins", 40, 32, ResultPlayer1Wins},
		{"Player 2 wins", 30, 42, ResultPlayer2Wins},
		{"Tie", 36, 36, ResultTie},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a finished board with the given Kalah counts
			board := NewInitializedBoard(DefaultBoardConfig())
			board.Status = StatusFinished
			board.Kalah(Player1).StoneCount = tc.first
			board.Kalah(Player2).StoneCount = tc.second

			// When: computing the result
			result, ok := board.Result()

			// Then: the higher Kalah wins
			require.True(t, ok)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board := NewInitializedBoard(DefaultBoardConfig())
	clone := board.Clone()

	// When: the clone is changed
	clone.Pits[0].StoneCount = 0
	clone.Turn = Player2

	// Then: the original is untouched
	assert.Equal(t, 6, board.Pits[0].StoneCount)
	assert.Equal(t, Player1, board.Turn)
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, Player2, Opponent(Player1))
	assert.Equal(t, Player1, Opponent(Player2))
}
