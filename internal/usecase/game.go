package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

type GameUseCase interface {
	CreateGame(ctx context.Context, baseURI string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)

	MakeMove(ctx context.Context, id string, pit int) (*entity.Game, *kalah.MoveOutcome, error)
}

type gameRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
}

type gameUseCase struct {
	logger   *slog.Logger
	gameRepo gameRepo
	boardCfg entity.BoardConfig
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepo, boardCfg entity.BoardConfig) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "game_usecase"),
		gameRepo: gameRepo,
		boardCfg: boardCfg,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context, baseURI string) (*entity.Game, error) {
	if err := that.boardCfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	gameID := uuid.NewString()
	uri := strings.TrimSuffix(baseURI, "/") + "/games/" + gameID

	game := entity.NewGame(gameID, uri, that.boardCfg)
	if err := that.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("new game created", "gameID", gameID)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeMove - applies a zero-based seat move and persists the result.
// Rejected moves leave the stored game untouched.
func (that *gameUseCase) MakeMove(ctx context.Context, id string, pit int) (*entity.Game, *kalah.MoveOutcome, error) {
	log := that.logger.With("method", "MakeMove", "gameID", id, "pit", pit)

	var outcome *kalah.MoveOutcome

	game, err := that.gameRepo.Update(ctx, id, func(game *entity.Game) error {
		result, err := kalah.ApplyMove(game.Board, pit)
		if err != nil {
			return err //nolint: wrapcheck // wrapped once below
		}

		outcome = result

		return nil
	})
	if err != nil {
		log.Warn("move rejected", "error", err)
		return nil, nil, fmt.Errorf("failed to make move: %w", err)
	}

	log.Debug("move applied",
		"landingPit", outcome.LandingPit,
		"captured", outcome.Captured,
		"extraTurn", outcome.ExtraTurn,
		"turn", game.Board.Turn,
	)

	if outcome.Finished {
		log.Info("game finished", "result", outcome.Result)
	}

	return game, outcome, nil
}
