package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs the game transitions against stored sessions.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	// serializes read-modify-write cycles on the repository
	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Click plays cell for the player to move. Clicks on an occupied cell or on a
// won board leave the game untouched and are not errors.
func (that *GameManager) Click(ctx context.Context, id string, cell int) (*entity.Game, error) {
	if !entity.IsValidCell(cell) {
		return nil, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	log := that.logger.With("method", "Click", "gameID", id, "cell", cell)

	return that.update(ctx, id, func(game *entity.Game) bool {
		next, ok := tictactoe.HandleClick(game.CurrentSquares(), game.XIsNext(), cell)
		if !ok {
			log.Debug("click ignored")
			return false
		}

		game.Play(next)
		log.Debug("move played", "move", game.CurrentMove, "result", next.Result())

		return true
	})
}

func (that *GameManager) JumpTo(ctx context.Context, id string, move int) (*entity.Game, error) {
	var jumpErr error

	game, err := that.update(ctx, id, func(game *entity.Game) bool {
		jumpErr = game.JumpTo(move)
		return jumpErr == nil
	})
	if err != nil {
		return nil, err
	}

	if jumpErr != nil {
		return nil, fmt.Errorf("failed to jump: %w", jumpErr)
	}

	that.logger.Debug("jumped", "gameID", id, "move", move)

	return game, nil
}

func (that *GameManager) ToggleSortOrder(ctx context.Context, id string) (*entity.Game, error) {
	return that.update(ctx, id, func(game *entity.Game) bool {
		game.ToggleSortOrder()
		return true
	})
}

// EndGame discards the session.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	that.logger.Info("game ended", "gameID", id)

	return nil
}

// update loads the game, applies fn and stores the game when fn reports a change.
func (that *GameManager) update(ctx context.Context, id string, fn func(game *entity.Game) bool) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if !fn(game) {
		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}
