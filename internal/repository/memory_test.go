package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		// Given: a memory repository with a stored game
		gameRepo := NewMemoryGameRepository()
		game := newPlayedGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: reading it back
		retrievedGame, err := gameRepo.GetByID(ctx, "123")

		// Then: it should equal the stored game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("Stored game is isolated from the caller", func(t *testing.T) {
		// Given: a stored game
		gameRepo := NewMemoryGameRepository()
		game := newPlayedGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller mutates its copy without saving
		game.History[1][8] = entity.PlayerO
		game.CurrentMove = 0

		// Then: the stored game is unchanged
		retrievedGame, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, retrievedGame.History[1][8])
		assert.Equal(t, 2, retrievedGame.CurrentMove)
	})

	t.Run("Not found", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		_, err := gameRepo.GetByID(ctx, "nope")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)

		err = gameRepo.DeleteByID(ctx, "nope")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newPlayedGame("123")))

		require.NoError(t, gameRepo.DeleteByID(ctx, "123"))

		_, err := gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
