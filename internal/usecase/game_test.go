package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/testing/suite"
)

var errRedisDown = errors.New("redis down")

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newManager(t *testing.T) (context.Context, *GameManager) {
	t.Helper()

	return context.Background(), NewGameManager(suite.NewLogger(), repository.NewMemoryGameRepository())
}

func clickAll(ctx context.Context, t *testing.T, manager *GameManager, id string, cells ...int) *entity.Game {
	t.Helper()

	var game *entity.Game
	for _, cell := range cells {
		var err error
		game, err = manager.Click(ctx, id, cell)
		require.NoError(t, err)
	}

	return game
}

func TestGameManager_NewGame(t *testing.T) {
	t.Run("Creates an empty game", func(t *testing.T) {
		ctx, manager := newManager(t)

		// When: creating a new game
		game, err := manager.NewGame(ctx)

		// Then: the game should be stored with a single empty board
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)

		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Returns error if gameRepo.CreateOrUpdate fails", func(t *testing.T) {
		// Given: a repository that fails on write
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()
		manager := NewGameManager(suite.NewLogger(), repo)

		// When: creating a new game
		game, err := manager.NewGame(context.Background())

		// Then: the storage error should be wrapped
		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
		repo.AssertExpectations(t)
	})
}

func TestGameManager_Click(t *testing.T) {
	t.Run("Alternates players", func(t *testing.T) {
		ctx, manager := newManager(t)
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)

		// When: two cells are clicked
		game = clickAll(ctx, t, manager, game.ID, 0, 4)

		// Then: X and O should be placed and X is next
		assert.Equal(t, entity.PlayerX, game.CurrentSquares()[0])
		assert.Equal(t, entity.PlayerO, game.CurrentSquares()[4])
		assert.Equal(t, 2, game.CurrentMove)
		assert.True(t, game.XIsNext())
	})

	t.Run("Occupied cell leaves the game unchanged", func(t *testing.T) {
		ctx, manager := newManager(t)
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)
		before := clickAll(ctx, t, manager, game.ID, 0)

		// When: clicking the occupied cell
		after, err := manager.Click(ctx, game.ID, 0)

		// Then: no error and no change
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Won game is frozen", func(t *testing.T) {
		ctx, manager := newManager(t)
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)
		won := clickAll(ctx, t, manager, game.ID, 0, 1, 4, 2, 8)
		require.NotNil(t, won.CurrentSquares().Winner())

		// When: clicking any remaining empty cell
		for _, cell := range []int{3, 5, 6, 7} {
			after, err := manager.Click(ctx, game.ID, cell)

			// Then: the game should stay as it was
			require.NoError(t, err)
			assert.Equal(t, won, after)
		}
	})

	t.Run("Invalid cell", func(t *testing.T) {
		ctx, manager := newManager(t)
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)

		_, err = manager.Click(ctx, game.ID, 9)

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Unknown game", func(t *testing.T) {
		ctx, manager := newManager(t)

		_, err := manager.Click(ctx, "nope", 0)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Ignored click does not write", func(t *testing.T) {
		// Given: a repository holding a won game
		game := entity.NewGame("g1")
		game.History = append(game.History, entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX})
		game.CurrentMove = 1

		repo := &mockGameRepo{}
		repo.On("GetByID", mock.Anything, "g1").Return(game, nil).Once()
		manager := NewGameManager(suite.NewLogger(), repo)

		// When: clicking an empty cell
		_, err := manager.Click(context.Background(), "g1", 5)

		// Then: CreateOrUpdate is never called
		require.NoError(t, err)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Returns error if gameRepo.CreateOrUpdate fails", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("GetByID", mock.Anything, "g1").Return(entity.NewGame("g1"), nil).Once()
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()
		manager := NewGameManager(suite.NewLogger(), repo)

		game, err := manager.Click(context.Background(), "g1", 0)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
		repo.AssertExpectations(t)
	})
}

func TestGameManager_JumpTo(t *testing.T) {
	t.Run("Jump then play truncates the future", func(t *testing.T) {
		ctx, manager := newManager(t)
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)
		before := clickAll(ctx, t, manager, game.ID, 0, 4, 1, 7)

		// When: jumping to move 2 and playing a new cell
		jumped, err := manager.JumpTo(ctx, game.ID, 2)
		require.NoError(t, err)
		assert.Len(t, jumped.History, 5)
		assert.Equal(t, 2, jumped.CurrentMove)

		after, err := manager.Click(ctx, game.ID, 8)
		require.NoError(t, err)

		// Then: entries 0..2 are kept and the new snapshot is entry 3
		require.Len(t, after.History, 4)
		assert.Equal(t, before.History[:3], after.History[:3])
		assert.Equal(t, entity.PlayerX, after.History[3][8])
		assert.Equal(t, entity.EmptyCell, after.History[3][1])
	})

	t.Run("Out of range", func(t *testing.T) {
		ctx, manager := newManager(t)
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)

		_, err = manager.JumpTo(ctx, game.ID, 3)

		require.ErrorIs(t, err, apperror.ErrMoveOutOfRange)
	})
}

func TestGameManager_ToggleSortOrder(t *testing.T) {
	ctx, manager := newManager(t)
	game, err := manager.NewGame(ctx)
	require.NoError(t, err)
	clickAll(ctx, t, manager, game.ID, 0)

	// When: toggling the sort order
	toggled, err := manager.ToggleSortOrder(ctx, game.ID)

	// Then: only the flag changes
	require.NoError(t, err)
	assert.False(t, toggled.Ascending)
	assert.Equal(t, 1, toggled.CurrentMove)

	stored, err := manager.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.False(t, stored.Ascending)
}

func TestGameManager_EndGame(t *testing.T) {
	t.Run("Discards the session", func(t *testing.T) {
		ctx, manager := newManager(t)
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)

		// When: ending the game
		err = manager.EndGame(ctx, game.ID)

		// Then: the game is gone
		require.NoError(t, err)
		_, err = manager.GetGame(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Returns error if gameRepo.DeleteByID fails", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("DeleteByID", mock.Anything, "g1").Return(errRedisDown).Once()
		manager := NewGameManager(suite.NewLogger(), repo)

		err := manager.EndGame(context.Background(), "g1")

		require.ErrorIs(t, err, errRedisDown)
		repo.AssertExpectations(t)
	})
}

func TestGameManager_WithRedis(t *testing.T) {
	// Given: a manager backed by Redis
	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger, repository.NewGameRepository(st.Storage, 0))

	game, err := manager.NewGame(ctx)
	require.NoError(t, err)

	// When: playing, jumping back and playing again
	clickAll(ctx, t, manager, game.ID, 0, 4, 1)
	_, err = manager.JumpTo(ctx, game.ID, 1)
	require.NoError(t, err)
	game = clickAll(ctx, t, manager, game.ID, 2)

	// Then: the stored history reflects the truncation
	stored, err := manager.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game, stored)
	assert.Len(t, stored.History, 3)
	assert.Equal(t, entity.PlayerO, stored.CurrentSquares()[2])
}
