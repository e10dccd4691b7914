package reversi

import (
	"fmt"
	"testing"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMovesFor_StartingPosition(t *testing.T) {
	// Given: a standard starting board
	board := entity.NewBoard(entity.DefaultBoardSize)

	// When: listing the legal moves of Black
	moves := LegalMovesFor(board, entity.PlayerBlack)

	// Then: Black has exactly the four textbook openings, in row-major order
	expected := []entity.Coord{
		entity.NewCoord(3, 2),
		entity.NewCoord(2, 3),
		entity.NewCoord(5, 4),
		entity.NewCoord(4, 5),
	}
	require.Equal(t, expected, moves)

	// Then: White has four openings too
	assert.Len(t, LegalMovesFor(board, entity.PlayerWhite), 4)
}

func TestIsLegal_EachDirection(t *testing.T) {
	for _, dir := range directions {
		t.Run(fmt.Sprintf("direction %d,%d", dir.dCol, dir.dRow), func(t *testing.T) {
			// Given: a white disk next to the target, closed by a black disk
			board := entity.NewEmptyBoard(8)
			target := entity.NewCoord(3, 3)
			board.Set(target.Step(dir.dCol, dir.dRow), entity.CellWhite)
			board.Set(target.Step(2*dir.dCol, 2*dir.dRow), entity.CellBlack)

			// Then: Black may play the target, White may not
			assert.True(t, IsLegal(board, entity.PlayerBlack, target))
			assert.False(t, IsLegal(board, entity.PlayerWhite, target))

			// Then: the line captures exactly the white disk
			assert.Equal(t,
				[]entity.Coord{target.Step(dir.dCol, dir.dRow)},
				captureLine(board, entity.PlayerBlack, target, dir),
			)
		})
	}
}

func TestIsLegal_LineTermination(t *testing.T) {
	t.Run("Long run of opponent disks closed by own disk", func(t *testing.T) {
		board := suite.ParseBoard(t,
			".WWWB...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		assert.True(t, IsLegal(board, entity.PlayerBlack, entity.NewCoord(0, 0)))
	})

	t.Run("Run that reaches the edge captures nothing", func(t *testing.T) {
		board := suite.ParseBoard(t,
			".WWW",
			"....",
			"....",
			"....",
		)

		assert.False(t, IsLegal(board, entity.PlayerBlack, entity.NewCoord(0, 0)))
	})

	t.Run("Run that ends on an empty cell captures nothing", func(t *testing.T) {
		board := suite.ParseBoard(t,
			".WW.B...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		assert.False(t, IsLegal(board, entity.PlayerBlack, entity.NewCoord(0, 0)))
	})

	t.Run("Own disk directly adjacent captures nothing", func(t *testing.T) {
		board := suite.ParseBoard(t,
			".BW.",
			"....",
			"....",
			"....",
		)

		assert.False(t, IsLegal(board, entity.PlayerBlack, entity.NewCoord(0, 0)))
	})

	t.Run("Empty neighbour captures nothing", func(t *testing.T) {
		board := suite.ParseBoard(t,
			"..WB",
			"....",
			"....",
			"....",
		)

		assert.False(t, IsLegal(board, entity.PlayerBlack, entity.NewCoord(0, 0)))
	})

	t.Run("Out of bounds coordinate is never legal", func(t *testing.T) {
		board := entity.NewBoard(8)

		assert.False(t, IsLegal(board, entity.PlayerBlack, entity.NewCoord(-1, 3)))
		assert.False(t, IsLegal(board, entity.PlayerBlack, entity.NewCoord(8, 3)))
	})

	t.Run("No player has no moves", func(t *testing.T) {
		board := entity.NewBoard(8)

		assert.False(t, IsLegal(board, entity.PlayerNone, entity.NewCoord(3, 2)))
		assert.Empty(t, LegalMovesFor(board, entity.PlayerNone))
	})
}

func TestIsLegal_OccupiedCells(t *testing.T) {
	// Given: a board after a few opening moves
	game, err := NewGame(entity.DefaultBoardSize)
	require.NoError(t, err)
	for _, c := range []entity.Coord{{Col: 2, Row: 3}, {Col: 2, Row: 2}, {Col: 3, Row: 2}} {
		_, err = MakeTurn(game, c)
		require.NoError(t, err)
	}

	// Then: no occupied cell is legal for either player
	game.Board.ForEachCell(func(c entity.Coord, cell entity.Cell) {
		if cell == entity.CellEmpty {
			return
		}

		assert.False(t, IsLegal(game.Board, entity.PlayerBlack, c), "black at %s", c)
		assert.False(t, IsLegal(game.Board, entity.PlayerWhite, c), "white at %s", c)
	})
}

func TestHasLegalMove(t *testing.T) {
	board := suite.ParseBoard(t,
		"BW..",
		"....",
		"....",
		"....",
	)

	assert.True(t, HasLegalMove(board, entity.PlayerBlack))
	assert.False(t, HasLegalMove(board, entity.PlayerWhite))
	assert.False(t, HasLegalMove(entity.NewEmptyBoard(4), entity.PlayerBlack))
}
