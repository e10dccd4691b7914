package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const minBoardSize = 4

// ValidateBoardSize - the board must be even so the starting disks can be centered.
func ValidateBoardSize(size int) error {
	if size < minBoardSize || size%2 != 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	return nil
}

// NewGame - starts a game on a size×size board with Black to move.
func NewGame(size int) (*entity.Game, error) {
	if err := ValidateBoardSize(size); err != nil {
		return nil, err
	}

	return entity.NewGame("", size), nil
}

// Engine is the entry point for collaborators driving games of a fixed board size.
type Engine struct {
	boardSize int
}

func NewEngine(boardSize int) (*Engine, error) {
	if err := ValidateBoardSize(boardSize); err != nil {
		return nil, err
	}

	return &Engine{boardSize: boardSize}, nil
}

func (that *Engine) BoardSize() int {
	return that.boardSize
}

func (that *Engine) NewGame(id string) *entity.Game {
	return entity.NewGame(id, that.boardSize)
}

// LegalMoves - returns the legal moves of the active player, empty once the game is finished.
func (that *Engine) LegalMoves(game *entity.Game) []entity.Coord {
	if !game.IsInProgress() {
		return []entity.Coord{}
	}

	return LegalMovesFor(game.Board, game.Active)
}

// ApplyMove - plays c for the active player. The game is left unmodified on error.
func (that *Engine) ApplyMove(game *entity.Game, c entity.Coord) (*TurnResult, error) {
	return MakeTurn(game, c)
}

// Settle - resolves a position handed over by a collaborator whose side to move has no legal move.
// Returns the player who was forced to pass.
func (that *Engine) Settle(game *entity.Game) entity.Player {
	return Settle(game)
}

func (that *Engine) Status(game *entity.Game) entity.GameStatus {
	return game.Status
}

// Score - returns the current disk counts of White and Black.
func (that *Engine) Score(game *entity.Game) (int, int) {
	return game.Board.CountOf(entity.PlayerWhite), game.Board.CountOf(entity.PlayerBlack)
}
