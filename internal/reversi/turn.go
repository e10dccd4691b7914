package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// TurnResult describes an accepted move and what it did to the turn order.
type TurnResult struct {
	Move   entity.Coord      `json:"move"`
	Player entity.Player     `json:"player"`
	Flips  int               `json:"flips"`
	Passed entity.Player     `json:"passed,omitempty"`
	Status entity.GameStatus `json:"status"`
}

// HasPass - reports whether the opponent was forced to pass after this move.
func (that *TurnResult) HasPass() bool {
	return that.Passed != entity.PlayerNone
}

// MakeTurn - plays c for the active player and advances the turn.
func MakeTurn(game *entity.Game, c entity.Coord) (*TurnResult, error) {
	if err := game.ConfirmInProgress(); err != nil {
		return nil, err
	}

	if !game.Board.InBounds(c) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, c)
	}

	mover := game.Active

	flips, err := Apply(game.Board, mover, c)
	if err != nil {
		return nil, fmt.Errorf("invalid turn: %w", err)
	}

	passed := advanceTurn(game, mover)

	return &TurnResult{
		Move:   c,
		Player: mover,
		Flips:  flips,
		Passed: passed,
		Status: game.Status,
	}, nil
}

// Settle - resolves a position where the active player cannot move.
// The turn goes to the opponent, or the game finishes when neither side can move.
// Returns the player who passed. The board is never modified.
func Settle(game *entity.Game) entity.Player {
	if !game.IsInProgress() || HasLegalMove(game.Board, game.Active) {
		return entity.PlayerNone
	}

	stuck := game.Active
	if HasLegalMove(game.Board, stuck.Opponent()) {
		game.Active = stuck.Opponent()
		return stuck
	}

	game.Finish()

	return entity.PlayerNone
}

// advanceTurn - hands the turn over after mover played.
// Returns the opponent when it had to pass.
func advanceTurn(game *entity.Game, mover entity.Player) entity.Player {
	opponent := mover.Opponent()

	switch {
	case HasLegalMove(game.Board, opponent):
		game.Active = opponent
		return entity.PlayerNone
	case HasLegalMove(game.Board, mover):
		game.Active = mover
		return opponent
	default:
		game.Finish()
		return entity.PlayerNone
	}
}
