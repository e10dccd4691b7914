package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// GameStatus carries the final disk counts once the game is finished.
type GameStatus struct {
	State string `json:"state"`
	White int    `json:"white"`
	Black int    `json:"black"`
}

// Winner - returns the side with more disks. A tie or an unfinished game has no winner.
func (that GameStatus) Winner() (Player, bool) {
	if that.State != StatusFinished || that.White == that.Black {
		return PlayerNone, false
	}

	if that.White > that.Black {
		return PlayerWhite, true
	}

	return PlayerBlack, true
}

// Game is the state of a single game session: its board, the side to move and the status.
type Game struct {
	ID     string     `json:"id,omitempty"`
	Board  *Board     `json:"board"`
	Active Player     `json:"active"`
	Status GameStatus `json:"status"`
}

// NewGame - creates a game on the standard starting position with Black to move.
func NewGame(id string, size int) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(size),
		Active: PlayerBlack,
		Status: GameStatus{State: StatusInProgress},
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.State == StatusFinished
}

func (that *Game) IsInProgress() bool {
	return that.Status.State == StatusInProgress
}

// Finish - marks the game finished with the literal disk counts of the board.
func (that *Game) Finish() {
	that.Status = GameStatus{
		State: StatusFinished,
		White: that.Board.CountOf(PlayerWhite),
		Black: that.Board.CountOf(PlayerBlack),
	}
	that.Active = PlayerNone
}

func (that *Game) ConfirmInProgress() error {
	switch that.Status.State {
	case StatusInProgress:
		return nil
	case StatusFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status.State)
	}
}

// Clone - returns a deep copy that shares nothing with the original.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = that.Board.Clone()

	return &clone
}
