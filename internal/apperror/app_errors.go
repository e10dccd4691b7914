package apperror

import "errors"

var (
	ErrOutOfBounds      = errors.New("coordinate is out of bounds")
	ErrIllegalMove      = errors.New("illegal move")
	ErrGameFinished     = errors.New("game is already finished")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrGameNotFound     = errors.New("game not found")
)
