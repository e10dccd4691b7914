package entity

import (
	"errors"
	"fmt"
)

// Cell is the content of a single board position.
type Cell int8

const (
	CellEmpty Cell = iota
	CellWhite
	CellBlack
)

// Player is one of the two sides. PlayerNone marks a game without an active side.
type Player int8

const (
	PlayerNone  Player = Player(CellEmpty)
	PlayerWhite Player = Player(CellWhite)
	PlayerBlack Player = Player(CellBlack)
)

var (
	ErrUnknownCell   = errors.New("unknown cell value")
	ErrUnknownPlayer = errors.New("unknown player")
)

func (that Cell) String() string {
	switch that {
	case CellEmpty:
		return "empty"
	case CellWhite:
		return "white"
	case CellBlack:
		return "black"
	default:
		return fmt.Sprintf("cell(%d)", int8(that))
	}
}

// Owner - returns the player holding the cell, false when the cell is empty.
func (that Cell) Owner() (Player, bool) {
	switch that {
	case CellWhite:
		return PlayerWhite, true
	case CellBlack:
		return PlayerBlack, true
	default:
		return PlayerNone, false
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	switch that {
	case CellEmpty, CellWhite, CellBlack:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCell, int8(that))
	}
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "empty":
		*that = CellEmpty
	case "white":
		*that = CellWhite
	case "black":
		*that = CellBlack
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCell, text)
	}

	return nil
}

// Cell - returns the disk color placed by the player.
func (that Player) Cell() Cell {
	return Cell(that)
}

// Opponent - returns the other side. PlayerNone has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerWhite:
		return PlayerBlack
	case PlayerBlack:
		return PlayerWhite
	default:
		return PlayerNone
	}
}

func (that Player) IsValid() bool {
	return that == PlayerWhite || that == PlayerBlack
}

func (that Player) String() string {
	if that == PlayerNone {
		return ""
	}

	return Cell(that).String()
}

func (that Player) MarshalText() ([]byte, error) {
	if that != PlayerNone && !that.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, int8(that))
	}

	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = PlayerNone
	case "white":
		*that = PlayerWhite
	case "black":
		*that = PlayerBlack
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, text)
	}

	return nil
}
