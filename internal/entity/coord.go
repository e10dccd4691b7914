package entity

import "fmt"

// Coord addresses a board position, both components are 0-indexed.
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func NewCoord(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// Step - returns the coordinate shifted by the given column and row deltas.
func (that Coord) Step(dCol, dRow int) Coord {
	return Coord{Col: that.Col + dCol, Row: that.Row + dRow}
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Col, that.Row)
}
