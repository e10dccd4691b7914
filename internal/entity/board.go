package entity

import "encoding/json"

// DefaultBoardSize is the canonical 8x8 board.
const DefaultBoardSize = 8

// Board is an N×N grid of cells stored in row-major order.
// It holds no rules knowledge, callers are responsible for validating coordinates.
type Board struct {
	size  int
	cells []Cell
}

// NewEmptyBoard - creates a board where every cell is empty.
func NewEmptyBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// NewBoard - creates a board with the four centered starting disks.
func NewBoard(size int) *Board {
	board := NewEmptyBoard(size)

	mid := size / 2
	board.Set(NewCoord(mid-1, mid-1), CellWhite)
	board.Set(NewCoord(mid-1, mid), CellBlack)
	board.Set(NewCoord(mid, mid-1), CellBlack)
	board.Set(NewCoord(mid, mid), CellWhite)

	return board
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < that.size && c.Row >= 0 && c.Row < that.size
}

func (that *Board) Get(c Coord) Cell {
	return that.cells[that.index(c)]
}

func (that *Board) Set(c Coord, cell Cell) {
	that.cells[that.index(c)] = cell
}

// CountOf - returns the number of disks owned by the player.
func (that *Board) CountOf(player Player) int {
	count := 0
	for _, cell := range that.cells {
		if cell == player.Cell() {
			count++
		}
	}

	return count
}

// ForEachCell - visits every cell row by row, columns ascending within a row.
func (that *Board) ForEachCell(fn func(c Coord, cell Cell)) {
	for i, cell := range that.cells {
		fn(NewCoord(i%that.size, i/that.size), cell)
	}
}

// Rows - returns a copy of the grid indexed as rows[row][col].
func (that *Board) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for row := range rows {
		rows[row] = make([]Cell, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}

func (that *Board) Clone() *Board {
	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells)

	return &Board{size: that.size, cells: cells}
}

func (that *Board) Equal(other *Board) bool {
	if that.size != other.size {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

func (that *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Rows())
}

func (that *Board) index(c Coord) int {
	return c.Row*that.size + c.Col
}
