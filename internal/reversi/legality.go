package reversi

import "github.com/rocketscienceinc/reversi-backend/internal/entity"

// direction is a unit step between neighbouring cells.
type direction struct {
	dCol, dRow int
}

var directions = [8]direction{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// IsLegal - checks whether the player may place a disk at c.
func IsLegal(board *entity.Board, player entity.Player, c entity.Coord) bool {
	if !canPlace(board, player, c) {
		return false
	}

	for _, dir := range directions {
		if len(captureLine(board, player, c, dir)) > 0 {
			return true
		}
	}

	return false
}

// LegalMovesFor - returns every legal move of the player in row-major order.
func LegalMovesFor(board *entity.Board, player entity.Player) []entity.Coord {
	moves := make([]entity.Coord, 0)

	board.ForEachCell(func(c entity.Coord, cell entity.Cell) {
		if cell == entity.CellEmpty && IsLegal(board, player, c) {
			moves = append(moves, c)
		}
	})

	return moves
}

// HasLegalMove - reports whether the player has at least one legal move.
func HasLegalMove(board *entity.Board, player entity.Player) bool {
	found := false

	board.ForEachCell(func(c entity.Coord, cell entity.Cell) {
		if !found && cell == entity.CellEmpty {
			found = IsLegal(board, player, c)
		}
	})

	return found
}

// captures - collects the disks flipped by placing at c, across all directions.
func captures(board *entity.Board, player entity.Player, c entity.Coord) []entity.Coord {
	if !canPlace(board, player, c) {
		return nil
	}

	var flips []entity.Coord
	for _, dir := range directions {
		flips = append(flips, captureLine(board, player, c, dir)...)
	}

	return flips
}

// captureLine - walks from c in dir through opponent disks.
// The run counts only if it is closed by one of the player's own disks.
func captureLine(board *entity.Board, player entity.Player, c entity.Coord, dir direction) []entity.Coord {
	own, opponent := player.Cell(), player.Opponent().Cell()

	var line []entity.Coord
	for next := c.Step(dir.dCol, dir.dRow); board.InBounds(next); next = next.Step(dir.dCol, dir.dRow) {
		switch board.Get(next) {
		case opponent:
			line = append(line, next)
		case own:
			return line
		default:
			return nil
		}
	}

	return nil
}

func canPlace(board *entity.Board, player entity.Player, c entity.Coord) bool {
	return player.IsValid() && board.InBounds(c) && board.Get(c) == entity.CellEmpty
}
