package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// Apply - places the player's disk at c and flips every captured line.
// Returns the number of flipped disks. On error the board is left untouched.
func Apply(board *entity.Board, player entity.Player, c entity.Coord) (int, error) {
	if !board.InBounds(c) {
		return 0, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, c)
	}

	flips := captures(board, player, c)
	if len(flips) == 0 {
		return 0, fmt.Errorf("%w: %s cannot play %s", apperror.ErrIllegalMove, player, c)
	}

	board.Set(c, player.Cell())
	for _, flipped := range flips {
		board.Set(flipped, player.Cell())
	}

	return len(flips), nil
}
