package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// ParseBoard - builds a square board from rows of '.', 'W' and 'B'; rows[0] is row 0.
func ParseBoard(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board := entity.NewEmptyBoard(len(rows))
	for row, line := range rows {
		if len(line) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", row, len(line), len(rows))
		}

		for col, char := range line {
			switch char {
			case '.':
			case 'W':
				board.Set(entity.NewCoord(col, row), entity.CellWhite)
			case 'B':
				board.Set(entity.NewCoord(col, row), entity.CellBlack)
			default:
				t.Fatalf("unknown cell %q at (%d,%d)", char, col, row)
			}
		}
	}

	return board
}

// NewGame - wraps a parsed board into an in-progress game with the given side to move.
func NewGame(t *testing.T, active entity.Player, rows ...string) *entity.Game {
	t.Helper()

	return &entity.Game{
		Board:  ParseBoard(t, rows...),
		Active: active,
		Status: entity.GameStatus{State: entity.StatusInProgress},
	}
}
