package console

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionState   = "game:state"
	actionMoves   = "game:moves"
	actionTurn    = "game:turn"
	actionLeave   = "game:leave"
)

// maxMessageSize caps a single request line, longer lines are dropped.
const maxMessageSize = 64 * 1024

var errMessageTooLong = errors.New("message too long")

type uGame interface {
	CreateGame(ctx context.Context) (*entity.Snapshot, error)
	GetGame(ctx context.Context, gameID string) (*entity.Snapshot, error)
	LegalMoves(ctx context.Context, gameID string) ([]entity.Coord, error)
	MakeTurn(ctx context.Context, gameID string, c entity.Coord) (*entity.Snapshot, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type handler func(ctx context.Context, message *Message, writer *bufio.Writer) error

// Server reads one JSON message per line and answers with one JSON message per line.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		handlers: make(map[string]handler),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionState] = server.handleGameState
	server.handlers[actionMoves] = server.handleLegalMoves
	server.handlers[actionTurn] = server.handleGameTurn
	server.handlers[actionLeave] = server.handleLeaveGame

	return server
}

// Start - processes messages from in until it is exhausted or ctx is canceled.
// When in is also an io.Closer it is closed on cancellation to unblock a pending read.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	if closer, ok := in.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() {
			_ = closer.Close()
		})
		defer stop()
	}

	reader := bufio.NewReaderSize(in, maxMessageSize)
	writer := bufio.NewWriter(out)

	for {
		raw, err := readLine(reader)
		if ctx.Err() != nil {
			return nil
		}

		switch {
		case errors.Is(err, io.EOF):
			log.Info("input closed")
			return nil
		case errors.Is(err, errMessageTooLong):
			log.Error("message dropped", "error", err, "limit", maxMessageSize)

			if err = that.sendErrorResponse(writer, "", "malformed message"); err != nil {
				return err
			}

			continue
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}

		var message Message
		if err = json.Unmarshal(line, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)

			if err = that.sendErrorResponse(writer, "", "malformed message"); err != nil {
				return err
			}

			continue
		}

		handle, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)

			if err = that.sendErrorResponse(writer, message.Action, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err = handle(ctx, &message, writer); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// readLine - returns the next line without its terminator.
// A line longer than maxMessageSize is consumed up to its end and reported as errMessageTooLong.
func readLine(reader *bufio.Reader) ([]byte, error) {
	line, isPrefix, err := reader.ReadLine()
	if err != nil || !isPrefix {
		return line, err
	}

	for isPrefix {
		if _, isPrefix, err = reader.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errMessageTooLong
			}

			return nil, err
		}
	}

	return nil, errMessageTooLong
}
