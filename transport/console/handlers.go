package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	log := that.logger.With("method", "handleNewGame")

	game, err := that.uGame.CreateGame(ctx)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(writer, msg.Action, "failed to create a new game")
	}

	return that.sendMessage(writer, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	payloadReq, ok, err := that.readGamePayload(msg, writer)
	if !ok {
		return err
	}

	game, err := that.uGame.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendErrorResponse(writer, msg.Action, errorMessage(err))
	}

	return that.sendMessage(writer, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleLegalMoves(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	payloadReq, ok, err := that.readGamePayload(msg, writer)
	if !ok {
		return err
	}

	moves, err := that.uGame.LegalMoves(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendErrorResponse(writer, msg.Action, errorMessage(err))
	}

	return that.sendMessage(writer, msg.Action, ResponsePayload{GameID: payloadReq.GameID, LegalMoves: moves})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, ok, err := that.readGamePayload(msg, writer)
	if !ok {
		return err
	}

	if payloadReq.Coord == nil {
		log.Error("Coord is missing in payload")
		return that.sendErrorResponse(writer, msg.Action, "coord is required")
	}

	game, err := that.uGame.MakeTurn(ctx, payloadReq.GameID, *payloadReq.Coord)
	if err != nil {
		log.Info("turn rejected", "gameID", payloadReq.GameID, "error", err)
		return that.sendMessage(writer, msg.Action, ResponsePayload{Game: game, Error: errorMessage(err)})
	}

	return that.sendMessage(writer, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleLeaveGame(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	payloadReq, ok, err := that.readGamePayload(msg, writer)
	if !ok {
		return err
	}

	if err = that.uGame.DeleteGame(ctx, payloadReq.GameID); err != nil {
		return that.sendErrorResponse(writer, msg.Action, errorMessage(err))
	}

	return that.sendMessage(writer, msg.Action, ResponsePayload{GameID: payloadReq.GameID})
}

// readGamePayload - decodes a payload that must name a game.
// When ok is false the client has already been answered and err is the write error, if any.
func (that *Server) readGamePayload(msg *Message, writer *bufio.Writer) (Payload, bool, error) {
	var payloadReq Payload

	if len(msg.Payload) == 0 {
		return payloadReq, false, that.sendErrorResponse(writer, msg.Action, "game_id is required")
	}

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		if sendErr := that.sendErrorResponse(writer, msg.Action, "malformed payload"); sendErr != nil {
			return payloadReq, false, sendErr
		}

		return payloadReq, false, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.GameID == "" {
		return payloadReq, false, that.sendErrorResponse(writer, msg.Action, "game_id is required")
	}

	return payloadReq, true, nil
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return "game not found"
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "coordinate is outside the board"
	case errors.Is(err, apperror.ErrIllegalMove):
		return "you cannot place a disk there"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game is already finished"
	default:
		return "internal error"
	}
}
