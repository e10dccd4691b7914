package console

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// Message is a single request or response line.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	GameID string        `json:"game_id,omitempty"`
	Coord  *entity.Coord `json:"coord,omitempty"`
}

type ResponsePayload struct {
	Game       *entity.Snapshot `json:"game,omitempty"`
	GameID     string           `json:"game_id,omitempty"`
	LegalMoves []entity.Coord   `json:"legal_moves,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func (that *Server) sendMessage(writer *bufio.Writer, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{
		Action:  action,
		Payload: payloadBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	responseBytes = append(responseBytes, '\n')
	if _, err = writer.Write(responseBytes); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	if err = writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(writer *bufio.Writer, action, errorMsg string) error {
	if err := that.sendMessage(writer, action, ResponsePayload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
