package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

const msgIllegalMove = "you cannot place a disk there"

type gameEngine interface {
	NewGame(id string) *entity.Game
	LegalMoves(game *entity.Game) []entity.Coord
	ApplyMove(game *entity.Game, c entity.Coord) (*reversi.TurnResult, error)
}

// session owns one game. Its mutex serializes every access to that game.
type session struct {
	mu   sync.Mutex
	game *entity.Game
}

// GameManager hosts independent games side by side, keyed by game ID.
type GameManager struct {
	logger *slog.Logger
	engine gameEngine

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewGameManager(logger *slog.Logger, engine gameEngine) *GameManager {
	return &GameManager{
		logger: logger,
		engine: engine,

		sessions: make(map[string]*session),
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Snapshot, error) {
	log := that.logger.With("method", "CreateGame")

	gameID := uuid.NewString()
	game := that.engine.NewGame(gameID)
	snapshot := that.snapshot(game, entity.EventNone, turnMessage(game))

	that.mu.Lock()
	that.sessions[gameID] = &session{game: game}
	that.mu.Unlock()

	log.InfoContext(ctx, "game created", "gameID", gameID, "size", len(snapshot.Board))

	return snapshot, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Snapshot, error) {
	sess, err := that.getSession(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	event, message := entity.EventNone, turnMessage(sess.game)
	if sess.game.IsFinished() {
		event = entity.EventFinished
	}

	return that.snapshot(sess.game, event, message), nil
}

func (that *GameManager) LegalMoves(ctx context.Context, gameID string) ([]entity.Coord, error) {
	sess, err := that.getSession(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return that.engine.LegalMoves(sess.game), nil
}

// MakeTurn - plays c for the side to move. A rejected move returns the unchanged game together with the error.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, c entity.Coord) (*entity.Snapshot, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	sess, err := that.getSession(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	result, err := that.engine.ApplyMove(sess.game, c)
	if err != nil {
		log.DebugContext(ctx, "move rejected", "coord", c.String(), "error", err)

		event, message := entity.EventIllegalMove, msgIllegalMove
		if errors.Is(err, apperror.ErrGameFinished) {
			event, message = entity.EventFinished, finishedMessage(sess.game.Status)
		}

		return that.snapshot(sess.game, event, message), fmt.Errorf("failed to make turn: %w", err)
	}

	snapshot := that.snapshot(sess.game, entity.EventNone, turnMessage(sess.game))
	snapshot.Flips = result.Flips

	switch {
	case sess.game.IsFinished():
		snapshot.Event = entity.EventFinished
		log.InfoContext(ctx, "game finished", "white", result.Status.White, "black", result.Status.Black)
	case result.HasPass():
		snapshot.Event = entity.EventPass
		snapshot.Message = fmt.Sprintf("%s has no legal moves and passes, %s", result.Passed, turnMessage(sess.game))
		log.InfoContext(ctx, "player passed", "player", result.Passed.String())
	}

	return snapshot, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "DeleteGame", "gameID", gameID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[gameID]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	delete(that.sessions, gameID)

	log.InfoContext(ctx, "game deleted")

	return nil
}

func (that *GameManager) getSession(gameID string) (*session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	sess, ok := that.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	return sess, nil
}

func (that *GameManager) snapshot(game *entity.Game, event entity.Event, message string) *entity.Snapshot {
	snapshot := game.Snapshot(that.engine.LegalMoves(game))
	snapshot.Event = event
	snapshot.Message = message

	return snapshot
}

func turnMessage(game *entity.Game) string {
	if game.IsFinished() {
		return finishedMessage(game.Status)
	}

	return fmt.Sprintf("%s to move", game.Active)
}

func finishedMessage(status entity.GameStatus) string {
	winner, ok := status.Winner()
	if !ok {
		return fmt.Sprintf("game over, draw %d-%d", status.White, status.Black)
	}

	return fmt.Sprintf("game over, %s wins (white %d, black %d)", winner, status.White, status.Black)
}
