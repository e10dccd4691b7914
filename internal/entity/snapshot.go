package entity

// Event tells a renderer what happened on the last request.
type Event string

const (
	EventNone        Event = ""
	EventIllegalMove Event = "illegal_move"
	EventPass        Event = "pass"
	EventFinished    Event = "finished"
)

// Snapshot is everything a view needs to draw a game. It shares no memory with the game.
type Snapshot struct {
	GameID     string     `json:"game_id"`
	Board      [][]Cell   `json:"board"`
	Active     Player     `json:"active"`
	Status     GameStatus `json:"status"`
	LegalMoves []Coord    `json:"legal_moves"`
	Flips      int        `json:"flips,omitempty"`
	Event      Event      `json:"event,omitempty"`
	Message    string     `json:"message,omitempty"`
}

func (that *Game) Snapshot(legalMoves []Coord) *Snapshot {
	moves := make([]Coord, len(legalMoves))
	copy(moves, legalMoves)

	return &Snapshot{
		GameID:     that.ID,
		Board:      that.Board.Rows(),
		Active:     that.Active,
		Status:     that.Status,
		LegalMoves: moves,
	}
}
