package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// outbound actions
const (
	ActionSession      = "session"
	ActionCellRender   = "cell:render"
	ActionGridRender   = "grid:render"
	ActionStatusUpdate = "status:update"
	ActionResetShow    = "reset:show"
	ActionResetHide    = "reset:hide"
	ActionError        = "error"
)

// inbound actions
const (
	ActionCellActivate = "cell:activate"
	ActionGameReset    = "game:reset"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type SessionPayload struct {
	GameID  string           `json:"game_id"`
	Players [2]entity.Player `json:"players"`
}

type GridPayload struct {
	Size  int           `json:"size"`
	Cells []entity.Cell `json:"cells"`
}

type StatusPayload struct {
	Text string `json:"text"`
}

type ActivatePayload struct {
	Cell *int `json:"cell"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func newGridPayload(grid *entity.Grid) GridPayload {
	cells := make([]entity.Cell, 0, len(grid.Cells()))
	for _, cell := range grid.Cells() {
		cells = append(cells, *cell)
	}

	return GridPayload{
		Size:  grid.Size(),
		Cells: cells,
	}
}
