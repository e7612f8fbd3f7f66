package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type jsonWriter interface {
	WriteJSON(v any) error
}

// Presenter renders the game in the browser on the other end of the connection.
type Presenter struct {
	logger *slog.Logger
	conn   jsonWriter
}

func NewPresenter(logger *slog.Logger, conn jsonWriter) *Presenter {
	return &Presenter{
		logger: logger.With("component", "ws-presenter"),
		conn:   conn,
	}
}

func (that *Presenter) RenderCell(cell *entity.Cell) {
	that.send(ActionCellRender, *cell)
}

func (that *Presenter) RenderGrid(grid *entity.Grid) {
	that.send(ActionGridRender, newGridPayload(grid))
}

func (that *Presenter) UpdateStatusMessage(text string) {
	that.send(ActionStatusUpdate, StatusPayload{Text: text})
}

func (that *Presenter) ShowResetControl() {
	that.send(ActionResetShow, nil)
}

func (that *Presenter) HideResetControl() {
	that.send(ActionResetHide, nil)
}

// send never fails the game: a broken connection surfaces in the read loop.
func (that *Presenter) send(action string, payload any) {
	if err := writeMessage(that.conn, action, payload); err != nil {
		that.logger.Error("failed to send message", "action", action, "error", err)
	}
}

func writeMessage(conn jsonWriter, action string, payload any) error {
	message := Message{Action: action}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		message.Payload = raw
	}

	if err := conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
