package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const (
	GameOverMessage = "Game Over"

	turnMessageFormat = "%s's turn"
)

var ErrNoPresenter = errors.New("presenter is required")

type State int

const (
	NotStarted State = iota
	InProgress
	Over
)

func (that State) String() string {
	switch that {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

// Game - owns the grid and the two players, applies moves and detects the end of a round.
// It is not safe for concurrent use; callers drive one game from one goroutine.
type Game struct {
	grid      *entity.Grid
	players   [2]entity.Player
	current   int
	state     State
	status    string
	presenter Presenter
}

func NewGame(presenter Presenter, size int, playerOne, playerTwo entity.Player) (*Game, error) {
	if presenter == nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidConfiguration, ErrNoPresenter)
	}

	grid, err := entity.NewGrid(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	game := &Game{
		grid:      grid,
		players:   [2]entity.Player{playerOne, playerTwo},
		current:   -1,
		state:     NotStarted,
		presenter: presenter,
	}

	game.initialize()

	return game, nil
}

func (that *Game) initialize() {
	that.presenter.UpdateStatusMessage(that.status)
	that.presenter.RenderGrid(that.grid)
	that.presenter.HideResetControl()
}

// StartGame - begins a new round. It doubles as the reset control.
func (that *Game) StartGame() {
	that.grid.Reset()
	that.presenter.RenderGrid(that.grid)

	that.current = 0
	that.state = InProgress
	that.setNextPlayerMessage()

	that.presenter.ShowResetControl()
	that.grid.SetActivationListener(that)
}

// OnCellActivated - handles a cell selected through the grid.
func (that *Game) OnCellActivated(cell *entity.Cell) {
	that.move(cell)
}

// ApplyMove - applies a move addressed by cell index and reports whether it was accepted.
func (that *Game) ApplyMove(index int) bool {
	cell, ok := that.grid.Cell(index)
	if !ok {
		return false
	}

	return that.move(cell)
}

func (that *Game) move(cell *entity.Cell) bool {
	if that.state != InProgress || cell.IsOccupied() {
		return false
	}

	that.switchPlayer()
	cell.SetMarker(that.players[that.current].Symbol)
	that.presenter.RenderCell(cell)
	that.evaluate()

	return true
}

func (that *Game) switchPlayer() {
	that.current = 1 - that.current
	that.setNextPlayerMessage()
}

// setNextPlayerMessage names the player who is not current.
func (that *Game) setNextPlayerMessage() {
	next := that.players[1-that.current]
	that.updateStatus(fmt.Sprintf(turnMessageFormat, next.Name))
}

func (that *Game) evaluate() {
	if that.grid.IsFull() {
		that.gameOver()
	}
}

func (that *Game) gameOver() {
	that.state = Over
	that.updateStatus(GameOverMessage)
}

func (that *Game) updateStatus(text string) {
	that.status = text
	that.presenter.UpdateStatusMessage(text)
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) State() State {
	return that.state
}

func (that *Game) IsOver() bool {
	return that.state == Over
}

// CurrentPlayer - the player who made the latest switch; false before the first StartGame.
func (that *Game) CurrentPlayer() (entity.Player, bool) {
	if that.current < 0 {
		return entity.Player{}, false
	}

	return that.players[that.current], true
}

func (that *Game) Players() [2]entity.Player {
	return that.players
}

func (that *Game) Grid() *entity.Grid {
	return that.grid
}
