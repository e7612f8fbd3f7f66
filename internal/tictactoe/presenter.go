package tictactoe

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// Presenter - the presentation layer the game drives. All calls are fire-and-forget.
type Presenter interface {
	RenderCell(cell *entity.Cell)
	RenderGrid(grid *entity.Grid)
	UpdateStatusMessage(text string)
	ShowResetControl()
	HideResetControl()
}

// Presenters fans every notification out to each presenter in order.
type Presenters []Presenter

func (that Presenters) RenderCell(cell *entity.Cell) {
	for _, p := range that {
		p.RenderCell(cell)
	}
}

func (that Presenters) RenderGrid(grid *entity.Grid) {
	for _, p := range that {
		p.RenderGrid(grid)
	}
}

func (that Presenters) UpdateStatusMessage(text string) {
	for _, p := range that {
		p.UpdateStatusMessage(text)
	}
}

func (that Presenters) ShowResetControl() {
	for _, p := range that {
		p.ShowResetControl()
	}
}

func (that Presenters) HideResetControl() {
	for _, p := range that {
		p.HideResetControl()
	}
}

type NopPresenter struct{}

func (NopPresenter) RenderCell(*entity.Cell)    {}
func (NopPresenter) RenderGrid(*entity.Grid)    {}
func (NopPresenter) UpdateStatusMessage(string) {}
func (NopPresenter) ShowResetControl()          {}
func (NopPresenter) HideResetControl()          {}
