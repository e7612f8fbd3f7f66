package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Presenter draws the game as text. Free cells show their number so they can be typed in.
type Presenter struct {
	out          io.Writer
	grid         *entity.Grid
	resetVisible bool
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (that *Presenter) RenderGrid(grid *entity.Grid) {
	that.grid = grid
	that.draw()
}

// RenderCell redraws the whole grid, the cell already carries its new marker.
func (that *Presenter) RenderCell(*entity.Cell) {
	that.draw()
}

func (that *Presenter) UpdateStatusMessage(text string) {
	if text == "" {
		return
	}

	fmt.Fprintln(that.out, text)
}

func (that *Presenter) ShowResetControl() {
	that.resetVisible = true
}

func (that *Presenter) HideResetControl() {
	that.resetVisible = false
}

func (that *Presenter) ResetVisible() bool {
	return that.resetVisible
}

func (that *Presenter) draw() {
	if that.grid == nil {
		return
	}

	size := that.grid.Size()
	width := len(strconv.Itoa(size*size - 1))
	for _, cell := range that.grid.Cells() {
		width = max(width, len(cell.Marker))
	}

	var sb strings.Builder
	for row := 0; row < size; row++ {
		labels := make([]string, 0, size)
		for _, cell := range that.grid.Cells()[row*size : (row+1)*size] {
			label := cell.Marker
			if !cell.IsOccupied() {
				label = strconv.Itoa(cell.ID)
			}
			labels = append(labels, fmt.Sprintf(" %*s ", width, label))
		}

		sb.WriteString(strings.Join(labels, "|"))
		sb.WriteString("\n")

		if row < size-1 {
			sb.WriteString(strings.Repeat("-", size*(width+2)+size-1))
			sb.WriteString("\n")
		}
	}

	fmt.Fprint(that.out, sb.String())
}
