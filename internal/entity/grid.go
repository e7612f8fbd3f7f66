package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

// ActivationListener receives the cell a user selected in the presentation layer.
type ActivationListener interface {
	OnCellActivated(cell *Cell)
}

type nopListener struct{}

func (nopListener) OnCellActivated(*Cell) {}

// Grid - fixed size*size board. Cell IDs are their indexes, assigned once at construction.
type Grid struct {
	size     int
	cells    []*Cell
	listener ActivationListener
}

func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: grid size %d", apperror.ErrInvalidConfiguration, size)
	}

	cells := make([]*Cell, size*size)
	for i := range cells {
		cells[i] = &Cell{ID: i, Marker: EmptyMarker}
	}

	return &Grid{
		size:     size,
		cells:    cells,
		listener: nopListener{},
	}, nil
}

func (that *Grid) Size() int {
	return that.size
}

func (that *Grid) Cells() []*Cell {
	return that.cells
}

// IsFull - reports whether every cell is occupied.
func (that *Grid) IsFull() bool {
	for _, cell := range that.cells {
		if !cell.IsOccupied() {
			return false
		}
	}

	return true
}

func (that *Grid) Reset() {
	for _, cell := range that.cells {
		cell.Clear()
	}
}

// Cell - looks a cell up by its identity.
func (that *Grid) Cell(id int) (*Cell, bool) {
	if id < 0 || id >= len(that.cells) {
		return nil, false
	}

	return that.cells[id], true
}

// SetActivationListener - nil restores the default no-op listener.
func (that *Grid) SetActivationListener(listener ActivationListener) {
	if listener == nil {
		listener = nopListener{}
	}

	that.listener = listener
}

// Activate - forwards an activation event for the given cell ID to the listener.
// Unknown IDs are dropped.
func (that *Grid) Activate(id int) {
	cell, ok := that.Cell(id)
	if !ok {
		return
	}

	that.listener.OnCellActivated(cell)
}
