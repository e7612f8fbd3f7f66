package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_IsOccupied(t *testing.T) {
	tests := []struct {
		name     string
		marker   string
		expected bool
	}{
		{name: "empty marker", marker: "", expected: false},
		{name: "whitespace only marker", marker: "   ", expected: false},
		{name: "tabs and newlines", marker: "\t\n", expected: false},
		{name: "symbol", marker: "X", expected: true},
		{name: "symbol surrounded by spaces", marker: " O ", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a cell with the marker
			cell := &Cell{Marker: tt.marker}

			// Then: occupancy depends on non-whitespace content only
			assert.Equal(t, tt.expected, cell.IsOccupied())
		})
	}
}

func TestCell_SetMarkerAndClear(t *testing.T) {
	t.Run("SetMarker overwrites an occupied cell", func(t *testing.T) {
		// Given: a cell already holding X
		cell := &Cell{ID: 4, Marker: "X"}

		// When: the marker is overwritten
		cell.SetMarker("O")

		// Then: the new marker wins and the identity is untouched
		assert.Equal(t, "O", cell.Marker)
		assert.Equal(t, 4, cell.ID)
	})

	t.Run("Clear empties the marker", func(t *testing.T) {
		// Given: an occupied cell
		cell := &Cell{ID: 2, Marker: "X"}

		// When: the cell is cleared
		cell.Clear()

		// Then: it is no longer occupied
		assert.Equal(t, EmptyMarker, cell.Marker)
		assert.False(t, cell.IsOccupied())
	})
}
