package entity

import (
	"strings"
	"unicode"
)

const EmptyMarker = ""

type Cell struct {
	ID     int    `json:"id"`
	Marker string `json:"marker"`
}

// IsOccupied - a cell counts as occupied only when its marker has a non-whitespace character.
func (that *Cell) IsOccupied() bool {
	return strings.IndexFunc(that.Marker, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
}

func (that *Cell) SetMarker(symbol string) {
	that.Marker = symbol
}

func (that *Cell) Clear() {
	that.SetMarker(EmptyMarker)
}
