package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countOccupied(b Board) int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c == CellOccupied {
				n++
			}
		}
	}
	return n
}

func TestNewBoardAllEmpty(t *testing.T) {
	b := NewBoard(8)
	assert.Equal(t, 8, b.Size)
	assert.Equal(t, 0, countOccupied(b))
}

func TestCanPlaceBounds(t *testing.T) {
	b := NewBoard(6)

	// Rot0 занимает якорь и ряд под ним: у нижнего края места нет
	assert.True(t, b.CanPlace(Coord{Row: 0, Col: 1}, Rot0))
	assert.False(t, b.CanPlace(Coord{Row: 5, Col: 1}, Rot0))
	// крайний левый столбец: клетка (r+1, c-1) вне доски
	assert.False(t, b.CanPlace(Coord{Row: 0, Col: 0}, Rot0))
	assert.False(t, b.CanPlace(Coord{Row: 0, Col: 5}, Rot0))
}

func TestCanPlaceOccupied(t *testing.T) {
	b := NewBoard(8)
	placed, ok := b.Place(Coord{Row: 0, Col: 1}, Rot0)
	require.True(t, ok)

	// любой ход, задевающий занятые клетки, отклоняется
	assert.False(t, placed.CanPlace(Coord{Row: 0, Col: 1}, Rot0))
	assert.False(t, placed.CanPlace(Coord{Row: 1, Col: 2}, Rot0))
	assert.True(t, placed.CanPlace(Coord{Row: 4, Col: 4}, Rot0))
}

func TestPlaceCopyOnWrite(t *testing.T) {
	before := NewBoard(8)
	after, ok := before.Place(Coord{Row: 2, Col: 2}, Rot90)
	require.True(t, ok)

	assert.Equal(t, 0, countOccupied(before), "исходная доска не должна меняться")
	assert.Equal(t, 4, countOccupied(after))
}

func TestPlaceRejectedReturnsSameBoard(t *testing.T) {
	b := NewBoard(8)
	same, ok := b.Place(Coord{Row: 7, Col: 3}, Rot0)
	assert.False(t, ok)
	assert.Equal(t, b, same)
}

func TestPlaceOccupiesExactlyFourCells(t *testing.T) {
	b := NewBoard(8)
	anchor := Coord{Row: 3, Col: 3}

	for _, rot := range []Rotation{Rot0, Rot90, Rot180, Rot270} {
		placed, ok := b.Place(anchor, rot)
		require.True(t, ok, "rotation %d", rot)
		assert.Equal(t, 4, countOccupied(placed), "rotation %d", rot)
		for _, c := range Cells(anchor, rot) {
			assert.Equal(t, CellOccupied, placed.Cells[c.Row][c.Col])
		}
	}
}
