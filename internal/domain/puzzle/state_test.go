package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Сквозной сценарий: доска 8x8, ориентация 0, якорь (0,1).
func TestStatePlaceUndoRedoScenario(t *testing.T) {
	s := NewState(8)
	require.Equal(t, Rot0, s.Rotation())

	require.True(t, s.Place(0, 1))
	for _, c := range [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, 2}} {
		assert.Equal(t, CellOccupied, s.Board().Cells[c[0]][c[1]])
	}
	assert.Equal(t, 4, countOccupied(s.Board()))

	// повторный ход в тот же якорь отклоняется: (0,1) уже занята
	boardBefore := s.Board()
	assert.False(t, s.Place(0, 1))
	assert.Equal(t, boardBefore, s.Board())
	assert.True(t, s.CanUndo())
	assert.False(t, s.CanRedo())

	s.Undo()
	assert.Equal(t, 0, countOccupied(s.Board()))
	assert.True(t, s.CanRedo())

	s.Redo()
	assert.Equal(t, boardBefore, s.Board())
}

func TestStateRejectedPlaceKeepsHistory(t *testing.T) {
	s := NewState(8)
	require.True(t, s.Place(3, 3))

	// отклонённый ход не добавляет снимка
	require.False(t, s.Place(3, 3))
	assert.False(t, s.CanRedo())

	s.Undo()
	assert.False(t, s.CanUndo(), "в истории ровно один принятый ход")
}

func TestStateSetRotationAffectsPlacement(t *testing.T) {
	s := NewState(8)
	s.SetRotation(Rot270)
	require.Equal(t, Rot270, s.Rotation())

	require.True(t, s.Place(3, 3))
	for _, c := range Cells(Coord{Row: 3, Col: 3}, Rot270) {
		assert.Equal(t, CellOccupied, s.Board().Cells[c.Row][c.Col])
	}
}

func TestStateResetClearsEverything(t *testing.T) {
	s := NewState(6)
	require.True(t, s.Place(1, 1))
	require.True(t, s.Place(3, 3))
	s.Undo()

	s.Reset()
	assert.Equal(t, 0, countOccupied(s.Board()))
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
	assert.Equal(t, 6, s.Board().Size)
}
