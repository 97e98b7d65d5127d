package puzzle

type Cell uint8

const (
	CellEmpty Cell = iota
	CellOccupied
)

// Board — квадратная доска NxN. Размер фиксируется при создании и больше
// не меняется.
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

func NewBoard(size int) Board {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return Board{Size: size, Cells: cells}
}

func (b Board) Clone() Board {
	clone := NewBoard(b.Size)
	for i := range b.Cells {
		copy(clone.Cells[i], b.Cells[i])
	}
	return clone
}

func (b Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Size && c.Col >= 0 && c.Col < b.Size
}

// CanPlace — валидатор размещения: все четыре клетки фигуры в границах
// доски и свободны. Отказ — обычный исход хода, не ошибка.
func (b Board) CanPlace(anchor Coord, rot Rotation) bool {
	for _, c := range Cells(anchor, rot) {
		if !b.InBounds(c) || b.Cells[c.Row][c.Col] != CellEmpty {
			return false
		}
	}
	return true
}

// Place возвращает новую доску с занятыми клетками фигуры; исходная
// доска не меняется (история хранит её как снимок). Если валидатор
// отклоняет ход, возвращается исходная доска и false — ни одна клетка
// не помечается.
func (b Board) Place(anchor Coord, rot Rotation) (Board, bool) {
	if !b.CanPlace(anchor, rot) {
		return b, false
	}
	placed := b.Clone()
	for _, c := range Cells(anchor, rot) {
		placed.Cells[c.Row][c.Col] = CellOccupied
	}
	return placed, true
}
