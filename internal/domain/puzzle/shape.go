package puzzle

// Rotation выбирает одну из четырёх фиксированных ориентаций фигуры.
type Rotation int

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 90
	Rot180 Rotation = 180
	Rot270 Rotation = 270
)

func (r Rotation) Valid() bool {
	switch r {
	case Rot0, Rot90, Rot180, Rot270:
		return true
	}
	return false
}

// Coord — позиция клетки на доске.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Смещения T-фигуры относительно якоря. Каждая ориентация — отдельная
// литеральная таблица, никакая матрица поворота не вычисляется.
var shapeOffsets = map[Rotation][4]Coord{
	Rot0:   {{0, 0}, {1, 0}, {1, -1}, {1, 1}},
	Rot90:  {{0, 0}, {0, -1}, {-1, -1}, {1, -1}},
	Rot180: {{0, 0}, {-1, 0}, {-1, -1}, {-1, 1}},
	Rot270: {{0, 0}, {0, 1}, {-1, 1}, {1, 1}},
}

// Cells возвращает четыре клетки, которые займёт фигура с якорем anchor
// в ориентации rot. Выход за границы доски здесь не проверяется:
// эти координаты — легальный результат, их отсеивает валидатор.
func Cells(anchor Coord, rot Rotation) [4]Coord {
	offsets := shapeOffsets[rot]
	var cells [4]Coord
	for i, o := range offsets {
		cells[i] = Coord{Row: anchor.Row + o.Row, Col: anchor.Col + o.Col}
	}
	return cells
}
