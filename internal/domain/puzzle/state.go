package puzzle

// State — состояние одной доски в рамках сессии: история снимков и
// текущая ориентация фигуры. Мутации не потокобезопасны, доступ
// сериализует владелец сессии.
type State struct {
	hist     *History
	rotation Rotation
}

func NewState(size int) *State {
	return &State{
		hist:     NewHistory(size),
		rotation: Rot0,
	}
}

func (s *State) Board() Board {
	return s.hist.Current()
}

func (s *State) Rotation() Rotation {
	return s.rotation
}

// SetRotation меняет ориентацию для последующих размещений.
func (s *State) SetRotation(r Rotation) {
	s.rotation = r
}

// Place пробует разместить фигуру с якорем (row, col) в текущей
// ориентации. Принятый ход записывается в историю; отклонённый не
// меняет ни доску, ни историю.
func (s *State) Place(row, col int) bool {
	placed, ok := s.hist.Current().Place(Coord{Row: row, Col: col}, s.rotation)
	if !ok {
		return false
	}
	s.hist.Record(placed)
	return true
}

func (s *State) Undo() {
	s.hist.Undo()
}

func (s *State) Redo() {
	s.hist.Redo()
}

func (s *State) Reset() {
	s.hist.Reset()
}

func (s *State) CanUndo() bool {
	return s.hist.CanUndo()
}

func (s *State) CanRedo() bool {
	return s.hist.CanRedo()
}
