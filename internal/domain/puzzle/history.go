package puzzle

// History — линейная история снимков доски с курсором. Инвариант:
// курсор всегда указывает на действительный снимок; снимки левее
// курсора доступны через Undo, правее — через Redo, пока очередной
// Record их не отбросит.
type History struct {
	snapshots []Board
	cursor    int
}

// NewHistory создаёт историю с единственным пустым снимком.
func NewHistory(size int) *History {
	return &History{snapshots: []Board{NewBoard(size)}}
}

func (h *History) Current() Board {
	return h.snapshots[h.cursor]
}

// Record отбрасывает хвост redo, добавляет снимок и сдвигает курсор
// на него. Вызывается только после принятого размещения.
func (h *History) Record(b Board) {
	h.snapshots = append(h.snapshots[:h.cursor+1], b)
	h.cursor = len(h.snapshots) - 1
}

// Undo сдвигает курсор назад; на левой границе — no-op.
func (h *History) Undo() {
	if h.cursor > 0 {
		h.cursor--
	}
}

// Redo сдвигает курсор вперёд; на правой границе — no-op.
func (h *History) Redo() {
	if h.cursor < len(h.snapshots)-1 {
		h.cursor++
	}
}

// Reset заменяет всю историю единственным пустым снимком того же размера.
func (h *History) Reset() {
	size := h.snapshots[0].Size
	h.snapshots = []Board{NewBoard(size)}
	h.cursor = 0
}

func (h *History) CanUndo() bool {
	return h.cursor > 0
}

func (h *History) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}
