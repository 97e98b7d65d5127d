package session

import (
	"sync"
	"time"

	"tetratoy/internal/domain/puzzle"
	"tetratoy/internal/errors"
)

// BoardKind различает основную и бонусную доски сессии.
type BoardKind string

const (
	BoardMain  BoardKind = "main"
	BoardBonus BoardKind = "bonus"
)

// Session — всё интерактивное состояние одного клиента: основная доска
// и, после ввода кода, бонусная. Живёт только в памяти процесса.
type Session struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	Main          *puzzle.State `json:"-"`
	Bonus         *puzzle.State `json:"-"`
	BonusUnlocked bool          `json:"bonus_unlocked"`

	Mu sync.Mutex `json:"-"`
}

func New(id string, mainSize int) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		Main:      puzzle.NewState(mainSize),
	}
}

// Board возвращает состояние запрошенной доски. Бонусная доска до
// разблокировки недоступна.
func (s *Session) Board(kind BoardKind) (*puzzle.State, error) {
	switch kind {
	case BoardMain, "":
		return s.Main, nil
	case BoardBonus:
		if !s.BonusUnlocked {
			return nil, errors.ErrBoardLocked
		}
		return s.Bonus, nil
	}
	return nil, errors.ErrUnknownBoard
}

// Unlock сравнивает код с ожидаемым и при совпадении создаёт бонусную
// доску. Несовпадение — не ошибка: клиент может вводить код повторно.
func (s *Session) Unlock(code, want string, bonusSize int) bool {
	if code != want {
		return false
	}
	if !s.BonusUnlocked {
		s.BonusUnlocked = true
		s.Bonus = puzzle.NewState(bonusSize)
	}
	return true
}

// StateView — срез состояния доски для клиента.
type StateView struct {
	Board         puzzle.Board    `json:"board"`
	Kind          BoardKind       `json:"kind"`
	Rotation      puzzle.Rotation `json:"rotation"`
	CanUndo       bool            `json:"can_undo"`
	CanRedo       bool            `json:"can_redo"`
	BonusUnlocked bool            `json:"bonus_unlocked"`
}

// View снимает StateView с запрошенной доски.
func (s *Session) View(kind BoardKind) (StateView, error) {
	state, err := s.Board(kind)
	if err != nil {
		return StateView{}, err
	}
	if kind == "" {
		kind = BoardMain
	}
	return StateView{
		Board:         state.Board(),
		Kind:          kind,
		Rotation:      state.Rotation(),
		CanUndo:       state.CanUndo(),
		CanRedo:       state.CanRedo(),
		BonusUnlocked: s.BonusUnlocked,
	}, nil
}
