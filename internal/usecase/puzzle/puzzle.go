package puzzle

import (
	"context"

	"github.com/google/uuid"

	"tetratoy/internal/bootstrap"
	puzzledom "tetratoy/internal/domain/puzzle"
	"tetratoy/internal/domain/session"
	"tetratoy/internal/errors"
)

// PuzzleStore — хранилище сессий; реализуется repo.PuzzleRepository.
type PuzzleStore interface {
	RegisterSession(ctx context.Context, sess *session.Session) error
	GetSession(ctx context.Context, sessionID string) (*session.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type PuzzleUseCase struct {
	cfg   bootstrap.Config
	store PuzzleStore
}

func NewPuzzleUseCase(cfg bootstrap.Config, store PuzzleStore) *PuzzleUseCase {
	return &PuzzleUseCase{cfg: cfg, store: store}
}

func validBoardSize(n int) bool {
	return n == 6 || n == 7 || n == 8
}

// StartSession создаёт сессию с пустой основной доской. Нулевой размер
// означает размер по умолчанию из конфига.
func (u *PuzzleUseCase) StartSession(ctx context.Context, boardSize int) (*session.Session, error) {
	if boardSize == 0 {
		boardSize = u.cfg.DefaultBoardSize
	}
	if !validBoardSize(boardSize) {
		return nil, errors.ErrBadBoardSize
	}

	sess := session.New(uuid.New().String(), boardSize)
	if err := u.store.RegisterSession(ctx, sess); err != nil {
		return nil, errors.ErrCreateSessionFailed
	}
	return sess, nil
}

func (u *PuzzleUseCase) EndSession(ctx context.Context, sessionID string) error {
	return u.store.DeleteSession(ctx, sessionID)
}

// State возвращает срез состояния запрошенной доски.
func (u *PuzzleUseCase) State(ctx context.Context, sessionID string, kind session.BoardKind) (session.StateView, error) {
	sess, err := u.store.GetSession(ctx, sessionID)
	if err != nil {
		return session.StateView{}, err
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	return sess.View(kind)
}

// Place пробует разместить фигуру. Отклонённый ход — не ошибка:
// возвращается accepted=false и неизменённое состояние.
func (u *PuzzleUseCase) Place(ctx context.Context, sessionID string, kind session.BoardKind, row, col int) (session.StateView, bool, error) {
	sess, err := u.store.GetSession(ctx, sessionID)
	if err != nil {
		return session.StateView{}, false, err
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	state, err := sess.Board(kind)
	if err != nil {
		return session.StateView{}, false, err
	}
	accepted := state.Place(row, col)
	view, err := sess.View(kind)
	return view, accepted, err
}

// SetRotation меняет ориентацию для последующих размещений доски kind.
func (u *PuzzleUseCase) SetRotation(ctx context.Context, sessionID string, kind session.BoardKind, rot puzzledom.Rotation) (session.StateView, error) {
	if !rot.Valid() {
		return session.StateView{}, errors.ErrBadRotation
	}

	sess, err := u.store.GetSession(ctx, sessionID)
	if err != nil {
		return session.StateView{}, err
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	state, err := sess.Board(kind)
	if err != nil {
		return session.StateView{}, err
	}
	state.SetRotation(rot)
	return sess.View(kind)
}

func (u *PuzzleUseCase) Undo(ctx context.Context, sessionID string, kind session.BoardKind) (session.StateView, error) {
	return u.mutate(ctx, sessionID, kind, (*puzzledom.State).Undo)
}

func (u *PuzzleUseCase) Redo(ctx context.Context, sessionID string, kind session.BoardKind) (session.StateView, error) {
	return u.mutate(ctx, sessionID, kind, (*puzzledom.State).Redo)
}

func (u *PuzzleUseCase) Reset(ctx context.Context, sessionID string, kind session.BoardKind) (session.StateView, error) {
	return u.mutate(ctx, sessionID, kind, (*puzzledom.State).Reset)
}

func (u *PuzzleUseCase) mutate(ctx context.Context, sessionID string, kind session.BoardKind, op func(*puzzledom.State)) (session.StateView, error) {
	sess, err := u.store.GetSession(ctx, sessionID)
	if err != nil {
		return session.StateView{}, err
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	state, err := sess.Board(kind)
	if err != nil {
		return session.StateView{}, err
	}
	op(state)
	return sess.View(kind)
}

// UnlockBonus сверяет код с кодом из конфига. Несовпадение — не ошибка,
// клиент может вводить код сколько угодно раз.
func (u *PuzzleUseCase) UnlockBonus(ctx context.Context, sessionID string, code string) (bool, error) {
	sess, err := u.store.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	return sess.Unlock(code, u.cfg.GateCode, u.cfg.BonusBoardSize), nil
}
