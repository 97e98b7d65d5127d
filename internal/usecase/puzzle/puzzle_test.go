package puzzle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tetratoy/internal/bootstrap"
	puzzledom "tetratoy/internal/domain/puzzle"
	sessiondom "tetratoy/internal/domain/session"
	"tetratoy/internal/errors"
)

type memStore struct {
	sessions map[string]*sessiondom.Session
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]*sessiondom.Session)}
}

func (m *memStore) RegisterSession(_ context.Context, sess *sessiondom.Session) error {
	m.sessions[sess.ID] = sess
	return nil
}

func (m *memStore) GetSession(_ context.Context, sessionID string) (*sessiondom.Session, error) {
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return sess, nil
}

func (m *memStore) DeleteSession(_ context.Context, sessionID string) error {
	if _, ok := m.sessions[sessionID]; !ok {
		return errors.ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	return nil
}

func testConfig() bootstrap.Config {
	return bootstrap.Config{
		DefaultBoardSize: 8,
		BonusBoardSize:   6,
		GateCode:         "1234",
	}
}

func newTestUseCase() (*PuzzleUseCase, *memStore) {
	store := newMemStore()
	return NewPuzzleUseCase(testConfig(), store), store
}

func TestStartSessionDefaultSize(t *testing.T) {
	uc, store := newTestUseCase()
	ctx := context.Background()

	sess, err := uc.StartSession(ctx, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Contains(t, store.sessions, sess.ID)

	view, err := uc.State(ctx, sess.ID, sessiondom.BoardMain)
	require.NoError(t, err)
	assert.Equal(t, 8, view.Board.Size)
}

func TestStartSessionBadSize(t *testing.T) {
	uc, _ := newTestUseCase()

	for _, size := range []int{1, 5, 9, -6} {
		_, err := uc.StartSession(context.Background(), size)
		assert.ErrorIs(t, err, errors.ErrBadBoardSize, "size %d", size)
	}
}

func TestPlaceAcceptedAndRejected(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	sess, err := uc.StartSession(ctx, 8)
	require.NoError(t, err)

	view, accepted, err := uc.Place(ctx, sess.ID, "", 0, 1)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.True(t, view.CanUndo)
	assert.Equal(t, puzzledom.CellOccupied, view.Board.Cells[0][1])

	// второй ход в тот же якорь: доска не меняется
	rejectedView, accepted, err := uc.Place(ctx, sess.ID, "", 0, 1)
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, view.Board, rejectedView.Board)
	assert.False(t, rejectedView.CanRedo)
}

func TestUndoRedoResetOverUseCase(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	sess, err := uc.StartSession(ctx, 8)
	require.NoError(t, err)

	placedView, accepted, err := uc.Place(ctx, sess.ID, "", 3, 3)
	require.NoError(t, err)
	require.True(t, accepted)

	undone, err := uc.Undo(ctx, sess.ID, "")
	require.NoError(t, err)
	assert.Equal(t, puzzledom.CellEmpty, undone.Board.Cells[3][3])
	assert.True(t, undone.CanRedo)

	redone, err := uc.Redo(ctx, sess.ID, "")
	require.NoError(t, err)
	assert.Equal(t, placedView.Board, redone.Board)

	resetView, err := uc.Reset(ctx, sess.ID, "")
	require.NoError(t, err)
	assert.False(t, resetView.CanUndo)
	assert.False(t, resetView.CanRedo)
	assert.Equal(t, puzzledom.CellEmpty, resetView.Board.Cells[3][3])
}

func TestSetRotation(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	sess, err := uc.StartSession(ctx, 8)
	require.NoError(t, err)

	view, err := uc.SetRotation(ctx, sess.ID, "", puzzledom.Rot180)
	require.NoError(t, err)
	assert.Equal(t, puzzledom.Rot180, view.Rotation)

	_, err = uc.SetRotation(ctx, sess.ID, "", puzzledom.Rotation(42))
	assert.ErrorIs(t, err, errors.ErrBadRotation)
}

func TestBonusBoardGate(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	sess, err := uc.StartSession(ctx, 8)
	require.NoError(t, err)

	_, _, err = uc.Place(ctx, sess.ID, sessiondom.BoardBonus, 2, 2)
	assert.ErrorIs(t, err, errors.ErrBoardLocked)

	unlocked, err := uc.UnlockBonus(ctx, sess.ID, "0000")
	require.NoError(t, err)
	assert.False(t, unlocked)

	unlocked, err = uc.UnlockBonus(ctx, sess.ID, "1234")
	require.NoError(t, err)
	assert.True(t, unlocked)

	view, accepted, err := uc.Place(ctx, sess.ID, sessiondom.BoardBonus, 2, 2)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, 6, view.Board.Size)
	assert.True(t, view.BonusUnlocked)

	// основная доска не задета бонусным ходом
	mainView, err := uc.State(ctx, sess.ID, sessiondom.BoardMain)
	require.NoError(t, err)
	assert.False(t, mainView.CanUndo)
}

func TestEndSession(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	sess, err := uc.StartSession(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, uc.EndSession(ctx, sess.ID))
	_, err = uc.State(ctx, sess.ID, "")
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}

func TestUnknownBoardKind(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	sess, err := uc.StartSession(ctx, 8)
	require.NoError(t, err)

	_, err = uc.State(ctx, sess.ID, "side")
	assert.ErrorIs(t, err, errors.ErrUnknownBoard)
}
