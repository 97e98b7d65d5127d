package errors

import "errors"

var (
	ErrSessionNotFound     = errors.New("session was not found")
	ErrSessionExpired      = errors.New("session has expired")
	ErrBadBoardSize        = errors.New("board size must be 6, 7 or 8")
	ErrBadRotation         = errors.New("rotation must be 0, 90, 180 or 270")
	ErrUnknownBoard        = errors.New("unknown board")
	ErrBoardLocked         = errors.New("bonus board is locked")
	ErrCreateSessionFailed = errors.New("create session failed")
	ErrInternal            = errors.New("internal error")
)
