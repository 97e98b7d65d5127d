package session

import (
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"tetratoy/internal/bootstrap"
	sessiondom "tetratoy/internal/domain/session"
	errs "tetratoy/internal/errors"
	"tetratoy/internal/httpresponse"
	puzzleuc "tetratoy/internal/usecase/puzzle"
	"tetratoy/internal/utils"
)

const cookieName = "sessionID"

type SessionHandler struct {
	cfg      bootstrap.Config
	log      *zap.SugaredLogger
	puzzleUC *puzzleuc.PuzzleUseCase
}

type StartRequest struct {
	BoardSize int `json:"board_size"`
}

type StartResponse struct {
	SessionID string               `json:"session_id"`
	State     sessiondom.StateView `json:"state"`
}

func NewSessionHandler(cfg bootstrap.Config, log *zap.SugaredLogger, puzzleUC *puzzleuc.PuzzleUseCase) *SessionHandler {
	return &SessionHandler{
		cfg:      cfg,
		log:      log,
		puzzleUC: puzzleUC,
	}
}

// Start godoc
// @Summary Старт сессии головоломки
// @Description Создаёт сессию с пустой доской и устанавливает cookie sessionID
// @Tags session
// @Accept json
// @Produce json
// @Param start body StartRequest false "Размер доски (6, 7 или 8)"
// @Success 200 {object} StartResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Router /api/session [post]
func (s *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.log.Error("Start: only POST method is allowed")
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var startData StartRequest
	if err := utils.DecodeJSONRequest(r, &startData); err != nil && !errors.Is(err, io.EOF) {
		s.log.Error("Start: malformed JSON: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	ctx := r.Context()

	sess, err := s.puzzleUC.StartSession(ctx, startData.BoardSize)
	if err != nil {
		if errors.Is(err, errs.ErrBadBoardSize) {
			s.log.Errorf("Start: bad board size: %d", startData.BoardSize)
			httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, "Размер доски должен быть 6, 7 или 8")
			return
		}
		s.log.Error("Start: internal error: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(s.cfg.SessionTTLHours) * time.Hour),
		HttpOnly: true,
	})

	view, err := s.puzzleUC.State(ctx, sess.ID, sessiondom.BoardMain)
	if err != nil {
		s.log.Error("Start: internal error: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Infof("Start: new session %s, board size %d", sess.ID, view.Board.Size)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, StartResponse{
		SessionID: sess.ID,
		State:     view,
	})
}

// End godoc
// @Summary Завершение сессии
// @Description Удаляет сессию по cookie sessionID
// @Tags session
// @Produce json
// @Success 200 {string} string "OK"
// @Failure 400 {object} httpresponse.ErrorResponse
// @Router /api/session [delete]
func (s *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		s.log.Error("End: only DELETE method is allowed")
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only DELETE method is allowed")
		return
	}

	sessionID := s.GetSessionID(w, r)
	if sessionID == "" {
		return
	}

	if err := s.puzzleUC.EndSession(r.Context(), sessionID); err != nil {
		s.log.Errorf("End: failed to end sessionID=%s: %v", sessionID, err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

// GetSessionID возвращает идентификатор сессии из cookie.
// Если cookie нет, пишет ошибку в http-ответ и возвращает "".
func (s *SessionHandler) GetSessionID(w http.ResponseWriter, r *http.Request) string {
	sessionCookie, err := r.Cookie(cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			s.log.Warn("GetSessionID: no sessionID cookie")
			httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, "Не найдена cookie sessionID")
			return ""
		}
		s.log.Error("GetSessionID: error retrieving cookie: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return ""
	}
	return sessionCookie.Value
}
