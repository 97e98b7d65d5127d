package puzzle

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"tetratoy/internal/bootstrap"
	sessionDelivery "tetratoy/internal/delivery/session"
	puzzledom "tetratoy/internal/domain/puzzle"
	sessiondom "tetratoy/internal/domain/session"
	errs "tetratoy/internal/errors"
	"tetratoy/internal/httpresponse"
	puzzleuc "tetratoy/internal/usecase/puzzle"
	"tetratoy/internal/utils"
)

const gateMismatchMessage = "Неверный код, попробуйте ещё раз"

type PuzzleHandler struct {
	cfg            bootstrap.Config
	log            *zap.SugaredLogger
	puzzleUC       *puzzleuc.PuzzleUseCase
	sessionHandler *sessionDelivery.SessionHandler
}

func NewPuzzleHandler(cfg bootstrap.Config, log *zap.SugaredLogger, puzzleUC *puzzleuc.PuzzleUseCase, sessionHandler *sessionDelivery.SessionHandler) *PuzzleHandler {
	return &PuzzleHandler{
		cfg:            cfg,
		log:            log,
		puzzleUC:       puzzleUC,
		sessionHandler: sessionHandler,
	}
}

type PlaceRequest struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Board string `json:"board,omitempty"`
}

type PlaceResponse struct {
	Accepted bool                 `json:"accepted"`
	State    sessiondom.StateView `json:"state"`
}

type RotationRequest struct {
	Rotation int    `json:"rotation"`
	Board    string `json:"board,omitempty"`
}

type BoardRequest struct {
	Board string `json:"board,omitempty"`
}

type GateRequest struct {
	Code string `json:"code"`
}

type GateResponse struct {
	Unlocked bool   `json:"unlocked"`
	Message  string `json:"message,omitempty"`
}

// HandleState godoc
// @Summary Текущее состояние доски
// @Description Клетки доски, ориентация фигуры и доступность undo/redo
// @Tags puzzle
// @Produce json
// @Param board query string false "main или bonus"
// @Success 200 {object} sessiondom.StateView
// @Failure 401 {object} httpresponse.ErrorResponse
// @Router /api/state [get]
func (p *PuzzleHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	sessionID := p.sessionHandler.GetSessionID(w, r)
	if sessionID == "" {
		return
	}

	kind := sessiondom.BoardKind(r.URL.Query().Get("board"))
	view, err := p.puzzleUC.State(r.Context(), sessionID, kind)
	if err != nil {
		p.writeUseCaseError(w, "HandleState", err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, view)
}

// HandlePlace godoc
// @Summary Размещение фигуры
// @Description Пробует поставить фигуру с якорем (row, col) в текущей ориентации.
// Отклонённый ход возвращает accepted=false и неизменённую доску.
// @Tags puzzle
// @Accept json
// @Produce json
// @Param place body PlaceRequest true "Якорная клетка"
// @Success 200 {object} PlaceResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Router /api/place [post]
func (p *PuzzleHandler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	sessionID := p.sessionHandler.GetSessionID(w, r)
	if sessionID == "" {
		return
	}

	var placeData PlaceRequest
	if err := utils.DecodeJSONRequest(r, &placeData); err != nil {
		p.log.Error("HandlePlace: malformed JSON: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	view, accepted, err := p.puzzleUC.Place(r.Context(), sessionID, sessiondom.BoardKind(placeData.Board), placeData.Row, placeData.Col)
	if err != nil {
		p.writeUseCaseError(w, "HandlePlace", err)
		return
	}

	if !accepted {
		p.log.Infof("HandlePlace: ход (%d, %d) отклонён", placeData.Row, placeData.Col)
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, PlaceResponse{
		Accepted: accepted,
		State:    view,
	})
}

// HandleRotation godoc
// @Summary Смена ориентации фигуры
// @Tags puzzle
// @Accept json
// @Produce json
// @Param rotation body RotationRequest true "0, 90, 180 или 270"
// @Success 200 {object} sessiondom.StateView
// @Failure 400 {object} httpresponse.ErrorResponse
// @Router /api/rotation [post]
func (p *PuzzleHandler) HandleRotation(w http.ResponseWriter, r *http.Request) {
	sessionID := p.sessionHandler.GetSessionID(w, r)
	if sessionID == "" {
		return
	}

	var rotationData RotationRequest
	if err := utils.DecodeJSONRequest(r, &rotationData); err != nil {
		p.log.Error("HandleRotation: malformed JSON: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	view, err := p.puzzleUC.SetRotation(r.Context(), sessionID, sessiondom.BoardKind(rotationData.Board), puzzledom.Rotation(rotationData.Rotation))
	if err != nil {
		p.writeUseCaseError(w, "HandleRotation", err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, view)
}

// HandleUndo откатывает доску на один снимок назад; на границе — no-op.
func (p *PuzzleHandler) HandleUndo(w http.ResponseWriter, r *http.Request) {
	p.handleHistoryOp(w, r, "HandleUndo", p.puzzleUC.Undo)
}

// HandleRedo возвращает откатанный снимок; на границе — no-op.
func (p *PuzzleHandler) HandleRedo(w http.ResponseWriter, r *http.Request) {
	p.handleHistoryOp(w, r, "HandleRedo", p.puzzleUC.Redo)
}

// HandleReset очищает доску и историю.
func (p *PuzzleHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	p.handleHistoryOp(w, r, "HandleReset", p.puzzleUC.Reset)
}

func (p *PuzzleHandler) handleHistoryOp(
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	op func(ctx context.Context, sessionID string, kind sessiondom.BoardKind) (sessiondom.StateView, error),
) {
	sessionID := p.sessionHandler.GetSessionID(w, r)
	if sessionID == "" {
		return
	}

	var boardData BoardRequest
	if err := utils.DecodeJSONRequest(r, &boardData); err != nil && !errors.Is(err, io.EOF) {
		p.log.Errorf("%s: malformed JSON: %v", opName, err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	view, err := op(r.Context(), sessionID, sessiondom.BoardKind(boardData.Board))
	if err != nil {
		p.writeUseCaseError(w, opName, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, view)
}

// HandleGate godoc
// @Summary Ввод кода бонусной доски
// @Description Сравнивает код с ожидаемым; при совпадении открывает вторую доску.
// Несовпадение — не ошибка: возвращается unlocked=false со статичным сообщением.
// @Tags puzzle
// @Accept json
// @Produce json
// @Param gate body GateRequest true "Четырёхзначный код"
// @Success 200 {object} GateResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Router /api/gate [post]
func (p *PuzzleHandler) HandleGate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		p.log.Error("HandleGate: only POST method is allowed")
		httpresponse.WriteResponseWithStatus(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	sessionID := p.sessionHandler.GetSessionID(w, r)
	if sessionID == "" {
		return
	}

	var gateData GateRequest
	if err := utils.DecodeJSONRequest(r, &gateData); err != nil {
		p.log.Error("HandleGate: malformed JSON: ", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	unlocked, err := p.puzzleUC.UnlockBonus(r.Context(), sessionID, gateData.Code)
	if err != nil {
		p.writeUseCaseError(w, "HandleGate", err)
		return
	}

	resp := GateResponse{Unlocked: unlocked}
	if !unlocked {
		resp.Message = gateMismatchMessage
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

// writeUseCaseError переводит ошибки юзкейса в http-статусы.
func (p *PuzzleHandler) writeUseCaseError(w http.ResponseWriter, opName string, err error) {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound), errors.Is(err, errs.ErrSessionExpired):
		p.log.Warnf("%s: session not found or expired", opName)
		httpresponse.WriteErrorWithStatus(w, http.StatusUnauthorized, "Сессия не найдена или истекла")
	case errors.Is(err, errs.ErrBoardLocked):
		p.log.Warnf("%s: bonus board is locked", opName)
		httpresponse.WriteErrorWithStatus(w, http.StatusForbidden, "Бонусная доска ещё закрыта")
	case errors.Is(err, errs.ErrUnknownBoard), errors.Is(err, errs.ErrBadRotation):
		p.log.Errorf("%s: %v", opName, err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
	default:
		p.log.Errorf("%s: internal error: %v", opName, err)
		httpresponse.WriteErrorWithStatus(w, http.StatusInternalServerError, err.Error())
	}
}
