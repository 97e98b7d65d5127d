package puzzle

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"

	puzzledom "tetratoy/internal/domain/puzzle"
	sessiondom "tetratoy/internal/domain/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsAction — сообщение клиента: одно действие над доской.
type wsAction struct {
	Action   string `json:"action"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Rotation int    `json:"rotation"`
	Board    string `json:"board,omitempty"`
	Code     string `json:"code,omitempty"`
}

type wsReply struct {
	Action   string                `json:"action"`
	Accepted *bool                 `json:"accepted,omitempty"`
	Unlocked *bool                 `json:"unlocked,omitempty"`
	Message  string                `json:"message,omitempty"`
	State    *sessiondom.StateView `json:"state,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// HandleBoardWS — событийная поверхность поверх websocket: клиент шлёт
// действия, сервер на каждое отвечает получившимся состоянием доски.
func (p *PuzzleHandler) HandleBoardWS(w http.ResponseWriter, r *http.Request) {
	sessionID := p.sessionHandler.GetSessionID(w, r)
	if sessionID == "" {
		return
	}

	ctx := r.Context()

	// сессия должна существовать до апгрейда соединения
	if _, err := p.puzzleUC.State(ctx, sessionID, sessiondom.BoardMain); err != nil {
		p.writeUseCaseError(w, "HandleBoardWS", err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.log.Error("HandleBoardWS: upgrade error: ", err)
		return
	}
	defer conn.Close()

	for {
		var action wsAction
		if err = conn.ReadJSON(&action); err != nil {
			p.log.Info("HandleBoardWS: read error, closing: ", err)
			return
		}

		reply := p.applyWSAction(ctx, sessionID, action)
		if err = conn.WriteJSON(reply); err != nil {
			p.log.Error("HandleBoardWS: write error: ", err)
			return
		}
	}
}

func (p *PuzzleHandler) applyWSAction(ctx context.Context, sessionID string, action wsAction) wsReply {
	kind := sessiondom.BoardKind(action.Board)
	reply := wsReply{Action: action.Action}

	var (
		view sessiondom.StateView
		err  error
	)

	switch action.Action {
	case "state":
		view, err = p.puzzleUC.State(ctx, sessionID, kind)
	case "place":
		var accepted bool
		view, accepted, err = p.puzzleUC.Place(ctx, sessionID, kind, action.Row, action.Col)
		reply.Accepted = &accepted
	case "rotation":
		view, err = p.puzzleUC.SetRotation(ctx, sessionID, kind, puzzledom.Rotation(action.Rotation))
	case "undo":
		view, err = p.puzzleUC.Undo(ctx, sessionID, kind)
	case "redo":
		view, err = p.puzzleUC.Redo(ctx, sessionID, kind)
	case "reset":
		view, err = p.puzzleUC.Reset(ctx, sessionID, kind)
	case "gate":
		var unlocked bool
		unlocked, err = p.puzzleUC.UnlockBonus(ctx, sessionID, action.Code)
		if err == nil {
			reply.Unlocked = &unlocked
			if !unlocked {
				reply.Message = gateMismatchMessage
			}
			view, err = p.puzzleUC.State(ctx, sessionID, sessiondom.BoardMain)
		}
	default:
		reply.Error = "неизвестное действие: " + action.Action
		return reply
	}

	if err != nil {
		p.log.Errorf("HandleBoardWS: action %s: %v", action.Action, err)
		reply.Error = err.Error()
		return reply
	}

	reply.State = &view
	return reply
}
