package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/broadsidegame/broadside-go/internal/api/middleware"
	"github.com/broadsidegame/broadside-go/internal/api/request"
	"github.com/broadsidegame/broadside-go/internal/api/response"
	"github.com/broadsidegame/broadside-go/internal/model"
	"github.com/broadsidegame/broadside-go/internal/services/cpu"
	"github.com/broadsidegame/broadside-go/internal/services/match"
)

// MatchHandler handles match-related endpoints
type MatchHandler struct {
	matches    match.ControllerInterface
	cpuService *cpu.Service
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matches match.ControllerInterface, cpuService *cpu.Service) *MatchHandler {
	return &MatchHandler{
		matches:    matches,
		cpuService: cpuService,
	}
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	opts := match.CreateOptions{
		Opponent:    model.OpponentKind(req.Opponent),
		CPUStrategy: req.CPUStrategy,
		HostMark:    model.MarkFromString(req.Mark),
	}
	if req.Opponent != "" && opts.Opponent != model.OpponentCPU && opts.Opponent != model.OpponentHuman {
		WriteError(w, NewInvalidRequestError("opponent must be cpu or human"))
		return
	}
	if req.Mark != "" && opts.HostMark == model.MarkNone {
		WriteError(w, NewInvalidRequestError("mark must be X or O"))
		return
	}

	m, err := h.matches.CreateMatch(r.Context(), player.ID, opts)
	if err != nil {
		WriteError(w, err)
		return
	}

	// A CPU seated as X opens before the creator sees the board
	cpuMoves, err := h.cpuService.PlayTurns(r.Context(), m.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if len(cpuMoves) > 0 {
		m, err = h.matches.GetMatch(r.Context(), m.ID)
		if err != nil {
			WriteError(w, err)
			return
		}
	}

	response.JSON(w, http.StatusCreated, response.MatchResponse{
		Match:    response.MatchFromModel(m),
		CPUMoves: response.MoveResultsFromModel(cpuMoves),
	})
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.matches.GetMatch(r.Context(), matchID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Join handles POST /api/v1/matches/{id}/join
func (h *MatchHandler) Join(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	m, err := h.matches.JoinMatch(r.Context(), matchID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Move handles POST /api/v1/matches/{id}/moves
func (h *MatchHandler) Move(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := matchID(r)
	mv := model.Move{BoardX: req.BoardX, BoardY: req.BoardY, CellX: req.CellX, CellY: req.CellY}

	result, err := h.matches.SubmitMove(r.Context(), id, player.ID, mv)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Let any CPU opponent answer before responding
	cpuMoves, err := h.cpuService.PlayTurns(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	m, err := h.matches.GetMatch(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResponse{
		Result:   response.MoveResultFromModel(result),
		CPUMoves: response.MoveResultsFromModel(cpuMoves),
		Match:    response.MatchFromModel(m),
	})
}

// LegalMoves handles GET /api/v1/matches/{id}/moves/legal
func (h *MatchHandler) LegalMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := h.matches.LegalMoves(r.Context(), matchID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.LegalMovesFromModel(moves))
}

// Reset handles POST /api/v1/matches/{id}/reset
func (h *MatchHandler) Reset(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id := matchID(r)
	m, err := h.matches.ResetMatch(r.Context(), id, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	// A CPU seated as X opens the fresh board immediately
	cpuMoves, err := h.cpuService.PlayTurns(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if len(cpuMoves) > 0 {
		m, err = h.matches.GetMatch(r.Context(), id)
		if err != nil {
			WriteError(w, err)
			return
		}
	}

	response.JSON(w, http.StatusOK, response.MatchResponse{
		Match:    response.MatchFromModel(m),
		CPUMoves: response.MoveResultsFromModel(cpuMoves),
	})
}

// Resign handles POST /api/v1/matches/{id}/resign
func (h *MatchHandler) Resign(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	m, err := h.matches.ResignMatch(r.Context(), matchID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// matchID extracts the match ID path variable
func matchID(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}
