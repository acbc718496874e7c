package game

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alt25-ops/ESL-Pictionary/internal/board"
	"github.com/alt25-ops/ESL-Pictionary/internal/shared/logger"
)

// GameHandler exposes the session over HTTP for the local client. It also
// wires the controller's drawer flag into the drawing surface mode.
type GameHandler struct {
	controller *Controller
	board      *board.Board
}

func NewGameHandler(controller *Controller, b *board.Board) *GameHandler {
	return &GameHandler{controller: controller, board: b}
}

func (h *GameHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/create", h.CreateRoomHandler)
	group.POST("/join", h.JoinRoomHandler)
	group.POST("/turn", h.StartTurnHandler)
	group.POST("/guess", h.SubmitGuessHandler)
	group.POST("/stroke", h.StrokeHandler)
	group.GET("/state", h.StateHandler)
	group.GET("/board.png", h.BoardHandler)
}

type createRoomRequest struct {
	Name string `json:"name"`
}

func (h *GameHandler) CreateRoomHandler(ctx *gin.Context) {
	var req createRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid-request-format"})
		return
	}

	state := h.controller.CreateRoom(req.Name)
	h.board.Reset()
	ctx.JSON(http.StatusOK, state)
}

type joinRoomRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (h *GameHandler) JoinRoomHandler(ctx *gin.Context) {
	var req joinRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Code == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid-request-format"})
		return
	}

	state := h.controller.JoinRoom(req.Code, req.Name)
	h.board.Reset()
	ctx.JSON(http.StatusOK, state)
}

type startTurnRequest struct {
	PlayerID string `json:"playerId"`
}

func (h *GameHandler) StartTurnHandler(ctx *gin.Context) {
	var req startTurnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.PlayerID == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid-request-format"})
		return
	}

	err := h.controller.StartTurn(ctx.Request.Context(), req.PlayerID)
	switch err {
	case nil:
	case ErrNotHost:
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not-host"})
		return
	case ErrTurnInFlight:
		ctx.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "turn-start-in-progress"})
		return
	case ErrWrongPhase, ErrNoPlayers:
		ctx.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "wrong-phase"})
		return
	default:
		logger.Criticalf("Unexpected turn start failure: %v", err)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "unknown-error"})
		return
	}

	h.board.Reset()
	ctx.JSON(http.StatusOK, h.controller.Snapshot())
}

type guessRequest struct {
	PlayerID string `json:"playerId"`
	Text     string `json:"text"`
}

func (h *GameHandler) SubmitGuessHandler(ctx *gin.Context) {
	var req guessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid-request-format"})
		return
	}

	// Invalid guesses are silent no-ops, so the response carries no verdict
	// beyond the refreshed state.
	h.controller.SubmitGuess(req.PlayerID, req.Text)
	ctx.JSON(http.StatusOK, h.controller.Snapshot())
}

type strokeRequest struct {
	PlayerID string       `json:"playerId"`
	Action   board.Action `json:"action"`
}

func (h *GameHandler) StrokeHandler(ctx *gin.Context) {
	var req strokeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid-request-format"})
		return
	}

	// The controller decides who draws; the surface gets it as a mode flag.
	h.board.SetReadOnly(!h.controller.CanDraw(req.PlayerID))

	switch req.Action.Type {
	case board.ActionStart:
		if req.Action.Color != "" || req.Action.Width > 0 {
			h.board.SetBrush(req.Action.Color, req.Action.Width)
		}
		h.board.Start(req.Action.X, req.Action.Y)
	case board.ActionDraw:
		h.board.Move(req.Action.X, req.Action.Y)
	case board.ActionEnd:
		h.board.End()
	case board.ActionClear:
		h.board.Clear()
	default:
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid-action-type"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *GameHandler) StateHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.controller.Snapshot())
}

func (h *GameHandler) BoardHandler(ctx *gin.Context) {
	ctx.Header("Content-Type", "image/png")
	ctx.Status(http.StatusOK)
	if err := h.board.EncodePNG(ctx.Writer); err != nil {
		logger.Criticalf("Failed to encode board snapshot: %v", err)
	}
}
