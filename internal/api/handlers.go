package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luckyseven/casino/internal/logging"
	"github.com/luckyseven/casino/internal/types"
	"github.com/luckyseven/casino/pkg/entities"
	"github.com/luckyseven/casino/pkg/games/roulette"
	"github.com/luckyseven/casino/pkg/services/casino"
)

// Handler exposes the ledger over HTTP
type Handler struct {
	svc    *casino.Service
	hub    *Hub
	logger *logging.Logger
}

// NewHandler creates an API handler over the ledger service
func NewHandler(svc *casino.Service, hub *Hub, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default
	}
	return &Handler{svc: svc, hub: hub, logger: logger}
}

type registerRequest struct {
	Name           string `json:"name"`
	InitialBalance int64  `json:"initial_balance"`
}

type slotsRequest struct {
	Bet int64 `json:"bet"`
}

type rouletteRequest struct {
	Bet      int64  `json:"bet"`
	BetType  string `json:"bet_type"`
	BetValue int    `json:"bet_value"`
}

// RegisterPlayer handles POST /api/players
func (h *Handler) RegisterPlayer(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.svc.RegisterPlayer(c.Request.Context(), req.Name, req.InitialBalance)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"player": p})
}

// GetPlayer handles GET /api/players/:id
func (h *Handler) GetPlayer(c *gin.Context) {
	p, err := h.svc.GetPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"player": p})
}

// PlaySlots handles POST /api/players/:id/slots
func (h *Handler) PlaySlots(c *gin.Context) {
	var req slotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	playerID := c.Param("id")
	result, err := h.svc.PlaySlots(c.Request.Context(), playerID, req.Bet)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.hub.BroadcastPlay(playerID, entities.GameSlots, result)
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// PlayRoulette handles POST /api/players/:id/roulette
func (h *Handler) PlayRoulette(c *gin.Context) {
	var req rouletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	playerID := c.Param("id")
	result, err := h.svc.PlayRoulette(c.Request.Context(), playerID, req.Bet,
		roulette.BetType(req.BetType), req.BetValue)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.hub.BroadcastPlay(playerID, entities.GameRoulette, result)
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetHistory handles GET /api/players/:id/history
func (h *Handler) GetHistory(c *gin.Context) {
	transactions, err := h.svc.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// HandleWebSocket handles GET /ws
func (h *Handler) HandleWebSocket(c *gin.Context) {
	h.hub.Serve(c.Writer, c.Request)
}

// writeError maps the error taxonomy onto HTTP statuses
func (h *Handler) writeError(c *gin.Context, err error) {
	code := types.CodeOf(err)

	// Validation failures carry their own message; anything else is
	// logged and hidden behind a generic reply
	message := "internal error"
	var casinoErr *types.CasinoError
	if types.As(err, &casinoErr) {
		message = casinoErr.Message
	} else {
		h.logger.LogError(err)
	}

	c.JSON(statusFor(code), gin.H{"error": message, "code": code})
}

func statusFor(code types.ErrorCode) int {
	switch code {
	case types.ErrPlayerNotFound:
		return http.StatusNotFound
	case types.ErrInsufficientFunds:
		return http.StatusPaymentRequired
	case types.ErrInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
