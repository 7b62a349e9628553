package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ryantechlabs/social-kanban/internal/repository"
)

type Handler struct {
	Cards     repository.CardRepository
	Platforms repository.PlatformRepository
	Stats     repository.StatsRepository
}

// RegisterRoutes wires every API endpoint onto the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/cards", h.ListCards)
	api.GET("/cards/platform/:platform", h.ListCardsByPlatform)
	api.GET("/cards/status/:status", h.ListCardsByStatus)
	api.GET("/cards/:id", h.GetCard)
	api.POST("/cards", h.CreateCard)
	api.PUT("/cards/:id", h.UpdateCard)
	api.PATCH("/cards/:id/move", h.MoveCard)
	api.DELETE("/cards/:id", h.DeleteCard)
	api.GET("/platforms", h.ListPlatforms)
	api.GET("/stats", h.GetStats)
	api.GET("/health", h.HealthCheck)
}

type createCardRequest struct {
	ID          string  `json:"id"`
	Platform    string  `json:"platform" binding:"required"`
	Status      string  `json:"status" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Date        *string `json:"date"`
	Priority    string  `json:"priority"`
}

// updateCardRequest distinguishes absent fields (nil, leave unchanged) from
// fields explicitly set to the empty string.
type updateCardRequest struct {
	Platform    *string `json:"platform"`
	Status      *string `json:"status"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Date        *string `json:"date"`
	Priority    *string `json:"priority"`
}

type moveCardRequest struct {
	Platform string `json:"platform" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

// writeError translates repository failures into the API's error contract.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrCardNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	zap.L().Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *Handler) ListCards(c *gin.Context) {
	cards, err := h.Cards.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *Handler) ListCardsByPlatform(c *gin.Context) {
	cards, err := h.Cards.ListByPlatform(c.Request.Context(), c.Param("platform"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *Handler) ListCardsByStatus(c *gin.Context) {
	cards, err := h.Cards.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *Handler) GetCard(c *gin.Context) {
	card, err := h.Cards.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) CreateCard(c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.Cards.Create(c.Request.Context(), repository.CreateCardParams{
		ID:          req.ID,
		Platform:    req.Platform,
		Status:      req.Status,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Date:        req.Date,
		Priority:    req.Priority,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *Handler) UpdateCard(c *gin.Context) {
	var req updateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.Cards.Update(c.Request.Context(), c.Param("id"), repository.UpdateCardParams{
		Platform:    req.Platform,
		Status:      req.Status,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Date:        req.Date,
		Priority:    req.Priority,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) MoveCard(c *gin.Context) {
	var req moveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Cards.Move(c.Request.Context(), c.Param("id"), req.Platform, req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteCard(c *gin.Context) {
	if err := h.Cards.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ListPlatforms(c *gin.Context) {
	platforms, err := h.Platforms.ListEnabled(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, platforms)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Stats.Summary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
