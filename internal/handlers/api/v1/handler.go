// Package v1 exposes the character API over HTTP as JSON
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sagaforge/saga-api/internal/entities/character"
	"github.com/sagaforge/saga-api/internal/errors"
	charsvc "github.com/sagaforge/saga-api/internal/services/character"
)

// Handler serves the v1 character routes
type Handler struct {
	service charsvc.Service
}

// HandlerConfig holds the dependencies for the v1 handler
type HandlerConfig struct {
	Service charsvc.Service
}

// Validate ensures all required dependencies are provided
func (cfg *HandlerConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Service == nil {
		return errors.InvalidArgument("service cannot be nil")
	}
	return nil
}

// NewHandler creates a new v1 handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{service: cfg.Service}, nil
}

// RegisterRoutes mounts the v1 routes onto the given group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	creations := rg.Group("/creations")
	creations.POST("", h.startCreation)
	creations.GET("/:id", h.getCreation)
	creations.POST("/:id/stat", h.adjustStat)
	creations.POST("/:id/field", h.setField)
	creations.POST("/:id/roll", h.rollStats)
	creations.POST("/:id/finalize", h.finalizeCreation)

	characters := rg.Group("/characters")
	characters.GET("", h.listCharacters)
	characters.GET("/:id", h.getCharacter)
	characters.GET("/:id/sheet", h.getSheet)
	characters.DELETE("/:id", h.deleteCharacter)
	characters.POST("/:id/stats", h.applyStatUpdates)
	characters.POST("/:id/share", h.shareCharacter)

	rg.POST("/import", h.importCharacter)
}

func respondError(c *gin.Context, err error) {
	status, body := errors.ToHTTPError(err)
	c.AbortWithStatusJSON(status, body)
}

// creationResponse is the wire shape of an in-progress creation
type creationResponse struct {
	ID              string         `json:"id"`
	EngineID        string         `json:"engineId"`
	PlayerID        string         `json:"playerId"`
	CampaignID      string         `json:"campaignId,omitempty"`
	Stats           map[string]int `json:"stats"`
	FormData        map[string]any `json:"formData"`
	SpentPoints     int            `json:"spentPoints"`
	RemainingPoints *int           `json:"remainingPoints,omitempty"`
	MissingFields   []string       `json:"missingFields,omitempty"`
	Applied         *bool          `json:"applied,omitempty"`
}

func toCreationResponse(c *charsvc.Creation, applied *bool) creationResponse {
	return creationResponse{
		ID:              c.ID,
		EngineID:        c.EngineID,
		PlayerID:        c.PlayerID,
		CampaignID:      c.CampaignID,
		Stats:           c.Stats,
		FormData:        c.FormData,
		SpentPoints:     c.SpentPoints,
		RemainingPoints: c.RemainingPoints,
		MissingFields:   c.MissingFields,
		Applied:         applied,
	}
}

type startCreationRequest struct {
	EngineID   string `json:"engineId" binding:"required"`
	PlayerID   string `json:"playerId" binding:"required"`
	CampaignID string `json:"campaignId"`
}

func (h *Handler) startCreation(c *gin.Context) {
	var req startCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	output, err := h.service.StartCreation(c.Request.Context(), &charsvc.StartCreationInput{
		EngineID:   req.EngineID,
		PlayerID:   req.PlayerID,
		CampaignID: req.CampaignID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCreationResponse(output.Creation, nil))
}

func (h *Handler) getCreation(c *gin.Context) {
	output, err := h.service.GetCreation(c.Request.Context(), &charsvc.GetCreationInput{
		CreationID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCreationResponse(output.Creation, nil))
}

type adjustStatRequest struct {
	StatID string `json:"statId" binding:"required"`
	Delta  int    `json:"delta"`
}

func (h *Handler) adjustStat(c *gin.Context) {
	var req adjustStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	output, err := h.service.AdjustStat(c.Request.Context(), &charsvc.AdjustStatInput{
		CreationID: c.Param("id"),
		StatID:     req.StatID,
		Delta:      req.Delta,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCreationResponse(output.Creation, &output.Applied))
}

type setFieldRequest struct {
	FieldID string `json:"fieldId" binding:"required"`
	Value   any    `json:"value"`
}

func (h *Handler) setField(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	output, err := h.service.SetField(c.Request.Context(), &charsvc.SetFieldInput{
		CreationID: c.Param("id"),
		FieldID:    req.FieldID,
		Value:      req.Value,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCreationResponse(output.Creation, &output.Applied))
}

func (h *Handler) rollStats(c *gin.Context) {
	output, err := h.service.RollStats(c.Request.Context(), &charsvc.RollStatsInput{
		CreationID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCreationResponse(output.Creation, nil))
}

type finalizeCreationRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) finalizeCreation(c *gin.Context) {
	var req finalizeCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	output, err := h.service.FinalizeCreation(c.Request.Context(), &charsvc.FinalizeCreationInput{
		CreationID: c.Param("id"),
		Name:       req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Character)
}

func (h *Handler) getCharacter(c *gin.Context) {
	output, err := h.service.GetCharacter(c.Request.Context(), &charsvc.GetCharacterInput{
		CharacterID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// The stored document is the source of truth, extras included
	c.JSON(http.StatusOK, output.Document)
}

func (h *Handler) getSheet(c *gin.Context) {
	output, err := h.service.GetSheet(c.Request.Context(), &charsvc.GetSheetInput{
		CharacterID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Sheet)
}

func (h *Handler) listCharacters(c *gin.Context) {
	output, err := h.service.ListCharacters(c.Request.Context(), &charsvc.ListCharactersInput{
		PlayerID:   c.Query("playerId"),
		CampaignID: c.Query("campaignId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	chars := output.Characters
	if chars == nil {
		chars = []*character.Character{}
	}
	c.JSON(http.StatusOK, gin.H{"characters": chars})
}

func (h *Handler) deleteCharacter(c *gin.Context) {
	if _, err := h.service.DeleteCharacter(c.Request.Context(), &charsvc.DeleteCharacterInput{
		CharacterID: c.Param("id"),
	}); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type statUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Value int    `json:"value"`
}

type applyStatUpdatesRequest struct {
	Updates []statUpdateRequest `json:"updates" binding:"required,min=1,dive"`
}

func (h *Handler) applyStatUpdates(c *gin.Context) {
	var req applyStatUpdatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	updates := make([]charsvc.StatUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		updates = append(updates, charsvc.StatUpdate{Name: u.Name, Value: u.Value})
	}

	output, err := h.service.ApplyStatUpdates(c.Request.Context(), &charsvc.ApplyStatUpdatesInput{
		CharacterID: c.Param("id"),
		Updates:     updates,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Document)
}

func (h *Handler) shareCharacter(c *gin.Context) {
	output, err := h.service.ShareCharacter(c.Request.Context(), &charsvc.ShareCharacterInput{
		CharacterID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": output.Code})
}

type importCharacterRequest struct {
	Code     string `json:"code" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
}

func (h *Handler) importCharacter(c *gin.Context) {
	var req importCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	output, err := h.service.ImportCharacter(c.Request.Context(), &charsvc.ImportCharacterInput{
		Code:     req.Code,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Character)
}
