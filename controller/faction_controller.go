// api/controller/faction_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	lotr_errors "github.com/dev-mohitbeniwal/lotr/api/errors"
	"github.com/dev-mohitbeniwal/lotr/api/model"
	"github.com/dev-mohitbeniwal/lotr/api/service"
	"github.com/dev-mohitbeniwal/lotr/api/util"
	helper_util "github.com/dev-mohitbeniwal/lotr/api/util/helper"
)

type FactionController struct {
	factionService service.IFactionService
}

func NewFactionController(factionService service.IFactionService) *FactionController {
	return &FactionController{
		factionService: factionService,
	}
}

// RegisterRoutes registers the API routes
func (fc *FactionController) RegisterRoutes(r *gin.RouterGroup) {
	factions := r.Group("/factions")
	{
		factions.GET("", fc.ListFactions)
		factions.GET("/:id", fc.GetFaction)
		factions.POST("", fc.CreateFaction)
		factions.PUT("/:id", fc.UpdateFaction)
		factions.DELETE("/:id", fc.DeleteFaction)
	}
}

// ListFactions endpoint
func (fc *FactionController) ListFactions(c *gin.Context) {
	page, perPage, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	searchTerm := c.Query("search")

	factions, err := fc.factionService.GetAllFactions(c, util.BearerToken(c), page, perPage, searchTerm)
	if err != nil {
		respondFactionError(c, err, "Failed to list factions")
		return
	}

	c.JSON(http.StatusOK, factions)
}

// GetFaction endpoint
func (fc *FactionController) GetFaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid faction ID", err)
		return
	}

	faction, err := fc.factionService.GetFactionByID(c, util.BearerToken(c), id)
	if err != nil {
		respondFactionError(c, err, "Failed to retrieve faction")
		return
	}

	c.JSON(http.StatusOK, faction)
}

// CreateFaction endpoint
func (fc *FactionController) CreateFaction(c *gin.Context) {
	var faction model.Faction
	if err := c.ShouldBindJSON(&faction); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid faction data", lotr_errors.ErrInvalidFactionData)
		return
	}

	created, err := fc.factionService.CreateFaction(c, util.BearerToken(c), faction)
	if err != nil {
		respondFactionError(c, err, "Failed to create faction")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateFaction endpoint
func (fc *FactionController) UpdateFaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid faction ID", err)
		return
	}
	var faction model.Faction
	if err := c.ShouldBindJSON(&faction); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid faction data", lotr_errors.ErrInvalidFactionData)
		return
	}

	updated, err := fc.factionService.UpdateFaction(c, util.BearerToken(c), id, faction)
	if err != nil {
		respondFactionError(c, err, "Failed to update faction")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteFaction endpoint
func (fc *FactionController) DeleteFaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid faction ID", err)
		return
	}

	if err := fc.factionService.DeleteFaction(c, util.BearerToken(c), id); err != nil {
		respondFactionError(c, err, "Failed to delete faction")
		return
	}

	c.Status(http.StatusNoContent)
}

func respondFactionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, lotr_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, lotr_errors.ErrFactionNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Faction not found", err)
	case errors.Is(err, lotr_errors.ErrInvalidFactionData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid faction data", err)
	case errors.Is(err, lotr_errors.ErrDatabaseOperation):
		util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, lotr_errors.ErrInternalServer)
	}
}
