// api/controller/character_controller.go
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

type CharacterController struct {
	characterService service.ICharacterService
}

func NewCharacterController(characterService service.ICharacterService) *CharacterController {
	return &CharacterController{
		characterService: characterService,
	}
}

// RegisterRoutes registers the API routes
func (cc *CharacterController) RegisterRoutes(r *gin.RouterGroup) {
	characters := r.Group("/characters")
	{
		characters.GET("", cc.ListCharacters)
		characters.GET("/:id", cc.GetCharacter)
		characters.POST("", cc.CreateCharacter)
		characters.PUT("/:id", cc.UpdateCharacter)
		characters.DELETE("/:id", cc.DeleteCharacter)
	}
}

// ListCharacters endpoint
func (cc *CharacterController) ListCharacters(c *gin.Context) {
	page, perPage, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	searchTerm := c.Query("search")

	characters, err := cc.characterService.GetAllCharacters(c, util.BearerToken(c), page, perPage, searchTerm)
	if err != nil {
		respondCharacterError(c, err, "Failed to list characters")
		return
	}

	c.JSON(http.StatusOK, characters)
}

// GetCharacter endpoint
func (cc *CharacterController) GetCharacter(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid character ID", err)
		return
	}

	character, err := cc.characterService.GetCharacterByID(c, util.BearerToken(c), id)
	if err != nil {
		respondCharacterError(c, err, "Failed to retrieve character")
		return
	}

	c.JSON(http.StatusOK, character)
}

// CreateCharacter endpoint
func (cc *CharacterController) CreateCharacter(c *gin.Context) {
	var character model.Character
	if err := c.ShouldBindJSON(&character); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid character data", lotr_errors.ErrInvalidCharacterData)
		return
	}

	created, err := cc.characterService.CreateCharacter(c, util.BearerToken(c), character)
	if err != nil {
		respondCharacterError(c, err, "Failed to create character")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateCharacter endpoint
func (cc *CharacterController) UpdateCharacter(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid character ID", err)
		return
	}
	var character model.Character
	if err := c.ShouldBindJSON(&character); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid character data", lotr_errors.ErrInvalidCharacterData)
		return
	}

	updated, err := cc.characterService.UpdateCharacter(c, util.BearerToken(c), id, character)
	if err != nil {
		respondCharacterError(c, err, "Failed to update character")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCharacter endpoint
func (cc *CharacterController) DeleteCharacter(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid character ID", err)
		return
	}

	if err := cc.characterService.DeleteCharacter(c, util.BearerToken(c), id); err != nil {
		respondCharacterError(c, err, "Failed to delete character")
		return
	}

	c.Status(http.StatusNoContent)
}

func respondCharacterError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, lotr_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, lotr_errors.ErrCharacterNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Character not found", err)
	case errors.Is(err, lotr_errors.ErrInvalidCharacterData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid character data", err)
	case errors.Is(err, lotr_errors.ErrDatabaseOperation):
		util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, lotr_errors.ErrInternalServer)
	}
}
