// api/controller/equipment_controller.go
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

type EquipmentController struct {
	equipmentService service.IEquipmentService
}

func NewEquipmentController(equipmentService service.IEquipmentService) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
	}
}

// RegisterRoutes registers the API routes
func (ec *EquipmentController) RegisterRoutes(r *gin.RouterGroup) {
	equipments := r.Group("/equipments")
	{
		equipments.GET("", ec.ListEquipment)
		equipments.GET("/:id", ec.GetEquipment)
		equipments.POST("", ec.CreateEquipment)
		equipments.PUT("/:id", ec.UpdateEquipment)
		equipments.DELETE("/:id", ec.DeleteEquipment)
	}
}

// ListEquipment endpoint
func (ec *EquipmentController) ListEquipment(c *gin.Context) {
	page, perPage, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	searchTerm := c.Query("search")

	equipment, err := ec.equipmentService.GetAllEquipment(c, util.BearerToken(c), page, perPage, searchTerm)
	if err != nil {
		respondEquipmentError(c, err, "Failed to list equipment")
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// GetEquipment endpoint
func (ec *EquipmentController) GetEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid equipment ID", err)
		return
	}

	equipment, err := ec.equipmentService.GetEquipmentByID(c, util.BearerToken(c), id)
	if err != nil {
		respondEquipmentError(c, err, "Failed to retrieve equipment")
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// CreateEquipment endpoint
func (ec *EquipmentController) CreateEquipment(c *gin.Context) {
	var equipment model.Equipment
	if err := c.ShouldBindJSON(&equipment); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid equipment data", lotr_errors.ErrInvalidEquipmentData)
		return
	}

	created, err := ec.equipmentService.CreateEquipment(c, util.BearerToken(c), equipment)
	if err != nil {
		respondEquipmentError(c, err, "Failed to create equipment")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateEquipment endpoint
func (ec *EquipmentController) UpdateEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid equipment ID", err)
		return
	}
	var equipment model.Equipment
	if err := c.ShouldBindJSON(&equipment); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid equipment data", lotr_errors.ErrInvalidEquipmentData)
		return
	}

	updated, err := ec.equipmentService.UpdateEquipment(c, util.BearerToken(c), id, equipment)
	if err != nil {
		respondEquipmentError(c, err, "Failed to update equipment")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteEquipment endpoint
func (ec *EquipmentController) DeleteEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid equipment ID", err)
		return
	}

	if err := ec.equipmentService.DeleteEquipment(c, util.BearerToken(c), id); err != nil {
		respondEquipmentError(c, err, "Failed to delete equipment")
		return
	}

	c.Status(http.StatusNoContent)
}

func respondEquipmentError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, lotr_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, lotr_errors.ErrEquipmentNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Equipment not found", err)
	case errors.Is(err, lotr_errors.ErrInvalidEquipmentData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid equipment data", err)
	case errors.Is(err, lotr_errors.ErrDatabaseOperation):
		util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, lotr_errors.ErrInternalServer)
	}
}
