package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/services"
	"github.com/dealernet/garage-backend/internal/types"
	"github.com/dealernet/garage-backend/internal/validation"
)

type GarageHandler struct {
	log           *logger.Logger
	garageService services.GarageService
}

func NewGarageHandler(log *logger.Logger, garageService services.GarageService) *GarageHandler {
	return &GarageHandler{
		log:           log.With("handler", "GarageHandler"),
		garageService: garageService,
	}
}

func (h *GarageHandler) Create(c *gin.Context) {
	var input types.GarageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if errs := validation.ValidateGarageInput(&input); len(errs) > 0 {
		RespondValidationErrors(c, errs)
		return
	}

	view, err := h.garageService.Create(c.Request.Context(), &input)
	if err != nil {
		h.log.Error("Create garage failed", "error", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *GarageHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "garageId")
	if !ok {
		return
	}
	view, err := h.garageService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *GarageHandler) List(c *gin.Context) {
	page, size, sortField, sortDir := pagingParams(c)
	result, err := h.garageService.List(c.Request.Context(), page, size, sortField, sortDir)
	if err != nil {
		h.log.Error("List garages failed", "error", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *GarageHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "garageId")
	if !ok {
		return
	}
	var input types.GarageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if errs := validation.ValidateGarageInput(&input); len(errs) > 0 {
		RespondValidationErrors(c, errs)
		return
	}

	view, err := h.garageService.Update(c.Request.Context(), id, &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *GarageHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "garageId")
	if !ok {
		return
	}
	if err := h.garageService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GarageHandler) SearchByFuelType(c *gin.Context) {
	fuelType, err := types.ParseFuelType(c.Query("typeCarburant"))
	if err != nil {
		RespondBadRequest(c, "typeCarburant must be one of ESSENCE, DIESEL, ELECTRIC, HYBRID")
		return
	}
	views, err := h.garageService.FindByVehicleFuelType(c.Request.Context(), fuelType)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *GarageHandler) SearchByAccessory(c *gin.Context) {
	nom := c.Query("nom")
	if nom == "" {
		RespondBadRequest(c, "nom parameter is required")
		return
	}
	views, err := h.garageService.FindByAccessoryName(c.Request.Context(), nom)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *GarageHandler) SearchByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		RespondBadRequest(c, "name parameter is required")
		return
	}
	page, size, sortField, sortDir := pagingParams(c)
	result, err := h.garageService.SearchByName(c.Request.Context(), name, page, size, sortField, sortDir)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *GarageHandler) SearchByModel(c *gin.Context) {
	model := c.Query("model")
	if model == "" {
		RespondBadRequest(c, "model parameter is required")
		return
	}
	views, err := h.garageService.FindByVehicleModel(c.Request.Context(), model)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
