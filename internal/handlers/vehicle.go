package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/services"
	"github.com/dealernet/garage-backend/internal/types"
	"github.com/dealernet/garage-backend/internal/validation"
)

type VehicleHandler struct {
	log            *logger.Logger
	vehicleService services.VehicleService
}

func NewVehicleHandler(log *logger.Logger, vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		log:            log.With("handler", "VehicleHandler"),
		vehicleService: vehicleService,
	}
}

func (h *VehicleHandler) AddToGarage(c *gin.Context) {
	garageID, ok := idParam(c, "garageId")
	if !ok {
		return
	}
	var input types.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if errs := validation.ValidateVehicleInput(&input); len(errs) > 0 {
		RespondValidationErrors(c, errs)
		return
	}

	view, err := h.vehicleService.AddToGarage(c.Request.Context(), garageID, &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *VehicleHandler) GetByGarage(c *gin.Context) {
	garageID, ok := idParam(c, "garageId")
	if !ok {
		return
	}
	views, err := h.vehicleService.GetByGarage(c.Request.Context(), garageID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *VehicleHandler) GetByModel(c *gin.Context) {
	views, err := h.vehicleService.GetByModel(c.Request.Context(), c.Param("model"))
	if err != nil {
		h.log.Error("Get vehicles by model failed", "error", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "vehicleId")
	if !ok {
		return
	}
	var input types.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if errs := validation.ValidateVehicleInput(&input); len(errs) > 0 {
		RespondValidationErrors(c, errs)
		return
	}

	view, err := h.vehicleService.Update(c.Request.Context(), id, &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "vehicleId")
	if !ok {
		return
	}
	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) Transfer(c *gin.Context) {
	id, ok := idParam(c, "vehicleId")
	if !ok {
		return
	}
	garageID, ok := idParam(c, "garageId")
	if !ok {
		return
	}
	view, err := h.vehicleService.Transfer(c.Request.Context(), id, garageID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
