package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/services"
	"github.com/dealernet/garage-backend/internal/types"
	"github.com/dealernet/garage-backend/internal/validation"
)

type AccessoryHandler struct {
	log              *logger.Logger
	accessoryService services.AccessoryService
}

func NewAccessoryHandler(log *logger.Logger, accessoryService services.AccessoryService) *AccessoryHandler {
	return &AccessoryHandler{
		log:              log.With("handler", "AccessoryHandler"),
		accessoryService: accessoryService,
	}
}

func (h *AccessoryHandler) AddToVehicle(c *gin.Context) {
	vehicleID, ok := idParam(c, "vehicleId")
	if !ok {
		return
	}
	var input types.AccessoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if errs := validation.ValidateAccessoryInput(&input); len(errs) > 0 {
		RespondValidationErrors(c, errs)
		return
	}

	view, err := h.accessoryService.AddToVehicle(c.Request.Context(), vehicleID, &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *AccessoryHandler) GetByVehicle(c *gin.Context) {
	vehicleID, ok := idParam(c, "vehicleId")
	if !ok {
		return
	}
	views, err := h.accessoryService.GetByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *AccessoryHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input types.AccessoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if errs := validation.ValidateAccessoryInput(&input); len(errs) > 0 {
		RespondValidationErrors(c, errs)
		return
	}

	view, err := h.accessoryService.Update(c.Request.Context(), id, &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AccessoryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.accessoryService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
