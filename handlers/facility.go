package handlers

import (
	"errors"
	"net/http"

	facilityRepo "fieldbook/database/repository/facility"
	"fieldbook/models"
	facilitySvc "fieldbook/services/facility"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FacilityHandler exposes the facility catalog.
type FacilityHandler struct {
	Service facilitySvc.FacilityService
	Logger  *zap.Logger
}

func NewFacilityHandler(service facilitySvc.FacilityService, logger *zap.Logger) *FacilityHandler {
	return &FacilityHandler{Service: service, Logger: logger}
}

func (h *FacilityHandler) Register(c *gin.Context) {
	var facility models.Facility
	if err := c.ShouldBindJSON(&facility); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), &facility)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *FacilityHandler) GetByID(c *gin.Context) {
	facility, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, facilityRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
			return
		}
		h.Logger.Error("facility fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch facility"})
		return
	}
	c.JSON(http.StatusOK, facility)
}

func (h *FacilityHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	facilities, err := h.Service.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.Logger.Error("facility list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list facilities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"facilities": facilities})
}

func (h *FacilityHandler) Update(c *gin.Context) {
	var facility models.Facility
	if err := c.ShouldBindJSON(&facility); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	facility.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), &facility)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FacilityHandler) Deactivate(c *gin.Context) {
	if err := h.Service.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, facilityRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
			return
		}
		h.Logger.Error("facility deactivate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate facility"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
