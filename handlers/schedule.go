package handlers

import (
	"errors"
	"net/http"

	scheduleRepo "fieldbook/database/repository/schedule"
	"fieldbook/models"
	"fieldbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes per-day schedule management for operators.
type ScheduleHandler struct {
	Engine    scheduling.SchedulingService
	Schedules scheduleRepo.ScheduleRepository
	Logger    *zap.Logger
}

func NewScheduleHandler(engine scheduling.SchedulingService, schedules scheduleRepo.ScheduleRepository, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Engine: engine, Schedules: schedules, Logger: logger}
}

// GetDayAvailability returns the computed slot grid for a facility/day.
// GET /api/facilities/:id/availability?date=
func (h *ScheduleHandler) GetDayAvailability(c *gin.Context) {
	facilityID := c.Param("id")
	date := c.Query("date")

	slots, err := h.Engine.DayAvailability(c.Request.Context(), facilityID, date)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, scheduling.ErrFacilityUnavailable):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		default:
			h.Logger.Error("day availability failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// GetSchedule returns the stored schedule for a facility/day, if any.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	facilityID := c.Param("id")
	date := c.Query("date")

	sched, err := h.Schedules.GetByFacilityDate(c.Request.Context(), facilityID, date)
	if err != nil {
		h.Logger.Error("schedule fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedule"})
		return
	}
	if sched == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule for this facility and date"})
		return
	}
	c.JSON(http.StatusOK, sched)
}

// ListSchedules returns the stored schedules for a facility, optionally
// bounded to a date range.
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	facilityID := c.Param("id")
	schedules, err := h.Schedules.ListByFacility(c.Request.Context(), facilityID, c.Query("from"), c.Query("to"))
	if err != nil {
		h.Logger.Error("schedule list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list schedules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// CreateSchedule defines non-default hours for a facility/day.
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	facilityID := c.Param("id")
	var input struct {
		Date         string                `json:"date" binding:"required"`
		Slots        []models.ScheduleSlot `json:"slots"`
		IsHoliday    bool                  `json:"isHoliday"`
		SpecialHours *models.HoursWindow   `json:"specialHours"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sched := &models.Schedule{
		FacilityID:   facilityID,
		Date:         input.Date,
		Slots:        input.Slots,
		IsHoliday:    input.IsHoliday,
		SpecialHours: input.SpecialHours,
	}
	if err := h.Engine.DefineSchedule(c.Request.Context(), sched); err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, scheduleRepo.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "schedule already exists for this facility and date"})
		default:
			h.Logger.Error("schedule create failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule"})
		}
		return
	}
	c.JSON(http.StatusCreated, sched)
}

// UpdateSlots replaces the override slots for a facility/day and
// reconciles them against live bookings.
func (h *ScheduleHandler) UpdateSlots(c *gin.Context) {
	facilityID := c.Param("id")
	date := c.Query("date")
	var input struct {
		Slots []models.ScheduleSlot `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Engine.UpdateScheduleSlots(c.Request.Context(), facilityID, date, input.Slots); err != nil {
		h.scheduleError(c, err, "failed to update slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetHoliday flags or unflags a facility/day as closed.
func (h *ScheduleHandler) SetHoliday(c *gin.Context) {
	facilityID := c.Param("id")
	date := c.Query("date")
	var input struct {
		IsHoliday bool `json:"isHoliday"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Engine.SetHoliday(c.Request.Context(), facilityID, date, input.IsHoliday); err != nil {
		h.scheduleError(c, err, "failed to set holiday")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetSpecialHours overrides the open/close window for a facility/day.
func (h *ScheduleHandler) SetSpecialHours(c *gin.Context) {
	facilityID := c.Param("id")
	date := c.Query("date")
	var input struct {
		SpecialHours *models.HoursWindow `json:"specialHours"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Engine.SetSpecialHours(c.Request.Context(), facilityID, date, input.SpecialHours); err != nil {
		h.scheduleError(c, err, "failed to set special hours")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *ScheduleHandler) scheduleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, scheduling.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, scheduleRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule for this facility and date"})
	default:
		h.Logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
