package handlers

import (
	"context"
	"errors"
	"net/http"

	bookingRepo "fieldbook/database/repository/booking"
	"fieldbook/models"
	"fieldbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the scheduling engine over HTTP.
type BookingHandler struct {
	Engine   scheduling.SchedulingService
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewBookingHandler(engine scheduling.SchedulingService, bookings bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Bookings: bookings, Logger: logger}
}

// CheckAvailability answers whether a requested range can be booked.
// GET /api/bookings/availability?facilityId=&date=&startTime=&endTime=
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	facilityID := c.Query("facilityId")
	date := c.Query("date")
	startTime := c.Query("startTime")
	endTime := c.Query("endTime")
	if facilityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facilityId is required"})
		return
	}

	available, err := h.Engine.CheckAvailability(c.Request.Context(), facilityID, date, startTime, endTime)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("availability check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// CreateBooking reserves a pending booking for the requested range.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Engine.Reserve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, scheduling.ErrFacilityUnavailable):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found or inactive"})
		case errors.Is(err, scheduling.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "slot unavailable"})
		default:
			h.Logger.Error("booking reservation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ConfirmBooking moves a pending booking to confirmed.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.changeStatus(c, h.Engine.ConfirmBooking)
}

// CancelBooking cancels a live booking and frees its range.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.changeStatus(c, h.Engine.CancelBooking)
}

func (h *BookingHandler) changeStatus(c *gin.Context, fn func(ctx context.Context, bookingID string) (*models.Booking, error)) {
	bookingID := c.Param("id")
	booking, err := fn(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookings returns bookings filtered by the recognized query
// parameters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	q := bookingRepo.Query{
		FacilityID: c.Query("facilityId"),
		UserID:     c.Query("userId"),
		Date:       c.Query("date"),
		FromDate:   c.Query("from"),
		ToDate:     c.Query("to"),
	}
	if status := c.Query("status"); status != "" {
		q.Statuses = []string{status}
	}

	bookings, err := h.Bookings.List(c.Request.Context(), q)
	if err != nil {
		h.Logger.Error("booking list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
