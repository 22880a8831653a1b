package handlers

import (
	"errors"
	"net/http"

	bookingRepo "fieldbook/database/repository/booking"
	"fieldbook/models"
	"fieldbook/services/entrypass"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EntryPassHandler issues entry tokens for live bookings and answers
// gate-scanner verification requests.
type EntryPassHandler struct {
	Tokens   *entrypass.Service
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewEntryPassHandler(tokens *entrypass.Service, bookings bookingRepo.BookingRepository, logger *zap.Logger) *EntryPassHandler {
	return &EntryPassHandler{Tokens: tokens, Bookings: bookings, Logger: logger}
}

// Issue mints a signed entry token for a booking.
// POST /api/entry-pass/:bookingId
func (h *EntryPassHandler) Issue(c *gin.Context) {
	booking, err := h.Bookings.GetByID(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("entry pass issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue entry pass"})
		return
	}
	if booking.Status != models.BookingStatusConfirmed {
		c.JSON(http.StatusConflict, gin.H{"error": "entry pass requires a confirmed booking"})
		return
	}

	token := h.Tokens.Issue(entrypass.TokenPayload{
		BookingID:   booking.ID,
		BookingCode: booking.BookingCode,
		FacilityID:  booking.FacilityID,
		UserID:      booking.UserID,
		Date:        booking.Date,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
	})
	c.JSON(http.StatusOK, token)
}

// Verify is the gate-scanner endpoint. It always answers with a
// definite accept/reject: signature and expiry failures come back as
// booleans, never as errors, and the response never says which field
// failed.
// POST /api/entry-pass/verify
func (h *EntryPassHandler) Verify(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	payload, ok := entrypass.Decode(raw)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	if !h.Tokens.Verify(payload) {
		h.Logger.Warn("entry pass signature mismatch", zap.String("bookingID", payload.BookingID))
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	if h.Tokens.IsExpired(payload) {
		c.JSON(http.StatusOK, gin.H{"valid": false, "expired": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":       true,
		"bookingCode": payload.BookingCode,
		"facilityId":  payload.FacilityID,
		"date":        payload.Date,
		"startTime":   payload.StartTime,
		"endTime":     payload.EndTime,
	})
}
