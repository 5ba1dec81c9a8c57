package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smarthome/models"
	booking "smarthome/services/booking"
	"smarthome/utils"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// respondError maps the booking service error taxonomy onto the JSON
// envelope: validation to 400, not-found to 404, everything else to 500.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var vErr booking.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusBadRequest, vErr.Error(), nil)
		return
	}
	var nfErr booking.NotFoundError
	if errors.As(err, &nfErr) {
		utils.JSONError(c, http.StatusNotFound, nfErr.Error(), nil)
		return
	}
	h.Logger.Error("Booking operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal server error", err.Error())
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.BookingSvc.CreateBooking(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"bookingId":   created.ID,
		"bookingCode": created.BookingCode,
		"data":        created,
	})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")

	bk, err := h.BookingSvc.GetBookingByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": bk})
}

// GetUserBookingsHandler handles GET /api/bookings/user/:userId.
func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	userID := c.Param("userId")

	bookings, err := h.BookingSvc.GetUserBookings(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(bookings),
		"data":    bookings,
	})
}

// UpdateStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.BookingSvc.UpdateStatus(id, body.Status); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking status updated"})
}

// UpdatePaymentHandler handles PATCH /api/bookings/:id/payment.
func (h *BookingHandler) UpdatePaymentHandler(c *gin.Context) {
	id := c.Param("id")

	var input models.PaymentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.BookingSvc.UpdatePayment(id, input); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment status updated"})
}

// CompletePaymentHandler handles POST /api/bookings/:id/complete-payment.
// Both body fields are optional; the body itself may be absent, which binds
// as io.EOF. ContentLength is not consulted so chunked requests bind too.
func (h *BookingHandler) CompletePaymentHandler(c *gin.Context) {
	id := c.Param("id")

	var input models.CompletePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.BookingSvc.CompletePayment(id, input); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment completed"})
}

// CancelBookingHandler handles DELETE /api/bookings/:id. Cancellation is a
// status transition, not removal.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.BookingSvc.CancelBooking(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled"})
}
