package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	bookingUseCase "github.com/rsvtravel/booking-engine/internal/domain/usecase/booking"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/api/dto"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService *bookingUseCase.Service
	logger         coreport.Logger
}

// NewBookingHandler creates a new booking handler instance
func NewBookingHandler(bookingService *bookingUseCase.Service, logger coreport.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// CreateBooking handles the POST /bookings endpoint
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid booking request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.bookingService.CreateBooking(c.Request.Context(), bookingUseCase.CreateBookingRequest{
		PropertyID:      req.PropertyID,
		CustomerID:      req.CustomerID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		GuestsCount:     req.GuestsCount,
		SpecialRequests: req.SpecialRequests,
		Metadata:        req.Metadata,
	})
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    result.ErrorCode,
			Message: result.ErrorMessage,
		})
		return
	}

	c.JSON(result.StatusCode, dto.NewReservationResponse(result.Reservation))
}

// UpdateBooking handles the PATCH /bookings/:id endpoint
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	reservationID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.bookingService.UpdateBooking(c.Request.Context(), bookingUseCase.UpdateBookingRequest{
		ReservationID:   reservationID,
		ExpectedVersion: req.ExpectedVersion,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		GuestsCount:     req.GuestsCount,
		SpecialRequests: req.SpecialRequests,
		Metadata:        req.Metadata,
	})
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:           result.ErrorCode,
			Message:        result.ErrorMessage,
			CurrentVersion: result.CurrentVersion,
		})
		return
	}

	c.JSON(result.StatusCode, dto.NewReservationResponse(result.Reservation))
}

// ConfirmBooking handles the POST /bookings/:id/confirm endpoint
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	reservationID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.bookingService.ConfirmBooking(c.Request.Context(), reservationID, req.ExpectedVersion)
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:           result.ErrorCode,
			Message:        result.ErrorMessage,
			CurrentVersion: result.CurrentVersion,
		})
		return
	}

	c.JSON(result.StatusCode, dto.NewReservationResponse(result.Reservation))
}

// CancelBooking handles the POST /bookings/:id/cancel endpoint
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	reservationID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.bookingService.CancelBooking(c.Request.Context(), reservationID, req.ExpectedVersion, req.Reason)
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:           result.ErrorCode,
			Message:        result.ErrorMessage,
			CurrentVersion: result.CurrentVersion,
		})
		return
	}

	c.JSON(result.StatusCode, dto.NewReservationResponse(result.Reservation))
}

// GetBooking handles the GET /bookings/:id endpoint
func (h *BookingHandler) GetBooking(c *gin.Context) {
	reservationID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.bookingService.GetBooking(c.Request.Context(), reservationID)
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    result.ErrorCode,
			Message: result.ErrorMessage,
		})
		return
	}

	c.JSON(result.StatusCode, dto.NewReservationResponse(result.Reservation))
}

// CheckAvailability handles the GET /availability endpoint
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Query("propertyId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidPropertyID),
			Message: "Invalid or missing propertyId parameter",
		})
		return
	}

	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")

	result, err := h.bookingService.CheckAvailability(c.Request.Context(), propertyID, checkIn, checkOut)
	if err != nil {
		c.JSON(bookingUseCase.StatusCodeFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		PropertyID:       propertyID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Available:        result.Available,
		ConflictingCount: result.ConflictingCount,
	})
}

// GetMetrics handles the GET /metrics/bookings endpoint
func (h *BookingHandler) GetMetrics(c *gin.Context) {
	snapshot := h.bookingService.MetricsSnapshot()
	c.JSON(http.StatusOK, dto.BookingMetricsResponse{
		Attempts:              snapshot.Attempts,
		Successes:             snapshot.Successes,
		Failures:              snapshot.Failures,
		VersionConflicts:      snapshot.VersionConflicts,
		AvailabilityConflicts: snapshot.AvailabilityConflicts,
		SuccessRate:           snapshot.SuccessRate(),
		AverageDurationMs:     snapshot.AverageDuration().Milliseconds(),
	})
}

// ResetMetrics handles the POST /metrics/bookings/reset endpoint
func (h *BookingHandler) ResetMetrics(c *gin.Context) {
	h.bookingService.ResetMetrics()
	c.Status(http.StatusNoContent)
}

// pathID parses a numeric path parameter, writing a 400 on failure
func (h *BookingHandler) pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid " + name + " path parameter",
		})
		return 0, false
	}
	return id, true
}
