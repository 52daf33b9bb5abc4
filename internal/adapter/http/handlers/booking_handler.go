package handlers

import (
	"net/http"

	request "limpeza_xpto/internal/adapter/http/dto/request"
	response "limpeza_xpto/internal/adapter/http/dto/response"
	"limpeza_xpto/internal/usecase"
	"limpeza_xpto/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles the booking lifecycle routes and the customer-facing
// mirror listing.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
	log     logger.Logger
}

func NewBookingHandler(uc usecase.IBookingUseCase, log logger.Logger) *BookingHandler {
	return &BookingHandler{usecase: uc, log: log}
}

// CreateBooking godoc
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateBookingRequest  true  "Booking"
// @Success      201   {object}  response.TransitionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("[booking][handler] invalid create payload", "error", err)
		writeAppError(c, errInvalidBooking)
		return
	}

	res, err := h.usecase.CreateBooking(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.log.Warn("[booking][handler] create failed", "customer_id", payload.CustomerID, "error", err)
		writeAppError(c, mapBookingError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromTransitionResult(res))
}

// GetBooking godoc
// @Summary      Get the master booking record
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.BookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetBooking(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		writeAppError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// EditBooking godoc
// @Summary      Edit schedule, size or price of a booking
// @Description  Changing hours, professionals or total amount moves the ledger of every confirmed crew.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string                      true  "Booking ID"
// @Param        body        body      request.EditBookingRequest  true  "Changes"
// @Success      200         {object}  response.TransitionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id} [patch]
func (h *BookingHandler) EditBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")
	var payload request.EditBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsEmpty() {
		writeAppError(c, errInvalidBooking)
		return
	}

	res, err := h.usecase.EditBooking(c.Request.Context(), bookingID, payload.ToChanges())
	if err != nil {
		h.log.Warn("[booking][handler] edit failed", "booking_id", bookingID, "error", err)
		writeAppError(c, mapBookingError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionResult(res))
}

// DeleteBooking godoc
// @Summary      Delete a booking, its mirror and its ledger shares
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.TransitionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")
	res, err := h.usecase.DeleteBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.log.Warn("[booking][handler] delete failed", "booking_id", bookingID, "error", err)
		writeAppError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransitionResult(res))
}

// ListCustomerBookings godoc
// @Summary      List a customer's bookings
// @Tags         customers
// @Produce      json
// @Param        customer_id  path      string  true  "Customer ID"
// @Success      200          {array}   response.CustomerBookingResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /customers/{customer_id}/bookings [get]
func (h *BookingHandler) ListCustomerBookings(c *gin.Context) {
	mirrors, err := h.usecase.ListCustomerBookings(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		writeAppError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMirrorBookings(mirrors))
}
