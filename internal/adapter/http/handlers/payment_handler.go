package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "limpeza_xpto/internal/adapter/http/dto/request"
	response "limpeza_xpto/internal/adapter/http/dto/response"
	"limpeza_xpto/internal/usecase"
	"limpeza_xpto/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for booking payments.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     logger.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log logger.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, log: log}
}

// RecordPayment godoc
// @Summary      Charge a payment against the booking's due balance
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string                        true  "Booking ID"
// @Param        body        body      request.PaymentCreateRequest  true  "Payment"
// @Success      200         {object}  response.PaymentResultResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	bookingID := c.Param("booking_id")
	h.log.Info("[payment][handler] create start", "booking_id", bookingID)
	payload, err := readPaymentRequest(c)
	if err != nil {
		h.log.Warn("[payment][handler] invalid payload", "booking_id", bookingID, "error", err)
		writeAppError(c, errInvalidRequest)
		return
	}

	res, err := h.usecase.RecordPayment(c.Request.Context(), bookingID, payload.Amount, payload.MPPayload)
	if err != nil {
		h.log.Warn("[payment][handler] create failed", "booking_id", bookingID, "error", err)
		writeAppError(c, mapPaymentError(err))
		return
	}
	h.log.Info("[payment][handler] create success", "booking_id", bookingID, "payment_id", res.Payment.ID, "status", res.Payment.Status)

	c.JSON(http.StatusOK, response.FromPaymentResult(res))
}

// ListPayments godoc
// @Summary      List the payments of a booking
// @Tags         payments
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {array}   response.PaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		writeAppError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// readPaymentRequest accepts either {"amount":..,"mp_payload":{..}} or a bare
// Mercado Pago payload carrying "amount" at the top level.
func readPaymentRequest(c *gin.Context) (request.PaymentCreateRequest, error) {
	var out request.PaymentCreateRequest
	raw, err := c.GetRawData()
	if err != nil {
		return out, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return out, errors.New("request body is empty")
	}
	if !json.Valid(raw) {
		return out, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return out, errors.New("request body must be a json object")
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	if wrapped, ok := envelope["mp_payload"]; ok {
		trimmed := strings.TrimSpace(string(wrapped))
		if trimmed == "" || trimmed == "null" {
			return out, errors.New("mp_payload cannot be empty")
		}
		out.MPPayload = wrapped
		return out, nil
	}

	delete(envelope, "amount")
	bare, err := json.Marshal(envelope)
	if err != nil {
		return out, err
	}
	out.MPPayload = bare
	return out, nil
}
