package handlers

import (
	"net/http"

	response "limpeza_xpto/internal/adapter/http/dto/response"
	"limpeza_xpto/internal/usecase"
	"limpeza_xpto/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the master/mirror consistency operations.
// customer_id is optional on every route; the master's customer is used when absent.
type SyncHandler struct {
	usecase usecase.IConsistencyUseCase
	log     logger.Logger
}

func NewSyncHandler(uc usecase.IConsistencyUseCase, log logger.Logger) *SyncHandler {
	return &SyncHandler{usecase: uc, log: log}
}

// GetSyncStatus godoc
// @Summary      Sync status of a booking and its mirror
// @Tags         sync
// @Produce      json
// @Param        booking_id   path      string  true   "Booking ID"
// @Param        customer_id  query     string  false  "Customer ID"
// @Success      200          {object}  response.SyncReportResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/sync [get]
func (h *SyncHandler) GetSyncStatus(c *gin.Context) {
	report, err := h.usecase.GetSyncStatus(c.Request.Context(), c.Param("booking_id"), c.Query("customer_id"))
	if err != nil {
		writeAppError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSyncReport(report))
}

// Validate godoc
// @Summary      Compare a booking with its mirror
// @Tags         sync
// @Produce      json
// @Param        booking_id   path      string  true   "Booking ID"
// @Param        customer_id  query     string  false  "Customer ID"
// @Success      200          {object}  response.ValidationResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/sync/validate [post]
func (h *SyncHandler) Validate(c *gin.Context) {
	res, err := h.usecase.Validate(c.Request.Context(), c.Param("booking_id"), c.Query("customer_id"))
	if err != nil {
		writeAppError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromValidationResult(res))
}

// Repair godoc
// @Summary      Rewrite the mirror from the master booking
// @Tags         sync
// @Produce      json
// @Param        booking_id   path      string  true   "Booking ID"
// @Param        customer_id  query     string  false  "Customer ID"
// @Success      200          {object}  response.RepairResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/sync/repair [post]
func (h *SyncHandler) Repair(c *gin.Context) {
	bookingID := c.Param("booking_id")
	mirror, err := h.usecase.Repair(c.Request.Context(), bookingID, c.Query("customer_id"))
	if err != nil {
		h.log.Error("[sync][handler] repair failed", "booking_id", bookingID, "error", err)
		writeAppError(c, mapBookingError(err))
		return
	}
	h.log.Info("[sync][handler] mirror repaired", "booking_id", bookingID, "customer_id", mirror.CustomerID)
	c.JSON(http.StatusOK, response.FromRepairedMirror(mirror))
}
