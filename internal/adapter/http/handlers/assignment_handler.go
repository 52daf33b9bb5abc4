package handlers

import (
	"context"
	"net/http"

	request "limpeza_xpto/internal/adapter/http/dto/request"
	response "limpeza_xpto/internal/adapter/http/dto/response"
	"limpeza_xpto/internal/usecase"
	"limpeza_xpto/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler exposes the crew assignment transitions. Every route
// answers with the saved master booking plus any propagation warnings.
type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
	log     logger.Logger
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase, log logger.Logger) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc, log: log}
}

// AssignCrew godoc
// @Summary      Assign a crew to a booking
// @Tags         assignment
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string                     true  "Booking ID"
// @Param        body        body      request.AssignCrewRequest  true  "Crew"
// @Success      200         {object}  response.TransitionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/crews [post]
func (h *AssignmentHandler) AssignCrew(c *gin.Context) {
	var payload request.AssignCrewRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveCrewID() == "" {
		writeAppError(c, errInvalidRequest)
		return
	}
	crewID := payload.ResolveCrewID()
	h.respond(c, "assign", func(ctx context.Context, bookingID string) (usecase.TransitionResult, error) {
		return h.usecase.AssignCrew(ctx, bookingID, crewID)
	})
}

// UnassignCrew godoc
// @Summary      Remove a crew from a booking
// @Tags         assignment
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Param        crew_id     path      string  true  "Crew ID"
// @Success      200         {object}  response.TransitionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/crews/{crew_id} [delete]
func (h *AssignmentHandler) UnassignCrew(c *gin.Context) {
	crewID := c.Param("crew_id")
	h.respond(c, "unassign", func(ctx context.Context, bookingID string) (usecase.TransitionResult, error) {
		return h.usecase.UnassignCrew(ctx, bookingID, crewID)
	})
}

// ConfirmCrew godoc
// @Summary      Confirm an assigned crew
// @Tags         assignment
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Param        crew_id     path      string  true  "Crew ID"
// @Success      200         {object}  response.TransitionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/crews/{crew_id}/confirm [post]
func (h *AssignmentHandler) ConfirmCrew(c *gin.Context) {
	crewID := c.Param("crew_id")
	h.respond(c, "confirm", func(ctx context.Context, bookingID string) (usecase.TransitionResult, error) {
		return h.usecase.ConfirmCrew(ctx, bookingID, crewID)
	})
}

// UnconfirmCrew godoc
// @Summary      Revert a crew confirmation
// @Tags         assignment
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Param        crew_id     path      string  true  "Crew ID"
// @Success      200         {object}  response.TransitionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/crews/{crew_id}/confirm [delete]
func (h *AssignmentHandler) UnconfirmCrew(c *gin.Context) {
	crewID := c.Param("crew_id")
	h.respond(c, "unconfirm", func(ctx context.Context, bookingID string) (usecase.TransitionResult, error) {
		return h.usecase.UnconfirmCrew(ctx, bookingID, crewID)
	})
}

// MoveCrew godoc
// @Summary      Replace one assigned crew with another
// @Tags         assignment
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string                   true  "Booking ID"
// @Param        body        body      request.MoveCrewRequest  true  "Crews"
// @Success      200         {object}  response.TransitionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/crews/move [post]
func (h *AssignmentHandler) MoveCrew(c *gin.Context) {
	var payload request.MoveCrewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}
	from, to := payload.Resolve()
	h.respond(c, "move", func(ctx context.Context, bookingID string) (usecase.TransitionResult, error) {
		return h.usecase.MoveCrew(ctx, bookingID, from, to)
	})
}

// ConfirmAll godoc
// @Summary      Confirm every assigned crew
// @Tags         assignment
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.TransitionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/confirm [post]
func (h *AssignmentHandler) ConfirmAll(c *gin.Context) {
	h.respond(c, "confirm-all", h.usecase.ConfirmAll)
}

// MoveToUnassigned godoc
// @Summary      Clear every crew from a booking
// @Tags         assignment
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.TransitionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/unassign [post]
func (h *AssignmentHandler) MoveToUnassigned(c *gin.Context) {
	h.respond(c, "unassign-all", h.usecase.MoveToUnassigned)
}

// DropBooking godoc
// @Summary      Drop (cancel) a booking
// @Tags         assignment
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.TransitionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id}/drop [post]
func (h *AssignmentHandler) DropBooking(c *gin.Context) {
	h.respond(c, "drop", h.usecase.DropBooking)
}

func (h *AssignmentHandler) respond(
	c *gin.Context,
	action string,
	transition func(ctx context.Context, bookingID string) (usecase.TransitionResult, error),
) {
	bookingID := c.Param("booking_id")
	res, err := transition(c.Request.Context(), bookingID)
	if err != nil {
		h.log.Warn("[assignment][handler] transition failed", "action", action, "booking_id", bookingID, "error", err)
		writeAppError(c, mapBookingError(err))
		return
	}
	if len(res.Warnings) > 0 {
		h.log.Warn("[assignment][handler] transition saved with warnings", "action", action, "booking_id", bookingID, "warnings", res.Warnings)
	}
	c.JSON(http.StatusOK, response.FromTransitionResult(res))
}
