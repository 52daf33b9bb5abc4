package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"limpeza_xpto/internal/adapter/http/handlers/mocks"
	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase"
	"limpeza_xpto/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAssignmentRouter(t *testing.T) (*gin.Engine, *mocks.MockIAssignmentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAssignmentUseCase(ctrl)
	h := NewAssignmentHandler(uc, logger.NewNop())

	r := gin.New()
	bookings := r.Group("/v1/bookings/:booking_id")
	bookings.POST("/crews", h.AssignCrew)
	bookings.POST("/crews/move", h.MoveCrew)
	bookings.DELETE("/crews/:crew_id", h.UnassignCrew)
	bookings.POST("/crews/:crew_id/confirm", h.ConfirmCrew)
	bookings.DELETE("/crews/:crew_id/confirm", h.UnconfirmCrew)
	bookings.POST("/confirm", h.ConfirmAll)
	bookings.POST("/unassign", h.MoveToUnassigned)
	bookings.POST("/drop", h.DropBooking)
	return r, uc
}

func assigned(status entities.AssignmentStatus, crews ...string) usecase.TransitionResult {
	return usecase.TransitionResult{Booking: entities.Booking{
		ID:                    "bk-1",
		Professionals:         2,
		AssignedCrews:         crews,
		ProfessionalsAssigned: len(crews),
		AssignedStatus:        status,
	}}
}

func TestAssignmentHandler_AssignCrew(t *testing.T) {
	t.Run("missing crew id", func(t *testing.T) {
		r, _ := newAssignmentRouter(t)
		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/crews", `{"crew_id":"   "}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("crew not found", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().AssignCrew(gomock.Any(), "bk-1", "crew-x").Return(usecase.TransitionResult{}, usecase.ErrCrewNotFound)

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/crews", `{"crew_id":"crew-x"}`)
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("already full", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().AssignCrew(gomock.Any(), "bk-1", "crew-c").
			Return(usecase.TransitionResult{}, fmt.Errorf("%w: booking already has 2 crews", usecase.ErrPreconditionViolation))

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/crews", `{"crew_id":"crew-c"}`)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().AssignCrew(gomock.Any(), "bk-1", "crew-a").
			Return(assigned(entities.AssignmentStatusPartiallyAssigned, "crew-a"), nil)

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/crews", `{"crew_id":" crew-a "}`)
		expectStatus(t, w, http.StatusOK)
		booking := decodeBody(t, w)["booking"].(map[string]any)
		if booking["assigned_status"] != "partially_assigned" || booking["professionals_assigned"] != float64(1) {
			t.Fatalf("unexpected booking: %v", booking)
		}
	})
}

func TestAssignmentHandler_CrewRoutes(t *testing.T) {
	t.Run("unassign", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().UnassignCrew(gomock.Any(), "bk-1", "crew-a").Return(assigned(entities.AssignmentStatusUnassigned), nil)

		w := serve(r, http.MethodDelete, "/v1/bookings/bk-1/crews/crew-a", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("confirm", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().ConfirmCrew(gomock.Any(), "bk-1", "crew-a").Return(assigned(entities.AssignmentStatusAssigned, "crew-a", "crew-b"), nil)

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/crews/crew-a/confirm", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("unconfirm not confirmed", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().UnconfirmCrew(gomock.Any(), "bk-1", "crew-a").
			Return(usecase.TransitionResult{}, fmt.Errorf("%w: crew crew-a is not confirmed", usecase.ErrPreconditionViolation))

		w := serve(r, http.MethodDelete, "/v1/bookings/bk-1/crews/crew-a/confirm", "")
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("move", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().MoveCrew(gomock.Any(), "bk-1", "crew-a", "crew-c").Return(assigned(entities.AssignmentStatusAssigned, "crew-c", "crew-b"), nil)

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/crews/move", `{"from_crew_id":"crew-a","to_crew_id":"crew-c"}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("move missing target", func(t *testing.T) {
		r, _ := newAssignmentRouter(t)
		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/crews/move", `{"from_crew_id":"crew-a"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})
}

func TestAssignmentHandler_BookingRoutes(t *testing.T) {
	t.Run("confirm all", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().ConfirmAll(gomock.Any(), "bk-1").Return(assigned(entities.AssignmentStatusConfirm, "crew-a", "crew-b"), nil)

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/confirm", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("move to unassigned with warning", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		res := assigned(entities.AssignmentStatusUnassigned)
		res.Warnings = []string{"partial sync failure: ledger"}
		uc.EXPECT().MoveToUnassigned(gomock.Any(), "bk-1").Return(res, nil)

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/unassign", "")
		expectStatus(t, w, http.StatusOK)
		if warnings := decodeBody(t, w)["warnings"].([]any); len(warnings) != 1 {
			t.Fatalf("expected warning, got %v", warnings)
		}
	})

	t.Run("drop missing booking", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().DropBooking(gomock.Any(), "bk-404").Return(usecase.TransitionResult{}, usecase.ErrMasterNotFound)

		w := serve(r, http.MethodPost, "/v1/bookings/bk-404/drop", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("drop is terminal", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)
		uc.EXPECT().DropBooking(gomock.Any(), "bk-1").
			Return(usecase.TransitionResult{}, fmt.Errorf("%w: booking is dropped", usecase.ErrPreconditionViolation))

		w := serve(r, http.MethodPost, "/v1/bookings/bk-1/drop", "")
		expectStatus(t, w, http.StatusConflict)
	})
}
