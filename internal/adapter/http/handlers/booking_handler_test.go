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

func newBookingRouter(t *testing.T) (*gin.Engine, *mocks.MockIBookingUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBookingUseCase(ctrl)
	h := NewBookingHandler(uc, logger.NewNop())

	r := gin.New()
	r.POST("/v1/bookings", h.CreateBooking)
	r.GET("/v1/bookings/:booking_id", h.GetBooking)
	r.PATCH("/v1/bookings/:booking_id", h.EditBooking)
	r.DELETE("/v1/bookings/:booking_id", h.DeleteBooking)
	r.GET("/v1/customers/:customer_id/bookings", h.ListCustomerBookings)
	return r, uc
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newBookingRouter(t)
		w := serve(r, http.MethodPost, "/v1/bookings", `{"customer_id":"cust-1"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("zero hours binds", func(t *testing.T) {
		r, uc := newBookingRouter(t)
		uc.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in entities.Booking) (usecase.TransitionResult, error) {
				if in.Hours != 0 || in.Professionals != 1 {
					t.Fatalf("unexpected booking input: %+v", in)
				}
				in.ID = "bk-0"
				return usecase.TransitionResult{Booking: in}, nil
			})

		w := serve(r, http.MethodPost, "/v1/bookings", `{"customer_id":"cust-1","date":"2026-05-04","hours":0,"professionals":1,"total_amount":80}`)
		expectStatus(t, w, http.StatusCreated)
	})

	t.Run("missing hours", func(t *testing.T) {
		r, _ := newBookingRouter(t)
		w := serve(r, http.MethodPost, "/v1/bookings", `{"customer_id":"cust-1","date":"2026-05-04","professionals":1}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		r, uc := newBookingRouter(t)
		uc.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(usecase.TransitionResult{}, fmt.Errorf("%w: total must be >= 0", usecase.ErrInvalidBooking))

		w := serve(r, http.MethodPost, "/v1/bookings", `{"customer_id":"cust-1","date":"2026-05-04","hours":2,"professionals":1,"total_amount":-1}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("created with warnings", func(t *testing.T) {
		r, uc := newBookingRouter(t)
		uc.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in entities.Booking) (usecase.TransitionResult, error) {
				if in.CustomerID != "cust-1" || in.Professionals != 3 || in.TotalAmount != 150 {
					t.Fatalf("unexpected booking input: %+v", in)
				}
				in.ID = "bk-1"
				in.AssignedStatus = entities.AssignmentStatusUnassigned
				return usecase.TransitionResult{Booking: in, Warnings: []string{"mirror write failed"}}, nil
			})

		w := serve(r, http.MethodPost, "/v1/bookings", `{"customer_id":"cust-1","date":"2026-05-04","hours":2,"professionals":3,"total_amount":150}`)
		expectStatus(t, w, http.StatusCreated)

		body := decodeBody(t, w)
		booking := body["booking"].(map[string]any)
		if booking["id"] != "bk-1" || booking["assigned_status"] != "unassigned" {
			t.Fatalf("unexpected booking: %v", booking)
		}
		if warnings := body["warnings"].([]any); len(warnings) != 1 {
			t.Fatalf("expected one warning, got %v", warnings)
		}
	})
}

func TestBookingHandler_GetBooking(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newBookingRouter(t)
		uc.EXPECT().GetBooking(gomock.Any(), "bk-404").Return(entities.Booking{}, usecase.ErrMasterNotFound)

		w := serve(r, http.MethodGet, "/v1/bookings/bk-404", "")
		expectStatus(t, w, http.StatusNotFound)
		if body := decodeBody(t, w); body["code"] != "BOOKING_NOT_FOUND" {
			t.Fatalf("unexpected code: %v", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBookingRouter(t)
		uc.EXPECT().GetBooking(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", AssignedTo: "crew-a", Professionals: 1}, nil)

		w := serve(r, http.MethodGet, "/v1/bookings/bk-1", "")
		expectStatus(t, w, http.StatusOK)
		if body := decodeBody(t, w); body["assigned_to"] != "crew-a" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBookingHandler_EditBooking(t *testing.T) {
	t.Run("empty changes", func(t *testing.T) {
		r, _ := newBookingRouter(t)
		w := serve(r, http.MethodPatch, "/v1/bookings/bk-1", `{}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("precondition", func(t *testing.T) {
		r, uc := newBookingRouter(t)
		uc.EXPECT().EditBooking(gomock.Any(), "bk-1", gomock.Any()).
			Return(usecase.TransitionResult{}, fmt.Errorf("%w: 2 crews assigned", usecase.ErrPreconditionViolation))

		w := serve(r, http.MethodPatch, "/v1/bookings/bk-1", `{"professionals":1}`)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBookingRouter(t)
		uc.EXPECT().EditBooking(gomock.Any(), "bk-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, changes usecase.BookingChanges) (usecase.TransitionResult, error) {
				if changes.TotalAmount == nil || *changes.TotalAmount != 300 || changes.Hours != nil {
					t.Fatalf("unexpected changes: %+v", changes)
				}
				return usecase.TransitionResult{Booking: entities.Booking{ID: "bk-1", TotalAmount: 300}}, nil
			})

		w := serve(r, http.MethodPatch, "/v1/bookings/bk-1", `{"total_amount":300}`)
		expectStatus(t, w, http.StatusOK)
	})
}

func TestBookingHandler_DeleteBooking(t *testing.T) {
	r, uc := newBookingRouter(t)
	uc.EXPECT().DeleteBooking(gomock.Any(), "bk-1").Return(usecase.TransitionResult{Booking: entities.Booking{ID: "bk-1"}}, nil)

	w := serve(r, http.MethodDelete, "/v1/bookings/bk-1", "")
	expectStatus(t, w, http.StatusOK)
}

func TestBookingHandler_ListCustomerBookings(t *testing.T) {
	t.Run("invalid customer", func(t *testing.T) {
		r, uc := newBookingRouter(t)
		uc.EXPECT().ListCustomerBookings(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidCustomerID)

		w := serve(r, http.MethodGet, "/v1/customers/%20/bookings", "")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newBookingRouter(t)
		uc.EXPECT().ListCustomerBookings(gomock.Any(), "cust-1").Return([]entities.MirrorBooking{
			{Booking: entities.Booking{ID: "bk-1", CustomerID: "cust-1"}},
			{Booking: entities.Booking{ID: "bk-2", CustomerID: "cust-1"}},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/customers/cust-1/bookings", "")
		expectStatus(t, w, http.StatusOK)
		if got := decodeArray(t, w); len(got) != 2 {
			t.Fatalf("expected two bookings, got %d", len(got))
		}
	})
}
