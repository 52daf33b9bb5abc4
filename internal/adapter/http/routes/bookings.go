package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathBookings  = "/bookings"
	PathCustomers = "/customers"
	PathCrews     = "/crews"
)

func addBookingRoutes(rg *gin.RouterGroup, deps *dependencies) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", deps.bookingHandler.CreateBooking)
		bookings.GET("/:booking_id", deps.bookingHandler.GetBooking)
		bookings.PATCH("/:booking_id", deps.bookingHandler.EditBooking)
		bookings.DELETE("/:booking_id", deps.bookingHandler.DeleteBooking)
	}

	booking := bookings.Group("/:booking_id")
	{
		booking.POST("/crews", deps.assignmentHandler.AssignCrew)
		booking.POST("/crews/move", deps.assignmentHandler.MoveCrew)
		booking.DELETE("/crews/:crew_id", deps.assignmentHandler.UnassignCrew)
		booking.POST("/crews/:crew_id/confirm", deps.assignmentHandler.ConfirmCrew)
		booking.DELETE("/crews/:crew_id/confirm", deps.assignmentHandler.UnconfirmCrew)
		booking.POST("/confirm", deps.assignmentHandler.ConfirmAll)
		booking.POST("/unassign", deps.assignmentHandler.MoveToUnassigned)
		booking.POST("/drop", deps.assignmentHandler.DropBooking)

		booking.GET("/sync", deps.syncHandler.GetSyncStatus)
		booking.POST("/sync/validate", deps.syncHandler.Validate)
		booking.POST("/sync/repair", deps.syncHandler.Repair)

		booking.POST("/payments", deps.paymentHandler.RecordPayment)
		booking.GET("/payments", deps.paymentHandler.ListPayments)
	}

	rg.GET(PathCustomers+"/:customer_id/bookings", deps.bookingHandler.ListCustomerBookings)
	rg.GET(PathCrews+"/:crew_id", deps.crewHandler.GetCrew)
}
