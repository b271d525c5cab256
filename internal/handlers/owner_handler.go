package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/spicevilla/table-booking-api/internal/httperr"
	"github.com/spicevilla/table-booking-api/internal/httpresp"
	"github.com/spicevilla/table-booking-api/internal/middleware"
	ucBooking "github.com/spicevilla/table-booking-api/internal/usecase/booking"
)

type OwnerHandler struct {
	listUC   *ucBooking.ListBookings
	createUC *ucBooking.CreateManualBooking
}

func NewOwnerHandler(
	listUC *ucBooking.ListBookings,
	createUC *ucBooking.CreateManualBooking,
) *OwnerHandler {
	return &OwnerHandler{
		listUC:   listUC,
		createUC: createUC,
	}
}

// ======================================================
// LIST (dashboard)
// ======================================================

func (h *OwnerHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Internal Server Error")
		return
	}

	httpresp.OK(c, bookings)
}

// ======================================================
// CREATE (manual entry, no past-date rule)
// ======================================================

func (h *OwnerHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid request payload.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ownerID, ucBooking.CreateBookingInput{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		GuestCount:   req.GuestCount,
		BookingDate:  req.BookingDate,
		TimeSlot:     req.TimeSlot,
	})
	if err != nil {
		writeBookingError(c, err, "This time slot is fully booked (Table Limit Reached).")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Manual booking added successfully.",
		"booking": b,
	})
}
