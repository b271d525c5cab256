package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/spicevilla/table-booking-api/internal/httperr"
	"github.com/spicevilla/table-booking-api/internal/httpresp"
	ucBooking "github.com/spicevilla/table-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreatePublicBooking
	updateUC *ucBooking.UpdateBooking
	deleteUC *ucBooking.DeleteBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreatePublicBooking,
	updateUC *ucBooking.UpdateBooking,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	GuestCount   int    `json:"guest_count"`
	BookingDate  string `json:"booking_date"`
	TimeSlot     string `json:"time_slot"`
}

type UpdateBookingRequest struct {
	Status      *string `json:"status"`
	BookingDate *string `json:"booking_date"`
	TimeSlot    *string `json:"time_slot"`
}

// ======================================================
// HELPERS
// ======================================================

// writeBookingError maps domain rejections onto HTTP statuses. The
// slot-full message differs per endpoint, so callers supply it.
func writeBookingError(c *gin.Context, err error, slotFullMessage string) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeValidation):
		httperr.BadRequest(c, httperr.CodeValidation,
			httperr.BusinessMessage(err, "Invalid request payload."))

	case httperr.IsBusiness(err, httperr.CodePastDate):
		httperr.BadRequest(c, httperr.CodePastDate,
			httperr.BusinessMessage(err, "Cannot book for a past date or time."))

	case httperr.IsBusiness(err, httperr.CodeSlotFull):
		httperr.Conflict(c, httperr.CodeSlotFull, slotFullMessage)

	case httperr.IsBusiness(err, httperr.CodeNotFound):
		httperr.NotFound(c, httperr.CodeNotFound, "Booking not found")

	default:
		httperr.Internal(c, "internal_error", "Internal Server Error")
	}
}

// ======================================================
// CREATE (public form)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid request payload.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		GuestCount:   req.GuestCount,
		BookingDate:  req.BookingDate,
		TimeSlot:     req.TimeSlot,
	})
	if err != nil {
		writeBookingError(c, err, "This time slot is fully booked.")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Booking created successfully.",
		"booking": b,
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid request payload.")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		ID:          c.Param("id"),
		Status:      req.Status,
		BookingDate: req.BookingDate,
		TimeSlot:    req.TimeSlot,
	})
	if err != nil {
		writeBookingError(c, err, "New time slot is fully booked.")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Booking updated",
		"booking": b,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeBookingError(c, err, "")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Booking deleted successfully",
	})
}
