package booking

import (
	"context"

	"github.com/spicevilla/table-booking-api/internal/audit"
	domain "github.com/spicevilla/table-booking-api/internal/domain/booking"
	"github.com/spicevilla/table-booking-api/internal/httperr"
	"github.com/spicevilla/table-booking-api/internal/models"
	"github.com/spicevilla/table-booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName string
	PhoneNumber  string
	GuestCount   int
	BookingDate  string
	TimeSlot     string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePublicBooking admits a booking submitted through the public
// form: validation, past-date rejection, slot capacity, then the write.
// Created records start as Pending/Online.
type CreatePublicBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCreatePublicBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreatePublicBooking {
	return &CreatePublicBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := domain.Validate(domain.Fields{
		CustomerName: in.CustomerName,
		PhoneNumber:  in.PhoneNumber,
		GuestCount:   in.GuestCount,
		BookingDate:  in.BookingDate,
		TimeSlot:     in.TimeSlot,
	}); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.timezone)
	if domain.IsPast(in.BookingDate, in.TimeSlot, now) {
		return nil, httperr.ErrBusinessMsg(
			httperr.CodePastDate,
			"Cannot book for a past date or time.",
		)
	}

	b := &models.Booking{
		CustomerName: in.CustomerName,
		PhoneNumber:  in.PhoneNumber,
		GuestCount:   in.GuestCount,
		BookingDate:  in.BookingDate,
		TimeSlot:     in.TimeSlot,
		Status:       string(domain.StatusPending),
		Source:       string(domain.SourceOnline),
	}

	if err := uc.repo.CreateInSlot(ctx, b); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotFull) {
			uc.audit.Dispatch(audit.Event{
				Action: "booking_slot_full",
				Entity: "booking",
				Metadata: map[string]any{
					"booking_date": in.BookingDate,
					"time_slot":    in.TimeSlot,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
