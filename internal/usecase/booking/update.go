package booking

import (
	"context"

	"github.com/spicevilla/table-booking-api/internal/audit"
	domain "github.com/spicevilla/table-booking-api/internal/domain/booking"
	"github.com/spicevilla/table-booking-api/internal/models"
)

type UpdateBookingInput struct {
	ID          string
	Status      *string
	BookingDate *string
	TimeSlot    *string
}

// UpdateBooking applies status and/or slot changes to an existing
// booking. Any known status may replace any other; the slot capacity
// gate runs again only when the (date, time_slot) pair actually
// changes, against the target slot. All supplied changes apply
// atomically, or none do.
type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		st, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		b.Status = string(st)
	}

	newDate := b.BookingDate
	newTime := b.TimeSlot
	if in.BookingDate != nil {
		newDate = *in.BookingDate
	}
	if in.TimeSlot != nil {
		newTime = *in.TimeSlot
	}

	if newDate != b.BookingDate || newTime != b.TimeSlot {
		err = uc.repo.SaveRescheduled(ctx, b, newDate, newTime)
	} else {
		err = uc.repo.Save(ctx, b)
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
