package booking

import (
	"context"

	"github.com/spicevilla/table-booking-api/internal/audit"
	domain "github.com/spicevilla/table-booking-api/internal/domain/booking"
	"github.com/spicevilla/table-booking-api/internal/httperr"
	"github.com/spicevilla/table-booking-api/internal/models"
)

// CreateManualBooking is the owner entry path. It never applies the
// past-date rule (owners may backfill), but slot capacity is still
// enforced. Created records start as Confirmed/Manual.
type CreateManualBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateManualBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateManualBooking {
	return &CreateManualBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateManualBooking) Execute(
	ctx context.Context,
	ownerID uint,
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

	b := &models.Booking{
		CustomerName: in.CustomerName,
		PhoneNumber:  in.PhoneNumber,
		GuestCount:   in.GuestCount,
		BookingDate:  in.BookingDate,
		TimeSlot:     in.TimeSlot,
		Status:       string(domain.StatusConfirmed),
		Source:       string(domain.SourceManual),
	}

	if err := uc.repo.CreateInSlot(ctx, b); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotFull) {
			uc.audit.Dispatch(audit.Event{
				UserID: &ownerID,
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
		UserID:   &ownerID,
		Action:   "booking_created_manual",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
