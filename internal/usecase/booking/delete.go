package booking

import (
	"context"

	"github.com/spicevilla/table-booking-api/internal/audit"
	domain "github.com/spicevilla/table-booking-api/internal/domain/booking"
)

// DeleteBooking removes a record permanently. Cancellation is a status,
// not a deletion; this is the hard path.
type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: id,
	})

	return nil
}
