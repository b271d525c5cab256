package booking

import (
	"context"

	"github.com/spicevilla/table-booking-api/internal/models"
)

type Repository interface {
	// -------- Admission (create / capacity) --------

	// CreateInSlot checks the capacity of the booking's slot and
	// inserts atomically with respect to other writers of the same
	// slot. Returns a slot_full business error when at capacity.
	CreateInSlot(ctx context.Context, b *models.Booking) error

	CountActiveInSlot(ctx context.Context, date, timeSlot string) (int64, error)

	// -------- Lookup / mutation --------

	GetByID(ctx context.Context, id string) (*models.Booking, error)

	Save(ctx context.Context, b *models.Booking) error

	// SaveRescheduled re-checks capacity against the target slot and
	// applies the slot change (plus any other pending field changes on
	// b) atomically. b is left unmodified on rejection.
	SaveRescheduled(ctx context.Context, b *models.Booking, newDate, newTimeSlot string) error

	Delete(ctx context.Context, id string) error

	ListAll(ctx context.Context) ([]models.Booking, error)
}
