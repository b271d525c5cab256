package booking

import (
	"context"

	domain "github.com/spicevilla/table-booking-api/internal/domain/booking"
	"github.com/spicevilla/table-booking-api/internal/models"
)

// ListBookings returns every booking ordered by booking_date then
// time_slot, ascending — the owner dashboard view.
type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListAll(ctx)
}
