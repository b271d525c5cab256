package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/spicevilla/table-booking-api/internal/domain/booking"
	"github.com/spicevilla/table-booking-api/internal/httperr"
	"github.com/spicevilla/table-booking-api/internal/models"
	"github.com/spicevilla/table-booking-api/internal/slotlock"
)

type BookingGormRepository struct {
	db    *gorm.DB
	slots *slotlock.KeyedMutex
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{
		db:    db,
		slots: slotlock.New(),
	}
}

func slotKey(date, timeSlot string) string {
	return date + " " + timeSlot
}

// --------------------------------------------------
// Admission (create / capacity)
// --------------------------------------------------

func (r *BookingGormRepository) CountActiveInSlot(
	ctx context.Context,
	date string,
	timeSlot string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"booking_date = ? AND time_slot = ? AND status <> ?",
			date, timeSlot, string(domain.StatusCancelled),
		).
		Count(&count).Error

	return count, err
}

// CreateInSlot holds the slot's lock across the count and the insert,
// so concurrent admissions for the same slot serialize and the
// capacity invariant holds. Writers of other slots are unaffected.
func (r *BookingGormRepository) CreateInSlot(
	ctx context.Context,
	b *models.Booking,
) error {

	key := slotKey(b.BookingDate, b.TimeSlot)
	r.slots.Lock(key)
	defer r.slots.Unlock(key)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"booking_date = ? AND time_slot = ? AND status <> ?",
				b.BookingDate, b.TimeSlot, string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count >= domain.SlotCapacity {
			return httperr.ErrBusiness(httperr.CodeSlotFull)
		}

		if b.ID == "" {
			b.ID = uuid.NewString()
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Lookup / mutation
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) Save(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// SaveRescheduled moves a booking into a new slot. The target slot's
// lock is held across the re-count and the write; the moved booking
// itself is excluded from the count so a partial change (same date,
// new time or vice versa) is never double-counted.
func (r *BookingGormRepository) SaveRescheduled(
	ctx context.Context,
	b *models.Booking,
	newDate string,
	newTimeSlot string,
) error {

	key := slotKey(newDate, newTimeSlot)
	r.slots.Lock(key)
	defer r.slots.Unlock(key)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"booking_date = ? AND time_slot = ? AND status <> ? AND id <> ?",
				newDate, newTimeSlot, string(domain.StatusCancelled), b.ID,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count >= domain.SlotCapacity {
			return httperr.ErrBusiness(httperr.CodeSlotFull)
		}

		b.BookingDate = newDate
		b.TimeSlot = newTimeSlot

		return tx.Save(b).Error
	})
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	return nil
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("booking_date ASC, time_slot ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
