package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/spicevilla/table-booking-api/internal/db"
	domain "github.com/spicevilla/table-booking-api/internal/domain/booking"
	"github.com/spicevilla/table-booking-api/internal/httperr"
	"github.com/spicevilla/table-booking-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)

	gdb, err := dbpkg.Open(dsn)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// single connection keeps the in-memory DB alive and serializes
	// SQLite writers
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))
	return gdb
}

func seedBooking(t *testing.T, gdb *gorm.DB, date, slot, status string) *models.Booking {
	t.Helper()

	b := &models.Booking{
		ID:           uuid.NewString(),
		CustomerName: "Seed Guest",
		PhoneNumber:  "9876543210",
		GuestCount:   2,
		BookingDate:  date,
		TimeSlot:     slot,
		Status:       status,
		Source:       string(domain.SourceManual),
	}
	require.NoError(t, gdb.Create(b).Error)
	return b
}

func fillSlot(t *testing.T, gdb *gorm.DB, date, slot string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		seedBooking(t, gdb, date, slot, string(domain.StatusConfirmed))
	}
}

func newBooking(date, slot string) *models.Booking {
	return &models.Booking{
		CustomerName: "Walk In",
		PhoneNumber:  "9123456780",
		GuestCount:   3,
		BookingDate:  date,
		TimeSlot:     slot,
		Status:       string(domain.StatusPending),
		Source:       string(domain.SourceOnline),
	}
}

func TestCreateInSlot_AssignsID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingGormRepository(gdb)

	b := newBooking("2030-06-15", "19:30")
	require.NoError(t, repo.CreateInSlot(context.Background(), b))

	assert.NotEmpty(t, b.ID)

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Walk In", got.CustomerName)
}

func TestCreateInSlot_RejectsFullSlot(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingGormRepository(gdb)

	fillSlot(t, gdb, "2030-06-15", "20:00", domain.SlotCapacity)

	err := repo.CreateInSlot(context.Background(), newBooking("2030-06-15", "20:00"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotFull))

	// a different slot on the same date is unaffected
	require.NoError(t, repo.CreateInSlot(context.Background(), newBooking("2030-06-15", "20:30")))
}

func TestCreateInSlot_CancelledDoesNotCount(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingGormRepository(gdb)

	fillSlot(t, gdb, "2030-06-15", "20:00", domain.SlotCapacity-1)
	seedBooking(t, gdb, "2030-06-15", "20:00", string(domain.StatusCancelled))

	count, err := repo.CountActiveInSlot(context.Background(), "2030-06-15", "20:00")
	require.NoError(t, err)
	assert.Equal(t, int64(domain.SlotCapacity-1), count)

	require.NoError(t, repo.CreateInSlot(context.Background(), newBooking("2030-06-15", "20:00")))
}

// The check-then-act race: the slot holds capacity-1 bookings and 5
// admissions arrive at once. Exactly one may win.
func TestCreateInSlot_ConcurrentAdmissions(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingGormRepository(gdb)

	const date, slot = "2030-06-15", "21:00"
	fillSlot(t, gdb, date, slot, domain.SlotCapacity-1)

	var wg sync.WaitGroup
	errs := make([]error, 5)

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.CreateInSlot(context.Background(), newBooking(date, slot))
		}(i)
	}
	wg.Wait()

	created, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case httperr.IsBusiness(err, httperr.CodeSlotFull):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, 4, rejected)

	count, err := repo.CountActiveInSlot(context.Background(), date, slot)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.SlotCapacity), count)
}

func TestSaveRescheduled_FullTargetLeavesRecordUnchanged(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingGormRepository(gdb)

	b := seedBooking(t, gdb, "2030-06-15", "18:00", string(domain.StatusConfirmed))
	fillSlot(t, gdb, "2030-06-15", "20:00", domain.SlotCapacity)

	err := repo.SaveRescheduled(context.Background(), b, "2030-06-15", "20:00")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotFull))

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "18:00", got.TimeSlot)
}

func TestSaveRescheduled_MovesBetweenSlots(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingGormRepository(gdb)

	b := seedBooking(t, gdb, "2030-06-15", "18:00", string(domain.StatusConfirmed))

	require.NoError(t, repo.SaveRescheduled(context.Background(), b, "2030-06-16", "19:00"))

	oldCount, err := repo.CountActiveInSlot(context.Background(), "2030-06-15", "18:00")
	require.NoError(t, err)
	assert.Equal(t, int64(0), oldCount)

	newCount, err := repo.CountActiveInSlot(context.Background(), "2030-06-16", "19:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1), newCount)
}

func TestSaveRescheduled_TimeChangeOnlyExcludesSelf(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingGormRepository(gdb)

	// target slot has capacity-1 others; the moved booking itself must
	// not push the count over
	b := seedBooking(t, gdb, "2030-06-15", "18:00", string(domain.StatusConfirmed))
	fillSlot(t, gdb, "2030-06-15", "19:00", domain.SlotCapacity-1)

	require.NoError(t, repo.SaveRescheduled(context.Background(), b, "2030-06-15", "19:00"))

	count, err := repo.CountActiveInSlot(context.Background(), "2030-06-15", "19:00")
	require.NoError(t, err)
	assert.Equal(t, int64(domain.SlotCapacity), count)
}

func TestDelete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingGormRepository(gdb)

	b := seedBooking(t, gdb, "2030-06-15", "18:00", string(domain.StatusPending))

	require.NoError(t, repo.Delete(context.Background(), b.ID))

	_, err := repo.GetByID(context.Background(), b.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	err = repo.Delete(context.Background(), b.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestListAll_OrderedByDateThenTime(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewBookingGormRepository(gdb)

	seedBooking(t, gdb, "2030-06-16", "12:00", string(domain.StatusPending))
	seedBooking(t, gdb, "2030-06-15", "21:00", string(domain.StatusPending))
	seedBooking(t, gdb, "2030-06-15", "11:30", string(domain.StatusPending))

	bookings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	assert.Equal(t, "11:30", bookings[0].TimeSlot)
	assert.Equal(t, "21:00", bookings[1].TimeSlot)
	assert.Equal(t, "2030-06-16", bookings[2].BookingDate)
}
