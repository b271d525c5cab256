package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spicevilla/table-booking-api/internal/httperr"
)

func validFields() Fields {
	return Fields{
		CustomerName: "Asha Rao",
		PhoneNumber:  "9876543210",
		GuestCount:   4,
		BookingDate:  "2030-06-15",
		TimeSlot:     "19:30",
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(validFields()))
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(Fields{})
	assert.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	assert.Equal(t,
		"Missing required fields: customer_name, phone_number, guest_count, booking_date, time_slot",
		err.Error(),
	)
}

func TestValidate_MissingSingleField(t *testing.T) {
	f := validFields()
	f.CustomerName = ""

	err := Validate(f)
	assert.Error(t, err)
	assert.Equal(t, "Missing required fields: customer_name", err.Error())
}

func TestValidate_Phone(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"123", false},
		{"12345678901", false},
		{"123-456-7890", false},
		{"98765 4321", false},
		{"+919876543210", false},
	}

	for _, tc := range cases {
		f := validFields()
		f.PhoneNumber = tc.phone

		err := Validate(f)
		if tc.valid {
			assert.NoError(t, err, "phone %q", tc.phone)
		} else {
			assert.Error(t, err, "phone %q", tc.phone)
			assert.Equal(t, "Please enter a valid 10-digit mobile number", err.Error())
		}
	}
}

func TestValidate_GuestCount(t *testing.T) {
	for _, n := range []int{1, 20} {
		f := validFields()
		f.GuestCount = n
		assert.NoError(t, Validate(f), "guest_count %d", n)
	}

	for _, n := range []int{-1, 21, 100} {
		f := validFields()
		f.GuestCount = n

		err := Validate(f)
		assert.Error(t, err, "guest_count %d", n)
		assert.Equal(t, "Guest count must be between 1 and 20", err.Error())
	}

	// zero is indistinguishable from an absent field
	f := validFields()
	f.GuestCount = 0
	err := Validate(f)
	assert.Error(t, err)
	assert.Equal(t, "Missing required fields: guest_count", err.Error())
}

func TestValidate_TimeSlotWindow(t *testing.T) {
	cases := []struct {
		slot  string
		valid bool
	}{
		{"09:59", false},
		{"10:00", true},
		{"15:30", true},
		{"23:00", true},
		{"23:01", false},
		{"23:59", false},
		{"00:30", false},
		{"garbage", false},
		{"10", false},
		{"10:xx", false},
	}

	for _, tc := range cases {
		f := validFields()
		f.TimeSlot = tc.slot

		err := Validate(f)
		if tc.valid {
			assert.NoError(t, err, "time_slot %q", tc.slot)
		} else {
			assert.Error(t, err, "time_slot %q", tc.slot)
			assert.Equal(t, "Bookings are only allowed between 10:00 AM and 11:00 PM", err.Error())
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Confirmed", "Cancelled", "Completed"} {
		st, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, Status(s), st)
	}

	for _, s := range []string{"pending", "Done", "", "Deleted"} {
		_, err := ParseStatus(s)
		assert.Error(t, err, "status %q", s)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	}
}

func TestParseSource(t *testing.T) {
	for _, s := range []string{"Online", "Manual"} {
		src, err := ParseSource(s)
		assert.NoError(t, err)
		assert.Equal(t, Source(s), src)
	}

	_, err := ParseSource("Phone")
	assert.Error(t, err)
}

func TestIsPast(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsPast("2026-09-01", "11:59", now))
	assert.True(t, IsPast("2025-12-31", "20:00", now))
	assert.False(t, IsPast("2026-09-01", "12:00", now), "the current instant is not past")
	assert.False(t, IsPast("2026-09-01", "12:01", now))
	assert.False(t, IsPast("2030-01-01", "10:00", now))

	// unparseable input never counts as past
	assert.False(t, IsPast("not-a-date", "10:00", now))
	assert.False(t, IsPast("2026-09-01", "later", now))
}
