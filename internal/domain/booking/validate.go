package booking

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spicevilla/table-booking-api/internal/httperr"
)

// SlotCapacity is the maximum number of non-cancelled bookings allowed
// for one (booking_date, time_slot) pair.
const SlotCapacity = 10

// Bookable window: 10:00 through 23:00 inclusive, 23:00 being the last
// bookable instant.
const (
	OpenHour  = 10
	CloseHour = 23
)

type Fields struct {
	CustomerName string
	PhoneNumber  string
	GuestCount   int
	BookingDate  string
	TimeSlot     string
}

var phoneRegex = regexp.MustCompile(`^\d{10}$`)

// Validate checks the submitted fields in order, short-circuiting on
// the first failure. Pure: no I/O, no clock.
func Validate(f Fields) error {
	var missing []string
	if f.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if f.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if f.GuestCount == 0 {
		missing = append(missing, "guest_count")
	}
	if f.BookingDate == "" {
		missing = append(missing, "booking_date")
	}
	if f.TimeSlot == "" {
		missing = append(missing, "time_slot")
	}
	if len(missing) > 0 {
		return httperr.ErrBusinessMsg(
			httperr.CodeValidation,
			"Missing required fields: "+strings.Join(missing, ", "),
		)
	}

	if !phoneRegex.MatchString(f.PhoneNumber) {
		return httperr.ErrBusinessMsg(
			httperr.CodeValidation,
			"Please enter a valid 10-digit mobile number",
		)
	}

	if f.GuestCount < 1 || f.GuestCount > 20 {
		return httperr.ErrBusinessMsg(
			httperr.CodeValidation,
			"Guest count must be between 1 and 20",
		)
	}

	hour, minute, ok := parseTimeSlot(f.TimeSlot)
	if !ok || hour < OpenHour || hour > CloseHour || (hour == CloseHour && minute > 0) {
		return httperr.ErrBusinessMsg(
			httperr.CodeValidation,
			"Bookings are only allowed between 10:00 AM and 11:00 PM",
		)
	}

	return nil
}

func parseTimeSlot(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}
