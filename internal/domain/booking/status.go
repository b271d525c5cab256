package booking

import (
	"fmt"

	"github.com/spicevilla/table-booking-api/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// ===============================
// Booking Source
// ===============================

type Source string

const (
	SourceOnline Source = "Online"
	SourceManual Source = "Manual"
)

// ===============================
// Parsing
// ===============================

// ParseStatus rejects anything outside the closed status set; free
// strings never reach the store.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	}
	return "", httperr.ErrBusinessMsg(
		httperr.CodeValidation,
		fmt.Sprintf("Invalid booking status: %s", s),
	)
}

func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceOnline, SourceManual:
		return Source(s), nil
	}
	return "", httperr.ErrBusinessMsg(
		httperr.CodeValidation,
		fmt.Sprintf("Invalid booking source: %s", s),
	)
}
