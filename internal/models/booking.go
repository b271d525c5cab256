package models

import "time"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"booking_id"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	PhoneNumber  string `gorm:"size:20;not null" json:"phone_number"`
	GuestCount   int    `gorm:"not null" json:"guest_count"`

	// YYYY-MM-DD and HH:MM; lexicographic order matches chronological order.
	BookingDate string `gorm:"size:10;not null;index:idx_bookings_slot" json:"booking_date"`
	TimeSlot    string `gorm:"size:5;not null;index:idx_bookings_slot" json:"time_slot"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`
	Source string `gorm:"size:20;default:'Online'" json:"source"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
