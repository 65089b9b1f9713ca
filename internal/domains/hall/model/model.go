package model

import (
	"time"

	"hotelier/shared/constant"
	"hotelier/shared/model"
)

const (
	GuestTableName  = "hall_guests"
	GuestEntityName = "hall guest"

	GuestFieldID      = "id"
	GuestFieldName    = "name"
	GuestFieldPhone   = "phone"
	GuestFieldAddress = "address"

	BookingTableName  = "hall_bookings"
	BookingEntityName = "hall booking"

	BookingFieldID            = "id"
	BookingFieldHallGuestID   = "hall_guest_id"
	BookingFieldEventDate     = "event_date"
	BookingFieldSession       = "session"
	BookingFieldStatus        = "status"
	BookingFieldTotalAmount   = "total_amount"
	BookingFieldAdvanceAmount = "advance_amount"
	BookingFieldExtraAmount   = "extra_amount"
	BookingFieldNotes         = "notes"

	ItemTableName  = "hall_booking_items"
	ItemEntityName = "hall booking item"

	ItemFieldID            = "id"
	ItemFieldHallBookingID = "hall_booking_id"
	ItemFieldMenuItemID    = "menu_item_id"
	ItemFieldName          = "name"
	ItemFieldPrice         = "price"
	ItemFieldQuantity      = "quantity"
)

// HallGuest is deduplicated by phone number: repeat customers keep a single
// record across events.
type HallGuest struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Phone   string `db:"phone"`
	Address string `db:"address"`
	model.Metadata
}

type HallBooking struct {
	ID            string    `db:"id"`
	HallGuestID   string    `db:"hall_guest_id"`
	EventDate     time.Time `db:"event_date"`
	Session       string    `db:"session"`
	Status        string    `db:"status"`
	TotalAmount   float64   `db:"total_amount"`
	AdvanceAmount float64   `db:"advance_amount"`
	ExtraAmount   float64   `db:"extra_amount"`
	Notes         string    `db:"notes"`
	model.Metadata
}

type HallBookingItem struct {
	ID            string  `db:"id"`
	HallBookingID string  `db:"hall_booking_id"`
	MenuItemID    string  `db:"menu_item_id"`
	Name          string  `db:"name"`
	Price         float64 `db:"price"`
	Quantity      int     `db:"quantity"`
}

// Blocks reports whether an existing session reservation makes the requested
// session unavailable on the same date.
func Blocks(existing, requested string) bool {
	if existing == requested {
		return true
	}

	return existing == constant.HallSessionFullDay || requested == constant.HallSessionFullDay
}
