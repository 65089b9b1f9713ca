package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldGuestID          = "guest_id"
	FieldRoomID           = "room_id"
	FieldCheckIn          = "check_in"
	FieldExpectedCheckOut = "expected_check_out"
	FieldCheckedOutAt     = "checked_out_at"
	FieldStatus           = "status"
	FieldTempPassword     = "temp_password"
	FieldBillAmount       = "bill_amount"
)

type Booking struct {
	ID               string     `db:"id"`
	GuestID          string     `db:"guest_id"`
	RoomID           string     `db:"room_id"`
	CheckIn          time.Time  `db:"check_in"`
	ExpectedCheckOut time.Time  `db:"expected_check_out"`
	CheckedOutAt     *time.Time `db:"checked_out_at"`
	Status           string     `db:"status"`
	TempPassword     string     `db:"temp_password"`
	BillAmount       *float64   `db:"bill_amount"`
	model.Metadata
}
