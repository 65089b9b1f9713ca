package dto

import (
	"time"

	"hotelier/internal/domains/booking/model"
	userDto "hotelier/internal/domains/user/model/dto"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID           string    `json:"room_id"            validate:"required,uuid4"`
	GuestName        string    `json:"guest_name"         validate:"required,max=100"`
	CheckIn          time.Time `json:"check_in"           validate:"required"`
	ExpectedCheckOut time.Time `json:"expected_check_out" validate:"required,gtfield=CheckIn"`
}

func (c *CreateBookingRequest) ToModel(guestID, tempPassword, user string) model.Booking {
	return model.Booking{
		ID:               uuid.NewString(),
		GuestID:          guestID,
		RoomID:           c.RoomID,
		CheckIn:          c.CheckIn,
		ExpectedCheckOut: c.ExpectedCheckOut,
		Status:           constant.BookingStatusActive,
		TempPassword:     tempPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	ExpectedCheckOut *time.Time `db:"expected_check_out" json:"expected_check_out" validate:"omitempty"`
	GuestName        string     `json:"guest_name"        validate:"omitempty,max=100"`
}

type BookingResponse struct {
	ID               string     `json:"id"`
	GuestID          string     `json:"guest_id"`
	RoomID           string     `json:"room_id"`
	CheckIn          time.Time  `json:"check_in"`
	ExpectedCheckOut time.Time  `json:"expected_check_out"`
	CheckedOutAt     *time.Time `json:"checked_out_at,omitempty"`
	Status           string     `json:"status"`
	BillAmount       *float64   `json:"bill_amount,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn
	r.ExpectedCheckOut = model.ExpectedCheckOut
	r.CheckedOutAt = model.CheckedOutAt
	r.Status = model.Status
	r.BillAmount = model.BillAmount
	r.Metadata.FromModel(model.Metadata)
}

// CheckInResponse is returned once, at check-in: the plaintext credentials
// inside are never retrievable again through the API.
type CheckInResponse struct {
	Booking     BookingResponse          `json:"booking"`
	Credentials userDto.GuestCredentials `json:"credentials"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type BillResponse struct {
	BookingID  string  `json:"booking_id"`
	RoomID     string  `json:"room_id"`
	Nights     int     `json:"nights"`
	RoomTotal  float64 `json:"room_total"`
	FoodTotal  float64 `json:"food_total"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
	Final      bool    `json:"final"`
}

type GuestSearchResponse struct {
	Guests []userDto.UserResponse `json:"guests"`
}

type EarningsReportResponse struct {
	TotalEarnings     float64 `json:"total_earnings"`
	CompletedBookings int     `json:"completed_bookings"`
	RepairedBills     int     `json:"repaired_bills"`
}

type CheckoutUpdateRequest struct {
	Status       string    `db:"status"`
	CheckedOutAt time.Time `db:"checked_out_at"`
	BillAmount   float64   `db:"bill_amount"`
}

type RepairBillRequest struct {
	BillAmount float64 `db:"bill_amount"`
}
