package dto

import (
	"time"

	"hotelier/internal/domains/hall/model"
	menuModel "hotelier/internal/domains/menu/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type HallGuestRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Phone   string `json:"phone"   validate:"required,max=20"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

func (c *HallGuestRequest) ToModel(user string) model.HallGuest {
	return model.HallGuest{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type HallBookingItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity"     validate:"required,min=1"`
}

type CreateHallBookingRequest struct {
	Guest         HallGuestRequest         `json:"guest"          validate:"required"`
	EventDate     string                   `json:"event_date"     validate:"required,datetime=2006-01-02"`
	Session       string                   `json:"session"        validate:"required,oneof=MORNING EVENING FULL_DAY"`
	TotalAmount   float64                  `json:"total_amount"   validate:"required,gt=0"`
	AdvanceAmount float64                  `json:"advance_amount" validate:"omitempty,gte=0"`
	Notes         string                   `json:"notes"          validate:"omitempty,max=500"`
	Items         []HallBookingItemRequest `json:"items"          validate:"omitempty,dive"`
}

func (c *CreateHallBookingRequest) ParsedEventDate() (time.Time, error) {
	return time.Parse(constant.DateOnlyFormat, c.EventDate)
}

func (c *CreateHallBookingRequest) ToModel(guestID string, eventDate time.Time, user string) model.HallBooking {
	return model.HallBooking{
		ID:            uuid.NewString(),
		HallGuestID:   guestID,
		EventDate:     eventDate,
		Session:       c.Session,
		Status:        constant.HallBookingStatusConfirmed,
		TotalAmount:   c.TotalAmount,
		AdvanceAmount: c.AdvanceAmount,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func NewHallBookingItem(hallBookingID string, item menuModel.MenuItem, quantity int) model.HallBookingItem {
	return model.HallBookingItem{
		ID:            uuid.NewString(),
		HallBookingID: hallBookingID,
		MenuItemID:    item.ID,
		Name:          item.Name,
		Price:         item.Price,
		Quantity:      quantity,
	}
}

type UpdatePaymentRequest struct {
	AdvanceAmount *float64 `db:"advance_amount" json:"advance_amount" validate:"omitempty,gte=0"`
	ExtraAmount   *float64 `db:"extra_amount"   json:"extra_amount"   validate:"omitempty,gte=0"`
}

type UpdateNotesRequest struct {
	Notes string `db:"notes" json:"notes" validate:"required,max=500"`
}

type AvailabilityRequest struct {
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
	Session   string `json:"session"    validate:"required,oneof=MORNING EVENING FULL_DAY"`
}

type AvailabilityResponse struct {
	Available         bool   `json:"available"`
	BlockingBookingID string `json:"blocking_booking_id,omitempty"`
}

type HallGuestResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	gDto.Metadata
}

func (r *HallGuestResponse) FromModel(model model.HallGuest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetHallGuestsResponse struct {
	Guests    []HallGuestResponse `json:"guests"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetHallGuestsResponse) FromModels(models []model.HallGuest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]HallGuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

type HallBookingItemResponse struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

func (r *HallBookingItemResponse) FromModel(model model.HallBookingItem) {
	r.ID = model.ID
	r.MenuItemID = model.MenuItemID
	r.Name = model.Name
	r.Price = model.Price
	r.Quantity = model.Quantity
}

type HallBookingResponse struct {
	ID            string                    `json:"id"`
	HallGuestID   string                    `json:"hall_guest_id"`
	EventDate     string                    `json:"event_date"`
	Session       string                    `json:"session"`
	Status        string                    `json:"status"`
	TotalAmount   float64                   `json:"total_amount"`
	AdvanceAmount float64                   `json:"advance_amount"`
	ExtraAmount   float64                   `json:"extra_amount"`
	Notes         string                    `json:"notes,omitempty"`
	Items         []HallBookingItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *HallBookingResponse) FromModel(model model.HallBooking) {
	r.ID = model.ID
	r.HallGuestID = model.HallGuestID
	r.EventDate = model.EventDate.Format(constant.DateOnlyFormat)
	r.Session = model.Session
	r.Status = model.Status
	r.TotalAmount = model.TotalAmount
	r.AdvanceAmount = model.AdvanceAmount
	r.ExtraAmount = model.ExtraAmount
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

func (r *HallBookingResponse) WithItems(items []model.HallBookingItem) {
	r.Items = make([]HallBookingItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type GetHallBookingsResponse struct {
	Bookings  []HallBookingResponse `json:"bookings"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetHallBookingsResponse) FromModels(models []model.HallBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]HallBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
