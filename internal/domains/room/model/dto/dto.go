package dto

import (
	"mime/multipart"

	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number       string                `json:"number"        validate:"required,max=20"`
	Type         string                `json:"type"          validate:"required,max=50"`
	Occupancy    int                   `json:"occupancy"     validate:"required,min=1"`
	NightlyPrice float64               `json:"nightly_price" validate:"required,gt=0"`
	Image        *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	var owner *string
	if user != constant.Empty {
		owner = &user
	}

	return model.Room{
		ID:           uuid.NewString(),
		Number:       c.Number,
		Type:         c.Type,
		Occupancy:    c.Occupancy,
		NightlyPrice: c.NightlyPrice,
		Status:       constant.RoomStatusAvailable,
		Image:        imageURL,
		OwnerID:      owner,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number       string                `db:"number"        json:"number"        validate:"omitempty,max=20"`
	Type         string                `db:"type"          json:"type"          validate:"omitempty,max=50"`
	Occupancy    *int                  `db:"occupancy"     json:"occupancy"     validate:"omitempty,min=1"`
	NightlyPrice *float64              `db:"nightly_price" json:"nightly_price" validate:"omitempty,gt=0"`
	Image        *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE OCCUPIED CLEANING MAINTENANCE"`
}

type RoomResponse struct {
	ID           string  `json:"id"`
	Number       string  `json:"number"`
	Type         string  `json:"type"`
	Occupancy    int     `json:"occupancy"`
	NightlyPrice float64 `json:"nightly_price"`
	Status       string  `json:"status"`
	Image        string  `json:"image"`
	OwnerID      *string `json:"owner_id,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Occupancy = model.Occupancy
	r.NightlyPrice = model.NightlyPrice
	r.Status = model.Status
	r.Image = model.Image
	r.OwnerID = model.OwnerID
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
