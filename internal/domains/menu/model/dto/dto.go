package dto

import (
	"hotelier/internal/domains/menu/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	Name      string  `json:"name"      validate:"required,max=100"`
	Category  string  `json:"category"  validate:"required,max=50"`
	Price     float64 `json:"price"     validate:"required,gt=0"`
	Veg       bool    `json:"veg"`
	Available *bool   `json:"available" validate:"omitempty"`
}

func (c *CreateMenuItemRequest) ToModel(user string) model.MenuItem {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.MenuItem{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Category:  c.Category,
		Price:     c.Price,
		Veg:       c.Veg,
		Available: available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMenuItemRequest struct {
	Name      string   `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Category  string   `db:"category"  json:"category"  validate:"omitempty,max=50"`
	Price     *float64 `db:"price"     json:"price"     validate:"omitempty,gt=0"`
	Veg       *bool    `db:"veg"       json:"veg"       validate:"omitempty"`
	Available *bool    `db:"available" json:"available" validate:"omitempty"`
}

type MenuItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Veg       bool    `json:"veg"`
	Available bool    `json:"available"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Price = model.Price
	r.Veg = model.Veg
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetMenuItemsResponse struct {
	MenuItems []MenuItemResponse `json:"menu_items"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MenuItems = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.MenuItems[i].FromModel(mod)
	}
}
