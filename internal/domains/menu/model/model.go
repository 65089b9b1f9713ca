package model

import "hotelier/shared/model"

const (
	TableName  = "menu_items"
	EntityName = "menu item"

	FieldID        = "id"
	FieldName      = "name"
	FieldCategory  = "category"
	FieldPrice     = "price"
	FieldVeg       = "veg"
	FieldAvailable = "available"
)

type MenuItem struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Category  string  `db:"category"`
	Price     float64 `db:"price"`
	Veg       bool    `db:"veg"`
	Available bool    `db:"available"`
	model.Metadata
}
