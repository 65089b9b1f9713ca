package model

import (
	"hotelier/shared/constant"
	"hotelier/shared/model"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldStatus    = "status"
	FieldTotal     = "total"

	ItemTableName  = "order_items"
	ItemEntityName = "order item"

	ItemFieldID         = "id"
	ItemFieldOrderID    = "order_id"
	ItemFieldMenuItemID = "menu_item_id"
	ItemFieldName       = "name"
	ItemFieldPrice      = "price"
	ItemFieldQuantity   = "quantity"
)

type Order struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	Status    string  `db:"status"`
	Total     float64 `db:"total"`
	model.Metadata
}

// OrderItem carries a snapshot of the menu item's name and price at order
// time, so later menu edits never rewrite past bills.
type OrderItem struct {
	ID         string  `db:"id"`
	OrderID    string  `db:"order_id"`
	MenuItemID string  `db:"menu_item_id"`
	Name       string  `db:"name"`
	Price      float64 `db:"price"`
	Quantity   int     `db:"quantity"`
}

// legalTransitions is the kitchen flow: PENDING -> PREPARING -> DELIVERED,
// with CANCELLED reachable from PENDING only.
var legalTransitions = map[string][]string{
	constant.OrderStatusPending:   {constant.OrderStatusPreparing, constant.OrderStatusCancelled},
	constant.OrderStatusPreparing: {constant.OrderStatusDelivered},
}

func CanTransition(from, to string) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}
