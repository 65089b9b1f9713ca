package dto

import (
	menuModel "hotelier/internal/domains/menu/model"
	"hotelier/internal/domains/order/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity"     validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (c *CreateOrderRequest) ToModel(bookingID string, total float64, user string) model.Order {
	return model.Order{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Status:    constant.OrderStatusPending,
		Total:     total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func NewOrderItem(orderID string, item menuModel.MenuItem, quantity int) model.OrderItem {
	return model.OrderItem{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   quantity,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PREPARING DELIVERED CANCELLED"`
}

type StatusUpdate struct {
	Status string `db:"status"`
}

type OrderItemResponse struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

func (r *OrderItemResponse) FromModel(model model.OrderItem) {
	r.ID = model.ID
	r.MenuItemID = model.MenuItemID
	r.Name = model.Name
	r.Price = model.Price
	r.Quantity = model.Quantity
}

type OrderResponse struct {
	ID        string              `json:"id"`
	BookingID string              `json:"booking_id"`
	Status    string              `json:"status"`
	Total     float64             `json:"total"`
	Items     []OrderItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(model model.Order) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Status = model.Status
	r.Total = model.Total
	r.Metadata.FromModel(model.Metadata)
}

func (r *OrderResponse) WithItems(items []model.OrderItem) {
	r.Items = make([]OrderItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}
