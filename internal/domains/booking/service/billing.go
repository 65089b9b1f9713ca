package service

import (
	"math"
	"time"

	orderModel "hotelier/internal/domains/order/model"
	"hotelier/shared/constant"
)

// TaxRate is the flat tax applied on top of room and food charges.
const TaxRate = 0.05

// Invoice is the itemized bill for a stay. GrandTotal is the only amount
// persisted on the booking; the breakdown is recomputed on demand.
type Invoice struct {
	Nights     int
	RoomTotal  float64
	FoodTotal  float64
	Tax        float64
	GrandTotal float64
}

// StayNights charges per started 24-hour block, with a minimum of one night.
// The absolute duration makes the result insensitive to swapped timestamps.
func StayNights(checkIn, checkOut time.Time) int {
	duration := checkOut.Sub(checkIn)
	if duration < 0 {
		duration = -duration
	}

	nights := int(math.Ceil(duration.Hours() / 24))
	if nights < 1 {
		nights = 1
	}

	return nights
}

// ComputeInvoice prices a stay from the room rate and the guest's food
// orders. Cancelled orders are excluded; all other statuses are billable.
func ComputeInvoice(checkIn, checkOut time.Time, nightlyRate float64, orders []orderModel.Order) Invoice {
	nights := StayNights(checkIn, checkOut)
	roomTotal := float64(nights) * nightlyRate

	var foodTotal float64
	for _, order := range orders {
		if order.Status == constant.OrderStatusCancelled {
			continue
		}

		foodTotal += order.Total
	}

	tax := TaxRate * (roomTotal + foodTotal)

	return Invoice{
		Nights:     nights,
		RoomTotal:  roomTotal,
		FoodTotal:  foodTotal,
		Tax:        tax,
		GrandTotal: roomTotal + foodTotal + tax,
	}
}
