package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/booking/service"
	orderModel "hotelier/internal/domains/order/model"
	"hotelier/shared/constant"
)

func TestStayNights(t *testing.T) {
	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "same instant counts as one night",
			checkIn:  base,
			checkOut: base,
			want:     1,
		},
		{
			name:     "a few hours counts as one night",
			checkIn:  base,
			checkOut: base.Add(6 * time.Hour),
			want:     1,
		},
		{
			name:     "exactly 24 hours is one night",
			checkIn:  base,
			checkOut: base.Add(24 * time.Hour),
			want:     1,
		},
		{
			name:     "just over 24 hours rolls to two nights",
			checkIn:  base,
			checkOut: base.Add(24*time.Hour + time.Minute),
			want:     2,
		},
		{
			name:     "three full days",
			checkIn:  base,
			checkOut: base.Add(72 * time.Hour),
			want:     3,
		},
		{
			name:     "swapped timestamps still bill the stay",
			checkIn:  base.Add(30 * time.Hour),
			checkOut: base,
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.StayNights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeInvoice(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(50 * time.Hour)

	orders := []orderModel.Order{
		{Status: constant.OrderStatusDelivered, Total: 450},
		{Status: constant.OrderStatusPending, Total: 120},
		{Status: constant.OrderStatusCancelled, Total: 999},
	}

	invoice := service.ComputeInvoice(checkIn, checkOut, 1500, orders)

	assert.Equal(t, 3, invoice.Nights)
	assert.InDelta(t, 4500.0, invoice.RoomTotal, 0.001)
	assert.InDelta(t, 570.0, invoice.FoodTotal, 0.001)
	assert.InDelta(t, 253.5, invoice.Tax, 0.001)
	assert.InDelta(t, 5323.5, invoice.GrandTotal, 0.001)
}

func TestComputeInvoiceTwoNightStayWithCancelledOrder(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)

	orders := []orderModel.Order{
		{Status: constant.OrderStatusDelivered, Total: 200},
		{Status: constant.OrderStatusCancelled, Total: 500},
	}

	invoice := service.ComputeInvoice(checkIn, checkOut, 800, orders)

	assert.Equal(t, 2, invoice.Nights)
	assert.InDelta(t, 1600.0, invoice.RoomTotal, 0.001)
	assert.InDelta(t, 200.0, invoice.FoodTotal, 0.001)
	assert.InDelta(t, 90.0, invoice.Tax, 0.001)
	assert.InDelta(t, 1890.0, invoice.GrandTotal, 0.001)
}

func TestComputeInvoiceNoOrders(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	invoice := service.ComputeInvoice(checkIn, checkIn.Add(3*time.Hour), 1000, nil)

	assert.Equal(t, 1, invoice.Nights)
	assert.InDelta(t, 1000.0, invoice.RoomTotal, 0.001)
	assert.Zero(t, invoice.FoodTotal)
	assert.InDelta(t, 50.0, invoice.Tax, 0.001)
	assert.InDelta(t, 1050.0, invoice.GrandTotal, 0.001)
}
