package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/order/model"
	"hotelier/shared/constant"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to preparing", constant.OrderStatusPending, constant.OrderStatusPreparing, true},
		{"pending to cancelled", constant.OrderStatusPending, constant.OrderStatusCancelled, true},
		{"preparing to delivered", constant.OrderStatusPreparing, constant.OrderStatusDelivered, true},
		{"pending cannot jump to delivered", constant.OrderStatusPending, constant.OrderStatusDelivered, false},
		{"preparing cannot be cancelled", constant.OrderStatusPreparing, constant.OrderStatusCancelled, false},
		{"delivered is terminal", constant.OrderStatusDelivered, constant.OrderStatusPending, false},
		{"cancelled is terminal", constant.OrderStatusCancelled, constant.OrderStatusPreparing, false},
		{"no self transition", constant.OrderStatusPending, constant.OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}
