package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/room/model"
	"hotelier/shared/constant"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"available to occupied", constant.RoomStatusAvailable, constant.RoomStatusOccupied, true},
		{"available to maintenance", constant.RoomStatusAvailable, constant.RoomStatusMaintenance, true},
		{"occupied to cleaning", constant.RoomStatusOccupied, constant.RoomStatusCleaning, true},
		{"cleaning to available", constant.RoomStatusCleaning, constant.RoomStatusAvailable, true},
		{"maintenance to available", constant.RoomStatusMaintenance, constant.RoomStatusAvailable, true},
		{"available to cleaning is not allowed", constant.RoomStatusAvailable, constant.RoomStatusCleaning, false},
		{"occupied to available skips cleaning", constant.RoomStatusOccupied, constant.RoomStatusAvailable, false},
		{"occupied to maintenance is not allowed", constant.RoomStatusOccupied, constant.RoomStatusMaintenance, false},
		{"cleaning to occupied is not allowed", constant.RoomStatusCleaning, constant.RoomStatusOccupied, false},
		{"maintenance to occupied is not allowed", constant.RoomStatusMaintenance, constant.RoomStatusOccupied, false},
		{"unknown status has no transitions", "UNKNOWN", constant.RoomStatusAvailable, false},
		{"no self transition", constant.RoomStatusAvailable, constant.RoomStatusAvailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}
