package model

import (
	"hotelier/shared/constant"
	"hotelier/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldNumber       = "number"
	FieldType         = "type"
	FieldOccupancy    = "occupancy"
	FieldNightlyPrice = "nightly_price"
	FieldStatus       = "status"
	FieldImage        = "image"
	FieldOwnerID      = "owner_id"
)

type Room struct {
	ID           string  `db:"id"`
	Number       string  `db:"number"`
	Type         string  `db:"type"`
	Occupancy    int     `db:"occupancy"`
	NightlyPrice float64 `db:"nightly_price"`
	Status       string  `db:"status"`
	Image        string  `db:"image"`
	OwnerID      *string `db:"owner_id"`
	model.Metadata
}

// legalTransitions is the room lifecycle: AVAILABLE -> OCCUPIED -> CLEANING ->
// AVAILABLE, with MAINTENANCE reachable only from AVAILABLE.
var legalTransitions = map[string][]string{
	constant.RoomStatusAvailable:   {constant.RoomStatusOccupied, constant.RoomStatusMaintenance},
	constant.RoomStatusOccupied:    {constant.RoomStatusCleaning},
	constant.RoomStatusCleaning:    {constant.RoomStatusAvailable},
	constant.RoomStatusMaintenance: {constant.RoomStatusAvailable},
}

func CanTransition(from, to string) bool {
	for _, allowed := range legalTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}
