package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/hall/model"
	"hotelier/shared/constant"
)

func TestBlocks(t *testing.T) {
	tests := []struct {
		name      string
		existing  string
		requested string
		want      bool
	}{
		{"same session blocks", constant.HallSessionMorning, constant.HallSessionMorning, true},
		{"full day blocks morning", constant.HallSessionFullDay, constant.HallSessionMorning, true},
		{"full day blocks evening", constant.HallSessionFullDay, constant.HallSessionEvening, true},
		{"morning blocks full day request", constant.HallSessionMorning, constant.HallSessionFullDay, true},
		{"evening blocks full day request", constant.HallSessionEvening, constant.HallSessionFullDay, true},
		{"morning and evening coexist", constant.HallSessionMorning, constant.HallSessionEvening, false},
		{"evening and morning coexist", constant.HallSessionEvening, constant.HallSessionMorning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Blocks(tt.existing, tt.requested))
		})
	}
}
