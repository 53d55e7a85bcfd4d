package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidShipmentStatus(t *testing.T) {
	assert.True(t, ValidShipmentStatus(ShipmentPending))
	assert.True(t, ValidShipmentStatus(ShipmentDikirim))
	assert.True(t, ValidShipmentStatus(ShipmentDiterima))
	assert.False(t, ValidShipmentStatus("dibatalkan"))
	assert.False(t, ValidShipmentStatus(""))
}

func TestCanTransitionShipment(t *testing.T) {
	tests := []struct {
		name string
		from ShipmentStatus
		to   ShipmentStatus
		want bool
	}{
		{"pending_ke_dikirim", ShipmentPending, ShipmentDikirim, true},
		{"dikirim_ke_diterima", ShipmentDikirim, ShipmentDiterima, true},
		{"pending_ke_diterima_loncat", ShipmentPending, ShipmentDiterima, false},
		{"dikirim_mundur_ke_pending", ShipmentDikirim, ShipmentPending, false},
		{"diterima_final", ShipmentDiterima, ShipmentDikirim, false},
		{"status_asing", ShipmentPending, "hilang", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionShipment(tt.from, tt.to))
		})
	}
}
