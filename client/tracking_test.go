package client

import (
	"testing"

	"github.com/echoshil/rentalanbuildercamp/models"

	"github.com/stretchr/testify/assert"
)

func TestTimeline(t *testing.T) {
	tests := []struct {
		name       string
		pembayaran models.PaymentStatus
		pengiriman models.ShipmentStatus
		wantDone   [4]bool
	}{
		{"baru_dibuat", models.PaymentPending, models.ShipmentPending, [4]bool{true, false, false, false}},
		{"sudah_lunas", models.PaymentLunas, models.ShipmentPending, [4]bool{true, true, false, false}},
		{"sedang_dikirim", models.PaymentLunas, models.ShipmentDikirim, [4]bool{true, true, true, false}},
		{"sudah_diterima", models.PaymentLunas, models.ShipmentDiterima, [4]bool{true, true, true, true}},
		{"dikirim_sebelum_lunas", models.PaymentPending, models.ShipmentDikirim, [4]bool{true, false, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &models.Order{
				StatusPembayaran: tt.pembayaran,
				StatusPengiriman: tt.pengiriman,
			}
			steps := Timeline(order)
			for i, want := range tt.wantDone {
				assert.Equal(t, want, steps[i].Done, "langkah %d (%s)", i, steps[i].Label)
			}
		})
	}
}
