package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/echoshil/rentalanbuildercamp/config"
	"github.com/echoshil/rentalanbuildercamp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPayment_AdminMengubahStatusKeLunas(t *testing.T) {
	r := setupAPI(t)
	_, adminToken := seedUser(t, "admin@rentalan.id", true)
	pelanggan, _ := seedUser(t, "budi@example.com", false)
	order := seedOrder(t, pelanggan.ID)

	w := doJSON(t, r, http.MethodPut,
		fmt.Sprintf("/api/orders/%d/payment/verify", order.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	require.NoError(t, config.DB.First(&updated, order.ID).Error)
	assert.Equal(t, models.PaymentLunas, updated.StatusPembayaran)
	// verifikasi pembayaran tidak menyentuh status pengiriman
	assert.Equal(t, models.ShipmentPending, updated.StatusPengiriman)
}

func TestRejectPayment_PesananKembaliPending(t *testing.T) {
	r := setupAPI(t)
	_, adminToken := seedUser(t, "admin@rentalan.id", true)
	pelanggan, _ := seedUser(t, "budi@example.com", false)
	order := seedOrder(t, pelanggan.ID)

	require.NoError(t, config.DB.Model(&order).
		Update("status_pembayaran", models.PaymentLunas).Error)

	w := doJSON(t, r, http.MethodPut,
		fmt.Sprintf("/api/orders/%d/payment/reject", order.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	require.NoError(t, config.DB.First(&updated, order.ID).Error)
	assert.Equal(t, models.PaymentPending, updated.StatusPembayaran)
}

func TestVerifyPayment_BukanAdminDitolak(t *testing.T) {
	r := setupAPI(t)
	pelanggan, token := seedUser(t, "budi@example.com", false)
	order := seedOrder(t, pelanggan.ID)

	w := doJSON(t, r, http.MethodPut,
		fmt.Sprintf("/api/orders/%d/payment/verify", order.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Hanya admin")

	// status tidak boleh berubah
	var updated models.Order
	require.NoError(t, config.DB.First(&updated, order.ID).Error)
	assert.Equal(t, models.PaymentPending, updated.StatusPembayaran)
}

func TestVerifyPayment_TanpaToken(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPut, "/api/orders/1/payment/verify", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyPayment_PesananTidakDitemukan(t *testing.T) {
	r := setupAPI(t)
	_, adminToken := seedUser(t, "admin@rentalan.id", true)

	w := doJSON(t, r, http.MethodPut, "/api/orders/999/payment/verify", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminOnly_BarangHanyaUntukAdmin(t *testing.T) {
	r := setupAPI(t)
	_, adminToken := seedUser(t, "admin@rentalan.id", true)
	_, token := seedUser(t, "budi@example.com", false)

	input := map[string]any{
		"nama":      "Tenda Dome",
		"kategori":  models.KategoriTidur,
		"harga":     100000,
		"stok":      5,
		"foto":      "https://cdn.example.com/barang/tenda-dome.jpg",
		"deskripsi": "Tenda dome kapasitas 4 orang",
	}

	w := doJSON(t, r, http.MethodPost, "/api/barang", token, input)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/barang", adminToken, input)
	assert.Equal(t, http.StatusCreated, w.Code)
}
