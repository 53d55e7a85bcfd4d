package controllers

import (
	"testing"

	"github.com/echoshil/rentalanbuildercamp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fakeLookup(stok map[uint]models.Barang) func(uint) (*models.Barang, error) {
	return func(id uint) (*models.Barang, error) {
		b, ok := stok[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return &b, nil
	}
}

func TestBuildOrderItems_TotalSamaDenganJumlahSubTotal(t *testing.T) {
	katalog := map[uint]models.Barang{
		1: {ID: 1, Nama: "Tenda Dome", Harga: 100000, Stok: 2},
		2: {ID: 2, Nama: "Sleeping Bag", Harga: 250000, Stok: 12},
	}

	items, total, err := buildOrderItems([]OrderItemInput{
		{BarangID: 1, Jumlah: 2, Durasi: 3},
		{BarangID: 2, Jumlah: 1, Durasi: 2},
	}, fakeLookup(katalog))
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 100000 * 2 * 3 = 600000
	assert.Equal(t, float64(600000), items[0].SubTotal)
	// 250000 * 1 * 2 = 500000
	assert.Equal(t, float64(500000), items[1].SubTotal)

	var sum float64
	for _, it := range items {
		sum += it.SubTotal
	}
	assert.Equal(t, sum, total)
}

func TestBuildOrderItems_SnapshotHarga(t *testing.T) {
	katalog := map[uint]models.Barang{
		1: {ID: 1, Nama: "Tenda Dome", Harga: 450000, Stok: 8},
	}

	items, _, err := buildOrderItems([]OrderItemInput{
		{BarangID: 1, Jumlah: 1, Durasi: 1},
	}, fakeLookup(katalog))
	require.NoError(t, err)

	assert.Equal(t, "Tenda Dome", items[0].Nama)
	assert.Equal(t, float64(450000), items[0].Harga)
	assert.Equal(t, uint(1), items[0].BarangID)
}

func TestBuildOrderItems_DurasiDefaultSatuHari(t *testing.T) {
	katalog := map[uint]models.Barang{
		1: {ID: 1, Nama: "Matras", Harga: 80000, Stok: 20},
	}

	items, total, err := buildOrderItems([]OrderItemInput{
		{BarangID: 1, Jumlah: 2},
	}, fakeLookup(katalog))
	require.NoError(t, err)

	assert.Equal(t, 1, items[0].Durasi)
	assert.Equal(t, float64(160000), total)
}

func TestBuildOrderItems_BarangTidakDitemukan(t *testing.T) {
	items, _, err := buildOrderItems([]OrderItemInput{
		{BarangID: 99, Jumlah: 1, Durasi: 1},
	}, fakeLookup(nil))

	assert.ErrorIs(t, err, ErrBarangNotFound)
	assert.Nil(t, items)
}

func TestBuildOrderItems_StokKurang(t *testing.T) {
	katalog := map[uint]models.Barang{
		1: {ID: 1, Nama: "Tenda Dome", Harga: 100000, Stok: 2},
	}

	items, _, err := buildOrderItems([]OrderItemInput{
		{BarangID: 1, Jumlah: 3, Durasi: 1},
	}, fakeLookup(katalog))

	assert.ErrorIs(t, err, ErrStokKurang)
	assert.Nil(t, items)
}

func TestBuildOrderItems_ValidasiSebelumBarisBerikutnya(t *testing.T) {
	katalog := map[uint]models.Barang{
		1: {ID: 1, Nama: "Tenda Dome", Harga: 100000, Stok: 2},
		2: {ID: 2, Nama: "Carrier", Harga: 200000, Stok: 1},
	}

	// baris kedua gagal stok; tidak boleh ada hasil parsial
	items, total, err := buildOrderItems([]OrderItemInput{
		{BarangID: 1, Jumlah: 1, Durasi: 1},
		{BarangID: 2, Jumlah: 5, Durasi: 1},
	}, fakeLookup(katalog))

	assert.ErrorIs(t, err, ErrStokKurang)
	assert.Nil(t, items)
	assert.Zero(t, total)
}

func TestBuildOrderItems_BarangSamaDiDuaBaris(t *testing.T) {
	katalog := map[uint]models.Barang{
		1: {ID: 1, Nama: "Tenda Dome", Harga: 100000, Stok: 2},
	}

	// dua baris untuk barang yang sama: per baris masih di bawah stok,
	// tapi totalnya 4 dari stok 2
	items, total, err := buildOrderItems([]OrderItemInput{
		{BarangID: 1, Jumlah: 2, Durasi: 1},
		{BarangID: 1, Jumlah: 2, Durasi: 1},
	}, fakeLookup(katalog))

	assert.ErrorIs(t, err, ErrStokKurang)
	assert.Nil(t, items)
	assert.Zero(t, total)
}

func TestBuildOrderItems_BarangSamaMasihDalamStok(t *testing.T) {
	katalog := map[uint]models.Barang{
		1: {ID: 1, Nama: "Tenda Dome", Harga: 100000, Stok: 4},
	}

	items, total, err := buildOrderItems([]OrderItemInput{
		{BarangID: 1, Jumlah: 2, Durasi: 1},
		{BarangID: 1, Jumlah: 2, Durasi: 2},
	}, fakeLookup(katalog))
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 100000*2*1 + 100000*2*2 = 600000
	assert.Equal(t, float64(600000), total)
}

func TestBuildOrderItems_JumlahNol(t *testing.T) {
	katalog := map[uint]models.Barang{
		1: {ID: 1, Nama: "Tenda Dome", Harga: 100000, Stok: 2},
	}

	_, _, err := buildOrderItems([]OrderItemInput{
		{BarangID: 1, Jumlah: 0, Durasi: 1},
	}, fakeLookup(katalog))

	assert.Error(t, err)
}
