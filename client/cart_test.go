package client

import (
	"testing"

	"github.com/echoshil/rentalanbuildercamp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tenda  = models.Barang{ID: 1, Nama: "Tenda Dome", Harga: 450000, Stok: 8}
	matras = models.Barang{ID: 2, Nama: "Matras Gulung", Harga: 80000, Stok: 20}
)

func TestCart_AddDanTotal(t *testing.T) {
	cart := NewCart(NewMemoryStore())

	require.NoError(t, cart.Add(tenda, 1, 3))
	require.NoError(t, cart.Add(matras, 2, 3))

	// 450000*1*3 + 80000*2*3 = 1350000 + 480000
	assert.Equal(t, float64(1830000), cart.TotalHarga())
	assert.Len(t, cart.Items(), 2)
}

func TestCart_AddBarangSamaMenggabungJumlah(t *testing.T) {
	cart := NewCart(NewMemoryStore())

	require.NoError(t, cart.Add(tenda, 1, 2))
	require.NoError(t, cart.Add(tenda, 2, 5))

	require.Len(t, cart.Items(), 1)
	it := cart.Items()[0]
	assert.Equal(t, 3, it.Jumlah)
	// durasi ditimpa, bukan dijumlah
	assert.Equal(t, 5, it.Durasi)
}

func TestCart_PersistDanReload(t *testing.T) {
	store := NewMemoryStore()

	cart := NewCart(store)
	require.NoError(t, cart.Add(tenda, 1, 2))
	require.NoError(t, cart.Add(matras, 4, 2))

	ulang := NewCart(store)
	require.Len(t, ulang.Items(), 2)
	assert.Equal(t, cart.TotalHarga(), ulang.TotalHarga())
}

func TestCart_UpdateDanRemove(t *testing.T) {
	cart := NewCart(NewMemoryStore())
	require.NoError(t, cart.Add(tenda, 1, 2))
	require.NoError(t, cart.Add(matras, 2, 2))

	require.NoError(t, cart.Update(tenda.ID, 3, 4))
	it := cart.Items()[0]
	assert.Equal(t, 3, it.Jumlah)
	assert.Equal(t, 4, it.Durasi)

	// jumlah nol berarti hapus
	require.NoError(t, cart.Update(matras.ID, 0, 1))
	assert.Len(t, cart.Items(), 1)

	require.NoError(t, cart.Remove(tenda.ID))
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.TotalHarga())
}

func TestCart_Clear(t *testing.T) {
	store := NewMemoryStore()
	cart := NewCart(store)
	require.NoError(t, cart.Add(tenda, 1, 1))

	require.NoError(t, cart.Clear())
	assert.Empty(t, cart.Items())

	// store juga ikut kosong
	ulang := NewCart(store)
	assert.Empty(t, ulang.Items())
}

func TestCart_IsiStoreRusakDiabaikan(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyCart, "{rusak"))

	cart := NewCart(store)
	assert.Empty(t, cart.Items())
}
