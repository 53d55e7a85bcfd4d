package client

import (
	"encoding/json"
	"errors"

	"github.com/echoshil/rentalanbuildercamp/models"
)

type CartItem struct {
	BarangID uint          `json:"barang_id"`
	Barang   models.Barang `json:"barang"`
	Jumlah   int           `json:"jumlah"`
	Durasi   int           `json:"durasi"` // hari
}

// Cart adalah keranjang belanja, padanan CartContext di SPA.
// Setiap perubahan langsung dipersist ke Store.
type Cart struct {
	store Store
	items []CartItem
}

func NewCart(store Store) *Cart {
	c := &Cart{store: store}
	if raw, ok := store.Get(KeyCart); ok && raw != "" {
		// isi rusak diabaikan, keranjang mulai kosong
		_ = json.Unmarshal([]byte(raw), &c.items)
	}
	return c
}

func (c *Cart) Items() []CartItem { return c.items }

func (c *Cart) save() error {
	raw, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	return c.store.Set(KeyCart, string(raw))
}

// Add menambah barang ke keranjang. Barang yang sudah ada digabung
// jumlahnya dan durasinya ditimpa dengan nilai baru.
func (c *Cart) Add(barang models.Barang, jumlah, durasi int) error {
	if jumlah <= 0 {
		return errors.New("jumlah harus lebih dari 0")
	}
	if durasi <= 0 {
		durasi = 1
	}

	for i := range c.items {
		if c.items[i].BarangID == barang.ID {
			c.items[i].Jumlah += jumlah
			c.items[i].Durasi = durasi
			return c.save()
		}
	}

	c.items = append(c.items, CartItem{
		BarangID: barang.ID,
		Barang:   barang,
		Jumlah:   jumlah,
		Durasi:   durasi,
	})
	return c.save()
}

// Update mengganti jumlah dan durasi satu entri; jumlah <= 0 menghapusnya.
func (c *Cart) Update(barangID uint, jumlah, durasi int) error {
	if jumlah <= 0 {
		return c.Remove(barangID)
	}
	for i := range c.items {
		if c.items[i].BarangID == barangID {
			c.items[i].Jumlah = jumlah
			c.items[i].Durasi = durasi
			return c.save()
		}
	}
	return nil
}

func (c *Cart) Remove(barangID uint) error {
	out := c.items[:0]
	for _, it := range c.items {
		if it.BarangID != barangID {
			out = append(out, it)
		}
	}
	c.items = out
	return c.save()
}

func (c *Cart) Clear() error {
	c.items = nil
	return c.save()
}

// TotalHarga dihitung ulang setiap dipanggil, tidak dicache.
func (c *Cart) TotalHarga() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Barang.Harga * float64(it.Jumlah) * float64(it.Durasi)
	}
	return total
}

type CheckoutInput struct {
	AlamatPengiriman string
	NoTelepon        string
	Catatan          string
	BuktiPembayaran  string
}

// Checkout mengirim isi keranjang sebagai pesanan lalu mengosongkan
// keranjang kalau berhasil.
func (c *Cart) Checkout(api *Client, in CheckoutInput) (*CreateOrderResult, error) {
	if len(c.items) == 0 {
		return nil, errors.New("keranjang kosong")
	}

	req := CreateOrderRequest{
		AlamatPengiriman: in.AlamatPengiriman,
		NoTelepon:        in.NoTelepon,
		Catatan:          in.Catatan,
		BuktiPembayaran:  in.BuktiPembayaran,
	}
	for _, it := range c.items {
		req.Items = append(req.Items, OrderLineRequest{
			BarangID: it.BarangID,
			Jumlah:   it.Jumlah,
			Durasi:   it.Durasi,
		})
	}

	result, err := api.CreateOrder(req)
	if err != nil {
		return nil, err
	}

	if err := c.Clear(); err != nil {
		return result, err
	}
	return result, nil
}
