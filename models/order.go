package models

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentLunas   PaymentStatus = "lunas"
)

type ShipmentStatus string

const (
	ShipmentPending  ShipmentStatus = "pending"
	ShipmentDikirim  ShipmentStatus = "dikirim"
	ShipmentDiterima ShipmentStatus = "diterima"
)

// Status pengiriman hanya boleh maju.
var validNextShipment = map[ShipmentStatus]map[ShipmentStatus]bool{
	ShipmentPending:  {ShipmentDikirim: true},
	ShipmentDikirim:  {ShipmentDiterima: true},
	ShipmentDiterima: {},
}

func ValidShipmentStatus(s ShipmentStatus) bool {
	_, ok := validNextShipment[s]
	return ok
}

func CanTransitionShipment(from, to ShipmentStatus) bool {
	return validNextShipment[from][to]
}

type Order struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UserID           uint           `gorm:"index;not null" json:"user_id"`
	NomorPesanan     string         `gorm:"uniqueIndex;size:40;not null" json:"nomor_pesanan"`
	Items            []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalHarga       float64        `gorm:"not null" json:"total_harga"`
	StatusPembayaran PaymentStatus  `gorm:"size:12;index" json:"status_pembayaran"`
	StatusPengiriman ShipmentStatus `gorm:"size:12;index" json:"status_pengiriman"`
	AlamatPengiriman string         `gorm:"size:255;not null" json:"alamat_pengiriman"`
	NoTelepon        string         `gorm:"size:60;not null" json:"no_telepon"`
	Catatan          string         `gorm:"type:text" json:"catatan"`
	BuktiPembayaran  string         `gorm:"type:text" json:"bukti_pembayaran"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// OrderItem adalah snapshot barang saat pesan; harga historis tidak ikut berubah
// kalau harga Barang diedit belakangan.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index" json:"order_id"`
	BarangID uint    `json:"barang_id"`
	Barang   Barang  `json:"barang"` // preload
	Nama     string  `gorm:"size:180" json:"nama"`
	Harga    float64 `gorm:"not null" json:"harga"`
	Jumlah   int     `gorm:"not null" json:"jumlah"`
	Durasi   int     `gorm:"not null;default:1" json:"durasi"` // hari
	SubTotal float64 `gorm:"not null" json:"sub_total"`
}
