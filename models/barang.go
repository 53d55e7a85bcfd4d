package models

import "time"

// Kategori bawaan katalog (dipakai seed; list kategori di API diambil distinct dari DB).
const (
	KategoriTidur    = "Peralatan Tidur"
	KategoriMasak    = "Peralatan Masak & Makan"
	KategoriNavigasi = "Navigasi & Penerangan"
	KategoriTas      = "Tas & Carrier"
	KategoriLainnya  = "Lainnya"
)

type Barang struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:180;not null" json:"nama"`
	Kategori  string    `gorm:"size:120;index" json:"kategori"`
	Harga     float64   `gorm:"not null" json:"harga"` // harga sewa per hari
	Stok      int       `gorm:"not null;default:0" json:"stok"`
	Foto      string    `gorm:"size:500" json:"foto"`
	Deskripsi string    `gorm:"type:text" json:"deskripsi"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
