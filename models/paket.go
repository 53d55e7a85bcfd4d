package models

import "time"

type Paket struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Nama      string      `gorm:"size:180;not null" json:"nama"`
	Deskripsi string      `gorm:"type:text" json:"deskripsi"`
	Harga     float64     `gorm:"not null" json:"harga"` // harga flat per hari
	Foto      string      `gorm:"size:500" json:"foto"`
	Items     []PaketItem `gorm:"foreignKey:PaketID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type PaketItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PaketID  uint   `gorm:"index" json:"paket_id"`
	BarangID uint   `json:"barang_id"`
	Barang   Barang `json:"barang"` // preload
	Nama     string `gorm:"size:180" json:"nama"`
	Jumlah   int    `gorm:"not null" json:"jumlah"`
}
