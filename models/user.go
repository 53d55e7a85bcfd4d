package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:180;not null" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"` // jangan dikirim ke client
	Nama         string    `gorm:"size:180;not null" json:"nama"`
	NoTelepon    string    `gorm:"size:60" json:"no_telepon"`
	Alamat       string    `gorm:"size:255" json:"alamat"`
	Kota         string    `gorm:"size:120" json:"kota"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
