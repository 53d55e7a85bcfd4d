package config

import (
	"log"
	"os"

	"github.com/echoshil/rentalanbuildercamp/models"
	"github.com/echoshil/rentalanbuildercamp/utils"
)

var seedBarang = []models.Barang{
	{
		Nama:      "Tenda Dome 2-4 Orang",
		Kategori:  models.KategoriTidur,
		Harga:     450000,
		Stok:      8,
		Foto:      "https://images.unsplash.com/photo-1478827143991-c4b8b8f35b1c?w=500&h=500&fit=crop",
		Deskripsi: "Tenda dome berkualitas tinggi untuk 2-4 orang dengan material tahan air dan angin.",
	},
	{
		Nama:      "Flysheet / Tarp",
		Kategori:  models.KategoriTidur,
		Harga:     150000,
		Stok:      15,
		Foto:      "https://images.unsplash.com/photo-1492277388267-68d1a21c9d6a?w=500&h=500&fit=crop",
		Deskripsi: "Flysheet waterproof untuk melindungi tenda dari hujan dan angin kuat.",
	},
	{
		Nama:      "Matras Gulung",
		Kategori:  models.KategoriTidur,
		Harga:     80000,
		Stok:      20,
		Foto:      "https://images.unsplash.com/photo-1583643521511-2bacce30f853?w=500&h=500&fit=crop",
		Deskripsi: "Matras gulung ringan dan portabel untuk tidur nyaman di alam terbuka.",
	},
	{
		Nama:      "Sleeping Bag",
		Kategori:  models.KategoriTidur,
		Harga:     250000,
		Stok:      12,
		Foto:      "https://images.unsplash.com/photo-1500633489496-01bd3d0f77be?w=500&h=500&fit=crop",
		Deskripsi: "Sleeping bag berkualitas dengan bahan thermal untuk kehangatan maksimal.",
	},
	{
		Nama:      "Kompor Portable",
		Kategori:  models.KategoriMasak,
		Harga:     120000,
		Stok:      12,
		Foto:      "https://images.unsplash.com/photo-1584568694244-14fbbc50e598?w=500&h=500&fit=crop",
		Deskripsi: "Kompor portable yang praktis untuk memasak di camping dengan berbagai bahan bakar.",
	},
	{
		Nama:      "Panci Nesting / Cooking Set",
		Kategori:  models.KategoriMasak,
		Harga:     180000,
		Stok:      14,
		Foto:      "https://images.unsplash.com/photo-1578500494198-246f612d03b3?w=500&h=500&fit=crop",
		Deskripsi: "Set panci nesting lengkap yang dapat disusun untuk efisiensi ruang.",
	},
	{
		Nama:      "Headlamp LED",
		Kategori:  models.KategoriNavigasi,
		Harga:     60000,
		Stok:      25,
		Foto:      "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=500&h=500&fit=crop",
		Deskripsi: "Headlamp LED terang dengan baterai tahan lama untuk aktivitas malam.",
	},
	{
		Nama:      "Lentera Camping",
		Kategori:  models.KategoriNavigasi,
		Harga:     75000,
		Stok:      18,
		Foto:      "https://images.unsplash.com/photo-1470246973918-29a93221c455?w=500&h=500&fit=crop",
		Deskripsi: "Lentera camping dengan pengaturan kecerahan untuk penerangan tenda.",
	},
	{
		Nama:      "Carrier 60L",
		Kategori:  models.KategoriTas,
		Harga:     200000,
		Stok:      10,
		Foto:      "https://images.unsplash.com/photo-1501554728187-ce583db33af7?w=500&h=500&fit=crop",
		Deskripsi: "Tas carrier 60 liter dengan rangka punggung nyaman untuk pendakian panjang.",
	},
	{
		Nama:      "Trekking Pole (Sepasang)",
		Kategori:  models.KategoriLainnya,
		Harga:     90000,
		Stok:      16,
		Foto:      "https://images.unsplash.com/photo-1551632811-561732d1e306?w=500&h=500&fit=crop",
		Deskripsi: "Sepasang trekking pole aluminium ringan untuk menjaga keseimbangan.",
	},
}

// SeedData mengisi akun admin, katalog barang, dan paket contoh.
// Idempotent: tabel yang sudah terisi dilewati.
func SeedData() {
	var cnt int64

	DB.Model(&models.User{}).Where("is_admin = true").Count(&cnt)
	if cnt == 0 {
		pass := os.Getenv("ADMIN_PASSWORD")
		if pass == "" {
			pass = "admin123"
		}
		hash, err := utils.HashPassword(pass)
		if err != nil {
			log.Printf("Gagal hash password admin: %v", err)
			return
		}
		admin := models.User{
			Email:        "admin@rentcamp.id",
			PasswordHash: hash,
			Nama:         "Admin RentCamp",
			IsAdmin:      true,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("Gagal seed admin: %v", err)
		}
	}

	DB.Model(&models.Barang{}).Count(&cnt)
	if cnt == 0 {
		if err := DB.Create(&seedBarang).Error; err != nil {
			log.Printf("Gagal seed barang: %v", err)
			return
		}
	}

	DB.Model(&models.Paket{}).Count(&cnt)
	if cnt == 0 {
		seedPaket()
	}
}

func seedPaket() {
	findBarang := func(nama string) (models.Barang, bool) {
		var b models.Barang
		if err := DB.Where("nama = ?", nama).First(&b).Error; err != nil {
			return models.Barang{}, false
		}
		return b, true
	}

	type paketDef struct {
		nama      string
		deskripsi string
		harga     float64
		foto      string
		isi       map[string]int // nama barang -> jumlah
	}

	defs := []paketDef{
		{
			nama:      "Paket Camping Berdua",
			deskripsi: "Paket hemat untuk dua orang: tenda, sleeping bag, matras, dan penerangan.",
			harga:     850000,
			foto:      "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=500&h=500&fit=crop",
			isi: map[string]int{
				"Tenda Dome 2-4 Orang": 1,
				"Sleeping Bag":         2,
				"Matras Gulung":        2,
				"Headlamp LED":         2,
			},
		},
		{
			nama:      "Paket Masak Lengkap",
			deskripsi: "Perlengkapan masak lapangan: kompor, cooking set, dan lentera.",
			harga:     320000,
			foto:      "https://images.unsplash.com/photo-1578500494198-246f612d03b3?w=500&h=500&fit=crop",
			isi: map[string]int{
				"Kompor Portable":             1,
				"Panci Nesting / Cooking Set": 1,
				"Lentera Camping":             1,
			},
		},
	}

	for _, d := range defs {
		p := models.Paket{
			Nama:      d.nama,
			Deskripsi: d.deskripsi,
			Harga:     d.harga,
			Foto:      d.foto,
		}
		for nama, jumlah := range d.isi {
			b, ok := findBarang(nama)
			if !ok {
				continue
			}
			p.Items = append(p.Items, models.PaketItem{
				BarangID: b.ID,
				Nama:     b.Nama,
				Jumlah:   jumlah,
			})
		}
		if err := DB.Create(&p).Error; err != nil {
			log.Printf("Gagal seed paket %q: %v", d.nama, err)
		}
	}
}
