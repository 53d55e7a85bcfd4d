package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/echoshil/rentalanbuildercamp/config"
	"github.com/echoshil/rentalanbuildercamp/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAllPaket(c *gin.Context) {
	var pakets []models.Paket
	if err := config.DB.Preload("Items.Barang").Find(&pakets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data paket", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Berhasil mengambil data paket", "data": pakets})
}

func GetPaketByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var paket models.Paket
	if err := config.DB.Preload("Items.Barang").First(&paket, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Paket tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Berhasil mengambil data paket", "data": paket})
}

type PaketItemInput struct {
	BarangID uint `json:"barang_id"`
	Jumlah   int  `json:"jumlah"`
}

type PaketInput struct {
	Nama      string           `json:"nama"`
	Deskripsi string           `json:"deskripsi"`
	Harga     float64          `json:"harga"`
	Foto      string           `json:"foto"`
	Items     []PaketItemInput `json:"items"`
}

func CreatePaket(c *gin.Context) {
	var in PaketInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	if in.Nama == "" || in.Harga <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nama dan harga harus diisi"})
		return
	}

	paket := models.Paket{
		Nama:      in.Nama,
		Deskripsi: in.Deskripsi,
		Harga:     in.Harga,
		Foto:      in.Foto,
	}

	for _, it := range in.Items {
		if it.Jumlah <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Jumlah item paket harus lebih dari 0"})
			return
		}
		var barang models.Barang
		if err := config.DB.First(&barang, it.BarangID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Barang %d tidak ditemukan", it.BarangID)})
			return
		}
		paket.Items = append(paket.Items, models.PaketItem{
			BarangID: barang.ID,
			Nama:     barang.Nama,
			Jumlah:   it.Jumlah,
		})
	}

	if err := config.DB.Create(&paket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat paket", "error": err.Error()})
		return
	}

	config.DB.Preload("Items.Barang").First(&paket, paket.ID)

	c.JSON(http.StatusCreated, gin.H{"message": "Paket berhasil dibuat", "data": paket})
}

type PaketUpdateInput struct {
	Nama      *string  `json:"nama,omitempty"`
	Deskripsi *string  `json:"deskripsi,omitempty"`
	Harga     *float64 `json:"harga,omitempty"`
	Foto      *string  `json:"foto,omitempty"`
}

func UpdatePaket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var paket models.Paket
	if err := config.DB.First(&paket, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Paket tidak ditemukan"})
		return
	}

	var in PaketUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	updates := map[string]any{}
	if in.Nama != nil {
		updates["nama"] = *in.Nama
	}
	if in.Deskripsi != nil {
		updates["deskripsi"] = *in.Deskripsi
	}
	if in.Harga != nil {
		updates["harga"] = *in.Harga
	}
	if in.Foto != nil {
		updates["foto"] = *in.Foto
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Tidak ada data yang diubah"})
		return
	}

	if err := config.DB.Model(&paket).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengupdate paket", "error": err.Error()})
		return
	}

	config.DB.Preload("Items.Barang").First(&paket, paket.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Paket berhasil diupdate", "data": paket})
}

func DeletePaket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var paket models.Paket
	if err := config.DB.First(&paket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Paket tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil paket", "error": err.Error()})
		return
	}

	// item paket ikut terhapus lewat constraint CASCADE
	if err := config.DB.Select("Items").Delete(&paket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal hapus paket", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paket berhasil dihapus"})
}
