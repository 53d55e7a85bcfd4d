package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/echoshil/rentalanbuildercamp/config"
	"github.com/echoshil/rentalanbuildercamp/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAllBarang(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if limit <= 0 || limit > 100 {
		limit = 12
	}

	q := config.DB.Model(&models.Barang{})

	if kategori := c.Query("kategori"); kategori != "" && kategori != "semua" {
		q = q.Where("kategori = ?", kategori)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("nama ILIKE ? OR deskripsi ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data barang", "error": err.Error()})
		return
	}

	var barangs []models.Barang
	offset := (page - 1) * limit
	if err := q.Offset(offset).Limit(limit).Order("id ASC").Find(&barangs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data barang", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Berhasil mengambil data barang",
		"data":    barangs,
		"pagination": gin.H{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

func GetBarangByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Barang tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Berhasil mengambil data barang", "data": barang})
}

func GetKategori(c *gin.Context) {
	var kategori []string
	if err := config.DB.Model(&models.Barang{}).
		Distinct("kategori").
		Order("kategori ASC").
		Pluck("kategori", &kategori).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil kategori", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Berhasil mengambil kategori", "data": kategori})
}

type BarangInput struct {
	Nama      string  `json:"nama"`
	Kategori  string  `json:"kategori"`
	Harga     float64 `json:"harga"`
	Stok      *int    `json:"stok"`
	Foto      string  `json:"foto"`
	Deskripsi string  `json:"deskripsi"`
}

func CreateBarang(c *gin.Context) {
	var in BarangInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	if in.Nama == "" || in.Kategori == "" || in.Harga <= 0 || in.Stok == nil || in.Foto == "" || in.Deskripsi == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Semua field harus diisi"})
		return
	}
	if *in.Stok < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Stok tidak boleh negatif"})
		return
	}

	barang := models.Barang{
		Nama:      in.Nama,
		Kategori:  in.Kategori,
		Harga:     in.Harga,
		Stok:      *in.Stok,
		Foto:      in.Foto,
		Deskripsi: in.Deskripsi,
	}

	if err := config.DB.Create(&barang).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat barang", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Barang berhasil dibuat", "data": barang})
}

type BarangUpdateInput struct {
	Nama      *string  `json:"nama,omitempty"`
	Kategori  *string  `json:"kategori,omitempty"`
	Harga     *float64 `json:"harga,omitempty"`
	Stok      *int     `json:"stok,omitempty"`
	Foto      *string  `json:"foto,omitempty"`
	Deskripsi *string  `json:"deskripsi,omitempty"`
}

func UpdateBarang(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Barang tidak ditemukan"})
		return
	}

	var in BarangUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	updates := map[string]any{}
	if in.Nama != nil {
		updates["nama"] = *in.Nama
	}
	if in.Kategori != nil {
		updates["kategori"] = *in.Kategori
	}
	if in.Harga != nil {
		updates["harga"] = *in.Harga
	}
	if in.Stok != nil {
		if *in.Stok < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Stok tidak boleh negatif"})
			return
		}
		updates["stok"] = *in.Stok
	}
	if in.Foto != nil {
		updates["foto"] = *in.Foto
	}
	if in.Deskripsi != nil {
		updates["deskripsi"] = *in.Deskripsi
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Tidak ada data yang diubah"})
		return
	}

	if err := config.DB.Model(&barang).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengupdate barang", "error": err.Error()})
		return
	}

	config.DB.First(&barang, barang.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Barang berhasil diupdate", "data": barang})
}

func DeleteBarang(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var barang models.Barang
	if err := config.DB.First(&barang, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Barang tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil barang", "error": err.Error()})
		return
	}

	if err := config.DB.Delete(&barang).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal hapus barang", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barang berhasil dihapus"})
}
