package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/echoshil/rentalanbuildercamp/config"
	"github.com/echoshil/rentalanbuildercamp/models"
	"github.com/echoshil/rentalanbuildercamp/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBarangNotFound = errors.New("barang tidak ditemukan")
	ErrStokKurang     = errors.New("stok tidak cukup")
)

type OrderItemInput struct {
	BarangID uint `json:"barang_id"`
	Jumlah   int  `json:"jumlah"`
	Durasi   int  `json:"durasi"`
}

type CreateOrderInput struct {
	Items            []OrderItemInput `json:"items"`
	AlamatPengiriman string           `json:"alamat_pengiriman"`
	NoTelepon        string           `json:"no_telepon"`
	Catatan          string           `json:"catatan"`
	BuktiPembayaran  string           `json:"bukti_pembayaran"`
}

// buildOrderItems memvalidasi setiap baris lewat lookup dan membekukan
// harga + sub total saat itu juga. Tidak ada baris yang dipersist di sini;
// semua validasi selesai sebelum insert. Jumlah diminta dihitung kumulatif
// per barang supaya barang yang sama di dua baris tidak lolos cek stok.
func buildOrderItems(inputs []OrderItemInput, lookup func(uint) (*models.Barang, error)) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	diminta := map[uint]int{}
	var total float64

	for _, in := range inputs {
		if in.Jumlah <= 0 {
			return nil, 0, fmt.Errorf("jumlah untuk barang %d harus lebih dari 0", in.BarangID)
		}
		durasi := in.Durasi
		if durasi <= 0 {
			durasi = 1
		}

		barang, err := lookup(in.BarangID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, fmt.Errorf("%w: barang %d", ErrBarangNotFound, in.BarangID)
			}
			return nil, 0, err
		}

		diminta[in.BarangID] += in.Jumlah
		if barang.Stok < diminta[in.BarangID] {
			return nil, 0, fmt.Errorf("%w: stok %s tersedia %d, diminta %d",
				ErrStokKurang, barang.Nama, barang.Stok, diminta[in.BarangID])
		}

		subTotal := barang.Harga * float64(in.Jumlah) * float64(durasi)
		total += subTotal

		items = append(items, models.OrderItem{
			BarangID: barang.ID,
			Nama:     barang.Nama,
			Harga:    barang.Harga,
			Jumlah:   in.Jumlah,
			Durasi:   durasi,
			SubTotal: subTotal,
		})
	}

	return items, total, nil
}

func CreateOrder(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token tidak valid"})
		return
	}

	var in CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	if len(in.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Keranjang kosong"})
		return
	}
	if in.AlamatPengiriman == "" || in.NoTelepon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Alamat dan nomor telepon harus diisi"})
		return
	}
	if in.BuktiPembayaran == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bukti pembayaran harus diunggah"})
		return
	}

	var order models.Order

	// Transaksi + retry: nomor pesanan unik bisa bentrok walau sangat jarang.
	const maxRetries = 3
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		lastErr = config.DB.Transaction(func(tx *gorm.DB) error {
			// Lock row barang per baris supaya cek stok aman dari race
			// dengan pesanan lain yang berebut barang yang sama.
			lookup := func(id uint) (*models.Barang, error) {
				var b models.Barang
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&b, id).Error; err != nil {
					return nil, err
				}
				return &b, nil
			}

			items, total, err := buildOrderItems(in.Items, lookup)
			if err != nil {
				return err
			}

			// Stok dipotong di transaksi yang sama: pesanan memesan barangnya,
			// bukan cuma mengecek. Syarat stok >= jumlah diulang di UPDATE
			// supaya stok tidak pernah bisa turun di bawah nol.
			for _, it := range items {
				res := tx.Model(&models.Barang{}).
					Where("id = ? AND stok >= ?", it.BarangID, it.Jumlah).
					UpdateColumn("stok", gorm.Expr("stok - ?", it.Jumlah))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return fmt.Errorf("%w: stok %s tidak mencukupi", ErrStokKurang, it.Nama)
				}
			}

			order = models.Order{
				UserID:           uid,
				NomorPesanan:     utils.GenOrderNumber(time.Now()),
				Items:            items,
				TotalHarga:       total,
				StatusPembayaran: models.PaymentPending,
				StatusPengiriman: models.ShipmentPending,
				AlamatPengiriman: in.AlamatPengiriman,
				NoTelepon:        in.NoTelepon,
				Catatan:          in.Catatan,
				BuktiPembayaran:  in.BuktiPembayaran,
			}

			if err := tx.Create(&order).Error; err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return fmt.Errorf("unique_violation: %w", err)
				}
				return err
			}
			return nil
		})

		if lastErr == nil {
			c.JSON(http.StatusCreated, gin.H{
				"message": "Pesanan berhasil dibuat",
				"data": gin.H{
					"order_id":      order.ID,
					"nomor_pesanan": order.NomorPesanan,
					"total_harga":   order.TotalHarga,
				},
			})
			return
		}

		if strings.Contains(lastErr.Error(), "unique_violation") {
			continue
		}
		break
	}

	switch {
	case errors.Is(lastErr, ErrBarangNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": lastErr.Error()})
	case errors.Is(lastErr, ErrStokKurang):
		c.JSON(http.StatusBadRequest, gin.H{"message": lastErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error membuat pesanan", "error": lastErr.Error()})
	}
}

func GetMyOrders(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token tidak valid"})
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("Items.Barang").
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error mengambil pesanan", "error": err.Error()})
		return
	}

	utils.Success(c, "Pesanan berhasil diambil", orders)
}

func GetOrderByID(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token tidak valid"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items.Barang").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pesanan tidak ditemukan"})
		return
	}

	if order.UserID != uid {
		c.JSON(http.StatusForbidden, gin.H{"message": "Anda tidak memiliki akses ke pesanan ini"})
		return
	}

	utils.Success(c, "Pesanan berhasil diambil", order)
}

type UpdateOrderStatusInput struct {
	Status string `json:"status"`
}

func UpdateOrderStatus(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token tidak valid"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var in UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	next := models.ShipmentStatus(in.Status)
	if !models.ValidShipmentStatus(next) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status tidak valid"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pesanan tidak ditemukan"})
		return
	}

	if order.UserID != uid {
		c.JSON(http.StatusForbidden, gin.H{"message": "Anda tidak memiliki akses ke pesanan ini"})
		return
	}

	if !models.CanTransitionShipment(order.StatusPengiriman, next) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Status pengiriman tidak bisa berubah dari %s ke %s", order.StatusPengiriman, next),
		})
		return
	}

	if err := config.DB.Model(&order).Update("status_pengiriman", next).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error update pesanan", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status pesanan berhasil diupdate"})
}

func VerifyPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pesanan tidak ditemukan"})
		return
	}

	if err := config.DB.Model(&order).Update("status_pembayaran", models.PaymentLunas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error memverifikasi pembayaran", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pembayaran berhasil diverifikasi"})
}

func RejectPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID tidak valid"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pesanan tidak ditemukan"})
		return
	}

	// Tidak ada status "ditolak": pesanan kembali pending supaya
	// pelanggan bisa unggah ulang bukti pembayaran.
	if err := config.DB.Model(&order).Update("status_pembayaran", models.PaymentPending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error menolak pembayaran", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pembayaran ditolak. Pesanan kembali menunggu pembayaran"})
}
