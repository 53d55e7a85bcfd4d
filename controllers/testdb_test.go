package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/echoshil/rentalanbuildercamp/config"
	"github.com/echoshil/rentalanbuildercamp/models"
	"github.com/echoshil/rentalanbuildercamp/routes"
	"github.com/echoshil/rentalanbuildercamp/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupAPI mengarahkan config.DB ke SQLite in-memory sehingga handler dan
// middleware bisa diuji lewat router sungguhan tanpa Postgres berjalan.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Barang{},
		&models.Paket{},
		&models.PaketItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func seedUser(t *testing.T, email string, admin bool) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("rahasia1")
	require.NoError(t, err)

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Nama:         "Penguji",
		IsAdmin:      admin,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)
	return user, token
}

func seedOrder(t *testing.T, userID uint) models.Order {
	t.Helper()

	order := models.Order{
		UserID:           userID,
		NomorPesanan:     utils.GenOrderNumber(time.Now()),
		TotalHarga:       600000,
		StatusPembayaran: models.PaymentPending,
		StatusPengiriman: models.ShipmentPending,
		AlamatPengiriman: "Jl. Merdeka No. 1, Bandung",
		NoTelepon:        "08123456789",
		BuktiPembayaran:  "https://cdn.example.com/bukti/trf-001.jpg",
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return order
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
