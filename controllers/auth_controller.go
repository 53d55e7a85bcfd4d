package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/echoshil/rentalanbuildercamp/config"
	"github.com/echoshil/rentalanbuildercamp/models"
	"github.com/echoshil/rentalanbuildercamp/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nama      string `json:"nama"`
	NoTelepon string `json:"no_telepon"`
}

func Register(c *gin.Context) {
	var in RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	if in.Email == "" || in.Password == "" || in.Nama == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email, password, dan nama harus diisi"})
		return
	}
	if len(in.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password minimal 6 karakter"})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email sudah terdaftar"})
		return
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saat mendaftar", "error": err.Error()})
		return
	}

	user := models.User{
		Email:        in.Email,
		PasswordHash: hash,
		Nama:         in.Nama,
		NoTelepon:    in.NoTelepon,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// Dua pendaftaran bersamaan bisa lolos cek First di atas;
		// unique index pada email yang jadi penentu akhirnya.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email sudah terdaftar"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saat mendaftar", "error": err.Error()})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saat mendaftar", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Pendaftaran berhasil",
		"token":   token,
		"data":    user,
	})
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	if in.Email == "" || in.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email dan password harus diisi"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", in.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau password salah"})
		return
	}

	if !utils.CheckPassword(in.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau password salah"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saat login", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login berhasil",
		"token":   token,
		"data":    user,
	})
}

func Me(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token tidak valid"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User tidak ditemukan"})
		return
	}

	utils.Success(c, "Berhasil mengambil profil", user)
}

type UpdateProfileInput struct {
	Nama      *string `json:"nama,omitempty"`
	NoTelepon *string `json:"no_telepon,omitempty"`
	Alamat    *string `json:"alamat,omitempty"`
	Kota      *string `json:"kota,omitempty"`
}

func UpdateProfile(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token tidak valid"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User tidak ditemukan"})
		return
	}

	var in UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	updates := map[string]any{}
	if in.Nama != nil {
		updates["nama"] = *in.Nama
	}
	if in.NoTelepon != nil {
		updates["no_telepon"] = *in.NoTelepon
	}
	if in.Alamat != nil {
		updates["alamat"] = *in.Alamat
	}
	if in.Kota != nil {
		updates["kota"] = *in.Kota
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Tidak ada data yang diubah"})
		return
	}
	updates["updated_at"] = time.Now()

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memperbarui profil", "error": err.Error()})
		return
	}

	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memuat ulang profil", "error": err.Error()})
		return
	}

	utils.Success(c, "Profil berhasil diperbarui", user)
}
