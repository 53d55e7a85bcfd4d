package main

import (
	"log"
	"os"

	"github.com/echoshil/rentalanbuildercamp/config"
	"github.com/echoshil/rentalanbuildercamp/models"
	"github.com/echoshil/rentalanbuildercamp/routes"
	"github.com/echoshil/rentalanbuildercamp/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, pakai environment yang ada")
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Barang{},
		&models.Paket{},
		&models.PaketItem{},
		&models.Order{},
		&models.OrderItem{},
	)

	config.SeedData()

	// override secret dari ENV
	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.SecretKey = []byte(s)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "RentCamp API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
