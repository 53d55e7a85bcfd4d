package routes

import (
	"github.com/echoshil/rentalanbuildercamp/controllers"
	"github.com/echoshil/rentalanbuildercamp/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		// ================= AUTH =================
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)

			authed := auth.Group("/", middlewares.AuthMiddleware())
			authed.GET("/me", controllers.Me)
			authed.PUT("/profile", controllers.UpdateProfile)
		}

		// ================= KATALOG (publik) =================
		api.GET("/barang", controllers.GetAllBarang)
		api.GET("/barang/:id", controllers.GetBarangByID)
		api.GET("/kategori", controllers.GetKategori)
		api.GET("/paket", controllers.GetAllPaket)
		api.GET("/paket/:id", controllers.GetPaketByID)

		// ================= ADMIN: manajemen katalog =================
		adminOnly := api.Group("/", middlewares.AuthMiddleware(), middlewares.AdminOnly())
		{
			adminOnly.POST("/barang", controllers.CreateBarang)
			adminOnly.PUT("/barang/:id", controllers.UpdateBarang)
			adminOnly.DELETE("/barang/:id", controllers.DeleteBarang)

			adminOnly.POST("/paket", controllers.CreatePaket)
			adminOnly.PUT("/paket/:id", controllers.UpdatePaket)
			adminOnly.DELETE("/paket/:id", controllers.DeletePaket)

			adminOnly.PUT("/orders/:id/payment/verify", controllers.VerifyPayment)
			adminOnly.PUT("/orders/:id/payment/reject", controllers.RejectPayment)
		}

		// ================= ORDERS (pemilik) =================
		orders := api.Group("/orders", middlewares.AuthMiddleware())
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetMyOrders)
			orders.GET("/:id", controllers.GetOrderByID)
			orders.PUT("/:id/status", controllers.UpdateOrderStatus)
		}
	}
}
