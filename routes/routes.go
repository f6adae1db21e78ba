package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frontend-go/controllers"
	"frontend-go/middleware"
)

// SetupRoutes mengatur semua rute utama aplikasi
func SetupRoutes(r *gin.Engine) {

	// Rute publik untuk autentikasi
	r.GET("/login", controllers.ShowLogin)
	r.POST("/login", controllers.Login)
	r.GET("/register", controllers.ShowRegister)
	r.POST("/register", controllers.Register)
	r.POST("/logout", controllers.Logout)

	// Rute utama: daftar buku
	data := r.Group("/data", middleware.LoginRequired())
	{
		data.GET("", controllers.DataList)
		data.POST("", controllers.CreateBook)
		data.POST("/:id/update", controllers.UpdateBook)
		data.POST("/:id/delete", controllers.DeleteBook)
		data.POST("/:id/borrow", controllers.BorrowBook)
		data.POST("/:id/return", controllers.ReturnBook)
	}

	// Rute transaksi peminjaman
	r.GET("/borrow", middleware.LoginRequired(), controllers.BorrowList)
	r.GET("/returned", middleware.LoginRequired(), controllers.ReturnedList)

	// Rute profil
	r.GET("/profile", middleware.LoginRequired(), controllers.Profile)
	r.POST("/profile", middleware.LoginRequired(), controllers.UpdateProfile)

	// Rute admin: manajemen pengguna dan dashboard
	users := r.Group("/users", middleware.LoginRequired(), middleware.AdminOnly())
	{
		users.GET("", controllers.UsersList)
		users.POST("", controllers.CreateUser)
		users.POST("/:id/update", controllers.UpdateUser)
		users.POST("/:id/delete", controllers.DeleteUser)
	}

	r.GET("/dashboard", middleware.LoginRequired(), middleware.AdminOnly(), controllers.Dashboard)

	// Rute JSON untuk modal detail dan grafik dashboard
	api := r.Group("/api", middleware.LoginRequired())
	{
		api.GET("/book/:id", controllers.BookDetailJSON)
		api.GET("/stats", middleware.AdminOnly(), controllers.DashboardStatsJSON)
	}

	// Root diarahkan ke daftar buku
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/data")
	})
}
