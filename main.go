package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"frontend-go/config"
	"frontend-go/controllers"
	"frontend-go/middleware"
	"frontend-go/routes"
	"frontend-go/services"
	"frontend-go/views"
	"frontend-go/workers"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Fatal("Gagal memuat konfigurasi:", err)
	}

	config.InitLogger()

	services.InitAPIClient(config.APIBaseURL, config.APITimeout)

	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	trustedProxies := []string{"127.0.0.1", "::1"}
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		log.Fatal("Gagal menetapkan proxy tepercaya:", err)
	}

	corsConfig := cors.Config{
		AllowOrigins:     config.FrontendOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	sessionKey := []byte(config.SessionSecret)
	if len(sessionKey) == 0 {
		log.Fatal("Session secret key belum dikonfigurasi")
	}
	store := cookie.NewStore(sessionKey)
	store.Options(sessions.Options{Path: "/", MaxAge: 86400, HttpOnly: true, SameSite: http.SameSiteStrictMode})
	r.Use(sessions.Sessions("mysession", store))

	r.SetFuncMap(views.FuncMap())
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// Worker untuk snapshot statistik dashboard
	refresher := workers.NewStatsRefresher(5 * time.Minute)
	refresher.Start()
	controllers.InitDashboard(refresher)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		refresher.Stop()
		os.Exit(0)
	}()

	routes.SetupRoutes(r)

	serverAddr := ":" + config.Port
	log.Printf("Server starting on %s", serverAddr)
	if err := r.Run(serverAddr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
