package config

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	Environment     string
	Port            string
	SessionSecret   string
	APIBaseURL      string
	APITimeout      time.Duration
	FrontendOrigins []string

	// singleton lock
	loadConfigOnce sync.Once
)

// LoadConfig loads configuration from .env or config.yaml using Viper
func LoadConfig() error {
	var loadError error
	loadConfigOnce.Do(func() {
		// Try to load config from .env first, then fallback to config.yaml
		viper.SetConfigFile(".env")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigFile("config.yaml")
			if err := viper.ReadInConfig(); err != nil {
				loadError = err
				log.Println("Gagal memuat file konfigurasi:", err)
				return
			}
		}

		// Assign variables from configuration
		Port = viper.GetString("PORT")
		Environment = viper.GetString("ENVIRONMENT")
		SessionSecret = viper.GetString("SESSION_SECRET")
		APIBaseURL = strings.TrimRight(viper.GetString("API_BASE_URL"), "/")

		timeoutSecs := viper.GetInt("API_TIMEOUT_SECONDS")
		if timeoutSecs <= 0 {
			timeoutSecs = 30
		}
		APITimeout = time.Duration(timeoutSecs) * time.Second

		origins := viper.GetString("FRONTEND_ORIGINS")
		if origins == "" {
			origins = "http://localhost:3000,http://127.0.0.1:3000"
		}
		FrontendOrigins = strings.Split(origins, ",")

		if APIBaseURL == "" {
			log.Println("⚠️ API_BASE_URL belum diatur, request ke API akan gagal")
		}

		log.Println("✅ Konfigurasi berhasil dimuat!")
	})

	return loadError
}
