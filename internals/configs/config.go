package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	MidtransServerKey string
	// Zona waktu venue (single fixed timezone per tenant, tanpa multi-timezone).
	VenueLocation *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if MidtransServerKey == "" {
		log.Println("❌ MIDTRANS_SERVER_KEY belum diset!")
	} else {
		log.Println("✅ MIDTRANS_SERVER_KEY berhasil dimuat.")
	}

	VenueLocation = loadVenueLocation()
}

// GetEnv mengambil ENV dengan fallback string kosong.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOr mengambil ENV dengan default value.
func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// loadVenueLocation membaca TIMEZONE (default Asia/Jakarta).
// Semua jadwal & occurrence dihitung pada satu zona waktu venue ini.
func loadVenueLocation() *time.Location {
	name := GetEnvOr("TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ TIMEZONE %q tidak valid, fallback ke Asia/Jakarta: %v", name, err)
		loc = time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// GetVenueLocation aman dipanggil sebelum LoadEnv (mis. dari unit test).
func GetVenueLocation() *time.Location {
	if VenueLocation == nil {
		VenueLocation = loadVenueLocation()
	}
	return VenueLocation
}
