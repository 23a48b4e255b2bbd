package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// AppOrigin is the public origin embedded into QR verification URLs,
	// e.g. https://e-certificates.example.com
	AppOrigin string

	// VerifyDomain is the address printed on the back-face banner.
	VerifyDomain string

	ContactPhone string
	ContactEmail string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	UploadFolder        string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ no .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppOrigin = GetEnv("APP_ORIGIN", "http://localhost:3000")
	VerifyDomain = GetEnv("VERIFY_DOMAIN", "https://e-certificates.bureauveritas.com")

	ContactPhone = GetEnv("CONTACT_PHONE", "For any queries: Tel. 00966 13 99439017")
	ContactEmail = GetEnv("CONTACT_EMAIL", "abdullah.shehri@bureauveritas.com")

	CloudinaryCloudName = GetEnv("CLOUDINARY_CLOUD_NAME")
	CloudinaryAPIKey = GetEnv("CLOUDINARY_API_KEY")
	CloudinaryAPISecret = GetEnv("CLOUDINARY_API_SECRET")
	UploadFolder = GetEnv("CLOUDINARY_UPLOAD_FOLDER", "e-verification/users")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if CloudinaryAPISecret == "" {
		log.Println("⚠️ CLOUDINARY_API_SECRET is not set, upload signatures will fail")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
