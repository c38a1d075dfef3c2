package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/leenx3/Stayease-hotel/constants"
	"github.com/leenx3/Stayease-hotel/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary đọc CLOUDINARY_URL, không có thì tắt upload ảnh
func ConnectCloudinary() {
	url := GetEnv("CLOUDINARY_URL")
	if url == "" {
		log.Println("CLOUDINARY_URL chưa được cấu hình, bỏ qua upload ảnh")
		return
	}
	var err error
	Cloudinary, err = cloudinary.NewFromURL(url)
	if err != nil {
		log.Fatalf("Lỗi khi khởi tạo Cloudinary: %v", err)
	}
}

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault trả về fallback khi biến môi trường rỗng
func GetEnvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LogLevel đọc mức log từ LOG_LEVEL
func LogLevel() logger.Level {
	return logger.ParseLevel(GetEnv("LOG_LEVEL"))
}

// RoomLockTTL đọc ROOM_LOCK_TTL (vd "10s"), sai định dạng thì dùng mặc định
func RoomLockTTL() time.Duration {
	raw := GetEnv("ROOM_LOCK_TTL")
	if raw == "" {
		return constants.DefaultRoomLockTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("ROOM_LOCK_TTL không hợp lệ (%q), dùng %v", raw, constants.DefaultRoomLockTTL)
		return constants.DefaultRoomLockTTL
	}
	return ttl
}

// CorsOrigins đọc CORS_ORIGINS, danh sách rỗng nghĩa là cho phép mọi origin
func CorsOrigins() []string {
	var origins []string
	for _, o := range strings.Split(GetEnv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
