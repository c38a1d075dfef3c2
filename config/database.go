package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/leenx3/Stayease-hotel/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type dbSettings struct {
	User, Password, Host, Port, Name string
}

func getDBConfigByEnv(env string) (string, error) {
	var prefix string
	switch env {
	case "dev":
		prefix = "DEV_"
	case "qc":
		prefix = "QC_"
	case "prod":
		prefix = "PROD_"
	default:
		return "", fmt.Errorf("unknown environment: %q", env)
	}

	s := dbSettings{
		User:     os.Getenv(prefix + "DB_USER"),
		Password: os.Getenv(prefix + "DB_PASSWORD"),
		Host:     os.Getenv(prefix + "DB_HOST"),
		Port:     os.Getenv(prefix + "DB_PORT"),
		Name:     os.Getenv(prefix + "DB_NAME"),
	}
	return buildDSN(s, GetEnvDefault("DB_SSLMODE", "require"), GetEnvDefault("DB_TIMEZONE", "Asia/Ho_Chi_Minh")), nil
}

func buildDSN(s dbSettings, sslMode, timezone string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		s.Host, s.User, s.Password, s.Name, s.Port, sslMode, timezone)
}

// dialectorFor chọn driver: pgx (mặc định) hoặc lib/pq khi DB_DRIVER=postgres
func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "pgx":
		return postgres.Open(dsn), nil
	case "postgres", "pq":
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: dsn}), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %q", driver)
	}
}

func ConnectDB() error {
	env := os.Getenv("ENV")
	dsn, err := getDBConfigByEnv(env)
	if err != nil {
		return err
	}
	dialector, err := dialectorFor(os.Getenv("DB_DRIVER"), dsn)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("fail to connect to db: %w", err)
	}

	log.Printf("Successfully connected to db (env=%s)", env)
	return nil
}

// Migrate tạo hoặc cập nhật các bảng customers, rooms, bookings
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{}, &models.Room{}, &models.Booking{})
}
