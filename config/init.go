package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()
	router.Use(cors.New(corsConfig(CorsOrigins())))
	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

func corsConfig(origins []string) cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("X-Session-ID")
	configCors.AddExposeHeaders("X-Session-ID")
	configCors.AllowCredentials = true
	if len(origins) > 0 {
		configCors.AllowOrigins = origins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	return configCors
}

func initComponents() error {
	if err := LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %v", err)
	}

	if err := ConnectDB(); err != nil {
		return err
	}
	if err := Migrate(DB); err != nil {
		return fmt.Errorf("failed to migrate tables: %v", err)
	}

	ConnectCloudinary()

	// Thiếu Redis thì chạy không cache và khóa phòng trong process
	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		log.Printf("Không kết nối được Redis, chạy không có cache: %v", err)
		RedisClient = nil
	}

	log.Println("All components initialized successfully")
	return nil
}
