package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/leenx3/Stayease-hotel/controllers"
	_ "github.com/leenx3/Stayease-hotel/docs"
	middlewares "github.com/leenx3/Stayease-hotel/middleware"
	"github.com/leenx3/Stayease-hotel/services"
	"github.com/leenx3/Stayease-hotel/services/logger"
	"github.com/leenx3/Stayease-hotel/services/notification"
	"github.com/leenx3/Stayease-hotel/validator"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options cấu hình phần hạ tầng cho các service
type Options struct {
	Logger   logger.Logger
	LockTTL  time.Duration
	Now      func() time.Time
	Uploader services.ImageUploader
}

// Services gom các service đã khởi tạo để main và cron dùng lại
type Services struct {
	Availability *services.AvailabilityService
	Bookings     *services.BookingService
	Rooms        *services.RoomService
	Customers    *services.CustomerService
	Logger       logger.Logger
}

func NewServices(db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody, opts Options) *Services {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	// Có Redis thì khóa phòng giữa các instance, không thì khóa trong process
	var locker services.RoomLocker = services.NewLocalRoomLocker()
	if redisCli != nil {
		locker = services.NewRedisRoomLocker(redisCli, opts.LockTTL)
	}

	uploader := opts.Uploader
	if uploader == nil && cld != nil {
		uploader = services.NewCloudinaryUploader(cld)
	}

	var notifier notification.Service
	if m != nil {
		notifier = notification.NewMelodyService(m)
	}

	availability := services.NewAvailabilityService(services.AvailabilityServiceOptions{
		DB:     db,
		Logger: opts.Logger,
		Now:    opts.Now,
	})
	bookings := services.NewBookingService(services.BookingServiceOptions{
		DB:           db,
		Redis:        redisCli,
		Locker:       locker,
		Notifier:     notifier,
		Availability: availability,
		Logger:       opts.Logger,
		Now:          opts.Now,
	})
	return &Services{
		Availability: availability,
		Bookings:     bookings,
		Rooms: services.NewRoomService(services.RoomServiceOptions{
			DB:       db,
			Locker:   locker,
			Uploader: uploader,
			Feed:     bookings,
			Logger:   opts.Logger,
		}),
		Customers: services.NewCustomerService(db),
		Logger:    opts.Logger,
	}
}

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody, opts Options) *Services {
	svc := NewServices(db, redisCli, cld, m, opts)
	RegisterRoutes(router, svc, redisCli, m)
	return svc
}

func RegisterRoutes(router *gin.Engine, svc *Services, redisCli *redis.Client, m *melody.Melody) {
	if err := validator.RegisterBindings(); err != nil {
		log.Printf("Không đăng ký được validator: %v", err)
	}

	roomController := controllers.NewRoomController(svc.Availability, svc.Rooms, redisCli, svc.Logger)
	bookingController := controllers.NewBookingController(svc.Bookings, svc.Customers, svc.Logger)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware(), middlewares.ErrorHandler(svc.Logger))

	//Phòng
	v1.GET("/rooms", roomController.ListAvailableRooms)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.DELETE("/rooms/filters", roomController.ClearFilters)

	//Booking
	v1.POST("/bookings", bookingController.SubmitBooking)
	v1.GET("/bookings/latest", bookingController.LatestBookings)
	v1.GET("/bookings/:id", bookingController.GetBooking)

	//Quản trị
	admin := v1.Group("/admin")
	admin.GET("/bookings", bookingController.ListBookings)
	admin.PUT("/bookings/complete", bookingController.MarkCompleted)
	admin.PUT("/bookings/:id", bookingController.EditBooking)
	admin.DELETE("/bookings/:id", bookingController.DeleteBooking)
	admin.GET("/customers", bookingController.ListCustomers)

	admin.GET("/rooms", roomController.ListRooms)
	admin.POST("/rooms", roomController.CreateRoom)
	admin.PUT("/rooms/:id", roomController.UpdateRoom)
	admin.DELETE("/rooms/:id", roomController.DeleteRoom)
	admin.POST("/rooms/:id/avatar", roomController.UploadRoomAvatar)

	//ws
	if m != nil {
		m.HandleConnect(func(s *melody.Session) {
			svc.Logger.Debug("Websocket kết nối: %s", s.Request.RemoteAddr)
		})
		v1.GET("/ws", func(c *gin.Context) {
			m.HandleRequest(c.Writer, c.Request)
		})
	}
}
