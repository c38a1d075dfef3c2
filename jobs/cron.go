package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// BookingCompleter đánh dấu hoàn thành các booking đã qua ngày trả phòng
type BookingCompleter interface {
	CompleteExpiredBookings(ctx context.Context) (int64, error)
}

const completeBookingsTimeout = 2 * time.Minute

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, completer BookingCompleter) error {
	// Cron job chạy lúc 0h mỗi ngày
	if _, err := c.AddFunc("0 0 * * *", func() {
		runCompleteBookings(completer)
	}); err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

func runCompleteBookings(completer BookingCompleter) {
	ctx, cancel := context.WithTimeout(context.Background(), completeBookingsTimeout)
	defer cancel()

	log.Printf("Đang đánh dấu hoàn thành booking đã trả phòng lúc: %v", time.Now())
	updated, err := completer.CompleteExpiredBookings(ctx)
	if err != nil {
		log.Printf("Lỗi khi cập nhật trạng thái booking: %v", err)
		return
	}
	log.Printf("Đã đánh dấu hoàn thành %d booking", updated)
}
