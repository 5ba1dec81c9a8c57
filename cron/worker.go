package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"smarthome/config"
	booking "smarthome/services/booking"
)

const TypeBookingExpire = "booking:expire"

// InitExpiryWorker runs the async worker and its scheduler in background.
// Every sweep cancels bookings that stayed pending and unpaid past the
// configured age.
func InitExpiryWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, handleExpireTask(bookingSvc))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeBookingExpire, nil)); err != nil {
		log.Printf("[ExpiryWorker] failed to register schedule: %v", err)
		return
	}

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ExpiryWorker] worker stopped: %v", err)
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ExpiryWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleExpireTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		maxAge := time.Duration(config.AppConfig.BookingExpiryHours) * time.Hour
		expired, err := bookingSvc.ExpireStaleBookings(maxAge)
		if err != nil {
			return err
		}
		if expired > 0 {
			log.Printf("[ExpiryWorker] cancelled %d stale bookings", expired)
		}
		return nil
	}
}
