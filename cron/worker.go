package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fieldbook/config"
	bookingRepo "fieldbook/database/repository/booking"
	"fieldbook/models"
	"fieldbook/services/scheduling"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReconcileWorker runs the async worker in background. It handles
// repair reconciles enqueued after booking mutations and sweeps past
// confirmed bookings into the completed state once a day.
func InitReconcileWorker(engine scheduling.SchedulingService, bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(scheduling.TypeScheduleReconcile, handleReconcileTask(engine))

	// Start Redis health monitor
	go monitorRedisConnection()

	go completionSweep(engine, bookings)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReconcileTask(engine scheduling.SchedulingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p scheduling.ReconcilePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReconcileHandler] invalid payload: %v", err)
			return err
		}

		if err := engine.ReconcileDay(ctx, p.FacilityID, p.Date); err != nil {
			log.Printf("[ReconcileHandler] reconcile %s/%s failed: %v", p.FacilityID, p.Date, err)
			return err
		}
		return nil
	}
}

// completionSweep marks confirmed bookings on past days as completed
// and reconciles the affected schedules. Completed bookings no longer
// count toward conflicts, so the sweep keeps old days tidy without
// touching live state.
func completionSweep(engine scheduling.SchedulingService, bookings bookingRepo.BookingRepository) {
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		stale, err := bookings.List(ctx, bookingRepo.Query{
			Statuses: []string{models.BookingStatusConfirmed},
			ToDate:   yesterday,
		})
		if err != nil {
			log.Printf("[CompletionSweep] list failed: %v", err)
		}

		for _, b := range stale {
			if err := bookings.UpdateStatus(ctx, b.ID, models.BookingStatusCompleted); err != nil {
				log.Printf("[CompletionSweep] complete %s failed: %v", b.ID, err)
				continue
			}
			if err := engine.ReconcileDay(ctx, b.FacilityID, b.Date); err != nil {
				log.Printf("[CompletionSweep] reconcile %s/%s failed: %v", b.FacilityID, b.Date, err)
			}
		}

		cancel()
		time.Sleep(24 * time.Hour)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReconcileWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
