package cron

import (
	"context"
	"log"
	"time"

	"firstlighthrm/config"
	"firstlighthrm/services/interview"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeAvailabilityRefresh = "availability:refresh"

// refreshInterval keeps the interview calendar cache warm well within its TTL.
const refreshInterval = "@every 4m"

// InitAvailabilityWorker runs the async worker and its periodic scheduler
// in the background.
func InitAvailabilityWorker(interviewSvc interview.InterviewService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilityRefresh, handleAvailabilityRefresh(interviewSvc))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(refreshInterval, asynq.NewTask(TypeAvailabilityRefresh, nil)); err != nil {
		log.Printf("[AvailabilityWorker] Failed to register refresh schedule: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[AvailabilityWorker] Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[AvailabilityWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AvailabilityWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AvailabilityWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleAvailabilityRefresh(interviewSvc interview.InterviewService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		days, err := interviewSvc.RefreshAvailability(time.Now())
		if err != nil {
			log.Printf("[AvailabilityWorker] Failed to refresh availability: %v", err)
			return err
		}
		log.Printf("[AvailabilityWorker] Availability cache refreshed (%d days)", len(days))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[AvailabilityWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
