package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campusevents/internal/config"
	"campusevents/internal/notification"
	"campusevents/internal/queue"
	"campusevents/internal/store"
)

// Worker consumes registration decisions and writes notification rows.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	var notifStore notification.Store
	if cfg.StoreBackend == "memory" {
		notifStore = store.NewMemory()
	} else {
		db, err := store.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer db.Close()
		notifStore = store.New(db.Client)
	}

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "campusevents:decisions")
	}

	svc := notification.NewService(notifStore)

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("worker started, waiting for messages...")
	for msg := range messages {
		if msg.Type != "registration_decision" {
			continue
		}

		job, err := notification.DecodeDecisionJob(msg.Body)
		if err != nil {
			log.Printf("bad decision payload: %v", err)
			continue
		}

		if _, err := svc.NotifyDecision(ctx, job); err != nil {
			log.Printf("notify user %s failed: %v", job.UserID, err)
			continue
		}
		log.Printf("notified user %s: registration %s", job.UserID, job.Status)
	}

	log.Println("worker stopped")
}
