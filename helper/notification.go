package helper

import (
	"log"
	"park_manager/database"
	"park_manager/model"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var notificationScheduler gocron.Scheduler

// DispatchDueNotifications marks every unsent notification whose sendAt has
// passed as sent. Actual delivery transport is the frontend polling
// GET /notifications; this job only flips visibility.
func DispatchDueNotifications() {
	now := time.Now().UTC()

	result := database.DB.Model(&model.Notification{}).
		Where("sent = false AND send_at <= ?", now).
		Update("sent", true)

	if result.Error != nil {
		log.Printf("notification dispatch failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("dispatched %d notifications", result.RowsAffected)
	}
}

func StartNotificationScheduler() {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		log.Printf("failed to create notification scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(DispatchDueNotifications),
	)
	if err != nil {
		log.Printf("failed to schedule notification dispatch: %v", err)
		return
	}

	notificationScheduler = s
	s.Start()
	log.Println("notification scheduler started (every minute)")
}

func StopNotificationScheduler() {
	if notificationScheduler != nil {
		notificationScheduler.Shutdown()
		log.Println("notification scheduler stopped")
	}
}
