package services

import (
	"codemate/app/models"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CronService handles scheduled background tasks. Its single job is the
// daily reminder email to users who received connection requests the
// previous day and have not reviewed them yet.
type CronService struct {
	usersCollection     *mongo.Collection
	requestsCollection  *mongo.Collection
	notificationService *NotificationService
	stopChan            chan bool
	isRunning           bool
}

// NewCronService creates a new cron service instance
func NewCronService(usersCollection, requestsCollection *mongo.Collection, notificationService *NotificationService) *CronService {
	return &CronService{
		usersCollection:     usersCollection,
		requestsCollection:  requestsCollection,
		notificationService: notificationService,
		stopChan:            make(chan bool),
	}
}

// reminderHour is the local hour of day the reminder job fires at
const reminderHour = 8

// NextReminderDelay returns how long to wait from now until the next
// daily run at the given hour. A start exactly on the hour waits for
// tomorrow's run.
func NextReminderDelay(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// StartReminderCron starts the reminder job loop, firing once per day
// at the fixed reminder hour
func (c *CronService) StartReminderCron() {
	if c.isRunning {
		log.Println("⚠️ Reminder cron is already running")
		return
	}

	c.isRunning = true
	log.Printf("🚀 Starting reminder cron job (daily at %02d:00)", reminderHour)

	go func() {
		timer := time.NewTimer(NextReminderDelay(time.Now(), reminderHour))
		defer timer.Stop()
		for {
			select {
			case <-c.stopChan:
				log.Println("🛑 Stopping reminder cron job")
				return
			case <-timer.C:
				c.runReminders()
				timer.Reset(NextReminderDelay(time.Now(), reminderHour))
			}
		}
	}()
}

// StopReminderCron stops the reminder job loop
func (c *CronService) StopReminderCron() {
	if !c.isRunning {
		log.Println("⚠️ Reminder cron is not running")
		return
	}

	c.isRunning = false
	c.stopChan <- true
	log.Println("🛑 Reminder cron job stopped")
}

// runReminders emails every user with requests from yesterday that are
// still pending. Email failures are logged and swallowed.
func (c *CronService) runReminders() {
	startTime := time.Now()
	log.Println("🔄 Running scheduled reminder process...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	yesterday := time.Now().AddDate(0, 0, -1)
	dayStart := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	cursor, err := c.requestsCollection.Find(ctx, bson.M{
		"status": models.StatusInterested,
		"created_at": bson.M{
			"$gte": dayStart,
			"$lt":  dayEnd,
		},
	})
	if err != nil {
		log.Printf("❌ Reminder process failed: %v", err)
		return
	}

	var pending []models.ConnectionRequest
	if err := cursor.All(ctx, &pending); err != nil {
		log.Printf("❌ Reminder process failed: %v", err)
		return
	}

	if len(pending) == 0 {
		log.Println("✅ No pending requests from yesterday")
		return
	}

	// One reminder per distinct recipient
	counts := map[primitive.ObjectID]int{}
	for _, request := range pending {
		counts[request.ToUserID]++
	}

	sent := 0
	for toUserID, count := range counts {
		var toUser models.User
		if err := c.usersCollection.FindOne(ctx, bson.M{"_id": toUserID}).Decode(&toUser); err != nil {
			log.Printf("⚠️ Reminder recipient %s not found: %v", toUserID.Hex(), err)
			continue
		}
		if err := c.notificationService.SendPendingReminder(&toUser, count); err != nil {
			log.Printf("⚠️ Reminder email to %s failed: %v", toUser.EmailID, err)
			continue
		}
		sent++
	}

	log.Printf("✅ Reminder process completed: %d email(s) sent in %v", sent, time.Since(startTime))
}
