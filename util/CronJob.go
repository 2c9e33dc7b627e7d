package util

import (
	"log"
	"time"
)

// ExpiredCleaner is satisfied by the refresh-token and OTP repositories.
type ExpiredCleaner interface {
	DeleteExpired() error
}

// StartDailyCleanup purges expired rows once a day at noon.
func StartDailyCleanup(repos ...ExpiredCleaner) {
	go func() {
		for {
			now := time.Now()

			// Target time: today at 12:00 PM, or tomorrow if already past
			nextRun := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
			if nextRun.Before(now) {
				nextRun = nextRun.Add(24 * time.Hour)
			}

			duration := nextRun.Sub(now)
			log.Printf("Next expired-row cleanup scheduled in %v (at %v)\n", duration, nextRun.Format(time.Kitchen))
			time.Sleep(duration)

			log.Println("Deleting expired rows...")
			for _, repo := range repos {
				if err := repo.DeleteExpired(); err != nil {
					log.Printf("Cleanup failed: %v\n", err)
				}
			}
			log.Println("Cleanup completed.")

			// Small buffer so the next loop iteration schedules tomorrow
			time.Sleep(1 * time.Second)
		}
	}()
}
