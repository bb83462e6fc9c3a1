package services

import (
	"errors"
	"log"
	"time"

	"math/rand"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	"skill-garden/models"
)

// StartDailyScheduler keeps a daily challenge on the calendar: every hour
// it checks whether today already has a scheduled challenge and stamps a
// random unscheduled one when it does not.
func (s *ChallengeService) StartDailyScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			if err := s.EnsureDailyChallenge(time.Now()); err != nil {
				log.Printf("[Scheduler] daily challenge rotation failed: %v", err)
			}
		}),
	)
}

// EnsureDailyChallenge schedules a challenge for the given day when none
// is scheduled yet. Doing nothing when the pool is empty is fine; the
// daily endpoint falls back to a random pick anyway.
func (s *ChallengeService) EnsureDailyChallenge(now time.Time) error {
	start, end := dayBounds(now)

	var count int64
	if err := s.DB.Model(&models.Challenge{}).
		Where("scheduled_for BETWEEN ? AND ?", start, end).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var pool int64
	if err := s.DB.Model(&models.Challenge{}).
		Where("scheduled_for IS NULL").
		Count(&pool).Error; err != nil {
		return err
	}
	if pool == 0 {
		return nil
	}

	var ch models.Challenge
	if err := s.DB.Where("scheduled_for IS NULL").
		Offset(rand.Intn(int(pool))).
		First(&ch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.DB.Model(&ch).Update("scheduled_for", now).Error; err != nil {
		return err
	}
	log.Printf("[Scheduler] scheduled %q as the daily challenge", ch.Title)
	return nil
}
