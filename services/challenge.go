package services

import (
	"errors"
	"time"

	"math/rand"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skill-garden/models"
	"skill-garden/progression"
)

var ErrNoChallenges = errors.New("no challenges available")

type ChallengeService struct {
	DB    *gorm.DB
	Judge Judge
}

func NewChallengeService(db *gorm.DB, judge Judge) *ChallengeService {
	return &ChallengeService{DB: db, Judge: judge}
}

func (s *ChallengeService) ListChallenges(challengeType string) ([]models.Challenge, error) {
	var challenges []models.Challenge
	q := s.DB.Order("created_at DESC")
	if challengeType != "" {
		q = q.Where("type = ?", challengeType)
	}
	if err := q.Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (s *ChallengeService) GetChallenge(id string) (*models.Challenge, error) {
	var ch models.Challenge
	if err := s.DB.First(&ch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

// DailyChallenge returns the challenge scheduled for today, falling back
// to a random one when nothing is scheduled.
func (s *ChallengeService) DailyChallenge(now time.Time) (*models.Challenge, error) {
	start, end := dayBounds(now)

	var ch models.Challenge
	err := s.DB.Where("scheduled_for BETWEEN ? AND ?", start, end).First(&ch).Error
	if err == nil {
		return &ch, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.Challenge{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoChallenges
	}
	offset := rand.Intn(int(count))
	if err := s.DB.Offset(offset).First(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

// SubmitResult is the user-facing summary of one submission.
type SubmitResult struct {
	Accepted bool               `json:"accepted"`
	Award    progression.Outcome `json:"award"`
}

// Submit runs the acceptance judge and, on acceptance, applies the XP
// award and the streak update to the submitter's progress. Both run in
// one transaction with the user row locked, so two racing submissions
// from the same user cannot lose an award or double-apply a streak
// transition. SQLite serializes writers on its own; the explicit row
// lock matters on Postgres.
func (s *ChallengeService) Submit(challengeID, userID, solution string, now time.Time) (*SubmitResult, error) {
	ch, err := s.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}

	if !s.Judge.Judge(solution, ch) {
		return &SubmitResult{Accepted: false}, nil
	}

	var result SubmitResult
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var user models.User
		if err := q.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		p, outcome := progression.AwardXP(user.Progress(), ch.RewardXP)
		p, err := progression.RecordActivity(p, now)
		if err != nil {
			return err
		}
		user.SetProgress(p)

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		result = SubmitResult{Accepted: true, Award: outcome}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return start, start.Add(24*time.Hour - time.Nanosecond)
}
