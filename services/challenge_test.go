package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-garden/models"
	"skill-garden/progression"
)

func acceptAll() *KeywordJudge {
	j := NewKeywordJudge()
	j.Rand = func() float64 { return 0 }
	return j
}

func rejectUnlessKeyword() *KeywordJudge {
	j := NewKeywordJudge()
	j.Rand = func() float64 { return 0.99 }
	return j
}

func seedChallenge(t *testing.T, db *gorm.DB, reward int64) *models.Challenge {
	t.Helper()
	ch := &models.Challenge{
		ID:       uuid.NewString(),
		Title:    "Tiny Algorithms",
		Type:     models.ChallengeTypeSpeedRun,
		RewardXP: reward,
	}
	if err := db.Create(ch).Error; err != nil {
		t.Fatalf("seed challenge: %v", err)
	}
	return ch
}

func TestSubmitAcceptedAwardsXPAndStreak(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "testsecret")
	challenges := NewChallengeService(db, acceptAll())

	user, _, _ := auth.Register("Ava Green", "ava@example.com", "password1")
	ch := seedChallenge(t, db, 120)

	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	result, err := challenges.Submit(ch.ID, user.ID, "here is my answer", now)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Accepted {
		t.Fatal("expected submission to be accepted")
	}
	if result.Award.XP != 120 || result.Award.Level != 1 || result.Award.LevelUp {
		t.Errorf("unexpected award: %+v", result.Award)
	}

	var stored models.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.XP != 120 {
		t.Errorf("expected xp=120 persisted, got %d", stored.XP)
	}
	if stored.Streak != 1 {
		t.Errorf("first activity: expected streak=1, got %d", stored.Streak)
	}
	if stored.LastActiveAt == nil {
		t.Error("LastActiveAt not persisted")
	}
}

func TestSubmitSameDayTwiceHoldsStreak(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "testsecret")
	challenges := NewChallengeService(db, acceptAll())

	user, _, _ := auth.Register("Ava Green", "ava@example.com", "password1")
	ch := seedChallenge(t, db, 100)

	morning := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	if _, err := challenges.Submit(ch.ID, user.ID, "attempt one", morning); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := challenges.Submit(ch.ID, user.ID, "attempt two", evening); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	var stored models.User
	db.First(&stored, "id = ?", user.ID)
	if stored.Streak != 1 {
		t.Errorf("same-day repeat: expected streak=1, got %d", stored.Streak)
	}
	if stored.XP != 200 {
		t.Errorf("both awards should land: expected xp=200, got %d", stored.XP)
	}
}

func TestSubmitBigRewardGrantsBadgeOnce(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "testsecret")
	challenges := NewChallengeService(db, acceptAll())

	user, _, _ := auth.Register("Ava Green", "ava@example.com", "password1")
	ch := seedChallenge(t, db, 200)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	result, err := challenges.Submit(ch.ID, user.ID, "first try", now)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Award.AwardedBadge != progression.BigWinBadge {
		t.Errorf("expected %q awarded, got %q", progression.BigWinBadge, result.Award.AwardedBadge)
	}

	result, err = challenges.Submit(ch.ID, user.ID, "again", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if result.Award.AwardedBadge != "" {
		t.Errorf("badge reported twice: %q", result.Award.AwardedBadge)
	}

	var stored models.User
	db.First(&stored, "id = ?", user.ID)
	count := 0
	for _, b := range stored.Badges {
		if b == progression.BigWinBadge {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one badge in storage, got %d (%v)", count, stored.Badges)
	}
}

func TestSubmitLevelUpReported(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "testsecret")
	challenges := NewChallengeService(db, acceptAll())

	user, _, _ := auth.Register("Ava Green", "ava@example.com", "password1")
	db.Model(&models.User{}).Where("id = ?", user.ID).Update("xp", 950)

	ch := seedChallenge(t, db, 100)
	result, err := challenges.Submit(ch.ID, user.ID, "go", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Award.LevelUp || result.Award.Level != 2 || result.Award.XP != 1050 {
		t.Errorf("expected level-up to 2 at 1050 xp, got %+v", result.Award)
	}
}

func TestSubmitRejectedLeavesUserUntouched(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "testsecret")
	challenges := NewChallengeService(db, rejectUnlessKeyword())

	user, _, _ := auth.Register("Ava Green", "ava@example.com", "password1")
	ch := seedChallenge(t, db, 100)

	result, err := challenges.Submit(ch.ID, user.ID, "no keyword here", time.Now())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Accepted {
		t.Fatal("expected rejection")
	}

	var stored models.User
	db.First(&stored, "id = ?", user.ID)
	if stored.XP != 0 || stored.Streak != 0 || stored.LastActiveAt != nil {
		t.Errorf("rejected submission mutated progress: xp=%d streak=%d", stored.XP, stored.Streak)
	}
}

func TestSubmitUnknownChallenge(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "testsecret")
	challenges := NewChallengeService(db, acceptAll())

	user, _, _ := auth.Register("Ava Green", "ava@example.com", "password1")
	if _, err := challenges.Submit(uuid.NewString(), user.ID, "solve", time.Now()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestDailyChallengePrefersScheduled(t *testing.T) {
	db := testDB(t)
	challenges := NewChallengeService(db, acceptAll())

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedChallenge(t, db, 100)

	scheduled := &models.Challenge{
		ID:           uuid.NewString(),
		Title:        "Optimize Sorting Routine",
		Type:         models.ChallengeTypeSpeedRun,
		RewardXP:     200,
		ScheduledFor: &now,
	}
	if err := db.Create(scheduled).Error; err != nil {
		t.Fatalf("seed scheduled challenge: %v", err)
	}

	got, err := challenges.DailyChallenge(now)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if got.ID != scheduled.ID {
		t.Errorf("expected the scheduled challenge, got %q", got.Title)
	}
}

func TestDailyChallengeFallsBackToRandom(t *testing.T) {
	db := testDB(t)
	challenges := NewChallengeService(db, acceptAll())

	ch := seedChallenge(t, db, 100)
	got, err := challenges.DailyChallenge(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("daily fallback: %v", err)
	}
	if got.ID != ch.ID {
		t.Errorf("fallback should pick the only challenge, got %q", got.ID)
	}
}

func TestDailyChallengeEmptyPool(t *testing.T) {
	db := testDB(t)
	challenges := NewChallengeService(db, acceptAll())

	if _, err := challenges.DailyChallenge(time.Now()); !errors.Is(err, ErrNoChallenges) {
		t.Errorf("expected ErrNoChallenges, got %v", err)
	}
}

func TestEnsureDailyChallengeSchedulesOne(t *testing.T) {
	db := testDB(t)
	challenges := NewChallengeService(db, acceptAll())

	ch := seedChallenge(t, db, 100)
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	if err := challenges.EnsureDailyChallenge(now); err != nil {
		t.Fatalf("ensure daily: %v", err)
	}

	var stored models.Challenge
	db.First(&stored, "id = ?", ch.ID)
	if stored.ScheduledFor == nil {
		t.Fatal("expected the only challenge to be scheduled")
	}

	// Idempotent: a second run must not reschedule anything.
	if err := challenges.EnsureDailyChallenge(now); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
}
