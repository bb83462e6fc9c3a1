package services

import (
	"gorm.io/gorm"

	"skill-garden/models"
)

type LeaderboardService struct {
	DB *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{DB: db}
}

// LeaderboardEntry is one row of the leaderboard response.
type LeaderboardEntry struct {
	Name  string `json:"name"`
	XP    int64  `json:"xp"`
	Level int    `json:"level"`
}

// Weekly returns the top users by total XP. Weekly XP windows can slot
// in here once per-award history is tracked.
func (s *LeaderboardService) Weekly(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var entries []LeaderboardEntry
	err := s.DB.Model(&models.User{}).
		Select("name, xp, level").
		Order("xp DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
