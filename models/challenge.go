package models

import "time"

const (
	ChallengeTypeSpeedRun = "Speed Run"
	ChallengeTypeBugHunt  = "Bug Hunt"
	ChallengeTypeOther    = "Other"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Challenge is a coding challenge in the arena. Submission acceptance
// lives in the services layer; the model stores metadata only.
type Challenge struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Type        string `gorm:"default:'Other'" json:"type"`
	Description string `json:"description"`
	Difficulty  string `gorm:"default:'Medium'" json:"difficulty"`
	RewardXP    int64  `gorm:"default:100" json:"reward_xp"`

	// ScheduledFor marks the challenge as the daily challenge of that date.
	ScheduledFor *time.Time `gorm:"index" json:"scheduled_for,omitempty"`

	Timestamps
}
