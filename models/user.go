package models

import (
	"time"

	"gorm.io/gorm"

	"skill-garden/progression"
)

// User is an application account plus its gamification state.
// The xp/level/badges/streak columns are written exclusively through the
// progression package; handlers never touch them directly.
type User struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Gamification
	XP           int64      `gorm:"index;default:0" json:"xp"`
	Level        int        `gorm:"default:1" json:"level"`
	Badges       []string   `gorm:"serializer:json" json:"badges"`
	Streak       int        `gorm:"default:0" json:"streak"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`

	// Profile
	Skills    []string `gorm:"serializer:json" json:"skills"`
	Interests []string `gorm:"serializer:json" json:"interests"`

	Teams []*Team `gorm:"many2many:team_members" json:"-"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// PublicUser is the safe JSON payload for the frontend (no password hash).
type PublicUser struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	XP        int64    `json:"xp"`
	Level     int      `json:"level"`
	Badges    []string `json:"badges"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Streak    int      `json:"streak"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		XP:        u.XP,
		Level:     u.Level,
		Badges:    emptyIfNil(u.Badges),
		Skills:    emptyIfNil(u.Skills),
		Interests: emptyIfNil(u.Interests),
		Streak:    u.Streak,
	}
}

// Progress extracts the gamification state for the progression engine.
func (u *User) Progress() progression.Progress {
	return progression.Progress{
		XP:           u.XP,
		Level:        u.Level,
		Badges:       u.Badges,
		Streak:       u.Streak,
		LastActiveAt: u.LastActiveAt,
	}
}

// SetProgress writes an updated gamification state back onto the record.
func (u *User) SetProgress(p progression.Progress) {
	u.XP = p.XP
	u.Level = p.Level
	u.Badges = p.Badges
	u.Streak = p.Streak
	u.LastActiveAt = p.LastActiveAt
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
