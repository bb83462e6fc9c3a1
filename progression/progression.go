// Package progression implements the gamification rules: XP awards,
// level computation, the activity streak, and the "Big Win" badge.
// All operations are pure functions over a Progress value; loading and
// persisting the value is the caller's job.
package progression

import (
	"errors"
	"time"
)

const (
	// XPPerLevel is the XP span of one level: level = xp/1000 + 1.
	XPPerLevel = 1000

	// BigWinThreshold is the single-award XP amount that earns the
	// one-time "Big Win" badge.
	BigWinThreshold = 200

	// BigWinBadge is awarded at most once per user, on the first award
	// of at least BigWinThreshold XP.
	BigWinBadge = "Big Win"
)

var (
	// ErrInvalidAmount marks a non-positive XP amount where a positive
	// award was expected. AwardXP itself treats such amounts as a no-op;
	// API layers may surface this error for rejected requests instead.
	ErrInvalidAmount = errors.New("progression: award amount must be positive")

	// ErrInvalidTimestamp marks a zero activity timestamp.
	ErrInvalidTimestamp = errors.New("progression: invalid activity timestamp")
)

// Progress is a user's gamification state.
type Progress struct {
	XP           int64
	Level        int
	Badges       []string
	Streak       int
	LastActiveAt *time.Time
}

// NewProgress returns the state of a freshly registered account.
func NewProgress() Progress {
	return Progress{Level: 1}
}

// HasBadge reports whether the badge set contains name.
func (p Progress) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// Outcome summarizes a single AwardXP call for the caller's response.
type Outcome struct {
	XP           int64  `json:"xp"`
	Level        int    `json:"level"`
	LevelUp      bool   `json:"levelUp"`
	AwardedBadge string `json:"awardedBadge,omitempty"`
	Granted      bool   `json:"-"`
}

// LevelForXP derives the level purely from total XP.
func LevelForXP(xp int64) int {
	return int(xp/XPPerLevel) + 1
}

// AwardXP adds amount XP to p and recomputes the level. A non-positive
// amount is a no-op that returns the unchanged state with Granted=false,
// so accidental zero or negative awards cannot break XP monotonicity.
// The level is only ever raised: it moves to the recomputed value when
// that value exceeds the current level and holds otherwise.
//
// The "Big Win" badge is granted on the first single award of at least
// BigWinThreshold XP and never again, no matter how often the threshold
// is crossed afterward.
func AwardXP(p Progress, amount int64) (Progress, Outcome) {
	if amount <= 0 {
		return p, Outcome{XP: p.XP, Level: p.Level}
	}

	p.XP += amount
	candidate := LevelForXP(p.XP)
	levelUp := candidate > p.Level
	if levelUp {
		p.Level = candidate
	}

	out := Outcome{XP: p.XP, Level: p.Level, LevelUp: levelUp, Granted: true}

	if amount >= BigWinThreshold && !p.HasBadge(BigWinBadge) {
		badges := make([]string, 0, len(p.Badges)+1)
		badges = append(badges, p.Badges...)
		p.Badges = append(badges, BigWinBadge)
		out.AwardedBadge = BigWinBadge
	}

	return p, out
}

// RecordActivity updates the consecutive-day streak for an activity at
// time now. Comparisons are calendar-date only; time of day is ignored.
// Exactly one of three transitions applies:
//
//   - last activity was yesterday: the streak continues, +1
//   - no prior activity, or a gap of two or more days: reset to 1
//   - second activity on the same day: hold, unchanged
//
// The continuation check runs first: a same-day guard alone would
// swallow the increment that a genuine yesterday-to-today continuation
// deserves. LastActiveAt is always set to now.
func RecordActivity(p Progress, now time.Time) (Progress, error) {
	if now.IsZero() {
		return p, ErrInvalidTimestamp
	}

	prior := p.LastActiveAt
	switch {
	case prior != nil && sameDay(*prior, now.AddDate(0, 0, -1)):
		p.Streak++
	case prior == nil || !sameDay(*prior, now):
		p.Streak = 1
	}

	t := now
	p.LastActiveAt = &t
	return p, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
