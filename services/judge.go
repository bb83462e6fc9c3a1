package services

import (
	"math/rand"
	"strings"

	"skill-garden/models"
)

// Judge decides whether a submitted solution is accepted for a challenge.
// It is the swap point for real evaluation logic; the progression engine
// never sees it.
type Judge interface {
	Judge(solution string, challenge *models.Challenge) bool
}

// KeywordJudge is the placeholder acceptance policy: accept when the
// solution contains the keyword (case-insensitive), otherwise by an
// unweighted coin flip. It stands in for real grading until one exists.
type KeywordJudge struct {
	Keyword  string
	PassRate float64

	// Rand returns a uniform sample in [0,1). Defaults to rand.Float64.
	Rand func() float64
}

func NewKeywordJudge() *KeywordJudge {
	return &KeywordJudge{
		Keyword:  "solve",
		PassRate: 0.6,
		Rand:     rand.Float64,
	}
}

func (j *KeywordJudge) Judge(solution string, _ *models.Challenge) bool {
	if strings.Contains(strings.ToLower(solution), strings.ToLower(j.Keyword)) {
		return true
	}
	return j.Rand() < j.PassRate
}
