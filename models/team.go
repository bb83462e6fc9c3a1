package models

const (
	TeamStatusNeedMembers = "Need Members"
	TeamStatusOpen        = "Open"
)

type Team struct {
	ID          string   `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Slug        string   `gorm:"uniqueIndex" json:"slug"`
	Description string   `json:"description"`
	Tags        []string `gorm:"serializer:json" json:"tags"`

	Members []*User `gorm:"many2many:team_members" json:"members,omitempty"`

	// Needs counts how many members the team is still looking for.
	Needs  int    `gorm:"default:0" json:"needs"`
	Status string `gorm:"default:'Need Members'" json:"status"`

	Timestamps
}

// MemberSummary is the member projection embedded in team detail responses.
type MemberSummary struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	XP     int64    `json:"xp"`
	Level  int      `json:"level"`
	Skills []string `json:"skills"`
}

func (t *Team) MemberSummaries() []MemberSummary {
	out := make([]MemberSummary, 0, len(t.Members))
	for _, m := range t.Members {
		out = append(out, MemberSummary{
			ID:     m.ID,
			Name:   m.Name,
			XP:     m.XP,
			Level:  m.Level,
			Skills: emptyIfNil(m.Skills),
		})
	}
	return out
}
