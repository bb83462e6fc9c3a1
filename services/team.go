package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"skill-garden/models"
)

var ErrAlreadyMember = errors.New("already a member")

type TeamService struct {
	DB *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{DB: db}
}

type CreateTeamInput struct {
	Name        string
	Description string
	Tags        []string
	Needs       int
}

// CreateTeam creates a team with the creator as its first member.
func (s *TeamService) CreateTeam(creatorID string, in CreateTeamInput) (*models.Team, error) {
	status := models.TeamStatusOpen
	if in.Needs > 0 {
		status = models.TeamStatusNeedMembers
	}

	team := &models.Team{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        s.uniqueSlug(in.Name),
		Description: in.Description,
		Tags:        in.Tags,
		Needs:       in.Needs,
		Status:      status,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var creator models.User
		if err := tx.First(&creator, "id = ?", creatorID).Error; err != nil {
			return err
		}
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Model(team).Association("Members").Append(&creator)
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) ListTeams(status string) ([]models.Team, error) {
	var teams []models.Team
	q := s.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *TeamService) GetTeam(id string) (*models.Team, error) {
	var team models.Team
	if err := s.DB.Preload("Members").First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// JoinTeam adds the user as a member. Joining is immediate; there is no
// approval step yet.
func (s *TeamService) JoinTeam(teamID, userID string) (*models.Team, error) {
	var team models.Team
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Members").First(&team, "id = ?", teamID).Error; err != nil {
			return err
		}

		for _, m := range team.Members {
			if m.ID == userID {
				return ErrAlreadyMember
			}
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Model(&team).Association("Members").Append(&user); err != nil {
			return err
		}

		if team.Needs > 0 {
			team.Needs--
		}
		if team.Needs <= 0 {
			team.Status = models.TeamStatusOpen
		}
		return tx.Model(&team).Updates(map[string]interface{}{
			"needs":  team.Needs,
			"status": team.Status,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// uniqueSlug derives a URL slug from the team name, suffixing on
// collision.
func (s *TeamService) uniqueSlug(name string) string {
	base := slug.Make(name)
	candidate := base
	for i := 0; ; i++ {
		var count int64
		s.DB.Model(&models.Team{}).Where("slug = ?", candidate).Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
		if i > 4 {
			return candidate
		}
	}
}
