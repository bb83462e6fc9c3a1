package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skill-garden/models"
)

var ErrSeedWouldClobber = errors.New("database already contains users, pass force to reseed")

// SeedService loads demo data for development. Never mounted in
// production.
type SeedService struct {
	DB   *gorm.DB
	Auth *AuthService
}

func NewSeedService(db *gorm.DB, auth *AuthService) *SeedService {
	return &SeedService{DB: db, Auth: auth}
}

// SeededUser echoes the credentials of a seeded account, token included,
// so a developer can log straight in.
type SeededUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

// Seed wipes the database and loads demo users, teams, challenges, and
// resources. Refuses to clobber existing users unless force is set.
func (s *SeedService) Seed(force bool) ([]SeededUser, error) {
	var existing int64
	if err := s.DB.Model(&models.User{}).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 && !force {
		return nil, ErrSeedWouldClobber
	}

	var seeded []SeededUser
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM team_members").Error; err != nil {
			return err
		}
		for _, m := range []interface{}{&models.User{}, &models.Team{}, &models.Challenge{}, &models.Resource{}} {
			if err := tx.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		type account struct {
			name, email, password string
			skills, interests     []string
		}
		accounts := []account{
			{"Ava Green", "ava@example.com", "password1", []string{"HTML", "CSS", "JS"}, []string{"Frontend"}},
			{"Diego Park", "diego@example.com", "secret123", []string{"Debugging", "Node"}, []string{"Backend"}},
			{"Lina Shen", "lina@example.com", "hunter2", []string{"Algorithms", "DSA"}, []string{"DSA"}},
		}

		var users []*models.User
		for _, a := range accounts {
			hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcryptCost)
			if err != nil {
				return err
			}
			u := &models.User{
				ID:           uuid.NewString(),
				Name:         a.name,
				Email:        a.email,
				PasswordHash: string(hash),
				Level:        1,
				Skills:       a.skills,
				Interests:    a.interests,
			}
			if err := tx.Create(u).Error; err != nil {
				return err
			}
			token, err := s.Auth.IssueToken(u.ID)
			if err != nil {
				return err
			}
			users = append(users, u)
			seeded = append(seeded, SeededUser{ID: u.ID, Email: u.Email, Password: a.password, Token: token})
		}

		teams := []*models.Team{
			{
				ID: uuid.NewString(), Name: "Frontend Sprouts", Slug: "frontend-sprouts",
				Description: "A small frontend team", Tags: []string{"HTML", "CSS"},
				Needs: 2, Status: models.TeamStatusNeedMembers,
			},
			{
				ID: uuid.NewString(), Name: "Bug Busters", Slug: "bug-busters",
				Description: "Focused on finding and fixing bugs", Tags: []string{"Debugging", "JS"},
				Needs: 1, Status: models.TeamStatusNeedMembers,
			},
		}
		for i, team := range teams {
			if err := tx.Create(team).Error; err != nil {
				return err
			}
			if err := tx.Model(team).Association("Members").Append(users[i]); err != nil {
				return err
			}
		}

		today := time.Now()
		challenges := []*models.Challenge{
			{
				ID: uuid.NewString(), Title: "Optimize Sorting Routine", Type: models.ChallengeTypeSpeedRun,
				Description: "Optimize a slow sorting routine for large inputs.",
				Difficulty:  models.DifficultyHard, RewardXP: 200, ScheduledFor: &today,
			},
			{
				ID: uuid.NewString(), Title: "Fix Unit Tests", Type: models.ChallengeTypeBugHunt,
				Description: "Identify failing tests and fix them.",
				Difficulty:  models.DifficultyMedium, RewardXP: 120,
			},
			{
				ID: uuid.NewString(), Title: "Tiny Algorithms", Type: models.ChallengeTypeSpeedRun,
				Description: "Solve small algorithmic tasks.",
				Difficulty:  models.DifficultyMedium, RewardXP: 100,
			},
		}
		for _, ch := range challenges {
			if err := tx.Create(ch).Error; err != nil {
				return err
			}
		}

		resources := []*models.Resource{
			{
				ID: uuid.NewString(), Title: "JS Event Loop Cheat Sheet",
				Description: "Concise notes on the event loop.",
				Category:    models.ResourceCategoryNotes, Tags: []string{"JS"}, Link: "#",
			},
			{
				ID: uuid.NewString(), Title: "Clean Code",
				Description: "A handbook of agile software craftsmanship",
				Category:    models.ResourceCategoryBooks, Author: "Robert C. Martin",
				Tags: []string{"Best Practices"}, Link: "#",
			},
			{
				ID: uuid.NewString(), Title: "Mechanical Keyboard Guide",
				Description: "Choosing switches for comfort",
				Category:    models.ResourceCategoryEquipment, Tags: []string{"Hardware"}, Link: "#",
			},
		}
		for _, r := range resources {
			if err := tx.Create(r).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}
