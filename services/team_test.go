package services

import (
	"errors"
	"testing"

	"skill-garden/models"
)

func TestCreateTeam(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "testsecret")
	teams := NewTeamService(db)

	creator, _, err := auth.Register("Ava Green", "ava@example.com", "password1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	team, err := teams.CreateTeam(creator.ID, CreateTeamInput{
		Name:        "Frontend Sprouts",
		Description: "A small frontend team",
		Tags:        []string{"HTML", "CSS"},
		Needs:       2,
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if team.Slug != "frontend-sprouts" {
		t.Errorf("expected slug frontend-sprouts, got %q", team.Slug)
	}
	if team.Status != models.TeamStatusNeedMembers {
		t.Errorf("expected status %q, got %q", models.TeamStatusNeedMembers, team.Status)
	}

	loaded, err := teams.GetTeam(team.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if len(loaded.Members) != 1 || loaded.Members[0].ID != creator.ID {
		t.Errorf("creator should be the first member, got %d members", len(loaded.Members))
	}
}

func TestCreateTeamWithoutNeedsIsOpen(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "testsecret")
	teams := NewTeamService(db)

	creator, _, _ := auth.Register("Ava Green", "ava@example.com", "password1")
	team, err := teams.CreateTeam(creator.ID, CreateTeamInput{Name: "Solo Squad"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if team.Status != models.TeamStatusOpen {
		t.Errorf("expected status %q, got %q", models.TeamStatusOpen, team.Status)
	}
}

func TestJoinTeam(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "testsecret")
	teams := NewTeamService(db)

	creator, _, _ := auth.Register("Ava Green", "ava@example.com", "password1")
	joiner, _, _ := auth.Register("Diego Park", "diego@example.com", "secret123")

	team, err := teams.CreateTeam(creator.ID, CreateTeamInput{Name: "Bug Busters", Needs: 1})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	joined, err := teams.JoinTeam(team.ID, joiner.ID)
	if err != nil {
		t.Fatalf("join team: %v", err)
	}
	if joined.Needs != 0 {
		t.Errorf("expected needs=0 after join, got %d", joined.Needs)
	}
	if joined.Status != models.TeamStatusOpen {
		t.Errorf("expected status flip to %q, got %q", models.TeamStatusOpen, joined.Status)
	}

	if _, err := teams.JoinTeam(team.ID, joiner.ID); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("duplicate join: expected ErrAlreadyMember, got %v", err)
	}
}
