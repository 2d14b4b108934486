package service

import (
	"context"
	"time"

	"github.com/bagdasarian/league-manager/internal/domain"
)

// EditorService - операции редактора лиг поверх реестра
type EditorService interface {
	ListLeagues() []*domain.League
	AddLeague(name string) (*domain.League, error)
	RemoveLeague(name string) error
	GetLeague(name string) (*domain.League, error)

	AddTeam(leagueName, teamName string) (*domain.Team, error)
	RemoveTeam(leagueName, teamName string) error
	EmailTeam(leagueName, teamName, subject, message string) error

	AddMember(leagueName, teamName, memberName, email string) (*domain.TeamMember, error)
	UpdateMember(leagueName, teamName string, memberOID int, name, email string) (*domain.TeamMember, error)
	RemoveMember(leagueName, teamName, memberName string) error

	AddCompetition(leagueName string, teamNames []string, location string, dateTime *time.Time) (*domain.Competition, error)
	RemoveCompetition(leagueName string, oid int) error
	EmailCompetition(leagueName string, oid int, subject, message string) error

	ImportTeams(leagueName, path string, knownTeamsOnly bool) error
	ExportLeague(leagueName, path string) error
	ExportTeam(leagueName, teamName, path string) error

	Save(ctx context.Context) error
	Load(ctx context.Context) error
}
