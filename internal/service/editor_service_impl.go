package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/rs/zerolog/log"
)

type editorService struct {
	db      LeagueDatabase
	emailer domain.Emailer
	store   Store
}

// NewEditorService создает новый экземпляр EditorService. Сервис не
// синхронизирован: вызывающий сериализует запросы сам.
func NewEditorService(db LeagueDatabase, emailer domain.Emailer, store Store) EditorService {
	return &editorService{
		db:      db,
		emailer: emailer,
		store:   store,
	}
}

func (s *editorService) ListLeagues() []*domain.League {
	return s.db.Leagues()
}

// AddLeague регистрирует лигу со свободным OID. Имена лиг уникальны.
func (s *editorService) AddLeague(name string) (*domain.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("league_name is required")
	}
	if _, ok := s.db.LeagueNamed(name); ok {
		return nil, domain.ErrLeagueExists
	}

	oid, ok := s.db.FindFreeLeagueOID()
	if !ok {
		return nil, fmt.Errorf("no free league oid")
	}
	league := domain.NewLeague(oid, name)
	if err := s.db.AddLeague(league); err != nil {
		return nil, err
	}
	log.Info().Str("league", name).Int("oid", oid).Msg("league added")
	return league, nil
}

func (s *editorService) RemoveLeague(name string) error {
	league, err := s.GetLeague(name)
	if err != nil {
		return err
	}
	s.db.RemoveLeague(league)
	log.Info().Str("league", name).Msg("league removed")
	return nil
}

func (s *editorService) GetLeague(name string) (*domain.League, error) {
	league, ok := s.db.LeagueNamed(name)
	if !ok {
		return nil, domain.NewNotFoundError("league " + name)
	}
	return league, nil
}

func (s *editorService) getTeam(leagueName, teamName string) (*domain.League, *domain.Team, error) {
	league, err := s.GetLeague(leagueName)
	if err != nil {
		return nil, nil, err
	}
	team, ok := league.TeamNamed(teamName)
	if !ok {
		return nil, nil, domain.NewNotFoundError(fmt.Sprintf("team %s in league %s", teamName, leagueName))
	}
	return league, team, nil
}

// AddTeam создает команду со свободным OID. Имена команд в лиге уникальны.
func (s *editorService) AddTeam(leagueName, teamName string) (*domain.Team, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, domain.NewBadRequestError("team_name is required")
	}
	league, err := s.GetLeague(leagueName)
	if err != nil {
		return nil, err
	}
	if _, ok := league.TeamNamed(teamName); ok {
		return nil, domain.ErrTeamExists
	}

	oid, ok := league.FindFreeTeamOID()
	if !ok {
		return nil, fmt.Errorf("no free team oid in league %s", leagueName)
	}
	team := domain.NewTeam(oid, teamName)
	if err := league.AddTeam(team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *editorService) RemoveTeam(leagueName, teamName string) error {
	league, team, err := s.getTeam(leagueName, teamName)
	if err != nil {
		return err
	}
	return league.RemoveTeam(team)
}

func (s *editorService) EmailTeam(leagueName, teamName, subject, message string) error {
	_, team, err := s.getTeam(leagueName, teamName)
	if err != nil {
		return err
	}
	return team.SendEmail(s.emailer, subject, message)
}

// AddMember добавляет участника со свободным OID, если имя в команде еще не занято
func (s *editorService) AddMember(leagueName, teamName, memberName, email string) (*domain.TeamMember, error) {
	memberName = strings.TrimSpace(memberName)
	if memberName == "" {
		return nil, domain.NewBadRequestError("member_name is required")
	}
	_, team, err := s.getTeam(leagueName, teamName)
	if err != nil {
		return nil, err
	}
	if _, ok := team.MemberNamed(memberName); ok {
		return nil, domain.ErrMemberExists
	}

	oid, ok := team.FindFreeMemberOID()
	if !ok {
		return nil, fmt.Errorf("no free member oid in team %s", teamName)
	}
	member := domain.NewTeamMember(oid, memberName, strings.TrimSpace(email))
	if err := team.AddMember(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *editorService) UpdateMember(leagueName, teamName string, memberOID int, name, email string) (*domain.TeamMember, error) {
	_, team, err := s.getTeam(leagueName, teamName)
	if err != nil {
		return nil, err
	}
	for _, m := range team.Members() {
		if m.OID() == memberOID {
			if err := team.UpdateMember(m, strings.TrimSpace(name), strings.TrimSpace(email)); err != nil {
				return nil, err
			}
			return m, nil
		}
	}
	return nil, domain.NewNotFoundError(fmt.Sprintf("member %d in team %s", memberOID, teamName))
}

func (s *editorService) RemoveMember(leagueName, teamName, memberName string) error {
	_, team, err := s.getTeam(leagueName, teamName)
	if err != nil {
		return err
	}
	member, ok := team.MemberNamed(memberName)
	if !ok {
		return domain.NewNotFoundError(fmt.Sprintf("member %s in team %s", memberName, teamName))
	}
	team.RemoveMember(member)
	return nil
}

// AddCompetition создает соревнование с монотонным OID реестра
func (s *editorService) AddCompetition(leagueName string, teamNames []string, location string, dateTime *time.Time) (*domain.Competition, error) {
	if len(teamNames) < 2 {
		return nil, domain.NewBadRequestError("at least two teams are required")
	}
	league, err := s.GetLeague(leagueName)
	if err != nil {
		return nil, err
	}

	teams := make([]*domain.Team, 0, len(teamNames))
	for _, name := range teamNames {
		team, ok := league.TeamNamed(name)
		if !ok {
			return nil, domain.NewReferentialIntegrityError(name, league.Name)
		}
		for _, t := range teams {
			if domain.SameIdentity(t, team) {
				return nil, domain.NewBadRequestError("team " + name + " is listed twice")
			}
		}
		teams = append(teams, team)
	}

	competition := domain.NewCompetition(s.db.NextOID(), teams, location, dateTime)
	if err := league.AddCompetition(competition); err != nil {
		return nil, err
	}
	return competition, nil
}

func (s *editorService) getCompetition(leagueName string, oid int) (*domain.League, *domain.Competition, error) {
	league, err := s.GetLeague(leagueName)
	if err != nil {
		return nil, nil, err
	}
	competition, ok := league.CompetitionByOID(oid)
	if !ok {
		return nil, nil, domain.NewNotFoundError(fmt.Sprintf("competition %d in league %s", oid, leagueName))
	}
	return league, competition, nil
}

func (s *editorService) RemoveCompetition(leagueName string, oid int) error {
	league, competition, err := s.getCompetition(leagueName, oid)
	if err != nil {
		return err
	}
	league.RemoveCompetition(competition)
	return nil
}

func (s *editorService) EmailCompetition(leagueName string, oid int, subject, message string) error {
	_, competition, err := s.getCompetition(leagueName, oid)
	if err != nil {
		return err
	}
	return competition.SendEmail(s.emailer, subject, message)
}

// ImportTeams загружает CSV в лигу. При knownTeamsOnly строки для
// незарегистрированных команд пропускаются, иначе команды создаются.
func (s *editorService) ImportTeams(leagueName, path string, knownTeamsOnly bool) error {
	league, err := s.GetLeague(leagueName)
	if err != nil {
		return err
	}
	if knownTeamsOnly {
		return s.db.ImportLeagueTeams(league, path)
	}
	return league.ImportTeams(path)
}

func (s *editorService) ExportLeague(leagueName, path string) error {
	league, err := s.GetLeague(leagueName)
	if err != nil {
		return err
	}
	return s.db.ExportLeagueTeams(league, path)
}

func (s *editorService) ExportTeam(leagueName, teamName, path string) error {
	league, team, err := s.getTeam(leagueName, teamName)
	if err != nil {
		return err
	}
	return league.ExportTeam(team, path)
}

func (s *editorService) Save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.db); err != nil {
		log.Error().Err(err).Str("store", s.store.String()).Msg("failed to save leagues")
		return err
	}
	return nil
}

func (s *editorService) Load(ctx context.Context) error {
	if err := s.store.Load(ctx, s.db); err != nil {
		log.Error().Err(err).Str("store", s.store.String()).Msg("failed to load leagues")
		return err
	}
	return nil
}
