package domain

import (
	"fmt"
	"strings"

	"github.com/bagdasarian/league-manager/internal/csvcodec"
	"github.com/rs/zerolog/log"
)

// League - реестр команд и соревнований. Каждая команда соревнования должна
// быть зарегистрирована в лиге (проверка по имени).
type League struct {
	oid          int
	Name         string
	teams        []*Team
	competitions []*Competition
}

func NewLeague(oid int, name string) *League {
	return &League{oid: oid, Name: name}
}

// RestoreLeague собирает лигу из сохраненного состояния как есть. Проверки
// AddTeam и AddCompetition не повторяются: имена и email могли измениться
// после добавления.
func RestoreLeague(oid int, name string, teams []*Team, competitions []*Competition) *League {
	l := &League{oid: oid, Name: name}
	for _, t := range teams {
		if t != nil {
			l.teams = append(l.teams, t)
		}
	}
	for _, c := range competitions {
		if c != nil {
			l.competitions = append(l.competitions, c)
		}
	}
	return l
}

func (l *League) OID() int {
	return l.oid
}

func (l *League) IdentityKey() IdentityKey {
	if l == nil {
		return IdentityKey{}
	}
	return IdentityKey{Kind: KindLeague, OID: l.oid}
}

func (l *League) Teams() []*Team {
	out := make([]*Team, len(l.teams))
	copy(out, l.teams)
	return out
}

func (l *League) Competitions() []*Competition {
	out := make([]*Competition, len(l.competitions))
	copy(out, l.competitions)
	return out
}

func (l *League) AddTeam(team *Team) error {
	if contains(l.teams, team) {
		return NewDuplicateOIDError(KindTeam, team.oid)
	}
	l.teams = append(l.teams, team)
	return nil
}

// RemoveTeam отказывает, пока команда участвует хотя бы в одном соревновании
func (l *League) RemoveTeam(team *Team) error {
	for _, c := range l.competitions {
		if c.Involves(team) {
			return NewIntegrityViolationError(team.Name)
		}
	}
	l.teams = removeIdentity(l.teams, team)
	return nil
}

func (l *League) FindFreeTeamOID() (int, bool) {
	return FindFreeOID(l.teams)
}

func (l *League) TeamNamed(name string) (*Team, bool) {
	for _, t := range l.teams {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// AddCompetition проверяет участников по имени команды, а не по идентичности
func (l *League) AddCompetition(competition *Competition) error {
	if competition == nil {
		return nil
	}
	for _, t := range competition.teams {
		if t == nil {
			continue
		}
		if _, ok := l.TeamNamed(t.Name); !ok {
			return NewReferentialIntegrityError(t.Name, l.Name)
		}
	}
	if contains(l.competitions, competition) {
		return NewDuplicateOIDError(KindCompetition, competition.oid)
	}
	l.competitions = append(l.competitions, competition)
	return nil
}

func (l *League) RemoveCompetition(competition *Competition) {
	l.competitions = removeIdentity(l.competitions, competition)
}

func (l *League) CompetitionByOID(oid int) (*Competition, bool) {
	for _, c := range l.competitions {
		if c.oid == oid {
			return c, true
		}
	}
	return nil, false
}

// TeamsForMember - команды, за которые играет участник
func (l *League) TeamsForMember(member *TeamMember) []*Team {
	out := make([]*Team, 0)
	for _, t := range l.teams {
		if t.HasMember(member) {
			out = appendUnique(out, t)
		}
	}
	return out
}

func (l *League) CompetitionsForTeam(team *Team) []*Competition {
	out := make([]*Competition, 0)
	for _, c := range l.competitions {
		if c.Involves(team) {
			out = appendUnique(out, c)
		}
	}
	return out
}

// CompetitionsForMember - соревнования, где участник играет за одну из команд
func (l *League) CompetitionsForMember(member *TeamMember) []*Competition {
	out := make([]*Competition, 0)
	for _, c := range l.competitions {
		for _, t := range c.teams {
			if t != nil && t.HasMember(member) {
				out = appendUnique(out, c)
			}
		}
	}
	return out
}

// ExportTeam пишет CSV с участниками ровно одной команды
func (l *League) ExportTeam(team *Team, path string) error {
	if err := csvcodec.WriteFile(path, TeamRows(team)); err != nil {
		return NewIOError("export team", path, err)
	}
	return nil
}

// ImportTeams загружает команды и участников из CSV
func (l *League) ImportTeams(path string) error {
	rows, err := csvcodec.ReadFile(path)
	if err != nil {
		return NewIOError("import teams", path, err)
	}
	return l.ImportRows(rows)
}

// ImportRows создает недостающие команды и участников. Участник с тем же
// именем, но другим email, добавляется как второй участник с этим именем.
// Первая доменная ошибка прерывает импорт, уже добавленное не откатывается.
func (l *League) ImportRows(rows []csvcodec.Row) error {
	for i, row := range rows {
		team, ok := l.TeamNamed(row.TeamName)
		if !ok {
			oid, ok := l.FindFreeTeamOID()
			if !ok {
				return fmt.Errorf("row %d: no free team oid in league %s", i+1, l.Name)
			}
			team = NewTeam(oid, row.TeamName)
			if err := l.AddTeam(team); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		member, ok := team.MemberNamed(row.MemberName)
		if ok && strings.EqualFold(member.Email, row.MemberEmail) {
			continue
		}
		if ok {
			log.Warn().
				Str("team", team.Name).
				Str("member", row.MemberName).
				Msg("member name already used with a different email, adding a second member")
		}

		oid, ok := team.FindFreeMemberOID()
		if !ok {
			return fmt.Errorf("row %d: no free member oid in team %s", i+1, team.Name)
		}
		if err := team.AddMember(NewTeamMember(oid, row.MemberName, row.MemberEmail)); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// TeamRows - строки CSV для участников команды
func TeamRows(team *Team) []csvcodec.Row {
	rows := make([]csvcodec.Row, 0, len(team.members))
	for _, m := range team.members {
		rows = append(rows, csvcodec.Row{
			TeamName:    team.Name,
			MemberName:  m.Name,
			MemberEmail: m.Email,
		})
	}
	return rows
}

// String считает только команды, встречающиеся в соревнованиях (по имени),
// а не все зарегистрированные команды.
func (l *League) String() string {
	names := make(map[string]struct{})
	for _, c := range l.competitions {
		for _, t := range c.teams {
			if t != nil {
				names[t.Name] = struct{}{}
			}
		}
	}
	return fmt.Sprintf("League %s: %d teams, %d competitions", l.Name, len(names), len(l.competitions))
}
