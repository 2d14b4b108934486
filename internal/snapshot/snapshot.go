// Package snapshot описывает версионированный формат сохранения всей базы лиг.
// Связи между сущностями хранятся через OID, а не через раскладку памяти.
package snapshot

import (
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/google/uuid"
)

const CurrentVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

type Snapshot struct {
	Version int       `json:"version" yaml:"version"`
	ID      uuid.UUID `json:"id" yaml:"id"`
	SavedAt time.Time `json:"saved_at" yaml:"saved_at"`
	LastOID int       `json:"last_oid" yaml:"last_oid"`
	Leagues []League  `json:"leagues" yaml:"leagues"`
}

// League.DetachedTeams - команды соревнований, не зарегистрированные в лиге
// (AddCompetition сверяет только имя).
type League struct {
	OID           int           `json:"oid" yaml:"oid"`
	Name          string        `json:"name" yaml:"name"`
	Teams         []Team        `json:"teams" yaml:"teams"`
	Competitions  []Competition `json:"competitions" yaml:"competitions"`
	DetachedTeams []Team        `json:"detached_teams,omitempty" yaml:"detached_teams,omitempty"`
}

type Team struct {
	OID     int      `json:"oid" yaml:"oid"`
	Name    string   `json:"name" yaml:"name"`
	Members []Member `json:"members" yaml:"members"`
}

type Member struct {
	OID   int    `json:"oid" yaml:"oid"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// TeamRef - ссылка соревнования на команду лиги или на DetachedTeams
type TeamRef struct {
	OID      int    `json:"oid" yaml:"oid"`
	Name     string `json:"name" yaml:"name"`
	Detached bool   `json:"detached,omitempty" yaml:"detached,omitempty"`
}

type teamKey struct {
	oid  int
	name string
}

type Competition struct {
	OID      int        `json:"oid" yaml:"oid"`
	Teams    []TeamRef  `json:"teams" yaml:"teams"`
	Location string     `json:"location" yaml:"location"`
	DateTime *time.Time `json:"date_time,omitempty" yaml:"date_time,omitempty"`
}

// Capture снимает состояние реестра лиг
func Capture(id uuid.UUID, savedAt time.Time, lastOID int, leagues []*domain.League) *Snapshot {
	s := &Snapshot{
		Version: CurrentVersion,
		ID:      id,
		SavedAt: savedAt.UTC(),
		LastOID: lastOID,
		Leagues: make([]League, 0, len(leagues)),
	}
	for _, l := range leagues {
		s.Leagues = append(s.Leagues, captureLeague(l))
	}
	return s
}

func captureTeam(t *domain.Team) Team {
	team := Team{OID: t.OID(), Name: t.Name, Members: make([]Member, 0)}
	for _, m := range t.Members() {
		team.Members = append(team.Members, Member{OID: m.OID(), Name: m.Name, Email: m.Email})
	}
	return team
}

func captureLeague(l *domain.League) League {
	out := League{
		OID:          l.OID(),
		Name:         l.Name,
		Teams:        make([]Team, 0),
		Competitions: make([]Competition, 0),
	}
	registered := make(map[*domain.Team]struct{})
	for _, t := range l.Teams() {
		registered[t] = struct{}{}
		out.Teams = append(out.Teams, captureTeam(t))
	}

	detached := make(map[*domain.Team]struct{})
	for _, c := range l.Competitions() {
		comp := Competition{OID: c.OID(), Location: c.Location, Teams: make([]TeamRef, 0, 2)}
		if c.DateTime != nil {
			dt := *c.DateTime
			comp.DateTime = &dt
		}
		for _, t := range c.TeamsCompeting() {
			if t == nil {
				continue
			}
			ref := TeamRef{OID: t.OID(), Name: t.Name}
			if _, ok := registered[t]; !ok {
				ref.Detached = true
				if _, seen := detached[t]; !seen {
					detached[t] = struct{}{}
					out.DetachedTeams = append(out.DetachedTeams, captureTeam(t))
				}
			}
			comp.Teams = append(comp.Teams, ref)
		}
		out.Competitions = append(out.Competitions, comp)
	}
	return out
}

// Restore восстанавливает граф лиг ровно в сохраненном виде. Команды
// соревнований разрешаются по OID и имени внутри своей лиги, затем только
// по имени; отдельно сохраненные команды - по OID и имени.
func (s *Snapshot) Restore() ([]*domain.League, error) {
	if s.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	leagues := make([]*domain.League, 0, len(s.Leagues))
	for _, rec := range s.Leagues {
		l, err := restoreLeague(rec)
		if err != nil {
			return nil, fmt.Errorf("league %q: %w", rec.Name, err)
		}
		leagues = append(leagues, l)
	}
	return leagues, nil
}

func restoreTeam(rec Team) *domain.Team {
	members := make([]*domain.TeamMember, 0, len(rec.Members))
	for _, mr := range rec.Members {
		members = append(members, domain.NewTeamMember(mr.OID, mr.Name, mr.Email))
	}
	return domain.RestoreTeam(rec.OID, rec.Name, members)
}

func restoreLeague(rec League) (*domain.League, error) {
	teams := make([]*domain.Team, 0, len(rec.Teams))
	for _, tr := range rec.Teams {
		teams = append(teams, restoreTeam(tr))
	}
	detached := make(map[teamKey]*domain.Team, len(rec.DetachedTeams))
	for _, tr := range rec.DetachedTeams {
		key := teamKey{oid: tr.OID, name: tr.Name}
		if _, ok := detached[key]; !ok {
			detached[key] = restoreTeam(tr)
		}
	}

	competitions := make([]*domain.Competition, 0, len(rec.Competitions))
	for _, cr := range rec.Competitions {
		competing := make([]*domain.Team, 0, len(cr.Teams))
		for _, ref := range cr.Teams {
			var (
				t  *domain.Team
				ok bool
			)
			if ref.Detached {
				t, ok = detached[teamKey{oid: ref.OID, name: ref.Name}]
			} else {
				t, ok = resolveTeam(teams, ref)
			}
			if !ok {
				return nil, fmt.Errorf("competition %d: %w", cr.OID, domain.NewNotFoundError("team "+ref.Name))
			}
			competing = append(competing, t)
		}
		var dt *time.Time
		if cr.DateTime != nil {
			v := *cr.DateTime
			dt = &v
		}
		competitions = append(competitions, domain.NewCompetition(cr.OID, competing, cr.Location, dt))
	}
	return domain.RestoreLeague(rec.OID, rec.Name, teams, competitions), nil
}

func resolveTeam(teams []*domain.Team, ref TeamRef) (*domain.Team, bool) {
	for _, t := range teams {
		if t.OID() == ref.OID && t.Name == ref.Name {
			return t, true
		}
	}
	for _, t := range teams {
		if t.Name == ref.Name {
			return t, true
		}
	}
	return nil, false
}
