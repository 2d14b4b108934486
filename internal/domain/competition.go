package domain

import (
	"fmt"
	"time"
)

const competitionTimeLayout = "01/02/2006 15:04"

// Competition ссылается на команды лиги, а не копирует их
type Competition struct {
	oid      int
	teams    []*Team
	Location string
	DateTime *time.Time
}

// NewCompetition не проверяет команды: это делает League.AddCompetition
func NewCompetition(oid int, teams []*Team, location string, dateTime *time.Time) *Competition {
	return &Competition{
		oid:      oid,
		teams:    teams,
		Location: location,
		DateTime: dateTime,
	}
}

func (c *Competition) OID() int {
	return c.oid
}

func (c *Competition) IdentityKey() IdentityKey {
	if c == nil {
		return IdentityKey{}
	}
	return IdentityKey{Kind: KindCompetition, OID: c.oid}
}

func (c *Competition) TeamsCompeting() []*Team {
	out := make([]*Team, len(c.teams))
	copy(out, c.teams)
	return out
}

// Involves проверяет участие команды по идентичности
func (c *Competition) Involves(team *Team) bool {
	return contains(c.teams, team)
}

// SendEmail отправляет одно письмо участникам обеих команд. Участник,
// играющий за обе команды, и повторяющиеся адреса учитываются один раз.
func (c *Competition) SendEmail(emailer Emailer, subject, message string) error {
	seen := make(map[IdentityKey]struct{})
	queued := make(map[string]struct{})
	recipients := make([]string, 0)
	for _, team := range c.teams {
		if team == nil {
			continue
		}
		for _, m := range team.members {
			if _, ok := seen[m.IdentityKey()]; ok {
				continue
			}
			seen[m.IdentityKey()] = struct{}{}
			if m.Email == "" {
				continue
			}
			if _, ok := queued[m.Email]; ok {
				continue
			}
			queued[m.Email] = struct{}{}
			recipients = append(recipients, m.Email)
		}
	}
	return emailer.SendPlainEmail(recipients, subject, message)
}

func (c *Competition) String() string {
	when := ""
	if c.DateTime != nil {
		when = fmt.Sprintf("on %s ", c.DateTime.Format(competitionTimeLayout))
	}
	return fmt.Sprintf("Competition at %s %swith %d teams", c.Location, when, len(c.teams))
}
