package domain

import (
	"fmt"
	"strings"
)

// Team владеет упорядоченным списком участников. OID и непустые email
// (без учета регистра) участников уникальны внутри команды.
type Team struct {
	oid     int
	Name    string
	members []*TeamMember
}

func NewTeam(oid int, name string) *Team {
	return &Team{oid: oid, Name: name}
}

// RestoreTeam собирает команду из сохраненного состояния как есть: проверки
// AddMember не повторяются, nil-участники пропускаются.
func RestoreTeam(oid int, name string, members []*TeamMember) *Team {
	t := &Team{oid: oid, Name: name, members: make([]*TeamMember, 0, len(members))}
	for _, m := range members {
		if m != nil {
			t.members = append(t.members, m)
		}
	}
	return t
}

func (t *Team) OID() int {
	return t.oid
}

func (t *Team) IdentityKey() IdentityKey {
	if t == nil {
		return IdentityKey{}
	}
	return IdentityKey{Kind: KindTeam, OID: t.oid}
}

// Members возвращает копию списка участников в порядке добавления
func (t *Team) Members() []*TeamMember {
	out := make([]*TeamMember, len(t.members))
	copy(out, t.members)
	return out
}

// AddMember добавляет участника в конец списка. nil игнорируется.
func (t *Team) AddMember(member *TeamMember) error {
	if member == nil {
		return nil
	}
	if contains(t.members, member) {
		return NewDuplicateOIDError(KindMember, member.oid)
	}
	if member.Email != "" {
		for _, m := range t.members {
			if strings.EqualFold(m.Email, member.Email) {
				return NewDuplicateEmailError(member.Email)
			}
		}
	}
	t.members = append(t.members, member)
	return nil
}

// UpdateMember меняет имя и email участника команды. Email не должен
// совпадать с email другого участника.
func (t *Team) UpdateMember(member *TeamMember, name, email string) error {
	if !contains(t.members, member) {
		return NewNotFoundError(fmt.Sprintf("member %d in team %s", member.OID(), t.Name))
	}
	if email != "" {
		for _, m := range t.members {
			if !SameIdentity(m, member) && strings.EqualFold(m.Email, email) {
				return NewDuplicateEmailError(email)
			}
		}
	}
	member.Name = name
	member.Email = email
	return nil
}

// RemoveMember удаляет участника, если он есть в команде
func (t *Team) RemoveMember(member *TeamMember) {
	t.members = removeIdentity(t.members, member)
}

// MemberNamed ищет первого участника с точно совпадающим именем
func (t *Team) MemberNamed(name string) (*TeamMember, bool) {
	for _, m := range t.members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

func (t *Team) HasMember(member *TeamMember) bool {
	return contains(t.members, member)
}

func (t *Team) FindFreeMemberOID() (int, bool) {
	return FindFreeOID(t.members)
}

// SendEmail отправляет одно письмо всем участникам с email. Повторяющиеся
// адреса не схлопываются.
func (t *Team) SendEmail(emailer Emailer, subject, message string) error {
	recipients := make([]string, 0, len(t.members))
	for _, m := range t.members {
		if m.Email != "" {
			recipients = append(recipients, m.Email)
		}
	}
	return emailer.SendPlainEmail(recipients, subject, message)
}

func (t *Team) String() string {
	return fmt.Sprintf("Team %s: %d members", t.Name, len(t.members))
}
