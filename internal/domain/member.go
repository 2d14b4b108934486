package domain

import "fmt"

// TeamMember - участник команды. Email необязателен, пустая строка означает его отсутствие.
type TeamMember struct {
	oid   int
	Name  string
	Email string
}

func NewTeamMember(oid int, name, email string) *TeamMember {
	return &TeamMember{oid: oid, Name: name, Email: email}
}

func (m *TeamMember) OID() int {
	return m.oid
}

func (m *TeamMember) IdentityKey() IdentityKey {
	if m == nil {
		return IdentityKey{}
	}
	return IdentityKey{Kind: KindMember, OID: m.oid}
}

// SendEmail отправляет письмо только этому участнику
func (m *TeamMember) SendEmail(emailer Emailer, subject, message string) error {
	return emailer.SendPlainEmail([]string{m.Email}, subject, message)
}

func (m *TeamMember) String() string {
	return fmt.Sprintf("%s<%s>", m.Name, m.Email)
}
