package domain

import "github.com/stretchr/testify/mock"

type MockEmailer struct {
	mock.Mock
}

func (m *MockEmailer) SendPlainEmail(recipients []string, subject, message string) error {
	args := m.Called(recipients, subject, message)
	return args.Error(0)
}
