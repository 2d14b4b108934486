package service

import (
	"context"

	"github.com/bagdasarian/league-manager/internal/snapshot"
	"github.com/stretchr/testify/mock"
)

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*snapshot.Snapshot), args.Error(1)
}

type MockEmailer struct {
	mock.Mock
}

func (m *MockEmailer) SendPlainEmail(recipients []string, subject, message string) error {
	args := m.Called(recipients, subject, message)
	return args.Error(0)
}
