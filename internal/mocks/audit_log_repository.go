package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pressroom/internal/domain"
)

type AuditLogRepository struct {
	mock.Mock
}

func (m *AuditLogRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditLogRepository) ListByComment(ctx context.Context, commentID int64, params domain.PaginationParams) ([]domain.AuditLog, int64, error) {
	args := m.Called(ctx, commentID, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.AuditLog), args.Get(1).(int64), args.Error(2)
}
