package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pressroom/internal/domain"
)

type AuditService struct {
	mock.Mock
}

func (m *AuditService) Record(ctx context.Context, entry domain.AuditLog) {
	m.Called(ctx, entry)
}

func (m *AuditService) ListByComment(ctx context.Context, commentID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	args := m.Called(ctx, commentID, params)
	return args.Get(0).(domain.PaginatedResponse[domain.AuditLog]), args.Error(1)
}
