package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pressroom/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) NotifyHeldComment(ctx context.Context, comment *domain.Comment, post *domain.Post) {
	m.Called(ctx, comment, post)
}
