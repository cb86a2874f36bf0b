package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pressroom/internal/domain"
)

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}
