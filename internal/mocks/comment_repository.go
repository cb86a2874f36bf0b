package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pressroom/internal/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) Update(ctx context.Context, comment *domain.Comment) (domain.Status, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *CommentRepository) TransitionStatus(ctx context.Context, id int64, to domain.Status) (domain.Status, error) {
	args := m.Called(ctx, id, to)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *CommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) List(ctx context.Context, params domain.ListCommentsParams) ([]domain.Comment, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) HasApprovedComment(ctx context.Context, authorID int64, authorEmail string) (bool, error) {
	args := m.Called(ctx, authorID, authorEmail)
	return args.Bool(0), args.Error(1)
}
