package audit

import (
	"context"
	"log"

	"pressroom/internal/domain"
	"pressroom/internal/repository"
)

// Service keeps the per-comment moderation trail.
type Service interface {
	Record(ctx context.Context, entry domain.AuditLog)
	ListByComment(ctx context.Context, commentID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
}

type service struct {
	auditRepo repository.AuditLogRepository
}

func NewService(auditRepo repository.AuditLogRepository) Service {
	return &service{
		auditRepo: auditRepo,
	}
}

// Record appends one trail entry. The trail is advisory; a write failure is
// logged, not propagated, so it cannot undo a committed transition.
func (s *service) Record(ctx context.Context, entry domain.AuditLog) {
	if err := s.auditRepo.Create(ctx, &entry); err != nil {
		log.Printf("Failed to record audit entry for comment %d: %v", entry.CommentID, err)
	}
}

func (s *service) ListByComment(ctx context.Context, commentID int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	logs, total, err := s.auditRepo.ListByComment(ctx, commentID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}
	return domain.NewPaginatedResponse(logs, params.Page, params.PageSize, total), nil
}
