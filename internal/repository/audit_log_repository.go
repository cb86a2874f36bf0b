package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"pressroom/internal/domain"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	ListByComment(ctx context.Context, commentID int64, params domain.PaginationParams) ([]domain.AuditLog, int64, error)
}

type auditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (comment_id, actor_id, action, old_status, new_status, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		log.CommentID, log.ActorID, log.Action, log.OldStatus, log.NewStatus,
		log.IPAddress, log.UserAgent,
	).Scan(&log.ID, &log.CreatedAt)
}

func (r *auditLogRepository) ListByComment(ctx context.Context, commentID int64, params domain.PaginationParams) ([]domain.AuditLog, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM audit_logs WHERE comment_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, commentID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM audit_logs
		WHERE comment_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	var logs []domain.AuditLog
	err := r.db.SelectContext(ctx, &logs, query, commentID, params.PageSize, params.Offset())
	return logs, total, err
}
