package domain

import (
	"time"
)

const (
	AuditActionCreate = "create"
	AuditActionStatus = "status_change"
	AuditActionDelete = "delete"
)

// AuditLog records one moderation-relevant event on a comment. Status
// transitions always produce an entry, which is what makes them auditable.
type AuditLog struct {
	ID        int64     `json:"id" db:"id"`
	CommentID int64     `json:"comment_id" db:"comment_id"`
	ActorID   int64     `json:"actor_id" db:"actor_id"`
	Action    string    `json:"action" db:"action"`
	OldStatus string    `json:"old_status" db:"old_status"`
	NewStatus string    `json:"new_status" db:"new_status"`
	IPAddress string    `json:"ip_address" db:"ip_address"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
