package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Comment  CommentRepository
	Post     PostRepository
	User     UserRepository
	AuditLog AuditLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Comment:  NewCommentRepository(db),
		Post:     NewPostRepository(db),
		User:     NewUserRepository(db),
		AuditLog: NewAuditLogRepository(db),
	}
}
