package service

import (
	"github.com/redis/go-redis/v9"

	"pressroom/internal/config"
	"pressroom/internal/repository"
	"pressroom/internal/service/audit"
	"pressroom/internal/service/auth"
	"pressroom/internal/service/comment"
	"pressroom/internal/service/email"
	"pressroom/internal/service/notification"
)

type Services struct {
	Auth         auth.Service
	Comment      comment.Service
	Email        email.Service
	Notification notification.Service
	Audit        audit.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	notificationService := notification.NewService(emailService, cfg)
	auditService := audit.NewService(repos.AuditLog)
	authService := auth.NewService(repos.User, cfg)

	commentService := comment.NewService(repos.Comment, repos.Post, repos.User, redis, cfg)
	commentService.SetAuditService(auditService)
	commentService.SetNotificationService(notificationService)

	return &Services{
		Auth:         authService,
		Comment:      commentService,
		Email:        emailService,
		Notification: notificationService,
		Audit:        auditService,
	}
}
