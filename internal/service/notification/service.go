package notification

import (
	"context"
	"log"

	"pressroom/internal/config"
	"pressroom/internal/domain"
	"pressroom/internal/service/email"
)

// Service fans moderation-relevant events out to the configured channels.
// Only email for now.
type Service interface {
	NotifyHeldComment(ctx context.Context, comment *domain.Comment, post *domain.Post)
}

type service struct {
	emailService email.Service
	cfg          *config.Config
}

func NewService(emailService email.Service, cfg *config.Config) Service {
	return &service{
		emailService: emailService,
		cfg:          cfg,
	}
}

// NotifyHeldComment tells the moderation address a comment is waiting.
// Best-effort: a failed notification never fails the request that created
// the comment.
func (s *service) NotifyHeldComment(ctx context.Context, comment *domain.Comment, post *domain.Post) {
	if s.cfg.ModerationEmail == "" {
		return
	}

	excerpt := excerptContent(comment.Content)

	authorName := comment.AuthorName
	if authorName == "" {
		authorName = "Anonymous"
	}

	moderateLink := s.cfg.SiteURL + "/api/v1/comments?status=hold"

	go func() {
		err := s.emailService.SendModerationEmail(context.Background(),
			s.cfg.ModerationEmail, authorName, post.Title, excerpt, moderateLink)
		if err != nil {
			log.Printf("Failed to send moderation email for comment %d: %v", comment.ID, err)
		}
	}()
}

const excerptRunes = 200

// excerptContent shortens comment text for the notification body, cutting
// on a rune boundary so multi-byte characters are never split.
func excerptContent(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptRunes {
		return s
	}
	return string(runes[:excerptRunes]) + "…"
}
