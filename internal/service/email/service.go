package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"pressroom/internal/config"
)

type Service interface {
	SendModerationEmail(ctx context.Context, toEmail, authorName, postTitle, excerpt, moderateLink string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var moderationTemplate = template.Must(template.New("moderation").Parse(`
<p>A new comment by <strong>{{.AuthorName}}</strong> on &ldquo;{{.PostTitle}}&rdquo; is waiting for moderation.</p>
<blockquote>{{.Excerpt}}</blockquote>
<p><a href="{{.ModerateLink}}">Review the moderation queue</a></p>
`))

func (s *service) SendModerationEmail(ctx context.Context, toEmail, authorName, postTitle, excerpt, moderateLink string) error {
	var body bytes.Buffer
	data := struct {
		AuthorName   string
		PostTitle    string
		Excerpt      string
		ModerateLink string
	}{authorName, postTitle, excerpt, moderateLink}

	if err := moderationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute moderation email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Pressroom <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: fmt.Sprintf("Please moderate: comment on %q", postTitle),
	}

	_, err := s.client.Emails.Send(params)
	return err
}
