package comment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pressroom/internal/config"
	"pressroom/internal/domain"
	"pressroom/internal/repository"
	"pressroom/internal/service/audit"
	"pressroom/internal/service/notification"
)

// RequestMeta is the transport-level trivia recorded against guest comments
// and audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type Service interface {
	List(ctx context.Context, caller domain.Caller, params domain.ListCommentsParams, rctx domain.RequestContext) ([]domain.CommentResponse, error)
	Get(ctx context.Context, caller domain.Caller, id int64, rctx domain.RequestContext) (*domain.CommentResponse, error)
	Create(ctx context.Context, caller domain.Caller, input domain.CreateCommentInput, meta RequestMeta) (*domain.CommentResponse, error)
	Update(ctx context.Context, caller domain.Caller, id int64, input domain.UpdateCommentInput, meta RequestMeta) (*domain.CommentResponse, error)
	Delete(ctx context.Context, caller domain.Caller, id int64, force bool, meta RequestMeta) (*domain.DeleteResult, error)
	AuditTrail(ctx context.Context, caller domain.Caller, id int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)

	SetAuditService(auditService audit.Service)
	SetNotificationService(notificationService notification.Service)
}

type service struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	redis       *redis.Client
	cfg         *config.Config

	auditService        audit.Service
	notificationService notification.Service
}

func NewService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository, redis *redis.Client, cfg *config.Config) Service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		redis:       redis,
		cfg:         cfg,
	}
}

func (s *service) SetAuditService(auditService audit.Service) {
	s.auditService = auditService
}

func (s *service) SetNotificationService(notificationService notification.Service) {
	s.notificationService = notificationService
}

func (s *service) List(ctx context.Context, caller domain.Caller, params domain.ListCommentsParams, rctx domain.RequestContext) ([]domain.CommentResponse, error) {
	// Edit projection of a collection is a moderator concern; ownership only
	// applies to individual comments.
	if rctx == domain.ContextEdit && !caller.CanModerate() {
		return nil, domain.ErrForbiddenContext
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Only the fully public query shape is cached: anonymous caller, view
	// projection, approved comments, no search or author filter.
	cacheable := s.redis != nil &&
		rctx == domain.ContextView &&
		caller.IsAnonymous() &&
		params.Status == string(domain.StatusApproved) &&
		params.Author == 0 && params.Search == ""

	cacheKey := s.listCacheKey(params)
	if cacheable {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var result []domain.CommentResponse
			if json.Unmarshal([]byte(cached), &result) == nil {
				return result, nil
			}
		}
	}

	comments, err := s.commentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	// A comment whose post no longer resolves is invisible to everyone,
	// same as the single-comment path. Posts are resolved once per id.
	posts := make(map[int64]*domain.Post)
	result := make([]domain.CommentResponse, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		post, seen := posts[c.PostID]
		if !seen {
			post, err = s.postRepo.GetByID(ctx, c.PostID)
			if err != nil {
				return nil, err
			}
			posts[c.PostID] = post
		}
		if post == nil {
			continue
		}
		if !domain.CanSeeComment(caller, c) {
			continue
		}
		result = append(result, domain.ProjectComment(c, s.cfg.SiteURL, rctx))
	}

	if cacheable {
		if resultJSON, err := json.Marshal(result); err == nil {
			_ = s.redis.Set(ctx, cacheKey, resultJSON, 5*time.Minute).Err()
		}
	}

	return result, nil
}

func (s *service) Get(ctx context.Context, caller domain.Caller, id int64, rctx domain.RequestContext) (*domain.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrCommentInvalidID
	}

	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostInvalidID
	}

	if rctx == domain.ContextEdit && !domain.CanUseEditContext(caller, comment) {
		return nil, domain.ErrForbiddenContext
	}

	if !domain.CanSeeComment(caller, comment) {
		return nil, domain.ErrCannotRead
	}

	resp := domain.ProjectComment(comment, s.cfg.SiteURL, rctx)
	return &resp, nil
}

func (s *service) Create(ctx context.Context, caller domain.Caller, input domain.CreateCommentInput, meta RequestMeta) (*domain.CommentResponse, error) {
	if input.Post == 0 {
		return nil, domain.NewInvalidParam("post")
	}

	post, err := s.postRepo.GetByID(ctx, input.Post)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostInvalidID
	}

	caps := domain.ResolveCapabilities(caller, nil, post)
	if !caps.Create {
		return nil, domain.ErrCommentClosed
	}

	if input.Content == "" {
		return nil, domain.NewInvalidParam("content")
	}

	if input.Parent != 0 {
		parent, err := s.commentRepo.GetByID(ctx, input.Parent)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != input.Post {
			return nil, domain.NewInvalidParam("parent")
		}
	}

	authorID := caller.UserID
	if input.Author != nil && *input.Author != authorID {
		// Assigning authorship to someone else is a moderator move.
		if !caps.Moderate {
			return nil, domain.ErrCannotEdit
		}
		authorID = *input.Author
	}

	authorName := input.AuthorName
	authorEmail := input.AuthorEmail
	authorURL := input.AuthorURL
	if authorID != 0 {
		author, err := s.userRepo.GetByID(ctx, authorID)
		if err != nil {
			return nil, err
		}
		if author == nil {
			return nil, domain.NewInvalidParam("author")
		}
		if authorName == "" {
			authorName = author.DisplayName
		}
		if authorEmail == "" {
			authorEmail = author.Email
		}
		if authorURL == "" {
			authorURL = author.URL
		}
	}

	status, err := s.initialStatus(ctx, caps, input.Status, authorID, authorEmail)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != "" {
		parsed, perr := domain.ParseFloatingTime(input.Date)
		if perr != nil {
			return nil, domain.NewInvalidParam("date")
		}
		date = parsed
	}

	comment := &domain.Comment{
		PostID:          input.Post,
		ParentID:        input.Parent,
		AuthorID:        authorID,
		AuthorName:      authorName,
		AuthorEmail:     authorEmail,
		AuthorURL:       authorURL,
		AuthorIP:        meta.IPAddress,
		AuthorUserAgent: meta.UserAgent,
		Content:         input.Content,
		Status:          status,
		Type:            domain.CommentTypeComment,
		Date:            date,
		DateGMT:         date.UTC(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.record(ctx, domain.AuditLog{
		CommentID: comment.ID,
		ActorID:   caller.UserID,
		Action:    domain.AuditActionCreate,
		NewStatus: string(status),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	if status == domain.StatusHold && s.notificationService != nil {
		s.notificationService.NotifyHeldComment(ctx, comment, post)
	}

	s.invalidateListCache(ctx, comment.PostID)

	resp := domain.ProjectComment(comment, s.cfg.SiteURL, domain.ContextView)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, caller domain.Caller, id int64, input domain.UpdateCommentInput, meta RequestMeta) (*domain.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrCommentInvalidID
	}

	caps := domain.ResolveCapabilities(caller, comment, nil)
	if !caps.Edit {
		return nil, domain.ErrCannotEdit
	}

	// Everything is validated before anything is written.
	if input.Status != nil {
		status, ok := domain.ParseStatus(*input.Status)
		if !ok {
			return nil, domain.NewInvalidParam("status")
		}
		if !caps.Moderate {
			return nil, domain.ErrForbiddenStatusChange
		}
		comment.Status = status
	}
	if input.Karma != nil {
		if !caps.Moderate {
			return nil, domain.ErrCannotEdit
		}
		comment.Karma = *input.Karma
	}
	if input.Date != nil {
		date, perr := domain.ParseFloatingTime(*input.Date)
		if perr != nil {
			return nil, domain.NewInvalidParam("date")
		}
		comment.Date = date
		comment.DateGMT = date.UTC()
	}
	if input.Content != nil {
		comment.Content = *input.Content
	}
	if input.AuthorName != nil {
		comment.AuthorName = *input.AuthorName
	}
	if input.AuthorEmail != nil {
		comment.AuthorEmail = *input.AuthorEmail
	}
	if input.AuthorURL != nil {
		comment.AuthorURL = *input.AuthorURL
	}

	old, err := s.commentRepo.Update(ctx, comment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentInvalidID
		}
		return nil, err
	}

	if old != comment.Status {
		s.record(ctx, domain.AuditLog{
			CommentID: comment.ID,
			ActorID:   caller.UserID,
			Action:    domain.AuditActionStatus,
			OldStatus: string(old),
			NewStatus: string(comment.Status),
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
		})
	}

	s.invalidateListCache(ctx, comment.PostID)

	resp := domain.ProjectComment(comment, s.cfg.SiteURL, domain.ContextView)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, caller domain.Caller, id int64, force bool, meta RequestMeta) (*domain.DeleteResult, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrCommentInvalidID
	}

	caps := domain.ResolveCapabilities(caller, comment, nil)
	if !caps.Delete {
		return nil, domain.ErrCannotEdit
	}

	previous := domain.ProjectComment(comment, s.cfg.SiteURL, domain.ContextView)

	if force {
		if err := s.commentRepo.Delete(ctx, id); err != nil {
			return nil, err
		}

		s.record(ctx, domain.AuditLog{
			CommentID: id,
			ActorID:   caller.UserID,
			Action:    domain.AuditActionDelete,
			OldStatus: string(comment.Status),
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
		})
		s.invalidateListCache(ctx, comment.PostID)

		return &domain.DeleteResult{Deleted: true, Previous: previous}, nil
	}

	old, err := s.commentRepo.TransitionStatus(ctx, id, domain.StatusTrash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentInvalidID
		}
		return nil, err
	}

	if old != domain.StatusTrash {
		s.record(ctx, domain.AuditLog{
			CommentID: id,
			ActorID:   caller.UserID,
			Action:    domain.AuditActionStatus,
			OldStatus: string(old),
			NewStatus: string(domain.StatusTrash),
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
		})
	}
	s.invalidateListCache(ctx, comment.PostID)

	previous.Status = domain.StatusTrash
	return &domain.DeleteResult{Trashed: true, Previous: previous}, nil
}

func (s *service) AuditTrail(ctx context.Context, caller domain.Caller, id int64, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	var empty domain.PaginatedResponse[domain.AuditLog]

	if !caller.CanModerate() {
		return empty, domain.ErrForbiddenContext
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return empty, err
	}
	if comment == nil {
		return empty, domain.ErrCommentInvalidID
	}

	return s.auditService.ListByComment(ctx, id, params)
}

// initialStatus decides where a new comment starts. An explicit status is a
// moderator-only request; otherwise moderators are auto-approved and
// everyone else goes to hold, unless the trusted-author policy is on and
// the author already has an approved comment.
func (s *service) initialStatus(ctx context.Context, caps domain.CapabilitySet, requested string, authorID int64, authorEmail string) (domain.Status, error) {
	if requested != "" {
		if !caps.Moderate {
			return "", domain.ErrForbiddenStatusChange
		}
		status, ok := domain.ParseStatus(requested)
		if !ok {
			return "", domain.NewInvalidParam("status")
		}
		return status, nil
	}

	if caps.Moderate {
		return domain.StatusApproved, nil
	}

	if s.cfg.AutoApproveKnown {
		known, err := s.commentRepo.HasApprovedComment(ctx, authorID, authorEmail)
		if err != nil {
			return "", err
		}
		if known {
			return domain.StatusApproved, nil
		}
	}

	return domain.StatusHold, nil
}

func (s *service) record(ctx context.Context, entry domain.AuditLog) {
	if s.auditService != nil {
		s.auditService.Record(ctx, entry)
	}
}

func (s *service) listCacheKey(params domain.ListCommentsParams) string {
	return fmt.Sprintf("comments:post:%d:page:%d:size:%d:order:%s:%s",
		params.Post, params.Page, params.PageSize, params.OrderBy, params.Order)
}

func (s *service) invalidateListCache(ctx context.Context, postID int64) {
	if s.redis == nil {
		return
	}
	for _, pattern := range []string{
		fmt.Sprintf("comments:post:%d:*", postID),
		"comments:post:0:*",
	} {
		keys, _ := s.redis.Keys(ctx, pattern).Result()
		if len(keys) > 0 {
			_ = s.redis.Del(ctx, keys...).Err()
		}
	}
}
