package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"pressroom/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) (domain.Status, error)
	TransitionStatus(ctx context.Context, id int64, to domain.Status) (domain.Status, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params domain.ListCommentsParams) ([]domain.Comment, error)
	HasApprovedComment(ctx context.Context, authorID int64, authorEmail string) (bool, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and, when it lands directly in the approved
// state, bumps the parent post's visible-comment counter in the same
// transaction.
func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO comments (post_id, parent_id, author_id, author_name, author_email, author_url,
			author_ip, author_user_agent, content, karma, status, type, date, date_gmt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	if err := tx.QueryRowxContext(ctx, query,
		comment.PostID, comment.ParentID, comment.AuthorID,
		comment.AuthorName, comment.AuthorEmail, comment.AuthorURL,
		comment.AuthorIP, comment.AuthorUserAgent,
		comment.Content, comment.Karma, comment.Status, comment.Type,
		comment.Date, comment.DateGMT,
	).Scan(&comment.ID); err != nil {
		return err
	}

	if comment.Status.Approved() {
		if err := adjustCommentCount(ctx, tx, comment.PostID, 1); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT * FROM comments WHERE id = $1`
	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update persists every mutable field. The stored row is locked for the
// duration so a concurrent transition cannot interleave, and an approval
// change adjusts the post counter in the same transaction. Returns the
// status the row held before the update.
func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) (domain.Status, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	old, err := lockStatus(ctx, tx, comment.ID)
	if err != nil {
		return "", err
	}

	query := `
		UPDATE comments
		SET author_name = $2, author_email = $3, author_url = $4,
			content = $5, karma = $6, status = $7, date = $8, date_gmt = $9
		WHERE id = $1`

	if _, err := tx.ExecContext(ctx, query,
		comment.ID, comment.AuthorName, comment.AuthorEmail, comment.AuthorURL,
		comment.Content, comment.Karma, comment.Status, comment.Date, comment.DateGMT,
	); err != nil {
		return "", err
	}

	if delta := domain.ApprovedDelta(old, comment.Status); delta != 0 {
		if err := adjustCommentCount(ctx, tx, comment.PostID, delta); err != nil {
			return "", err
		}
	}

	return old, tx.Commit()
}

// TransitionStatus moves the comment to the target status, adjusting the
// post counter atomically. Returns the previous status.
func (r *commentRepository) TransitionStatus(ctx context.Context, id int64, to domain.Status) (domain.Status, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	old, err := lockStatus(ctx, tx, id)
	if err != nil {
		return "", err
	}

	var postID int64
	if err := tx.GetContext(ctx, &postID, `SELECT post_id FROM comments WHERE id = $1`, id); err != nil {
		return "", err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE comments SET status = $2 WHERE id = $1`, id, to); err != nil {
		return "", err
	}

	if delta := domain.ApprovedDelta(old, to); delta != 0 {
		if err := adjustCommentCount(ctx, tx, postID, delta); err != nil {
			return "", err
		}
	}

	return old, tx.Commit()
}

// Delete removes the comment permanently. An approved comment leaving the
// table decrements the post counter in the same transaction.
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	old, err := lockStatus(ctx, tx, id)
	if err != nil {
		return err
	}

	var postID int64
	if err := tx.GetContext(ctx, &postID, `SELECT post_id FROM comments WHERE id = $1`, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return err
	}

	if old.Approved() {
		if err := adjustCommentCount(ctx, tx, postID, -1); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// List translates the validated filter set into one deterministic query.
func (r *commentRepository) List(ctx context.Context, params domain.ListCommentsParams) ([]domain.Comment, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.Post != 0 {
		conditions = append(conditions, "post_id = "+arg(params.Post))
	}
	if params.Status != domain.StatusAll {
		conditions = append(conditions, "status = "+arg(params.Status))
	}
	if params.Author != 0 {
		conditions = append(conditions, "author_id = "+arg(params.Author))
	}
	if params.Search != "" {
		conditions = append(conditions, "content ILIKE "+arg("%"+params.Search+"%"))
	}

	query := fmt.Sprintf(`
		SELECT * FROM comments
		WHERE %s
		ORDER BY %s %s, id %s
		LIMIT %s OFFSET %s`,
		strings.Join(conditions, " AND "),
		params.OrderColumn(), params.Order, params.Order,
		arg(params.PageSize), arg(params.Offset()),
	)

	var comments []domain.Comment
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}

// HasApprovedComment reports whether the author already has an approved
// comment on record, matched by account id or, for guests, by email.
func (r *commentRepository) HasApprovedComment(ctx context.Context, authorID int64, authorEmail string) (bool, error) {
	var exists bool
	var err error
	if authorID != 0 {
		err = r.db.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM comments WHERE author_id = $1 AND status = $2)`,
			authorID, domain.StatusApproved)
	} else {
		if authorEmail == "" {
			return false, nil
		}
		err = r.db.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM comments WHERE author_id = 0 AND author_email = $1 AND status = $2)`,
			authorEmail, domain.StatusApproved)
	}
	return exists, err
}

func lockStatus(ctx context.Context, tx *sqlx.Tx, id int64) (domain.Status, error) {
	var status domain.Status
	err := tx.GetContext(ctx, &status, `SELECT status FROM comments WHERE id = $1 FOR UPDATE`, id)
	return status, err
}

func adjustCommentCount(ctx context.Context, tx *sqlx.Tx, postID int64, delta int) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE posts SET comment_count = comment_count + $2 WHERE id = $1`, postID, delta)
	return err
}
