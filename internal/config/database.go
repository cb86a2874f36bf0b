package config

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// InitSchema creates the tables if they are missing. Good enough for
// development and tests; production deployments run real migrations.
func InitSchema(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		display_name TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'subscriber',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS posts (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		comment_status TEXT NOT NULL DEFAULT 'open',
		comment_count BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS comments (
		id BIGSERIAL PRIMARY KEY,
		post_id BIGINT NOT NULL,
		parent_id BIGINT NOT NULL DEFAULT 0,
		author_id BIGINT NOT NULL DEFAULT 0,
		author_name TEXT NOT NULL DEFAULT '',
		author_email TEXT NOT NULL DEFAULT '',
		author_url TEXT NOT NULL DEFAULT '',
		author_ip TEXT NOT NULL DEFAULT '',
		author_user_agent TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		karma INT NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'hold',
		type TEXT NOT NULL DEFAULT 'comment',
		date TIMESTAMP NOT NULL,
		date_gmt TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_comments_post ON comments (post_id, status);
	CREATE INDEX IF NOT EXISTS idx_comments_author ON comments (author_id);

	CREATE TABLE IF NOT EXISTS audit_logs (
		id BIGSERIAL PRIMARY KEY,
		comment_id BIGINT NOT NULL,
		actor_id BIGINT NOT NULL DEFAULT 0,
		action TEXT NOT NULL,
		old_status TEXT NOT NULL DEFAULT '',
		new_status TEXT NOT NULL DEFAULT '',
		ip_address TEXT NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_audit_logs_comment ON audit_logs (comment_id);
	`

	_, err := db.Exec(schema)
	return err
}
