package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for lookup cache operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// GetCachedReply retrieves an unexpired cached reply for the given
	// intent and subject. Returns nil, nil when no usable entry exists.
	GetCachedReply(ctx context.Context, intentKind, subject string, now time.Time) (*CachedReply, error)

	// SaveCachedReply inserts or replaces the cached reply for its
	// (intent, subject) key.
	SaveCachedReply(ctx context.Context, reply *CachedReply) error

	// DeleteExpired removes entries whose expiry is at or before now and
	// reports how many rows were purged.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetCachedReply retrieves an unexpired cached reply, or nil, nil if absent.
func (s *sqlxStore) GetCachedReply(ctx context.Context, intentKind, subject string, now time.Time) (*CachedReply, error) {
	if intentKind == "" || subject == "" {
		return nil, fmt.Errorf("cache key requires both intent and subject")
	}

	var reply CachedReply
	query := `SELECT id, created_at, intent, subject, summary, expires_at
	          FROM lookup_cache
	          WHERE intent = ? AND subject = ? AND expires_at > ?`
	err := s.db.GetContext(ctx, &reply, query, intentKind, subject, now.UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.ErrorContext(ctx, "Failed to query lookup cache",
			"intent", intentKind, "subject", subject, "error", err)
		return nil, fmt.Errorf("failed to query lookup cache: %w", err)
	}

	return &reply, nil
}

// SaveCachedReply inserts or replaces the cached reply for its key.
func (s *sqlxStore) SaveCachedReply(ctx context.Context, reply *CachedReply) error {
	if reply == nil {
		return fmt.Errorf("cannot save nil cached reply")
	}
	if reply.Intent == "" || reply.Subject == "" {
		return fmt.Errorf("cached reply must have intent and subject")
	}
	if reply.ExpiresAt.IsZero() {
		return fmt.Errorf("cached reply must have an expiry")
	}

	reply.CreatedAt = time.Now().UTC()

	query := `INSERT INTO lookup_cache (created_at, intent, subject, summary, expires_at)
	          VALUES (:created_at, :intent, :subject, :summary, :expires_at)
	          ON CONFLICT(intent, subject) DO UPDATE SET
	              created_at = excluded.created_at,
	              summary    = excluded.summary,
	              expires_at = excluded.expires_at`
	if _, err := s.db.NamedExecContext(ctx, query, reply); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save cached reply",
			"intent", reply.Intent, "subject", reply.Subject, "error", err)
		return fmt.Errorf("failed to save cached reply: %w", err)
	}

	s.logger.DebugContext(ctx, "Cached handler reply",
		"intent", reply.Intent, "subject", reply.Subject, "expires_at", reply.ExpiresAt)
	return nil
}

// DeleteExpired removes entries whose expiry has passed.
func (s *sqlxStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lookup_cache WHERE expires_at <= ?`, now.UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete expired cache entries", "error", err)
		return 0, fmt.Errorf("failed to delete expired cache entries: %w", err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		// SQLite supports RowsAffected; treat failure as purged-count-unknown.
		return 0, nil
	}
	return purged, nil
}

// RunSQLMaintenance performs database maintenance tasks like VACUUM.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		s.logger.ErrorContext(ctx, "Failed to run VACUUM", "error", err)
		return fmt.Errorf("failed to run VACUUM: %w", err)
	}
	s.logger.InfoContext(ctx, "SQL maintenance completed")
	return nil
}
