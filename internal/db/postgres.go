package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erasmusedu/erasmus-portal/internal/config"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/logger"
)

// PostgresStore stores registry documents in a single jsonb table, one row
// per entity, ordered by insertion id.
type PostgresStore struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

const documentsTable = "registry_documents"

// NewPostgresStore connects to the configured database and ensures the
// documents table exists.
func NewPostgresStore(cfg *config.Config) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	poolConfig.MaxConnLifetime = maxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}

	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info().Msg("Persistence backend connected")
	return store, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         BIGSERIAL PRIMARY KEY,
			collection TEXT NOT NULL,
			payload    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, documentsTable))
	if err != nil {
		return fmt.Errorf("failed to ensure documents table: %w", err)
	}

	_, err = s.pool.Exec(ctx, fmt.Sprintf(
		`CREATE INDEX IF NOT EXISTS idx_%s_collection ON %s (collection, id)`,
		documentsTable, documentsTable))
	if err != nil {
		return fmt.Errorf("failed to ensure documents index: %w", err)
	}

	return nil
}

// SelectAll returns every document of a collection in insertion order.
func (s *PostgresStore) SelectAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	sql, args, err := s.sb.Select("payload").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		docs = append(docs, json.RawMessage(payload))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}

// Insert appends one document to a collection.
func (s *PostgresStore) Insert(ctx context.Context, collection string, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	sql, args, err := s.sb.Insert(documentsTable).
		Columns("collection", "payload").
		Values(collection, payload).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting document: %w", err)
	}

	return nil
}

// Enabled reports that a real backend is attached.
func (s *PostgresStore) Enabled() bool { return true }

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
