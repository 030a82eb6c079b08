package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

// PostgresStore implements the ExportStore interface for PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) GetPool() *pgxpool.Pool {
	return s.pool
}

func (s *PostgresStore) RecordExport(ctx context.Context, record *models.ExportRecord) error {
	query := `
		INSERT INTO exports (id, reference_code, product_family, ifc_path, datasheet_path, byte_size, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		record.ID,
		record.ReferenceCode,
		string(record.ProductFamily),
		record.IFCPath,
		record.DatasheetPath,
		record.ByteSize,
		record.Duration.Milliseconds(),
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetExport(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	query := `
		SELECT id, reference_code, product_family, ifc_path, datasheet_path, byte_size, duration_ms, created_at
		FROM exports
		WHERE id = $1
	`

	record, err := scanExport(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, utils.NewAppError(utils.CodeNotFound, "export not found", err).
				WithDetail("id", id.String())
		}
		return nil, fmt.Errorf("failed to get export: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) ListExports(ctx context.Context, limit, offset int) ([]*models.ExportRecord, error) {
	query := `
		SELECT id, reference_code, product_family, ifc_path, datasheet_path, byte_size, duration_ms, created_at
		FROM exports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	var records []*models.ExportRecord
	for rows.Next() {
		record, err := scanExport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExport(row rowScanner) (*models.ExportRecord, error) {
	var record models.ExportRecord
	var family string
	var durationMs int64

	err := row.Scan(
		&record.ID,
		&record.ReferenceCode,
		&family,
		&record.IFCPath,
		&record.DatasheetPath,
		&record.ByteSize,
		&durationMs,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.ProductFamily = models.ProductFamily(family)
	record.Duration = time.Duration(durationMs) * time.Millisecond
	return &record, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
