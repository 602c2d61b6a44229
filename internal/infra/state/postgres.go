package state

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"invoice-service/internal/pkg/errs"
)

// PostgresStore keeps the same snapshot records as the file driver,
// stored as JSONB rows keyed by record name. The schema is a single
// table owned and created by the store itself.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const createStateTable = `
CREATE TABLE IF NOT EXISTS app_state (
    name       text PRIMARY KEY,
    data       jsonb NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT now()
)`

func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, createStateTable); err != nil {
		return nil, errs.Wrap(err, "failed to ensure app_state table")
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) LoadAuth(ctx context.Context) (*AuthRecord, error) {
	var rec AuthRecord
	ok, err := s.load(ctx, AuthRecordName, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

func (s *PostgresStore) SaveAuth(ctx context.Context, rec *AuthRecord) error {
	return s.save(ctx, AuthRecordName, rec)
}

func (s *PostgresStore) LoadInvoices(ctx context.Context) (*InvoicesRecord, error) {
	var rec InvoicesRecord
	ok, err := s.load(ctx, InvoiceRecordName, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

func (s *PostgresStore) SaveInvoices(ctx context.Context, rec *InvoicesRecord) error {
	return s.save(ctx, InvoiceRecordName, rec)
}

func (s *PostgresStore) load(ctx context.Context, name string, out any) (bool, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM app_state WHERE name = $1`, name).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errs.Wrap(err, "failed to load state record")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, errs.Wrap(err, "failed to decode state record")
	}
	return true, nil
}

func (s *PostgresStore) save(ctx context.Context, name string, rec any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to encode state record")
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO app_state (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		name, data,
	)
	if err != nil {
		return errs.Wrap(err, "failed to save state record")
	}
	return nil
}
