package kvstore

import (
	"context"

	"accum_scanner/pkg/db"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS scanner_kv (
	k TEXT PRIMARY KEY,
	v BYTEA NOT NULL
)`

// Postgres — стор поверх таблицы scanner_kv.
type Postgres struct {
	tm      *db.PgTxManager
	maxSize int
}

func NewPostgres(ctx context.Context, tm *db.PgTxManager, maxSize int) (*Postgres, error) {
	if _, err := tm.Conn().Exec(ctx, createKVTable); err != nil {
		return nil, errors.Wrap(err, "create scanner_kv")
	}
	return &Postgres{tm: tm, maxSize: maxSize}, nil
}

func (s *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := s.tm.Conn().QueryRow(ctx, `SELECT v FROM scanner_kv WHERE k = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "get %q", key)
	}
	return v, true, nil
}

func (s *Postgres) Set(ctx context.Context, key string, value []byte) error {
	if len(value) > s.maxSize {
		return errors.Wrapf(ErrValueTooLarge, "%q: %d bytes", key, len(value))
	}
	_, err := s.tm.Conn().Exec(ctx,
		`INSERT INTO scanner_kv (k, v) VALUES ($1, $2)
		 ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v`,
		key, value,
	)
	return errors.Wrapf(err, "set %q", key)
}

func (s *Postgres) Delete(ctx context.Context, key string) error {
	_, err := s.tm.Conn().Exec(ctx, `DELETE FROM scanner_kv WHERE k = $1`, key)
	return errors.Wrapf(err, "delete %q", key)
}

func (s *Postgres) MaxValueSize() int { return s.maxSize }
