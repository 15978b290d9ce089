package main

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

const createHistoryTable = `
	CREATE TABLE IF NOT EXISTS history (
		id         text        NOT NULL,
		scanned_at timestamptz NOT NULL,
		ssid       text        NOT NULL,
		signal     text        NOT NULL,
		security   text        NOT NULL,
		bssid      text        NOT NULL,
		vendor     text        NOT NULL,
		ip         text        NOT NULL
	)
`

const insertHistory = `
	INSERT INTO history VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// Recorder stores scan results.
type Recorder interface {
	Record(ctx context.Context, scan Scan) error
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// pgRecorder writes one history row per network of a scan.
type pgRecorder struct {
	db execer
}

// connectHistory opens the history database and makes sure the table exists.
func connectHistory(ctx context.Context, dsn string) (*pgx.Conn, *pgRecorder, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not connect to database")
	}

	rec, err := newRecorder(ctx, conn)
	if err != nil {
		conn.Close(ctx)
		return nil, nil, err
	}
	return conn, rec, nil
}

func newRecorder(ctx context.Context, db execer) (*pgRecorder, error) {
	if _, err := db.Exec(ctx, createHistoryTable); err != nil {
		return nil, errors.Wrap(err, "create history table")
	}
	return &pgRecorder{db: db}, nil
}

func (r *pgRecorder) Record(ctx context.Context, scan Scan) error {
	for _, n := range scan.Networks {
		_, err := r.db.Exec(ctx, insertHistory,
			scan.ID, scan.Time, n.SSID, n.Signal, n.Security, n.BSSID, n.Vendor, scan.IP)
		if err != nil {
			return errors.Wrapf(err, "record %s", n.SSID)
		}
	}
	return nil
}

// nopRecorder is used when no database is configured.
type nopRecorder struct{}

func (nopRecorder) Record(context.Context, Scan) error { return nil }

func newScanID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "generate scan id")
	}
	return id.String(), nil
}
