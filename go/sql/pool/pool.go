// Package pool provides an interface for *pgxpool.Pool, so that it can be
// wrapped or faked in tests, along with a constructor that applies our
// standard connection settings.
package pool

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

// maxPoolConnections is the MaxConns our pgxpool will maintain.
const maxPoolConnections = 20

// Pool is an interface for *pgxpool.Pool.
type Pool interface {
	Close()
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	AcquireFunc(ctx context.Context, f func(*pgxpool.Conn) error) error
	AcquireAllIdle(ctx context.Context) []*pgxpool.Conn
	Config() *pgxpool.Config
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	QueryFunc(ctx context.Context, sql string, args []interface{}, scans []interface{}, f func(pgx.QueryFuncRow) error) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	BeginFunc(ctx context.Context, f func(pgx.Tx) error) error
	BeginTxFunc(ctx context.Context, txOptions pgx.TxOptions, f func(pgx.Tx) error) error
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Ping(ctx context.Context) error
}

// Confirm *pgxpool.Pool implements Pool.
var _ Pool = (*pgxpool.Pool)(nil)

// pgxLogAdaptor allows bubbling pgx logs up into our application.
type pgxLogAdaptor struct{}

// Log a message at the given level with data key/value pairs. data may be nil.
func (pgxLogAdaptor) Log(ctx context.Context, level pgx.LogLevel, msg string, data map[string]interface{}) {
	switch level {
	case pgx.LogLevelTrace:
	case pgx.LogLevelDebug:
	case pgx.LogLevelInfo:
	case pgx.LogLevelWarn:
		wmlog.Warningf("pgx - %s %v", msg, data)
	case pgx.LogLevelError:
		wmlog.Errorf("pgx - %s %v", msg, data)
	case pgx.LogLevelNone:
	}
}

// New connects to the database described by connString and confirms the
// connection with a Ping.
func New(ctx context.Context, connString string) (Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, wmerr.Wrapf(err, "parsing database config %q", connString)
	}
	cfg.MaxConns = maxPoolConnections
	cfg.ConnConfig.Logger = pgxLogAdaptor{}
	db, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, wmerr.Wrapf(err, "connecting to database %q", cfg.ConnConfig.Host)
	}
	if err := db.Ping(ctx); err != nil {
		return nil, wmerr.Wrapf(err, "pinging database %q", cfg.ConnConfig.Host)
	}
	return db, nil
}
