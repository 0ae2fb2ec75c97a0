// Package database provides database connection management.
package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	// Registers the postgres driver.
	_ "github.com/lib/pq"
	// Registers the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config holds the connection settings for one of the supported drivers.
// Path is used by sqlite3 only; the network fields by mysql and postgres.
type Config struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql postgres sqlite3"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	Host            string            `mapstructure:"host" validate:"required_unless=Driver sqlite3"`
	Port            int               `mapstructure:"port" validate:"required_unless=Driver sqlite3,omitempty,min=1,max=65535"`
	Database        string            `mapstructure:"database" validate:"required_unless=Driver sqlite3"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

// Open opens a connection pool for cfg.Driver. It does not ping the server.
func Open(cfg Config) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(%s) > %w", cfg.Driver, err)
	}

	maxOpenConns := cfg.MaxOpenConns
	if cfg.Driver == DriverSQLite && maxOpenConns == 0 {
		// sqlite allows a single writer
		maxOpenConns = 1
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// DSN builds the driver specific data source name.
func DSN(cfg Config) (string, error) {
	switch cfg.Driver {
	case DriverMySQL:
		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = cfg.Username
		mysqlCfg.Passwd = cfg.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		mysqlCfg.DBName = cfg.Database
		mysqlCfg.ParseTime = true
		mysqlCfg.MultiStatements = true
		mysqlCfg.Loc = time.UTC
		// RowsAffected counts matched rows, not changed rows.
		mysqlCfg.ClientFoundRows = true
		if cfg.TLS {
			mysqlCfg.TLSConfig = "true"
		}
		if len(cfg.Params) > 0 {
			mysqlCfg.Params = cfg.Params
		}
		return mysqlCfg.FormatDSN(), nil

	case DriverPostgres:
		query := url.Values{}
		if cfg.TLS {
			query.Set("sslmode", "require")
		} else {
			query.Set("sslmode", "disable")
		}
		for k, v := range cfg.Params {
			query.Set(k, v)
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.Username, cfg.Password),
			Host:     cfg.Host + ":" + strconv.Itoa(cfg.Port),
			Path:     "/" + cfg.Database,
			RawQuery: query.Encode(),
		}
		return u.String(), nil

	case DriverSQLite:
		query := url.Values{}
		query.Set("_foreign_keys", "1")
		query.Set("_busy_timeout", "5000")
		for k, v := range cfg.Params {
			query.Set(k, v)
		}
		return "file:" + cfg.Path + "?" + query.Encode(), nil

	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// RunInTx runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back; otherwise, it is committed.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// InsertID runs an INSERT written with ? placeholders and returns the generated id column.
// Postgres has no LastInsertId, so the statement is extended with RETURNING id there.
func InsertID(ctx context.Context, db sqlx.ExtContext, query string, args ...any) (int64, error) {
	if db.DriverName() == DriverPostgres {
		var id int64
		if err := db.QueryRowxContext(ctx, db.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("QueryRowxContext(insert returning id) > %w", err)
		}
		return id, nil
	}

	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("ExecContext(insert) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result.LastInsertId() > %w", err)
	}
	return id, nil
}
