package orm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const defaultConnTimeout = 5 * time.Second

type DBOption func(*DB)

// DB 持有一个数据库连接，在 Open 时获取，直到 Close 才释放
// 所有的语句都通过这一个连接执行
type DB struct {
	core
	db   *sql.DB
	conn *sql.Conn
}

// Open opens the data source and acquires the single connection every
// statement will use. driver is a database/sql driver name, e.g. "sqlite3"
// or "mysql"; the driver package must be imported by the caller, except for
// mysql which this package wires itself.
func Open(driver string, dsn string, opts ...DBOption) (*DB, error) {
	return OpenConfig(Config{
		Driver: driver,
		DSN:    dsn,
	}, opts...)
}

// OpenDB wraps an existing *sql.DB. The pool is limited to one open
// connection and that connection is held until Close. On success the returned
// DB owns db and closes it in Close; on error db is left open for the caller.
func OpenDB(db *sql.DB, opts ...DBOption) (*DB, error) {
	res := &DB{
		core: core{
			connTimeout: defaultConnTimeout,
		},
		db: db,
	}

	for _, opt := range opts {
		opt(res)
	}

	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), res.connTimeout)
	defer cancel()
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("orm: acquire connection: %w", err)
	}
	res.conn = conn
	return res, nil
}

// MustOpen creates a new DB with the provided options.
// If the creation fails, it panics.
func MustOpen(driver string, dsn string, opts ...DBOption) *DB {
	db, err := Open(driver, dsn, opts...)
	if err != nil {
		panic(err)
	}
	return db
}

// DBWithMiddlewares 注册中间件，按照传入的顺序执行
func DBWithMiddlewares(mdls ...Middleware) DBOption {
	return func(db *DB) {
		db.mdls = mdls
	}
}

// DBWithConnTimeout bounds how long Open waits for the connection.
// Non-positive values keep the default.
func DBWithConnTimeout(d time.Duration) DBOption {
	return func(db *DB) {
		if d > 0 {
			db.connTimeout = d
		}
	}
}

// Close releases the held connection and then the underlying pool.
func (db *DB) Close() error {
	return errors.Join(db.conn.Close(), db.db.Close())
}

// Select runs SELECT against table and returns the first row.
func (db *DB) Select(ctx context.Context, table string, opts SelectOptions) (Row, error) {
	return NewSelector(db).
		From(table).
		Select(opts.Values...).
		Where(opts.Condition).
		OrderBy(opts.Sort...).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Get(ctx)
}

// Insert runs INSERT INTO table.
func (db *DB) Insert(ctx context.Context, table string, opts InsertOptions) Result {
	i := NewInserter(db).
		Into(table).
		Values(fieldSetOf(opts.Object, opts.Fields, opts.Values))
	if opts.UpdateOnDuplicate {
		i = i.OnDuplicateKeyUpdate()
	}
	return i.Exec(ctx)
}

// Update runs UPDATE table SET ... [WHERE condition].
func (db *DB) Update(ctx context.Context, table string, opts UpdateOptions) Result {
	return NewUpdater(db).
		Table(table).
		Set(fieldSetOf(opts.Object, opts.Fields, opts.Values)).
		Where(opts.Condition).
		Exec(ctx)
}

// Create runs CREATE TABLE. IfNotExists defaults to true and Engine to INNODB.
func (db *DB) Create(ctx context.Context, table string, opts CreateOptions) error {
	c := NewCreator(db).
		Table(table).
		Columns(columnDefsOf(opts.Object, opts.Fields, opts.Types))
	if opts.IfNotExists != nil {
		c = c.IfNotExists(*opts.IfNotExists)
	}
	if opts.Engine != "" {
		c = c.Engine(opts.Engine)
	}
	return c.Exec(ctx)
}

func (db *DB) getCore() core {
	return db.core
}

func (db *DB) queryContext(ctx context.Context, query string) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, query)
}

func (db *DB) execContext(ctx context.Context, query string) (sql.Result, error) {
	return db.conn.ExecContext(ctx, query)
}
