package querylog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderi421/sqlwrap/orm"
)

func TestMiddlewareBuilder_LogFunc(t *testing.T) {
	var query string

	m := NewBuilder().LogFunc(func(q string) {
		query = q
	})

	db, err := orm.Open("sqlite3", ":memory:", orm.DBWithMiddlewares(m.Build()))
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	_, _ = db.Select(context.Background(), "test_model", orm.SelectOptions{Condition: "id = 10"})
	assert.Equal(t, "SELECT * FROM test_model WHERE id = 10", query)

	_ = db.Insert(context.Background(), "test_model", orm.InsertOptions{
		Object: orm.Object(orm.Assign("id", 18), orm.Assign("first_name", "")),
	})
	assert.Equal(t, `INSERT INTO test_model (id, first_name) VALUES (18, "")`, query)

	_ = db.Create(context.Background(), "test_model", orm.CreateOptions{
		Fields: []string{"id"},
		Types:  []string{"INTEGER"},
	})
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS test_model (id INTEGER) ENGINE=INNODB;", query)
}

func TestMiddlewareBuilder_Logger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	db, err := orm.OpenDB(mockDB, orm.DBWithMiddlewares(NewBuilder().Logger(logger).Build()))
	require.NoError(t, err)

	mock.ExpectExec("UPDATE users SET age = 1 WHERE id = 2").WillReturnResult(sqlmock.NewResult(0, 1))
	res := db.Update(context.Background(), "users", orm.UpdateOptions{
		Object:    orm.Object(orm.Assign("age", 1)),
		Condition: "id = 2",
	})
	require.NoError(t, res.Err())

	out := buf.String()
	assert.Contains(t, out, "type=UPDATE")
	assert.Contains(t, out, "table=users")
	assert.Contains(t, out, `query="UPDATE users SET age = 1 WHERE id = 2"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMiddlewareBuilder_BuildError(t *testing.T) {
	called := false
	m := NewBuilder().LogFunc(func(q string) {
		called = true
	})

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := orm.OpenDB(mockDB, orm.DBWithMiddlewares(m.Build()))
	require.NoError(t, err)

	res := db.Insert(context.Background(), "users", orm.InsertOptions{})
	assert.Equal(t, orm.ErrEmptyFields, res.Err())
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
