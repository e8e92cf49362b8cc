package orm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/coderi421/sqlwrap/orm/internal/errs"
)

func TestInserter_Build(t *testing.T) {
	db := &DB{}
	txt := Text("x")
	cnt := 3

	testCases := []struct {
		name      string
		q         QueryBuilder
		wantQuery *Query
		wantErr   error
	}{
		{
			// 不提供数据
			name:    "no value",
			q:       NewInserter(db).Into("users"),
			wantErr: errs.ErrEmptyFields,
		},
		{
			name:    "length mismatch",
			q:       NewInserter(db).Into("users").Values(Columns([]string{"name", "age"}, []any{"Al"})),
			wantErr: errs.ErrLengthMismatch,
		},
		{
			name:    "no table",
			q:       NewInserter(db).Values(Object(Assign("name", "Al"))),
			wantErr: errs.ErrEmptyTable,
		},
		{
			name: "object",
			q:    NewInserter(db).Into("users").Values(Object(Assign("name", "Al"), Assign("age", 30))),
			wantQuery: &Query{
				SQL: `INSERT INTO users (name, age) VALUES ("Al", 30)`,
			},
		},
		{
			name: "columns",
			q: NewInserter(db).Into("users").
				Values(Columns([]string{"name", "active", "score", "deleted_at"}, []any{"Tom", true, 9.5, nil})),
			wantQuery: &Query{
				SQL: `INSERT INTO users (name, active, score, deleted_at) VALUES ("Tom", true, 9.5, NULL)`,
			},
		},
		{
			name: "map",
			q:    NewInserter(db).Into("users").Values(ObjectOf(map[string]any{"name": "Al", "age": 30})),
			wantQuery: &Query{
				SQL: `INSERT INTO users (age, name) VALUES (30, "Al")`,
			},
		},
		{
			// 引号不做转义
			name: "quote in string",
			q:    NewInserter(db).Into("users").Values(Object(Assign("name", `O"Brien`))),
			wantQuery: &Query{
				SQL: `INSERT INTO users (name) VALUES ("O"Brien")`,
			},
		},
		{
			name: "upsert",
			q: NewInserter(db).Into("users").
				Values(Object(Assign("id", 1), Assign("name", "Al"))).
				OnDuplicateKeyUpdate(),
			wantQuery: &Query{
				SQL: `INSERT INTO users (id, name) VALUES (1, "Al") ON DUPLICATE KEY UPDATE id = 1, name = "Al"`,
			},
		},
		{
			name: "pointer to value",
			q: NewInserter(db).Into("t").
				Values(Columns([]string{"a", "b"}, []any{&txt, &cnt})),
			wantQuery: &Query{
				SQL: `INSERT INTO t (a, b) VALUES ("x", 3)`,
			},
		},
		{
			// time.Duration 和 time.Month 都有 String 方法，但是底层是数字
			name: "numeric stringer",
			q: NewInserter(db).Into("t").
				Values(Columns([]string{"d", "m"}, []any{5 * time.Second, time.March})),
			wantQuery: &Query{
				SQL: `INSERT INTO t (d, m) VALUES (5000000000, 3)`,
			},
		},
		{
			name: "raw literal",
			q:    NewInserter(db).Into("users").Values(Object(Assign("created_at", RawLiteral("NOW()")))),
			wantQuery: &Query{
				SQL: `INSERT INTO users (created_at) VALUES (NOW())`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := tc.q.Build()
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantQuery, query)
		})
	}
}
