package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coderi421/sqlwrap/orm/internal/errs"
)

func TestSelector_Build(t *testing.T) {
	db := &DB{}
	type testCase struct {
		name    string
		q       QueryBuilder
		want    *Query
		wantErr error
	}
	tests := []testCase{
		{
			name:    "no from",
			q:       NewSelector(db),
			wantErr: errs.ErrEmptyTable,
		},
		{
			name: "with from",
			q:    NewSelector(db).From("users"),
			want: &Query{
				SQL: "SELECT * FROM users",
			},
		},
		{
			name: "with db",
			q:    NewSelector(db).From("`test_db`.`users`"),
			want: &Query{
				SQL: "SELECT * FROM `test_db`.`users`",
			},
		},
		{
			name: "columns",
			q:    NewSelector(db).From("users").Select("id", "name"),
			want: &Query{
				SQL: "SELECT id, name FROM users",
			},
		},
		{
			name: "empty where",
			q:    NewSelector(db).From("users").Where(""),
			want: &Query{
				SQL: "SELECT * FROM users",
			},
		},
		{
			name: "where",
			q:    NewSelector(db).From("users").Where("id = 1"),
			want: &Query{
				SQL: "SELECT * FROM users WHERE id = 1",
			},
		},
		{
			// 不做任何转义，原样拼接
			name: "raw where",
			q:    NewSelector(db).From("users").Where(`name = "x" OR 1 = 1`),
			want: &Query{
				SQL: `SELECT * FROM users WHERE name = "x" OR 1 = 1`,
			},
		},
		{
			name: "order by",
			q:    NewSelector(db).From("users").OrderBy("name", "age DESC"),
			want: &Query{
				SQL: "SELECT * FROM users ORDER BY name, age DESC",
			},
		},
		{
			name: "zero limit and offset",
			q:    NewSelector(db).From("users").Limit(0).Offset(0),
			want: &Query{
				SQL: "SELECT * FROM users",
			},
		},
		{
			name: "negative limit",
			q:    NewSelector(db).From("users").Limit(-1),
			want: &Query{
				SQL: "SELECT * FROM users",
			},
		},
		{
			name: "limit",
			q:    NewSelector(db).From("users").Limit(5),
			want: &Query{
				SQL: "SELECT * FROM users LIMIT 5",
			},
		},
		{
			name: "offset",
			q:    NewSelector(db).From("users").Offset(5),
			want: &Query{
				SQL: "SELECT * FROM users OFFSET 5",
			},
		},
		{
			name: "columns sort limit",
			q:    NewSelector(db).From("users").Select("id", "name").OrderBy("name").Limit(10),
			want: &Query{
				SQL: "SELECT id, name FROM users ORDER BY name LIMIT 10",
			},
		},
		{
			name: "all clauses",
			q: NewSelector(db).From("users").Select("id").Where("age > 18").
				OrderBy("id").Limit(10).Offset(20),
			want: &Query{
				SQL: "SELECT id FROM users WHERE age > 18 ORDER BY id LIMIT 10 OFFSET 20",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := tt.q.Build()
			assert.Equal(t, tt.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tt.want, query)
		})
	}
}

func TestSelector_BuildTwice(t *testing.T) {
	s := NewSelector(&DB{}).From("users").Where("id = 1").OrderBy("name").Limit(1)
	q1, err := s.Build()
	assert.NoError(t, err)
	q2, err := s.Build()
	assert.NoError(t, err)
	assert.Equal(t, q1.SQL, q2.SQL)
}
