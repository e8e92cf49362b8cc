package orm

import (
	"context"
)

// Querier 用于 SELECT，只会返回一行
type Querier interface {
	// Get retrieves the first matching row, or ErrNoRows when nothing matches.
	Get(ctx context.Context) (Row, error)
}

// Executor 用于 INSERT 和 UPDATE
type Executor interface {
	Exec(ctx context.Context) Result
}

// Query is a built statement. Values are inlined into SQL, there are no
// placeholder arguments.
type Query struct {
	SQL string
}

type QueryBuilder interface {
	Build() (*Query, error)
}

// Row 是查询结果中的一行，key 是列名
// TEXT/BLOB columns are returned as string.
type Row map[string]any
