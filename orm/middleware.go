package orm

import (
	"context"
)

// QueryContext 中间件的上下文
// 这里冗余了 Builder 和 Table，是因为还没有执行 sql 前，有的中间件，需要使用这些信息
type QueryContext struct {
	// ID 每一条语句都有一个唯一的 ID，方便把日志、指标和 trace 串起来
	ID string

	// Type 声明查询类型。即 SELECT, INSERT, UPDATE 和 CREATE
	Type string

	// Builder 使用的时候，大多数情况下你需要转换到具体的类型
	// 才能篡改查询
	Builder QueryBuilder

	Table string
}

type QueryResult struct {
	// Result 在不同的查询里面，类型是不同的
	// Selector.Get 里面，这会是 Row
	// 其它情况下，它会是 sql.Result
	Result any
	Err    error
}

type Middleware func(next Handler) Handler

type Handler func(ctx context.Context, qc *QueryContext) *QueryResult
