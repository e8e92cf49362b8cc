package orm

import (
	"context"
	"database/sql"
)

var _ Session = &DB{}

// Session 代表一个抽象的概念，即会话
// 它只需要提供两个原语：执行语句（不关心返回的行）和查询（只关心第一行）
type Session interface {
	getCore() core
	queryContext(ctx context.Context, query string) (*sql.Rows, error)
	execContext(ctx context.Context, query string) (sql.Result, error)
}
