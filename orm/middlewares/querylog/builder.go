package querylog

import (
	"context"
	"log/slog"

	"github.com/coderi421/sqlwrap/orm"
)

type MiddlewareBuilder struct {
	logFunc func(query string)
	logger  *slog.Logger
}

func NewBuilder() *MiddlewareBuilder {
	return &MiddlewareBuilder{}
}

// LogFunc 替换默认的 slog 输出，只拿到 SQL
func (m *MiddlewareBuilder) LogFunc(fn func(query string)) *MiddlewareBuilder {
	m.logFunc = fn
	return m
}

// Logger 设置 slog.Logger，默认使用 slog.Default()
func (m *MiddlewareBuilder) Logger(l *slog.Logger) *MiddlewareBuilder {
	m.logger = l
	return m
}

func (m *MiddlewareBuilder) Build() orm.Middleware {
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			q, err := qc.Builder.Build()
			if err != nil {
				// 构造 SQL 都失败了，没必要继续往下走
				return &orm.QueryResult{
					Err: err,
				}
			}
			m.log(ctx, qc, q.SQL)
			return next(ctx, qc)
		}
	}
}

func (m *MiddlewareBuilder) log(ctx context.Context, qc *orm.QueryContext, query string) {
	if m.logFunc != nil {
		m.logFunc(query)
		return
	}
	l := m.logger
	if l == nil {
		l = slog.Default()
	}
	l.InfoContext(ctx, "sql",
		slog.String("id", qc.ID),
		slog.String("type", qc.Type),
		slog.String("table", qc.Table),
		slog.String("query", query),
	)
}
