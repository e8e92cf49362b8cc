package orm

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/coderi421/sqlwrap/orm/internal/valuer"
)

// exec 用于 INSERT UPDATE CREATE，经过中间件之后调用 execContext
func exec(ctx context.Context, sess Session, c core, qc *QueryContext) *QueryResult {
	var root Handler = func(ctx context.Context, qc *QueryContext) *QueryResult {
		q, err := qc.Builder.Build()
		if err != nil {
			return &QueryResult{
				Err: err,
			}
		}
		res, err := sess.execContext(ctx, q.SQL)
		return &QueryResult{
			Result: res,
			Err:    err,
		}
	}
	return chain(root, c, qc)(ctx, qc)
}

// get 用于 SELECT，只读取第一行
func get(ctx context.Context, sess Session, c core, qc *QueryContext) *QueryResult {
	var root Handler = func(ctx context.Context, qc *QueryContext) *QueryResult {
		q, err := qc.Builder.Build()
		if err != nil {
			return &QueryResult{
				Err: err,
			}
		}
		rows, err := sess.queryContext(ctx, q.SQL)
		if err != nil {
			return &QueryResult{
				Err: err,
			}
		}
		defer func() {
			_ = rows.Close()
		}()

		row, err := valuer.FirstRow(rows)
		if err != nil {
			return &QueryResult{
				Err: err,
			}
		}
		return &QueryResult{
			Result: Row(row),
		}
	}
	return chain(root, c, qc)(ctx, qc)
}

// chain 从后往前包装，第一个中间件在最外层
func chain(root Handler, c core, qc *QueryContext) Handler {
	qc.ID = uuid.NewString()
	for i := len(c.mdls) - 1; i >= 0; i-- {
		root = c.mdls[i](root)
	}
	return root
}

func toResult(res *QueryResult) Result {
	var sqlRes sql.Result
	if res.Result != nil {
		sqlRes, _ = res.Result.(sql.Result)
	}
	return Result{
		err: res.Err,
		res: sqlRes,
	}
}
