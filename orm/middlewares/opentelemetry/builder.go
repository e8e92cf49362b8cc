package opentelemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/coderi421/sqlwrap/orm"
)

const instrumentationName = "github.com/coderi421/sqlwrap/orm/middlewares/opentelemetry"

type MiddlewareBuilder struct {
	Tracer trace.Tracer
}

func (m *MiddlewareBuilder) Build() orm.Middleware {
	if m.Tracer == nil {
		m.Tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			// span 的名字类似于 SELECT-users
			spanCtx, span := m.Tracer.Start(ctx, qc.Type+"-"+qc.Table)
			defer span.End()

			span.SetAttributes(
				attribute.String("component", "orm"),
				attribute.String("db.statement.id", qc.ID),
				attribute.String("db.operation", qc.Type),
				attribute.String("db.sql.table", qc.Table),
			)
			if q, err := qc.Builder.Build(); err == nil {
				span.SetAttributes(attribute.String("db.statement", q.SQL))
			}

			res := next(spanCtx, qc)
			if res.Err != nil {
				span.RecordError(res.Err)
				span.SetStatus(codes.Error, res.Err.Error())
			}
			return res
		}
	}
}
