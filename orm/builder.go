package orm

import (
	"strings"

	"github.com/coderi421/sqlwrap/orm/internal/errs"
)

// builder 是 select insert update create 共用的拼接逻辑
// 每次 Build 都使用一个新的 builder，所以同样的输入总是得到同样的 SQL
type builder struct {
	sb strings.Builder
}

// buildTable 表名不做任何处理，让用户自己清楚自己在做什么
func (b *builder) buildTable(table string) error {
	if table == "" {
		return errs.ErrEmptyTable
	}
	b.sb.WriteString(table)
	return nil
}

// buildList writes items joined by ", ".
func (b *builder) buildList(items []string) {
	for i, item := range items {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		b.sb.WriteString(item)
	}
}

func (b *builder) buildValues(vals []Value) {
	for i, v := range vals {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		b.sb.WriteString(literal(v))
	}
}

// buildAssignments 构造 a = 1, b = "x"
// fields 和 vals 的长度在 FieldSet.resolve 中已经校验过了
func (b *builder) buildAssignments(fields []string, vals []Value) {
	for i, f := range fields {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		b.sb.WriteString(f)
		b.sb.WriteString(" = ")
		b.sb.WriteString(literal(vals[i]))
	}
}

func (b *builder) query() *Query {
	return &Query{
		SQL: b.sb.String(),
	}
}
