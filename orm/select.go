package orm

import (
	"context"
	"strconv"
)

// Selector represents a query selector that allows building SQL SELECT statements.
// It holds the necessary information to construct the query.
type Selector struct {
	table   string   // table is the name of the table to select from.
	where   string   // where 原样拼接在 WHERE 后面
	columns []string // columns 为空时检索 *
	orderBy []string
	offset  int
	limit   int

	sess Session
	core
}

var _ Querier = &Selector{}

// NewSelector creates a new instance of Selector.
func NewSelector(sess Session) *Selector {
	return &Selector{
		sess: sess,
		core: sess.getCore(),
	}
}

// From sets the table name for the selector.
// It returns the updated selector.
func (s *Selector) From(tbl string) *Selector {
	s.table = tbl
	return s
}

// Select 检索指定 column
func (s *Selector) Select(cols ...string) *Selector {
	s.columns = cols
	return s
}

// Where 用于构造 WHERE 查询条件。如果 cond 为空，那么不会构造 WHERE 部分
// cond 不会做任何转义
func (s *Selector) Where(cond string) *Selector {
	s.where = cond
	return s
}

// OrderBy 每一个都是完整的排序表达式，例如 "name DESC"
func (s *Selector) OrderBy(sort ...string) *Selector {
	s.orderBy = sort
	return s
}

func (s *Selector) Offset(offset int) *Selector {
	s.offset = offset
	return s
}

func (s *Selector) Limit(limit int) *Selector {
	s.limit = limit
	return s
}

// Build generates a SQL query for selecting from a table.
// It returns the generated query as a *Query struct or an error if there was any.
func (s *Selector) Build() (*Query, error) {
	var b builder

	b.sb.WriteString("SELECT ")
	if len(s.columns) == 0 {
		b.sb.WriteByte('*')
	} else {
		b.buildList(s.columns)
	}
	b.sb.WriteString(" FROM ")
	if err := b.buildTable(s.table); err != nil {
		return nil, err
	}

	// 类似这种可有可无的部分，都要在前面加一个空格
	if s.where != "" {
		b.sb.WriteString(" WHERE ")
		b.sb.WriteString(s.where)
	}

	// 排序
	if len(s.orderBy) > 0 {
		b.sb.WriteString(" ORDER BY ")
		b.buildList(s.orderBy)
	}

	// 分页
	if s.limit > 0 {
		b.sb.WriteString(" LIMIT ")
		b.sb.WriteString(strconv.Itoa(s.limit))
	}

	// 偏移量
	if s.offset > 0 {
		b.sb.WriteString(" OFFSET ")
		b.sb.WriteString(strconv.Itoa(s.offset))
	}

	return b.query(), nil
}

// Get 根据拼接成的 sql 文，到 db 中获取第一行数据
func (s *Selector) Get(ctx context.Context) (Row, error) {
	res := get(ctx, s.sess, s.core, &QueryContext{
		Type:    "SELECT",
		Builder: s,
		Table:   s.table,
	})
	if res.Err != nil {
		return nil, res.Err
	}
	row, _ := res.Result.(Row)
	return row, nil
}
