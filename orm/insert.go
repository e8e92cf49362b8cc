package orm

import (
	"context"
)

type Inserter struct {
	table  string
	values FieldSet // 要插入的字段和值
	// onDuplicate 为 true 时，用插入的值再更新一遍
	onDuplicate bool

	sess Session
	core
}

var _ Executor = &Inserter{}

func NewInserter(sess Session) *Inserter {
	return &Inserter{
		sess: sess,
		core: sess.getCore(),
	}
}

func (i *Inserter) Into(table string) *Inserter {
	i.table = table
	return i
}

// Values
//
//	@Description: 将插入数据库中的数据
//	@receiver i
//	@param fs
//	@return *Inserter
func (i *Inserter) Values(fs FieldSet) *Inserter {
	i.values = fs
	return i
}

// OnDuplicateKeyUpdate 追加 ON DUPLICATE KEY UPDATE，赋值的内容和插入的内容一致
func (i *Inserter) OnDuplicateKeyUpdate() *Inserter {
	i.onDuplicate = true
	return i
}

func (i *Inserter) Build() (*Query, error) {
	fields, vals, err := i.values.resolve()
	if err != nil {
		return nil, err
	}

	var b builder
	b.sb.WriteString("INSERT INTO ")
	if err = b.buildTable(i.table); err != nil {
		return nil, err
	}
	b.sb.WriteString(" (")
	b.buildList(fields)
	b.sb.WriteString(") VALUES (")
	b.buildValues(vals)
	b.sb.WriteByte(')')

	if i.onDuplicate {
		b.sb.WriteString(" ON DUPLICATE KEY UPDATE ")
		b.buildAssignments(fields, vals)
	}
	return b.query(), nil
}

func (i *Inserter) Exec(ctx context.Context) Result {
	return toResult(exec(ctx, i.sess, i.core, &QueryContext{
		Type:    "INSERT",
		Builder: i,
		Table:   i.table,
	}))
}
