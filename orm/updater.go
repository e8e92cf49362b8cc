package orm

import (
	"context"
)

type Updater struct {
	table   string
	assigns FieldSet // 由于处理 name = "zheng"
	where   string

	sess Session
	core
}

var _ Executor = &Updater{}

func NewUpdater(sess Session) *Updater {
	return &Updater{
		sess: sess,
		core: sess.getCore(),
	}
}

func (u *Updater) Table(table string) *Updater {
	u.table = table
	return u
}

func (u *Updater) Set(fs FieldSet) *Updater {
	u.assigns = fs
	return u
}

// Where 如果 cond 为空，那么不会构造 WHERE 部分，也就是更新整张表
func (u *Updater) Where(cond string) *Updater {
	u.where = cond
	return u
}

func (u *Updater) Build() (*Query, error) {
	fields, vals, err := u.assigns.resolve()
	if err != nil {
		return nil, err
	}

	var b builder
	b.sb.WriteString("UPDATE ")
	if err = b.buildTable(u.table); err != nil {
		return nil, err
	}
	b.sb.WriteString(" SET ")
	b.buildAssignments(fields, vals)

	if u.where != "" {
		b.sb.WriteString(" WHERE ")
		b.sb.WriteString(u.where)
	}
	return b.query(), nil
}

func (u *Updater) Exec(ctx context.Context) Result {
	return toResult(exec(ctx, u.sess, u.core, &QueryContext{
		Type:    "UPDATE",
		Builder: u,
		Table:   u.table,
	}))
}
