package orm

import (
	"context"

	"github.com/coderi421/sqlwrap/orm/internal/errs"
)

const defaultEngine = "INNODB"

// ColumnDef 是 CREATE TABLE 中的一列，例如 id INTEGER
// typ 是 schema 的一部分，不会被加引号
type ColumnDef struct {
	column string
	typ    string
}

func Define(column string, typ string) ColumnDef {
	return ColumnDef{
		column: column,
		typ:    typ,
	}
}

// ColumnDefs 和 FieldSet 一样，有序的 列名/类型 序列
type ColumnDefs struct {
	set    bool
	fields []string
	types  []string
}

// Defs keeps the order of defs.
func Defs(defs ...ColumnDef) ColumnDefs {
	cd := ColumnDefs{
		set:    true,
		fields: make([]string, 0, len(defs)),
		types:  make([]string, 0, len(defs)),
	}
	for _, d := range defs {
		cd.fields = append(cd.fields, d.column)
		cd.types = append(cd.types, d.typ)
	}
	return cd
}

// DefsOf sorts the columns by name.
func DefsOf(m map[string]string) ColumnDefs {
	keys := sortedKeys(m)
	cd := ColumnDefs{
		set:    true,
		fields: keys,
		types:  make([]string, 0, len(keys)),
	}
	for _, k := range keys {
		cd.types = append(cd.types, m[k])
	}
	return cd
}

func DefsFrom(fields []string, types []string) ColumnDefs {
	return ColumnDefs{
		set:    true,
		fields: fields,
		types:  types,
	}
}

func (c ColumnDefs) resolve() ([]string, []string, error) {
	if len(c.fields) == 0 || len(c.types) == 0 {
		return nil, nil, errs.ErrEmptyFields
	}
	if len(c.fields) != len(c.types) {
		return nil, nil, errs.ErrLengthMismatch
	}
	return c.fields, c.types, nil
}

func columnDefsOf(object ColumnDefs, fields []string, types []string) ColumnDefs {
	if object.set {
		return object
	}
	return DefsFrom(fields, types)
}

// Creator 构造 CREATE TABLE 语句
type Creator struct {
	table       string
	defs        ColumnDefs
	ifNotExists bool
	engine      string

	sess Session
	core
}

func NewCreator(sess Session) *Creator {
	return &Creator{
		ifNotExists: true,
		engine:      defaultEngine,
		sess:        sess,
		core:        sess.getCore(),
	}
}

func (c *Creator) Table(table string) *Creator {
	c.table = table
	return c
}

func (c *Creator) Columns(defs ColumnDefs) *Creator {
	c.defs = defs
	return c
}

// IfNotExists 默认是 true
func (c *Creator) IfNotExists(ifNotExists bool) *Creator {
	c.ifNotExists = ifNotExists
	return c
}

// Engine 默认是 INNODB
func (c *Creator) Engine(engine string) *Creator {
	c.engine = engine
	return c
}

func (c *Creator) Build() (*Query, error) {
	fields, types, err := c.defs.resolve()
	if err != nil {
		return nil, err
	}

	var b builder
	b.sb.WriteString("CREATE TABLE")
	if c.ifNotExists {
		b.sb.WriteString(" IF NOT EXISTS")
	}
	b.sb.WriteByte(' ')
	if err = b.buildTable(c.table); err != nil {
		return nil, err
	}
	b.sb.WriteString(" (")
	for i, f := range fields {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		b.sb.WriteString(f)
		b.sb.WriteByte(' ')
		b.sb.WriteString(types[i])
	}
	b.sb.WriteString(") ENGINE=")
	b.sb.WriteString(c.engine)
	b.sb.WriteByte(';')
	return b.query(), nil
}

// Exec 只关心是否执行成功
func (c *Creator) Exec(ctx context.Context) error {
	return exec(ctx, c.sess, c.core, &QueryContext{
		Type:    "CREATE",
		Builder: c,
		Table:   c.table,
	}).Err
}
