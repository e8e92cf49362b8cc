package orm

// SelectOptions 对应 DB.Select 的参数，零值表示不设置
type SelectOptions struct {
	// Values 是要检索的列，为空时检索 *
	Values []string
	// Condition 原样拼接在 WHERE 后面
	Condition string
	Sort      []string
	// Limit 和 Offset 只有大于 0 才会生效
	Limit  int
	Offset int
}

// InsertOptions 中 Object 优先于 Fields 和 Values
type InsertOptions struct {
	Fields            []string
	Values            []any
	Object            FieldSet
	UpdateOnDuplicate bool
}

type UpdateOptions struct {
	Fields    []string
	Values    []any
	Object    FieldSet
	Condition string
}

// CreateOptions 中 Object 优先于 Fields 和 Types
type CreateOptions struct {
	Fields []string
	Types  []string
	Object ColumnDefs
	// IfNotExists 为 nil 时默认是 true
	IfNotExists *bool
	// Engine 为空时默认是 INNODB
	Engine string
}
