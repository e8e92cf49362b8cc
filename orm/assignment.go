package orm

import (
	"sort"

	"github.com/coderi421/sqlwrap/orm/internal/errs"
)

// Assignment 代表 column = value 这样的赋值
// 用于在 INSERT、UPDATE 和 UPSERT 中 Assign("name", "Al") -> name = "Al"
type Assignment struct {
	column string
	val    any
}

// Assign creates a column = value pair. val is converted with ValueOf when
// the statement is built.
func Assign(column string, val any) Assignment {
	return Assignment{
		column: column,
		val:    val,
	}
}

// FieldSet 是字段和值的集合
// 无论是通过 Object 还是 Columns 创建的，最终都会归一成同一个有序的 字段/值 序列
type FieldSet struct {
	set    bool
	fields []string
	values []any
}

// Object 使用有序的 Assignment 构造 FieldSet，字段顺序即参数顺序
func Object(assigns ...Assignment) FieldSet {
	fs := FieldSet{
		set:    true,
		fields: make([]string, 0, len(assigns)),
		values: make([]any, 0, len(assigns)),
	}
	for _, a := range assigns {
		fs.fields = append(fs.fields, a.column)
		fs.values = append(fs.values, a.val)
	}
	return fs
}

// ObjectOf builds a FieldSet from a map. Go maps have no order, so the keys
// are sorted to keep the generated statement stable.
func ObjectOf(m map[string]any) FieldSet {
	keys := sortedKeys(m)
	fs := FieldSet{
		set:    true,
		fields: keys,
		values: make([]any, 0, len(keys)),
	}
	for _, k := range keys {
		fs.values = append(fs.values, m[k])
	}
	return fs
}

// Columns builds a FieldSet from two parallel lists.
func Columns(fields []string, values []any) FieldSet {
	return FieldSet{
		set:    true,
		fields: fields,
		values: values,
	}
}

// resolve 校验并且返回字段列表和转换好的值列表
func (f FieldSet) resolve() ([]string, []Value, error) {
	if len(f.fields) == 0 || len(f.values) == 0 {
		return nil, nil, errs.ErrEmptyFields
	}
	if len(f.fields) != len(f.values) {
		return nil, nil, errs.ErrLengthMismatch
	}
	vals := make([]Value, 0, len(f.values))
	for _, v := range f.values {
		val, err := ValueOf(v)
		if err != nil {
			return nil, nil, err
		}
		vals = append(vals, val)
	}
	return f.fields, vals, nil
}

// fieldSetOf 提供了 object 就用 object，否则使用 fields 和 values
func fieldSetOf(object FieldSet, fields []string, values []any) FieldSet {
	if object.set {
		return object
	}
	return Columns(fields, values)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
