package valuer

import (
	"database/sql"

	"github.com/coderi421/sqlwrap/orm/internal/errs"
)

// FirstRow 读取结果集中的第一行，key 是列名
// 没有数据的时候返回 errs.ErrNoRows
// 调用者负责关闭 rows
func FirstRow(rows *sql.Rows) (map[string]any, error) {
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.ErrNoRows
	}

	columnNames, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	// colValues 和 colEleValues 指向同一批数据
	// Scan 只接收 []any，所以这里存的是指针
	colValues := make([]any, len(columnNames))
	colEleValues := make([]any, len(columnNames))
	for i := range colEleValues {
		colValues[i] = &colEleValues[i]
	}

	if err = rows.Scan(colValues...); err != nil {
		return nil, err
	}

	row := make(map[string]any, len(columnNames))
	for i, name := range columnNames {
		// TEXT 在很多驱动里面是 []byte
		if b, ok := colEleValues[i].([]byte); ok {
			row[name] = string(b)
			continue
		}
		row[name] = colEleValues[i]
	}
	return row, nil
}
