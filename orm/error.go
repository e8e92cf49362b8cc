package orm

import "github.com/coderi421/sqlwrap/orm/internal/errs"

// 将内部的 sentinel error 暴露出去
var (
	// ErrNoRows 代表没有找到数据
	ErrNoRows = errs.ErrNoRows
	// ErrEmptyFields is returned before any statement is sent when no fields were supplied.
	ErrEmptyFields = errs.ErrEmptyFields
	// ErrLengthMismatch is returned when fields and values (or types) differ in length.
	ErrLengthMismatch = errs.ErrLengthMismatch
	ErrEmptyTable     = errs.ErrEmptyTable
	ErrMissingDSN     = errs.ErrMissingDSN
)
