package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFields 没有提供字段，或者字段列表为空
	ErrEmptyFields = errors.New("orm: fields can't be empty")
	// ErrLengthMismatch 字段和值的数量对不上
	ErrLengthMismatch = errors.New("orm: fields and values must be the same length")
	ErrEmptyTable     = errors.New("orm: table name can't be empty")
	// ErrNoRows 代表没有找到数据
	ErrNoRows = errors.New("orm: no rows in result set")
	// ErrMissingDSN 配置中没有数据源
	ErrMissingDSN = errors.New("orm: data source name can't be empty")
)

// NewErrUnsupportedValue 返回一个不支持该类型值的错误信息
func NewErrUnsupportedValue(val any) error {
	return fmt.Errorf("orm: unsupported value %v of type %T", val, val)
}

func NewErrUnsupportedDriver(driver string) error {
	return fmt.Errorf("orm: unsupported driver %q", driver)
}
