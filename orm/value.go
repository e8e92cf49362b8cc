package orm

import (
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/coderi421/sqlwrap/orm/internal/errs"
)

// Value 是可以出现在 INSERT 和 UPDATE 语句中的字面量
// 只有本包内的类型可以实现它：Text, Int, Uint, Float, Bool, Null, RawLiteral
//
// Text is written between double quotes and is NOT escaped: the text is
// trusted caller input, exactly like conditions and sort expressions.
type Value interface {
	value()
}

// Text is a textual value, rendered as "text".
type Text string

// Int is a signed number, rendered as its decimal digits.
type Int int64

// Uint is an unsigned number, rendered as its decimal digits.
type Uint uint64

// Float is rendered in its shortest round-trip form.
type Float float64

// Bool is rendered as true or false.
type Bool bool

// Null is rendered as NULL.
type Null struct{}

// RawLiteral is written to the statement verbatim, e.g. RawLiteral("NOW()").
type RawLiteral string

func (Text) value()       {}
func (Int) value()        {}
func (Uint) value()       {}
func (Float) value()      {}
func (Bool) value()       {}
func (Null) value()       {}
func (RawLiteral) value() {}

const timeLayout = "2006-01-02 15:04:05"

// ValueOf converts a Go value into a Value.
// Pointers are followed and nil pointers become Null. Strings, byte slices and
// time.Time become Text; integers become Int or Uint; floats become Float. A
// driver.Valuer is asked for its driver value first. Named types are converted
// by their kind, so type Status int is a number even if it has a String method;
// only non-basic kinds fall back to fmt.Stringer.
func ValueOf(val any) (Value, error) {
	if rv := reflect.ValueOf(val); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Null{}, nil
		}
		// 指针接收者的 Valuer 只有指针才实现
		if dv, ok := val.(driver.Valuer); ok {
			return valuerOf(dv)
		}
		// *Text 之类的指针也实现了 Value，必须先解引用
		return ValueOf(rv.Elem().Interface())
	}

	switch v := val.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case string:
		return Text(v), nil
	case []byte:
		return Text(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(v), nil
	case uint8:
		return Uint(v), nil
	case uint16:
		return Uint(v), nil
	case uint32:
		return Uint(v), nil
	case uint64:
		return Uint(v), nil
	case float32:
		// 直接转 float64 会带上 float32 的精度误差
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
		return floatOf(f, val)
	case float64:
		return floatOf(v, val)
	case time.Time:
		return Text(v.Format(timeLayout)), nil
	case driver.Valuer:
		return valuerOf(v)
	}

	// 自定义类型，例如 type Age int、time.Duration
	// 按照底层类型处理，优先于 String 方法
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return floatOf(rv.Float(), val)
	}

	if st, ok := val.(fmt.Stringer); ok {
		return Text(st.String()), nil
	}
	return nil, errs.NewErrUnsupportedValue(val)
}

func valuerOf(v driver.Valuer) (Value, error) {
	dv, err := v.Value()
	if err != nil {
		return nil, err
	}
	return ValueOf(dv)
}

func floatOf(f float64, origin any) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errs.NewErrUnsupportedValue(origin)
	}
	return Float(f), nil
}

// literal renders v the way it appears in a statement.
func literal(v Value) string {
	switch val := v.(type) {
	case Text:
		return `"` + string(val) + `"`
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Uint:
		return strconv.FormatUint(uint64(val), 10)
	case Float:
		return formatFloat(float64(val))
	case Bool:
		return strconv.FormatBool(bool(val))
	case Null:
		return "NULL"
	case RawLiteral:
		return string(val)
	default:
		// Value 是封闭的，不会走到这里
		panic(fmt.Sprintf("orm: unknown value type %T", v))
	}
}

// formatFloat 只在非常小或者非常大的时候使用指数形式，指数不补零：1e-7、1e+21
func formatFloat(f float64) string {
	if f == 0 {
		// -0 也输出 0
		return "0"
	}
	abs := math.Abs(f)
	if abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
