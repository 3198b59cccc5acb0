package eval

import (
	"fmt"
	"strconv"
)

type (
	ValueType int

	// Value is the result of evaluating a node. The set of implementations is closed and all
	// values are immutable.
	Value interface {
		fmt.Stringer

		Type() ValueType

		// Equals compares by variant and payload
		Equals(other Value) bool

		value()
	}

	Integer int64

	Boolean bool

	NullValue struct{}

	// ReturnValue carries the value of a return statement out of nested blocks. It never
	// escapes the evaluation of a program.
	ReturnValue struct {
		inner Value
	}
)

const (
	IntegerType = ValueType(iota)
	BooleanType
	NullType
	ReturnType
)

var (
	True  = Boolean(true)
	False = Boolean(false)
	Null  = &NullValue{}
)

func (t ValueType) String() string {
	switch t {
	case IntegerType:
		return `INTEGER`
	case BooleanType:
		return `BOOLEAN`
	case NullType:
		return `NULL`
	case ReturnType:
		return `RETURN_VALUE`
	default:
		return `UNKNOWN`
	}
}

func WrapInteger(val int64) *Integer {
	return (*Integer)(&val)
}

func (iv *Integer) Int() int64 {
	return int64(*iv)
}

func (iv *Integer) Type() ValueType {
	return IntegerType
}

func (iv *Integer) String() string {
	return strconv.FormatInt(iv.Int(), 10)
}

func (iv *Integer) Equals(other Value) bool {
	if ov, ok := other.(*Integer); ok {
		return *iv == *ov
	}
	return false
}

func (iv *Integer) value() {}

func WrapBoolean(val bool) Boolean {
	if val {
		return True
	}
	return False
}

func (bv Boolean) Bool() bool {
	return bool(bv)
}

func (bv Boolean) Type() ValueType {
	return BooleanType
}

func (bv Boolean) String() string {
	return strconv.FormatBool(bool(bv))
}

func (bv Boolean) Equals(other Value) bool {
	if ov, ok := other.(Boolean); ok {
		return bv == ov
	}
	return false
}

func (bv Boolean) value() {}

func (nv *NullValue) Type() ValueType {
	return NullType
}

func (nv *NullValue) String() string {
	return `null`
}

func (nv *NullValue) Equals(other Value) bool {
	_, ok := other.(*NullValue)
	return ok
}

func (nv *NullValue) value() {}

func WrapReturn(v Value) *ReturnValue {
	return &ReturnValue{v}
}

// Unwrap returns the value given to the return statement
func (rv *ReturnValue) Unwrap() Value {
	return rv.inner
}

func (rv *ReturnValue) Type() ValueType {
	return ReturnType
}

func (rv *ReturnValue) String() string {
	return rv.inner.String()
}

func (rv *ReturnValue) Equals(other Value) bool {
	if ov, ok := other.(*ReturnValue); ok {
		return rv.inner.Equals(ov.inner)
	}
	return false
}

func (rv *ReturnValue) value() {}

// IsTruthy returns the value of a Boolean, true for a non zero Integer, and false for Null.
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case Boolean:
		return v.Bool()
	case *Integer:
		return v.Int() != 0
	case *ReturnValue:
		return IsTruthy(v.inner)
	default:
		return false
	}
}

// Wrap converts a native Go value into a Value. Integer kinds become an Integer, a bool
// becomes a Boolean, and nil becomes Null. The second return value is false for any other
// kind of value.
func Wrap(v interface{}) (Value, bool) {
	switch v := v.(type) {
	case nil:
		return Null, true
	case Value:
		return v, true
	case bool:
		return WrapBoolean(v), true
	case int:
		return WrapInteger(int64(v)), true
	case int8:
		return WrapInteger(int64(v)), true
	case int16:
		return WrapInteger(int64(v)), true
	case int32:
		return WrapInteger(int64(v)), true
	case int64:
		return WrapInteger(v), true
	case uint8:
		return WrapInteger(int64(v)), true
	case uint16:
		return WrapInteger(int64(v)), true
	case uint32:
		return WrapInteger(int64(v)), true
	default:
		return nil, false
	}
}
