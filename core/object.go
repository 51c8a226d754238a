package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Object represents a PDF object appearing as a content stream operand
type Object interface {
	Type() ObjectType
	String() string
}

// ObjectType represents the type of PDF object
type ObjectType int

const (
	ObjNull ObjectType = iota
	ObjBool
	ObjInt
	ObjReal
	ObjString
	ObjName
	ObjArray
	ObjDict
)

// String returns the string representation of the object type
func (t ObjectType) String() string {
	switch t {
	case ObjNull:
		return "Null"
	case ObjBool:
		return "Bool"
	case ObjInt:
		return "Int"
	case ObjReal:
		return "Real"
	case ObjString:
		return "String"
	case ObjName:
		return "Name"
	case ObjArray:
		return "Array"
	case ObjDict:
		return "Dict"
	default:
		return "Unknown"
	}
}

// Null represents a PDF null object
type Null struct{}

func (n Null) Type() ObjectType { return ObjNull }
func (n Null) String() string   { return "null" }

// Bool represents a PDF boolean
type Bool bool

func (b Bool) Type() ObjectType { return ObjBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Int represents a PDF integer
type Int int64

func (i Int) Type() ObjectType { return ObjInt }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }

// Real represents a PDF real number
type Real float64

func (r Real) Type() ObjectType { return ObjReal }
func (r Real) String() string   { return strconv.FormatFloat(float64(r), 'f', -1, 64) }

// String represents a PDF string. The value holds raw bytes; any text
// encoding interpretation happens at the point of use.
type String string

func (s String) Type() ObjectType { return ObjString }
func (s String) String() string   { return string(s) }

// Name represents a PDF name
type Name string

func (n Name) Type() ObjectType { return ObjName }
func (n Name) String() string   { return "/" + string(n) }

// Array represents a PDF array
type Array []Object

func (a Array) Type() ObjectType { return ObjArray }
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, obj := range a {
		parts[i] = obj.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Dict represents a PDF dictionary keyed by name (without the leading slash)
type Dict map[string]Object

func (d Dict) Type() ObjectType { return ObjDict }
func (d Dict) String() string {
	var sb strings.Builder
	sb.WriteString("<<")
	for k, v := range d {
		fmt.Fprintf(&sb, " /%s %s", k, v.String())
	}
	sb.WriteString(" >>")
	return sb.String()
}

// Get returns the value for key, or nil if absent
func (d Dict) Get(key string) Object {
	return d[key]
}

// GetAny returns the value for the first key present, or nil. Content
// streams allow abbreviated inline image keys next to full names.
func (d Dict) GetAny(keys ...string) Object {
	for _, k := range keys {
		if v, ok := d[k]; ok {
			return v
		}
	}
	return nil
}

// AsFloat coerces a numeric object to float64
func AsFloat(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Int:
		return float64(v), true
	case Real:
		return float64(v), true
	default:
		return 0, false
	}
}

// AsInt coerces a numeric object to int
func AsInt(obj Object) (int, bool) {
	switch v := obj.(type) {
	case Int:
		return int(v), true
	case Real:
		return int(v), true
	default:
		return 0, false
	}
}

// AsBool coerces a boolean object
func AsBool(obj Object) (bool, bool) {
	if b, ok := obj.(Bool); ok {
		return bool(b), true
	}
	return false, false
}

// AsName returns the name value without the leading slash
func AsName(obj Object) (string, bool) {
	if n, ok := obj.(Name); ok {
		return string(n), true
	}
	return "", false
}

// AsString returns the raw bytes of a string object
func AsString(obj Object) ([]byte, bool) {
	if s, ok := obj.(String); ok {
		return []byte(s), true
	}
	return nil, false
}

// Floats coerces every element of operands to float64. It returns false
// if the count differs from want or any element is not numeric.
func Floats(operands []Object, want int) ([]float64, bool) {
	if len(operands) != want {
		return nil, false
	}
	vals := make([]float64, want)
	for i, op := range operands {
		v, ok := AsFloat(op)
		if !ok {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}
