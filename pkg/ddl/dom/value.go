// Package dom is the document object graph populated by the DDL parser.
//
// Nodes are plain Go structs. Their exported fields are addressed by name
// through a small generic contract (Describe, GetValue, SetValue,
// CreateValue) whose metadata is derived from the Go types once and cached.
// Names match case-insensitively; a `ddl:"Name"` tag renames a field and
// `ddl:"-"` hides it.
package dom

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/text/cases"
)

// DocumentObject is implemented by every node of the graph.
type DocumentObject interface {
	documentObject()
}

// node is embedded by every node type.
type node struct{}

func (node) documentObject() {}

// Enum is implemented by int-based enumeration types. The member at index
// i of EnumMembers is the value i.
type Enum interface {
	EnumName() string
	EnumMembers() []string
}

// TokenValue is implemented (on the pointer) by struct values that parse
// themselves from a single literal token.
type TokenValue interface {
	ParseToken(literal string) error
}

// ValueKind selects how a field's value is read from DDL text.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindString
	KindInteger
	KindReal
	KindUnit
	KindBool
	KindEnum
	KindColor
	KindStruct
	KindNestedObject
)

var kindNames = [...]string{
	KindNone:         "none",
	KindString:       "string",
	KindInteger:      "integer",
	KindReal:         "real",
	KindUnit:         "unit",
	KindBool:         "bool",
	KindEnum:         "enum",
	KindColor:        "color",
	KindStruct:       "struct",
	KindNestedObject: "object",
}

func (k ValueKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// ValueDescriptor describes one addressable field of a node type.
type ValueDescriptor struct {
	Name     string       // canonical DDL name
	Kind     ValueKind    // value grammar
	Type     reflect.Type // Go type of the field
	StyleRef bool         // string naming a style

	index int
}

// EnumName returns the name of an enum-typed field's type.
func (d *ValueDescriptor) EnumName() string {
	if e, ok := reflect.Zero(d.Type).Interface().(Enum); ok {
		return e.EnumName()
	}
	return ""
}

// EnumMembers returns the member names of an enum-typed field.
func (d *ValueDescriptor) EnumMembers() []string {
	if e, ok := reflect.Zero(d.Type).Interface().(Enum); ok {
		return e.EnumMembers()
	}
	return nil
}

// ParseEnum matches ident case-insensitively against the enum members and
// returns the value with the field's type.
func (d *ValueDescriptor) ParseEnum(ident string) (any, bool) {
	folded := FoldName(ident)
	for i, m := range d.EnumMembers() {
		if FoldName(m) == folded {
			v := reflect.New(d.Type).Elem()
			v.SetInt(int64(i))
			return v.Interface(), true
		}
	}
	return nil, false
}

// NewStruct allocates a zero value of a struct-kind field.
func (d *ValueDescriptor) NewStruct() (TokenValue, bool) {
	if d.Kind != KindStruct {
		return nil, false
	}
	tv, ok := reflect.New(d.Type).Interface().(TokenValue)
	return tv, ok
}

// ParseStruct parses literal into a new value of a struct-kind field and
// returns it with the field's type, ready for SetValue.
func (d *ValueDescriptor) ParseStruct(literal string) (any, error) {
	tv, ok := d.NewStruct()
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s value", ErrTypeMismatch, d.Name, d.Kind)
	}
	if err := tv.ParseToken(literal); err != nil {
		return nil, err
	}
	return reflect.ValueOf(tv).Elem().Interface(), nil
}

// Errors returned by the contract functions.
var (
	ErrUnknownValue = errors.New("unknown value")
	ErrNotObject    = errors.New("not an object")
	ErrTypeMismatch = errors.New("type mismatch")
)

// FoldName case-folds a DDL name for comparison.
func FoldName(s string) string {
	// A Caser holds state and must not be shared between goroutines.
	return cases.Fold().String(s)
}

type typeMeta struct {
	name   string
	fields map[string]*ValueDescriptor
	names  []string // declaration order
}

var metaCache sync.Map // reflect.Type -> *typeMeta

var (
	documentObjectType = reflect.TypeOf((*DocumentObject)(nil)).Elem()
	enumType           = reflect.TypeOf((*Enum)(nil)).Elem()
	tokenValueType     = reflect.TypeOf((*TokenValue)(nil)).Elem()
	unitType           = reflect.TypeOf(Unit{})
	colorType          = reflect.TypeOf(Color(0))
	styleNameType      = reflect.TypeOf(StyleName(""))
)

func metaFor(t reflect.Type) *typeMeta {
	if m, ok := metaCache.Load(t); ok {
		return m.(*typeMeta)
	}

	m := &typeMeta{name: t.Name(), fields: make(map[string]*ValueDescriptor)}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("ddl"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		kind := kindOf(f.Type)
		if kind == KindNone {
			continue
		}
		m.fields[FoldName(name)] = &ValueDescriptor{
			Name:     name,
			Kind:     kind,
			Type:     f.Type,
			StyleRef: f.Type == styleNameType,
			index:    i,
		}
		m.names = append(m.names, name)
	}

	actual, _ := metaCache.LoadOrStore(t, m)
	return actual.(*typeMeta)
}

func kindOf(t reflect.Type) ValueKind {
	switch {
	case t == styleNameType:
		return KindString
	case t == unitType:
		return KindUnit
	case t == colorType:
		return KindColor
	case t.Implements(enumType):
		return KindEnum
	case t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(tokenValueType):
		return KindStruct
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct && t.Implements(documentObjectType):
		return KindNestedObject
	}

	switch t.Kind() {
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindReal
	case reflect.Bool:
		return KindBool
	}
	return KindNone
}

func structOf(obj DocumentObject) (reflect.Value, error) {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %T", ErrNotObject, obj)
	}
	return v.Elem(), nil
}

// TypeName returns the node type name used in diagnostics.
func TypeName(obj DocumentObject) string {
	v, err := structOf(obj)
	if err != nil {
		return fmt.Sprintf("%T", obj)
	}
	return v.Type().Name()
}

// Describe returns the descriptor of the named field.
func Describe(obj DocumentObject, name string) (*ValueDescriptor, bool) {
	v, err := structOf(obj)
	if err != nil {
		return nil, false
	}
	d, ok := metaFor(v.Type()).fields[FoldName(name)]
	return d, ok
}

// Names returns the addressable field names of obj in declaration order.
func Names(obj DocumentObject) []string {
	v, err := structOf(obj)
	if err != nil {
		return nil
	}
	return append([]string(nil), metaFor(v.Type()).names...)
}

func field(obj DocumentObject, name string) (reflect.Value, *ValueDescriptor, error) {
	v, err := structOf(obj)
	if err != nil {
		return reflect.Value{}, nil, err
	}
	d, ok := metaFor(v.Type()).fields[FoldName(name)]
	if !ok {
		return reflect.Value{}, nil, fmt.Errorf("%w: %s on %s", ErrUnknownValue, name, v.Type().Name())
	}
	return v.Field(d.index), d, nil
}

// GetValue returns the named field's value. An unset nested object reports
// false.
func GetValue(obj DocumentObject, name string) (any, bool) {
	f, d, err := field(obj, name)
	if err != nil {
		return nil, false
	}
	if d.Kind == KindNestedObject && f.IsNil() {
		return nil, false
	}
	return f.Interface(), true
}

// SetValue assigns value to the named field. A nil value resets the field
// to its zero value.
func SetValue(obj DocumentObject, name string, value any) error {
	f, d, err := field(obj, name)
	if err != nil {
		return err
	}
	if value == nil {
		f.Set(reflect.Zero(d.Type))
		return nil
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(d.Type):
		f.Set(rv)
	case convertible(rv.Type(), d.Type):
		f.Set(rv.Convert(d.Type))
	default:
		return fmt.Errorf("%w: cannot assign %s to %s (%s)", ErrTypeMismatch, rv.Type(), d.Name, d.Type)
	}
	return nil
}

func convertible(src, dst reflect.Type) bool {
	if !src.ConvertibleTo(dst) {
		return false
	}
	if src.Kind() == dst.Kind() {
		return true
	}
	return isNumeric(src.Kind()) && isNumeric(dst.Kind())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// CreateValue returns the named nested object, allocating a default one
// when it is unset.
func CreateValue(obj DocumentObject, name string) (DocumentObject, error) {
	f, d, err := field(obj, name)
	if err != nil {
		return nil, err
	}
	if d.Kind != KindNestedObject {
		return nil, fmt.Errorf("%w: %s is a %s value", ErrNotObject, d.Name, d.Kind)
	}
	if f.IsNil() {
		f.Set(reflect.New(d.Type.Elem()))
	}
	return f.Interface().(DocumentObject), nil
}
