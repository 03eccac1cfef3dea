package dom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Dump renders obj as indented text, one set field per line, in field
// declaration order. Zero values are omitted, so the output only shows what
// the source assigned or built.
func Dump(obj DocumentObject) string {
	var sb strings.Builder
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return "<nil>\n"
	}
	sb.WriteString(v.Elem().Type().Name())
	sb.WriteByte('\n')
	dumpStruct(&sb, v.Elem(), 1)
	return sb.String()
}

func dumpStruct(sb *strings.Builder, v reflect.Value, depth int) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		if f.Name == "Items" || f.Name == "Points" || f.Name == "Values" {
			dumpItems(sb, fv, depth)
			continue
		}
		dumpField(sb, f.Name, fv, depth)
	}
}

func dumpItems(sb *strings.Builder, v reflect.Value, depth int) {
	for i := 0; i < v.Len(); i++ {
		dumpField(sb, "["+strconv.Itoa(i)+"]", v.Index(i), depth)
	}
}

func dumpField(sb *strings.Builder, name string, v reflect.Value, depth int) {
	indent := strings.Repeat("  ", depth)

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			fmt.Fprintf(sb, "%s%s <nil>\n", indent, name)
			return
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			fmt.Fprintf(sb, "%s%s <nil>\n", indent, name)
			return
		}
		if v.Elem().Kind() == reflect.Struct {
			fmt.Fprintf(sb, "%s%s %s\n", indent, name, v.Elem().Type().Name())
			dumpStruct(sb, v.Elem(), depth+1)
			return
		}
		v = v.Elem()
	}
	fmt.Fprintf(sb, "%s%s = %s\n", indent, name, formatScalar(v))
}

func formatScalar(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Struct:
		var parts []string
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() && !v.Field(i).IsZero() {
				parts = append(parts, v.Type().Field(i).Name+": "+formatScalar(v.Field(i)))
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprintf("%v", v.Interface())
}
