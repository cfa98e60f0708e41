package format

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/jonahhill/xone/internal/options"
)

// ReprOptions controls Repr rendering.
type ReprOptions struct {
	// Sep joins the rendered key=value pairs.
	Sep string `default:", "`
	// Private keeps map keys with a leading underscore, which are
	// skipped by default.
	Private bool
}

// Repr renders a struct or map as "{key=value, ...}" for logs and debug
// output. Struct fields render in declaration order, map keys in sorted
// order, and nested structs and maps recursively.
//
//	Repr(map[string]any{"b": 1, "a": 0}) // {a=0, b=1}
func Repr(v any) string { return ReprWith(v, ReprOptions{}) }

// ReprWith is Repr with explicit options.
func ReprWith(v any, opts ReprOptions) string {
	// ReprOptions carries no validation rules, so Prepare only fills Sep.
	_ = options.Prepare(&opts)
	return renderValue(reflect.ValueOf(v), opts)
}

// ToMap converts a struct or string-keyed map into map[string]any. Structs
// contribute their exported fields; maps are copied with leading
// underscore keys dropped. Anything else yields nil.
func ToMap(v any) map[string]any {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			if strings.HasPrefix(k, "_") {
				continue
			}
			out[k] = iter.Value().Interface()
		}
		return out
	case reflect.Struct:
		t := rv.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			out[f.Name] = rv.Field(i).Interface()
		}
		return out
	}
	return nil
}

func renderValue(rv reflect.Value, opts ReprOptions) string {
	rv = indirect(rv)
	if !rv.IsValid() {
		return "<nil>"
	}

	switch rv.Kind() {
	case reflect.Map:
		return renderMap(rv, opts)
	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return t.Format("2006-01-02 15:04:05")
		}
		return renderStruct(rv, opts)
	}
	return fmt.Sprintf("%v", rv.Interface())
}

func renderMap(rv reflect.Value, opts ReprOptions) string {
	keys := make([]string, 0, rv.Len())
	byKey := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := fmt.Sprintf("%v", iter.Key().Interface())
		if !opts.Private && strings.HasPrefix(k, "_") {
			continue
		}
		keys = append(keys, k)
		byKey[k] = iter.Value()
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + renderValue(byKey[k], opts)
	}
	return "{" + strings.Join(pairs, opts.Sep) + "}"
}

func renderStruct(rv reflect.Value, opts ReprOptions) string {
	t := rv.Type()
	pairs := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		pairs = append(pairs, f.Name+"="+renderValue(rv.Field(i), opts))
	}
	return "{" + strings.Join(pairs, opts.Sep) + "}"
}

// indirect resolves pointers and interfaces down to the value they carry.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
