package utils

import "reflect"

// Compact returns the columns of a patch that should be written. Nil
// pointers and empty strings are dropped, pointers are dereferenced, and
// every other value (false and 0 included) is kept.
func Compact(patch map[string]any) map[string]any {
	out := make(map[string]any, len(patch))
	for col, v := range patch {
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				continue
			}
			rv = rv.Elem()
		}
		if rv.Kind() == reflect.String && rv.Len() == 0 {
			continue
		}
		out[col] = rv.Interface()
	}
	return out
}
