package internal

import "reflect"

// HasStruct reports whether v is a struct, or a slice, array or map of them.
func HasStruct(v any) bool {
	t := reflect.TypeOf(v)
	switch kindOf(t) {
	case reflect.Struct:
		return true
	case reflect.Slice, reflect.Array, reflect.Map:
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}

		return kindOf(t.Elem()) == reflect.Struct
	default:
		return false
	}
}

func kindOf(t reflect.Type) reflect.Kind {
	if t == nil {
		return reflect.Invalid
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind()
}
