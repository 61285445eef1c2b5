package raw

import (
	"reflect"
	"sync"
	"unsafe"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

var pointerMaps sync.Map // reflect.Type -> []uintptr

// Pointers returns the byte offsets of the pointer words in a value of type
// T, in increasing order. The result is cached per type and must not be
// modified.
//
// Interface values report both of their words: the runtime scans the type
// word as well as the data word, so for layout-compatibility purposes the
// whole header counts as pointers.
func Pointers[T any]() []uintptr {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := pointerMaps.Load(t); ok {
		return v.([]uintptr)
	}
	m := pointerOffsets(t, 0, nil)
	v, _ := pointerMaps.LoadOrStore(t, m)
	return v.([]uintptr)
}

// HasPointers reports whether values of type T contain pointer words.
func HasPointers[T any]() bool {
	return len(Pointers[T]()) > 0
}

func pointerOffsets(t reflect.Type, base uintptr, out []uintptr) []uintptr {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		out = append(out, base)
	case reflect.String, reflect.Slice:
		// Only the data word holds a pointer; len and cap are integers.
		out = append(out, base)
	case reflect.Interface:
		out = append(out, base, base+ptrSize)
	case reflect.Array:
		et := t.Elem()
		for i := 0; i < t.Len(); i++ {
			out = pointerOffsets(et, base+uintptr(i)*et.Size(), out)
		}
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			out = pointerOffsets(f.Type, base+f.Offset, out)
		}
	}
	return out
}
