package result

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// Equal reports whether two containers are in the same state with equal
// payloads: successes compare values with reflect.DeepEqual, failures compare
// errors with EqualErrors. Identity stamps are ignored.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.IsSuccess() != other.IsSuccess() {
		return false
	}
	if r.IsSuccess() {
		return reflect.DeepEqual(r.value, other.value)
	}
	return EqualErrors(r.err, other.err)
}

// Hash returns a hash consistent with Equal: successes hash by the rendered
// payload content (a fixed word when the payload is absent), failures by the
// error's type and message. Pointer payloads hash by their pointee, matching
// the DeepEqual comparison in Equal rather than the pointer address.
func (r Result[T]) Hash() uint64 {
	h := fnv.New64a()
	if r.err != nil {
		fmt.Fprintf(h, "failure|%T|%s", r.err, r.err.Error())
	} else if IsNil(r.value) {
		fmt.Fprint(h, "success|nil")
	} else {
		v := reflect.ValueOf(r.value)
		for v.Kind() == reflect.Ptr && !v.IsNil() {
			v = v.Elem()
		}
		fmt.Fprintf(h, "success|%v", v.Interface())
	}
	return h.Sum64()
}
