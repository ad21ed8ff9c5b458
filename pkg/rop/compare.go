package rop

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"reflect"
	"strings"
)

// Equal reports whether r and other hold the same state and payload. Errors
// compare by message, ignoring case. Identity is not compared.
func (r Result[T]) Equal(other Result[T]) bool {
	switch {
	case r.state == StateOk && other.state == StateOk:
		if r.hasValue != other.hasValue {
			return false
		}
		return !r.hasValue || equalValues(any(r.value), any(other.value))
	case r.state != StateOk && other.state != StateOk:
		return equalErrors(r.failure(), other.failure())
	default:
		return false
	}
}

// Compare orders Ok above Error. Two Ok results compare by value, a valued Ok
// above an empty one; two errors compare by message, ignoring case.
//
// Only ordered payloads are ranked: numbers, strings, bools and types with a
// Compare method. Structs, slices and other kinds compare as 0 even where Equal
// reports false.
func (r Result[T]) Compare(other Result[T]) int {
	switch {
	case r.state == StateOk && other.state == StateOk:
		switch {
		case r.hasValue && other.hasValue:
			return compareValues(r.value, other.value)
		case r.hasValue:
			return 1
		case other.hasValue:
			return -1
		}
		return 0
	case r.state == StateOk:
		return 1
	case other.state == StateOk:
		return -1
	default:
		return compareErrors(r.failure(), other.failure())
	}
}

func (r Result[T]) Less(other Result[T]) bool {
	return r.Compare(other) < 0
}

// Hash is consistent with Equal for payloads whose %v form is stable.
func (r Result[T]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	r.writeHash(&h)
	return h.Sum64()
}

func (r Result[T]) writeHash(h *maphash.Hash) {
	_ = h.WriteByte(byte(r.state))
	if r.state != StateOk {
		_, _ = h.WriteString(strings.ToLower(r.failure().Error()))
		return
	}
	if r.hasValue {
		_, _ = fmt.Fprint(h, r.value)
	}
}

func equalErrors(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	return strings.EqualFold(a.Error(), b.Error())
}

func compareErrors(a, b error) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(strings.ToLower(a.Error()), strings.ToLower(b.Error()))
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if reflect.ValueOf(a).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// compareValues prefers a Compare(T) int method, as on time.Time, then falls
// back to the ordered basic kinds. Other values compare as equal.
func compareValues[T any](a, b T) int {
	if c, ok := any(a).(interface{ Compare(T) int }); ok {
		return c.Compare(b)
	}
	return compareAny(any(a), any(b))
}

func compareAny(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return strings.Compare(va.Type().String(), vb.Type().String())
	}

	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())
	case reflect.String:
		return strings.Compare(va.String(), vb.String())
	case reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	default:
		return 0
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
