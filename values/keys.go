// Package values holds the pure helpers the optics kernel relies on: key
// classification, NaN-safe equality, immutable single-key writes and
// clone-then-mutate for associative and set containers.
package values

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/authcorp/optics/errors"
)

// MaxSafeInteger is the largest index a sequence key may carry.
const MaxSafeInteger = 1<<53 - 1

// IsIntegerIndex reports whether key denotes a non-negative integer index
// usable in an ordered sequence. Strings are never indices.
func IsIntegerIndex(key any) bool {
	_, ok := Index(key)
	return ok
}

// Index returns key as a sequence index.
func Index(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, k >= 0 && k <= MaxSafeInteger
	case int8:
		return int(k), k >= 0
	case int16:
		return int(k), k >= 0
	case int32:
		return int(k), k >= 0
	case int64:
		return int(k), k >= 0 && k <= MaxSafeInteger
	case uint:
		return int(k), uint64(k) <= MaxSafeInteger
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return int(k), k <= MaxSafeInteger
	case float32:
		return floatIndex(float64(k))
	case float64:
		return floatIndex(k)
	}
	return 0, false
}

func floatIndex(f float64) (int, bool) {
	if f != math.Floor(f) || f < 0 || f > MaxSafeInteger {
		return 0, false
	}
	return int(f), true
}

// ValidKey reports whether key can address any container at all.
func ValidKey(key any) bool {
	if key == nil {
		return false
	}
	switch reflect.TypeOf(key).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Name returns the mapping property name for key.
func Name(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case float64:
		return strconv.FormatFloat(k, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(k), 'f', -1, 32)
	}
	if s, ok := key.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(key)
}

func checkKey(key any) error {
	if !ValidKey(key) {
		return errors.InvalidKey(key)
	}
	return nil
}
