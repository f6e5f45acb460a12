package values

import (
	"fmt"
	"reflect"

	"github.com/authcorp/optics/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Call invokes the exported method named method on v with args.
// A trailing error result is returned as the call's error; a single other
// result is returned as is; several results are returned as []any.
func Call(v any, method string, args ...any) (result any, err error) {
	if v == nil {
		return nil, errors.MethodNotFound(method, v)
	}
	fn := reflect.ValueOf(v).MethodByName(method)
	if !fn.IsValid() {
		return nil, errors.MethodNotFound(method, v)
	}
	ft := fn.Type()
	if ft.IsVariadic() && len(args) < ft.NumIn()-1 || !ft.IsVariadic() && len(args) != ft.NumIn() {
		return nil, errors.InvalidPayload("invoke",
			fmt.Sprintf("%d arguments for %s", ft.NumIn(), method), args)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = argValue(ft, i, arg)
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, errors.New(errors.ErrCodeInvalidPayload, fmt.Sprintf("invoke %s: %v", method, r)).WithOp("invoke")
		}
	}()
	out := fn.Call(in)

	if n := len(out); n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

// argValue converts arg for parameter i, mapping nil to the parameter's
// zero value.
func argValue(ft reflect.Type, i int, arg any) reflect.Value {
	if arg != nil {
		return reflect.ValueOf(arg)
	}
	pt := ft.In(min(i, ft.NumIn()-1))
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		pt = pt.Elem()
	}
	return reflect.Zero(pt)
}
