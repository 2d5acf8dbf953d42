// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"fmt"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

// HostFunc is a Go function callable from page script. Arguments arrive as
// nil (undefined or null), bool, float64 or string; objects arrive as their
// string conversion. The result may be nil, a bool, any integer or float
// type, or a string. A non-nil error is thrown as a JavaScript exception.
type HostFunc func(args []any) (any, error)

// hostClass is the JS class of every bound function. Its private data holds
// the registry key of the Go closure.
var hostClass capi.JSClass

// BindFunction installs fn as a function named name on the page's global
// object. Binding the same name again replaces the previous function.
//
// The global object is reset on every navigation, so call this from
// OnWindowObjectReady.
func (v *View) BindFunction(name string, fn HostFunc) error {
	h := v.ref.get()
	if hostClass == 0 {
		hostClass = api.JSClassCreate("GoFunction", dispatchHostCall, dispatchHostFinalize)
		if hostClass == 0 {
			return &HandleError{Kind: "js class", Op: "create"}
		}
	}
	ctx := api.ViewLockJSContext(h)
	defer api.ViewUnlockJSContext(h)

	slot := "js:" + name
	key := callbacks.bind(uintptr(h), slot, fn)
	obj := api.JSObjectMake(ctx, hostClass, key)
	if obj == 0 {
		callbacks.unbind(uintptr(h), slot)
		return &HandleError{Kind: "js object", Op: "create"}
	}
	global := api.JSContextGetGlobalObject(ctx)
	if exc := api.JSObjectSetProperty(ctx, global, name, capi.JSValue(obj)); exc != 0 {
		callbacks.unbind(uintptr(h), slot)
		return &ScriptError{Message: api.JSValueToString(ctx, exc)}
	}
	return nil
}

func dispatchHostCall(ctx capi.JSContext, function, _ capi.JSObject, args []capi.JSValue, exception *capi.JSValue) capi.JSValue {
	fn, ok := lookupAs[HostFunc](api.JSObjectGetPrivate(function), "host_function")
	if !ok {
		return api.JSValueMakeUndefined(ctx)
	}
	goArgs := make([]any, len(args))
	for i, a := range args {
		goArgs[i] = fromJSValue(ctx, a)
	}
	result, err := fn(goArgs)
	if err == nil {
		var v capi.JSValue
		if v, err = toJSValue(ctx, result); err == nil {
			return v
		}
	}
	if exception != nil {
		*exception = api.JSValueMakeString(ctx, err.Error())
	}
	return api.JSValueMakeUndefined(ctx)
}

// dispatchHostFinalize drops the closure of a collected function object.
func dispatchHostFinalize(obj capi.JSObject) {
	callbacks.remove(api.JSObjectGetPrivate(obj))
}

func fromJSValue(ctx capi.JSContext, v capi.JSValue) any {
	switch api.JSValueGetType(ctx, v) {
	case capi.JSTypeUndefined, capi.JSTypeNull:
		return nil
	case capi.JSTypeBoolean:
		return api.JSValueToBoolean(ctx, v)
	case capi.JSTypeNumber:
		return api.JSValueToNumber(ctx, v)
	default:
		return api.JSValueToString(ctx, v)
	}
}

func toJSValue(ctx capi.JSContext, v any) (capi.JSValue, error) {
	switch x := v.(type) {
	case nil:
		return api.JSValueMakeUndefined(ctx), nil
	case bool:
		return api.JSValueMakeBoolean(ctx, x), nil
	case string:
		return api.JSValueMakeString(ctx, x), nil
	case int:
		return api.JSValueMakeNumber(ctx, float64(x)), nil
	case int32:
		return api.JSValueMakeNumber(ctx, float64(x)), nil
	case int64:
		return api.JSValueMakeNumber(ctx, float64(x)), nil
	case uint32:
		return api.JSValueMakeNumber(ctx, float64(x)), nil
	case uint64:
		return api.JSValueMakeNumber(ctx, float64(x)), nil
	case float32:
		return api.JSValueMakeNumber(ctx, float64(x)), nil
	case float64:
		return api.JSValueMakeNumber(ctx, x), nil
	case fmt.Stringer:
		return api.JSValueMakeString(ctx, x.String()), nil
	}
	return 0, fmt.Errorf("unsupported result type %T", v)
}
