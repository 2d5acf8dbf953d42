// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package bridge

import (
	"unsafe"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

type jsString uintptr

// jsClassDefinition mirrors JSClassDefinition (version 0).
type jsClassDefinition struct {
	version           int32
	attributes        uint32
	className         uintptr
	parentClass       uintptr
	staticValues      uintptr
	staticFunctions   uintptr
	initialize        uintptr
	finalize          uintptr
	hasProperty       uintptr
	getProperty       uintptr
	setProperty       uintptr
	deleteProperty    uintptr
	getPropertyNames  uintptr
	callAsFunction    uintptr
	callAsConstructor uintptr
	hasInstance       uintptr
	convertToType     uintptr
}

var (
	jsContextGetGlobalObject          func(ctx capi.JSContext) capi.JSObject
	jsClassCreate                     func(def *jsClassDefinition) capi.JSClass
	jsClassRelease                    func(c capi.JSClass)
	jsObjectMake                      func(ctx capi.JSContext, class capi.JSClass, private uintptr) capi.JSObject
	jsObjectGetPrivate                func(o capi.JSObject) uintptr
	jsObjectSetProperty               func(ctx capi.JSContext, o capi.JSObject, name jsString, value capi.JSValue, attributes uint32, exception *capi.JSValue)
	jsValueGetType                    func(ctx capi.JSContext, v capi.JSValue) uint32
	jsValueToNumber                   func(ctx capi.JSContext, v capi.JSValue, exception *capi.JSValue) float64
	jsValueToBoolean                  func(ctx capi.JSContext, v capi.JSValue) bool
	jsValueToStringCopy               func(ctx capi.JSContext, v capi.JSValue, exception *capi.JSValue) jsString
	jsValueMakeUndefined              func(ctx capi.JSContext) capi.JSValue
	jsValueMakeNull                   func(ctx capi.JSContext) capi.JSValue
	jsValueMakeBoolean                func(ctx capi.JSContext, b bool) capi.JSValue
	jsValueMakeNumber                 func(ctx capi.JSContext, n float64) capi.JSValue
	jsValueMakeString                 func(ctx capi.JSContext, s jsString) capi.JSValue
	jsStringCreateWithUTF8CString     func(s string) jsString
	jsStringRelease                   func(s jsString)
	jsStringGetMaximumUTF8CStringSize func(s jsString) uintptr
	jsStringGetUTF8CString            func(s jsString, buf *byte, size uintptr) uintptr
)

func jscSymbols() []symbol {
	return []symbol{
		{&jsContextGetGlobalObject, "JSContextGetGlobalObject"},
		{&jsClassCreate, "JSClassCreate"},
		{&jsClassRelease, "JSClassRelease"},
		{&jsObjectMake, "JSObjectMake"},
		{&jsObjectGetPrivate, "JSObjectGetPrivate"},
		{&jsObjectSetProperty, "JSObjectSetProperty"},
		{&jsValueGetType, "JSValueGetType"},
		{&jsValueToNumber, "JSValueToNumber"},
		{&jsValueToBoolean, "JSValueToBoolean"},
		{&jsValueToStringCopy, "JSValueToStringCopy"},
		{&jsValueMakeUndefined, "JSValueMakeUndefined"},
		{&jsValueMakeNull, "JSValueMakeNull"},
		{&jsValueMakeBoolean, "JSValueMakeBoolean"},
		{&jsValueMakeNumber, "JSValueMakeNumber"},
		{&jsValueMakeString, "JSValueMakeString"},
		{&jsStringCreateWithUTF8CString, "JSStringCreateWithUTF8CString"},
		{&jsStringRelease, "JSStringRelease"},
		{&jsStringGetMaximumUTF8CStringSize, "JSStringGetMaximumUTF8CStringSize"},
		{&jsStringGetUTF8CString, "JSStringGetUTF8CString"},
	}
}

// classNames keeps class name bytes reachable for the life of the process.
var classNames [][]byte

func (lib) JSClassCreate(name string, call capi.HostFunc, finalize capi.FinalizeFunc) capi.JSClass {
	cname := append([]byte(name), 0)
	classNames = append(classNames, cname)
	def := jsClassDefinition{
		className:      uintptr(unsafe.Pointer(&cname[0])),
		callAsFunction: hostCallback(call),
		finalize:       finalizeCallback(finalize),
	}
	return jsClassCreate(&def)
}

func (lib) JSClassRelease(c capi.JSClass) { jsClassRelease(c) }

func (lib) JSContextGetGlobalObject(ctx capi.JSContext) capi.JSObject {
	return jsContextGetGlobalObject(ctx)
}

func (lib) JSObjectMake(ctx capi.JSContext, class capi.JSClass, private uintptr) capi.JSObject {
	return jsObjectMake(ctx, class, private)
}

func (lib) JSObjectGetPrivate(o capi.JSObject) uintptr { return jsObjectGetPrivate(o) }

func (lib) JSObjectSetProperty(ctx capi.JSContext, o capi.JSObject, name string, value capi.JSValue) capi.JSValue {
	n := jsStringCreateWithUTF8CString(name)
	defer jsStringRelease(n)
	var exception capi.JSValue
	jsObjectSetProperty(ctx, o, n, value, 0, &exception)
	return exception
}

func (lib) JSValueGetType(ctx capi.JSContext, v capi.JSValue) capi.JSType {
	return capi.JSType(jsValueGetType(ctx, v))
}

func (lib) JSValueToNumber(ctx capi.JSContext, v capi.JSValue) float64 {
	var exception capi.JSValue
	return jsValueToNumber(ctx, v, &exception)
}

func (lib) JSValueToBoolean(ctx capi.JSContext, v capi.JSValue) bool {
	return jsValueToBoolean(ctx, v)
}

func (lib) JSValueToString(ctx capi.JSContext, v capi.JSValue) string {
	var exception capi.JSValue
	s := jsValueToStringCopy(ctx, v, &exception)
	if s == 0 {
		return ""
	}
	defer jsStringRelease(s)
	size := jsStringGetMaximumUTF8CStringSize(s)
	if size == 0 {
		return ""
	}
	buf := make([]byte, size)
	n := jsStringGetUTF8CString(s, &buf[0], size)
	if n == 0 {
		return ""
	}
	// n counts the terminating NUL.
	return string(buf[:n-1])
}

func (lib) JSValueMakeUndefined(ctx capi.JSContext) capi.JSValue { return jsValueMakeUndefined(ctx) }
func (lib) JSValueMakeNull(ctx capi.JSContext) capi.JSValue      { return jsValueMakeNull(ctx) }

func (lib) JSValueMakeBoolean(ctx capi.JSContext, b bool) capi.JSValue {
	return jsValueMakeBoolean(ctx, b)
}

func (lib) JSValueMakeNumber(ctx capi.JSContext, n float64) capi.JSValue {
	return jsValueMakeNumber(ctx, n)
}

func (lib) JSValueMakeString(ctx capi.JSContext, s string) capi.JSValue {
	js := jsStringCreateWithUTF8CString(s)
	defer jsStringRelease(js)
	return jsValueMakeString(ctx, js)
}
