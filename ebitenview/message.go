// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ebitenview

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/YindSoft/ultralight-go"
)

// sendFunction is the native function the page calls to reach Go.
const sendFunction = "__goSend"

// goHelper wraps the native function in window.go.send, serializing
// non-string values as JSON.
const goHelper = "window.go=window.go||{};" +
	"window.go.send=function(m){window." + sendFunction + "(typeof m==='string'?m:JSON.stringify(m));};"

// installHelper binds the native send function and the go.send wrapper in a
// fresh page.
func (ev *View) installHelper(page *ultralight.View) error {
	err := page.BindFunction(sendFunction, func(args []any) (any, error) {
		if len(args) == 0 {
			return nil, nil
		}
		msg, ok := args[0].(string)
		if !ok {
			msg = fmt.Sprint(args[0])
		}
		ev.pending = append(ev.pending, msg)
		return nil, nil
	})
	if err != nil {
		return err
	}
	_, err = page.EvaluateScript(goHelper)
	return err
}

// Eval runs JavaScript in the page and returns its result as a string.
func (ev *View) Eval(script string) (string, error) {
	if ev.closed {
		return "", nil
	}
	return ev.view.EvaluateScript(script)
}

// ParseMessage parses msg as JSON if it looks like JSON (starts with '{' or '[').
// Returns the parsed value, or the raw string if it's not JSON.
func ParseMessage(msg string) (any, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return nil, nil
	}
	if (strings.HasPrefix(msg, "{") && strings.HasSuffix(msg, "}")) ||
		(strings.HasPrefix(msg, "[") && strings.HasSuffix(msg, "]")) {
		var v any
		if err := json.Unmarshal([]byte(msg), &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return msg, nil
}

// Send sends structured data to the page. It serializes to JSON and invokes
// window.go.receive(data). Define go.receive in your HTML to handle it.
func (ev *View) Send(data any) error {
	if ev.closed {
		return nil
	}
	script, err := receiveScript(data)
	if err != nil {
		return err
	}
	_, err = ev.view.EvaluateScript(script)
	return err
}

func receiveScript(data any) (string, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("send: %w", err)
	}
	var sb strings.Builder
	sb.WriteString("if(window.go&&typeof window.go.receive==='function')window.go.receive(JSON.parse(\"")
	sb.WriteString(escapeJSString(string(jsonBytes)))
	sb.WriteString("\"));")
	return sb.String(), nil
}

// escapeJSString escapes s for use inside a double-quoted JS string literal.
func escapeJSString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
