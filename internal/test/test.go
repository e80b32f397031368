// Package test contains assertion helpers reporting the caller position.
package test

import (
	"fmt"
	"runtime"
	"testing"

	err "github.com/ava12/dice/errors"
)

func fatalf(t *testing.T, message string, params ...any) {
	t.Helper()
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	t.Helper()
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectInt(t *testing.T, expected, got int) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	t.Helper()
	Expect(t, expected == got, fmt.Sprintf("%q", expected), fmt.Sprintf("%q", got))
}

func ExpectNoError(t *testing.T, e error) {
	t.Helper()
	if e != nil {
		fatalf(t, "unexpected error: %s", e)
	}
}

func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()
	if e != nil && err.Code(e) == expected {
		return
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
}

// ExpectErrorPos checks error code and position of *errors.Error.
func ExpectErrorPos(t *testing.T, code, line, col int, e error) {
	t.Helper()
	ExpectErrorCode(t, code, e)
	ee, valid := e.(*err.Error)
	if !valid {
		fatalf(t, "expecting *errors.Error, got %T", e)
	}
	if ee.Line != line || ee.Col != col {
		fatalf(t, "expecting error at line %d col %d, got line %d col %d (%s)", line, col, ee.Line, ee.Col, ee.Message)
	}
}
