package config

import (
	"io"
	"log"
	"reflect"
	"runtime"
)

// Me stores the name the tool considers itself to be running as.
//
var Me string

// ErrOut is where logs and errors are sent to (generally stderr).
//
var ErrOut io.Writer

// EnableFnTrace shows parser/lexer fn calls
//
var EnableFnTrace = false

// TraceFn logs lexer/parser fn transitions
//
func TraceFn(msg string, i interface{}) {
	if EnableFnTrace {
		fnName := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
		log.Println(msg, ":", fnName)
	}
}
