// Package script turns a JavaScript body and its parameters into the program
// text handed to the interpreter.
package script

import (
	"encoding/json"
	"strings"

	"github.com/robbyt/go-osascript/platform/constants"
	"github.com/robbyt/go-osascript/platform/failure"
)

// The postamble runs the body as a function and leaves the JSON encoding of
// its return value as the program's completion value, which the interpreter
// prints to stdout. JSON.stringify yields undefined for undefined and
// functions; those are reported as null so stdout is always one JSON value.
const (
	bodyPrologue = "(function($result) {\n" +
		"var $json = JSON.stringify($result);\n" +
		"return $json === undefined ? \"null\" : $json;\n" +
		"})((function() {\n"
	bodyEpilogue = "\n;return null;\n})());\n"
)

// emptyParams is bound when the caller passes no parameters.
var emptyParams = struct{}{}

// Wrap builds the program for code with params bound to $params.
//
// The first line is always
//
//	var $params = <json>;
//
// followed by code, unmodified, inside a function. A body without a return
// statement produces null. If params cannot be encoded as JSON the returned
// error is a *failure.Error of KindSerialization.
func Wrap(code string, params any) (string, error) {
	encoded, err := json.Marshal(params)
	if err != nil {
		return "", failure.Serialization(err)
	}

	var b strings.Builder
	b.Grow(len(code) + len(encoded) + len(bodyPrologue) + len(bodyEpilogue) + 16)
	b.WriteString("var ")
	b.WriteString(constants.ParamsVar)
	b.WriteString(" = ")
	b.Write(encoded)
	b.WriteString(";\n")
	b.WriteString(bodyPrologue)
	b.WriteString(code)
	b.WriteString(bodyEpilogue)
	return b.String(), nil
}

// WrapEmpty wraps code with an empty object as $params.
func WrapEmpty(code string) string {
	// encoding an empty struct cannot fail
	program, _ := Wrap(code, emptyParams)
	return program
}

// ParamsLiteral returns the JSON text bound to $params in a wrapped program,
// and false if program was not produced by Wrap.
func ParamsLiteral(program string) (string, bool) {
	prefix := "var " + constants.ParamsVar + " = "
	first, _, found := strings.Cut(program, "\n")
	if !found || !strings.HasPrefix(first, prefix) || !strings.HasSuffix(first, ";") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(first, prefix), ";"), true
}
