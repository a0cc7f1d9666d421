// Package io exposes the input and output of a session as a Sona module.
package io

import (
	"fmt"
	"io"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// Ns is the namespace for the io module.
var Ns = eval.BuildNsNamed("io").
	AddGoFns(map[string]any{
		"read_line": readLine,
		"read_all":  readAll,
		"write":     write,
	}).Ns()

// Reads a line without the line terminator. Returns null at the end of input.
func readLine(fm *eval.Frame) (any, error) {
	line, err := fm.Evaler.Stdin().ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return nil, nil
		}
	} else if err != nil {
		return nil, err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func readAll(fm *eval.Frame) (string, error) {
	b, err := io.ReadAll(fm.Evaler.Stdin())
	return string(b), err
}

// Writes values converted to strings, with no separator or terminator.
func write(fm *eval.Frame, args ...any) error {
	for _, arg := range args {
		if _, err := fmt.Fprint(fm.Evaler.Stdout(), vals.ToString(arg)); err != nil {
			return err
		}
	}
	return nil
}
