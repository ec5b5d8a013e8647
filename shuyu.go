// Package shuyu implements an interpreter for 蜀语 (shuyu), a small
// imperative language whose surface syntax is written in Sichuan-dialect
// Chinese. Run is the single public entry point: it lexes, parses and
// executes a program given as a string, returning everything the program
// printed.
package shuyu

import (
	"github.com/sirupsen/logrus"

	"github.com/tangzhangming/shuyu/internal/interpreter"
	"github.com/tangzhangming/shuyu/internal/lexer"
	"github.com/tangzhangming/shuyu/internal/parser"
)

// Run lexes, parses and executes program, returning the accumulated
// output. If execution fails partway through, the output produced up to
// that point is still returned alongside the error.
func Run(program string) (string, error) {
	tokens := lexer.Lex(program)

	stmts, err := parser.Parse(tokens)
	if err != nil {
		logrus.WithError(err).Debug("shuyu: parse failed")
		return "", err
	}

	out, err := interpreter.New().Run(stmts)
	if err != nil {
		logrus.WithError(err).Debug("shuyu: execution failed")
		return out, err
	}
	return out, nil
}
