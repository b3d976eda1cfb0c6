package main

import "bytes"
import "fmt"
import "strconv"

import "github.com/prataprc/goparsec"

// statement is one parsed op-script line.
type statement struct {
	op    string // "push" | "pop" | "free" | "dump"
	arg   int64  // push only
	stack string
}

func compile(text []byte) ([]*statement, error) {
	root, scanner := script(parsec.NewScanner(stripcomments(text)))
	_, scanner = scanner.SkipWS()
	if scanner.Endof() == false {
		return nil, fmt.Errorf("parse error at offset %v", scanner.GetCursor())
	}
	stmts := []*statement{}
	if root == nil {
		return stmts, nil
	}
	for _, node := range root.([]parsec.ParsecNode) {
		stmts = append(stmts, node.(*statement))
	}
	return stmts, nil
}

var script parsec.Parser

func init() {
	ident := parsec.Token(`[A-Za-z][A-Za-z0-9_]*`, "IDENT")
	pushstmt := parsec.And(
		nodifyPush,
		parsec.Atom("push", "PUSH"), parsec.Int(), ident)
	popstmt := parsec.And(
		nodifyOp("pop"), parsec.Atom("pop", "POP"), ident)
	freestmt := parsec.And(
		nodifyOp("free"), parsec.Atom("free", "FREE"), ident)
	dumpstmt := parsec.And(
		nodifyOp("dump"), parsec.Atom("dump", "DUMP"), ident)
	onestmt := parsec.OrdChoice(
		func(ns []parsec.ParsecNode) parsec.ParsecNode { return ns[0] },
		pushstmt, popstmt, freestmt, dumpstmt)
	script = parsec.Kleene(nil, onestmt)
}

func nodifyPush(ns []parsec.ParsecNode) parsec.ParsecNode {
	arg, err := strconv.ParseInt(ns[1].(*parsec.Terminal).Value, 10, 64)
	if err != nil {
		panic(fmt.Errorf("push argument: %v", err))
	}
	return &statement{
		op:    "push",
		arg:   arg,
		stack: ns[2].(*parsec.Terminal).Value,
	}
}

func nodifyOp(op string) parsec.Nodify {
	return func(ns []parsec.ParsecNode) parsec.ParsecNode {
		return &statement{op: op, stack: ns[1].(*parsec.Terminal).Value}
	}
}

// stripcomments blank out everything from `#` to end of line.
func stripcomments(text []byte) []byte {
	out := make([]byte, 0, len(text))
	for _, line := range bytes.Split(text, []byte("\n")) {
		if off := bytes.IndexByte(line, '#'); off >= 0 {
			line = line[:off]
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}
