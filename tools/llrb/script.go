package main

import "fmt"
import "strconv"

import "github.com/prataprc/goparsec"

// statement from a replay script, keys is empty for "validate".
type statement struct {
	op   string
	keys []int64
}

func (stmt statement) String() string {
	if len(stmt.keys) == 0 {
		return stmt.op
	}
	return fmt.Sprintf("%v %v", stmt.op, stmt.keys)
}

// script grammar:
//
//	script    := statement*
//	statement := keyop | "validate" [";"]
//	keyop     := ("insert" | "delete" | "contains") INT+ [";"]
var ystatement = makegrammar()

func makegrammar() parsec.Parser {
	semicolon := parsec.Maybe(nil, parsec.Atom(";", "SEMICOLON"))
	integer := parsec.Token(`^-?[0-9]+`, "INT")

	keyword := parsec.OrdChoice(
		one2one,
		parsec.Atom("insert", "INSERT"),
		parsec.Atom("delete", "DELETE"),
		parsec.Atom("contains", "CONTAINS"),
	)
	integers := parsec.Many(nodes2keys, integer)
	keyop := parsec.And(nodes2keyop, keyword, integers, semicolon)
	validate := parsec.And(
		nodes2validate, parsec.Atom("validate", "VALIDATE"), semicolon)
	return parsec.OrdChoice(one2one, keyop, validate)
}

// parsescript returns the list of statements in text, in the same order.
func parsescript(text []byte) (stmts []statement, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	var node parsec.ParsecNode
	scanner := parsec.NewScanner(text)
	for {
		_, scanner = scanner.SkipWS()
		if scanner.Endof() {
			break
		}
		cursor := scanner.GetCursor()
		if node, scanner = ystatement(scanner); node == nil {
			return nil, fmt.Errorf("invalid statement at offset %v", cursor)
		}
		stmts = append(stmts, node.(statement))
	}
	return stmts, nil
}

func one2one(ns []parsec.ParsecNode) parsec.ParsecNode {
	if len(ns) == 0 {
		return nil
	}
	return ns[0]
}

func nodes2keys(ns []parsec.ParsecNode) parsec.ParsecNode {
	keys := make([]int64, 0, len(ns))
	for _, n := range ns {
		term := n.(*parsec.Terminal)
		key, err := strconv.ParseInt(term.Value, 10, 64)
		if err != nil {
			panic(fmt.Errorf("key %q at offset %v: %v", term.Value, term.Position, err))
		}
		keys = append(keys, key)
	}
	return keys
}

func nodes2keyop(ns []parsec.ParsecNode) parsec.ParsecNode {
	op := ns[0].(*parsec.Terminal).Value
	return statement{op: op, keys: ns[1].([]int64)}
}

func nodes2validate(ns []parsec.ParsecNode) parsec.ParsecNode {
	return statement{op: "validate"}
}
